package listings

import "strings"

// NameMatches reports whether name contains term, ignoring case. An
// empty term matches every name.
func NameMatches(name, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}
