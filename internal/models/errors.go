package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
	ErrShowNotFound   = errors.New("show not found")

	// ErrArtistBooked is returned when deleting an artist that still has
	// shows referencing it. Artist deletion does not cascade.
	ErrArtistBooked = errors.New("artist is referenced by existing shows")

	// ErrCounterpartMissing means a show references an entity that no
	// longer resolves. The store is supposed to make this impossible, so
	// the classifier fails loudly instead of dropping the show.
	ErrCounterpartMissing = errors.New("show references a missing counterpart")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field error of a single submission so
// the caller can surface all of them at once.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
