package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"gigboard/internal/models"
)

const maxSeekingDescription = 700

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

// VenueInput checks every user-editable venue field and returns all
// problems at once, each tagged with its field name. A nil error means
// the input is acceptable.
func VenueInput(in models.VenueInput) error {
	var fields []models.FieldError
	fields = appendProfileErrors(fields, in.Name, in.Phone, in.State)
	fields = appendLinkErrors(fields, in.ImageLink, in.Website, in.FacebookLink)
	if len(in.Genres) == 0 {
		fields = append(fields, models.FieldError{Field: "genres", Message: "at least one genre is required"})
	}
	if len(in.SeekingDescription) > maxSeekingDescription {
		fields = append(fields, models.FieldError{
			Field:   "seeking_description",
			Message: fmt.Sprintf("must be at most %d characters", maxSeekingDescription),
		})
	}
	return asError(fields)
}

// ArtistInput applies the same rules as VenueInput. The original schema
// lets artist genres be null, but submissions still require at least one
// genre; the looser column is treated as a bug, not a feature.
func ArtistInput(in models.ArtistInput) error {
	var fields []models.FieldError
	fields = appendProfileErrors(fields, in.Name, in.Phone, in.State)
	fields = appendLinkErrors(fields, in.ImageLink, in.Website, in.FacebookLink)
	if len(in.Genres) == 0 {
		fields = append(fields, models.FieldError{Field: "genres", Message: "at least one genre is required"})
	}
	if len(in.SeekingDescription) > maxSeekingDescription {
		fields = append(fields, models.FieldError{
			Field:   "seeking_description",
			Message: fmt.Sprintf("must be at most %d characters", maxSeekingDescription),
		})
	}
	return asError(fields)
}

// ShowInput checks the fields of a show submission. Foreign-key
// resolution is the store's job; this only checks shape.
func ShowInput(in models.ShowInput) error {
	var fields []models.FieldError
	if in.ArtistID <= 0 {
		fields = append(fields, models.FieldError{Field: "artist_id", Message: "is required"})
	}
	if in.VenueID <= 0 {
		fields = append(fields, models.FieldError{Field: "venue_id", Message: "is required"})
	}
	if in.StartTime.IsZero() {
		fields = append(fields, models.FieldError{Field: "start_time", Message: "is required"})
	}
	return asError(fields)
}

func appendProfileErrors(fields []models.FieldError, name, phone, state string) []models.FieldError {
	if strings.TrimSpace(name) == "" {
		fields = append(fields, models.FieldError{Field: "name", Message: "is required"})
	}
	if phone == "" {
		fields = append(fields, models.FieldError{Field: "phone", Message: "is required"})
	} else if !phonePattern.MatchString(phone) {
		fields = append(fields, models.FieldError{Field: "phone", Message: "must look like 123-456-7890"})
	}
	if state == "" {
		fields = append(fields, models.FieldError{Field: "state", Message: "is required"})
	} else if !IsStateCode(state) {
		fields = append(fields, models.FieldError{Field: "state", Message: "is not a recognized state code"})
	}
	return fields
}

func appendLinkErrors(fields []models.FieldError, imageLink, website, facebookLink string) []models.FieldError {
	links := []struct {
		field string
		value string
	}{
		{"image_link", imageLink},
		{"website", website},
		{"facebook_link", facebookLink},
	}
	for _, l := range links {
		if l.value == "" {
			continue
		}
		if !isHTTPURL(l.value) {
			fields = append(fields, models.FieldError{Field: l.field, Message: "must be a valid http(s) URL"})
		}
	}
	return fields
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func asError(fields []models.FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &models.ValidationError{Fields: fields}
}
