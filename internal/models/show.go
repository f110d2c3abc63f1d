package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Show books one artist at one venue at a start time. Whether a show is
// past or upcoming is never stored; it is derived from start_time at
// query time by the classifier.
type Show struct {
	bun.BaseModel `bun:"table:shows"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	ArtistID  int64     `bun:"artist_id,notnull" json:"artist_id"`
	VenueID   int64     `bun:"venue_id,notnull" json:"venue_id"`
	StartTime time.Time `bun:"start_time,notnull" json:"start_time"`
}

// ShowInput carries the fields of a show submission.
type ShowInput struct {
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}
