package models

import (
	"github.com/uptrace/bun"
)

// Artist mirrors Venue except that it has no address, its genres column
// is nullable, and its shows are NOT cascade-deleted with it. Both
// asymmetries come straight from the original schema and are kept as
// explicit policy.
type Artist struct {
	bun.BaseModel `bun:"table:artists"`

	ID                 int64    `bun:"id,pk,autoincrement" json:"id"`
	Name               string   `bun:"name,notnull" json:"name"`
	City               string   `bun:"city,notnull" json:"city"`
	State              string   `bun:"state,notnull" json:"state"`
	Phone              string   `bun:"phone" json:"phone"`
	ImageLink          string   `bun:"image_link" json:"image_link"`
	FacebookLink       string   `bun:"facebook_link" json:"facebook_link"`
	Website            string   `bun:"website" json:"website"`
	Genres             []string `bun:"genres" json:"genres"`
	SeekingVenue       bool     `bun:"seeking_venue,default:false" json:"seeking_venue"`
	SeekingDescription string   `bun:"seeking_description" json:"seeking_description"`
}

// ArtistInput carries the user-editable fields of an artist submission.
type ArtistInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	Genres             []string `json:"genres"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}
