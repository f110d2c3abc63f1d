package models

import (
	"github.com/uptrace/bun"
)

type Venue struct {
	bun.BaseModel `bun:"table:venues"`

	ID                 int64    `bun:"id,pk,autoincrement" json:"id"`
	Name               string   `bun:"name,notnull" json:"name"`
	Address            string   `bun:"address" json:"address"`
	City               string   `bun:"city,notnull" json:"city"`
	State              string   `bun:"state,notnull" json:"state"`
	Phone              string   `bun:"phone" json:"phone"`
	ImageLink          string   `bun:"image_link" json:"image_link"`
	FacebookLink       string   `bun:"facebook_link" json:"facebook_link"`
	Website            string   `bun:"website" json:"website"`
	Genres             []string `bun:"genres,notnull" json:"genres"`
	SeekingTalent      bool     `bun:"seeking_talent,default:false" json:"seeking_talent"`
	SeekingDescription string   `bun:"seeking_description" json:"seeking_description"`
}

// VenueInput carries the user-editable fields of a venue submission.
// Updates overwrite every field here; there is no partial patch.
type VenueInput struct {
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	Genres             []string `json:"genres"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}
