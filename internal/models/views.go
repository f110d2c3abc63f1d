package models

import "time"

// Read-side views handed to the rendering layer. These are plain data;
// no presentation markup, no formatted timestamps.

// VenueSummary is one row of a grouped listing or a search result.
type VenueSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ArtistSummary is one row of an artist listing or a search result.
type ArtistSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// CityGroup holds the venues of one exact (city, state) pair.
type CityGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// SearchResults wraps search matches with their total count.
type VenueSearchResults struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

type ArtistSearchResults struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

// ArtistShowEntry is a show on a venue page, enriched with the artist.
type ArtistShowEntry struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueShowEntry is a show on an artist page, enriched with the venue.
type VenueShowEntry struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// VenueDetail is the full venue page payload. Counts are recomputed from
// the show buckets on every read.
type VenueDetail struct {
	Venue
	PastShows          []ArtistShowEntry `json:"past_shows"`
	UpcomingShows      []ArtistShowEntry `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

// ArtistDetail is the full artist page payload.
type ArtistDetail struct {
	Artist
	PastShows          []VenueShowEntry `json:"past_shows"`
	UpcomingShows      []VenueShowEntry `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// ShowListing is one row of the upcoming-shows page, joined with both
// counterparties' display attributes.
type ShowListing struct {
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// HomePage lists the most recently added venues and artists.
type HomePage struct {
	Venues  []Venue  `json:"venues"`
	Artists []Artist `json:"artists"`
}
