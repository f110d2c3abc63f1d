package shows

import (
	"context"
	"fmt"
	"time"

	"gigboard/internal/models"
	"gigboard/internal/validation"
)

type DBLayer interface {
	CreateShow(ctx context.Context, show *models.Show) error
	ListShows(ctx context.Context) ([]models.Show, error)
}

type VenueDBLayer interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
}

type ArtistDBLayer interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
}

type EventPublisher interface {
	PublishShowCreated(show models.Show) error
}

type Service struct {
	DB      DBLayer
	Venues  VenueDBLayer
	Artists ArtistDBLayer
	Events  EventPublisher
	Clock   func() time.Time
}

func NewService(db DBLayer, venueDB VenueDBLayer, artistDB ArtistDBLayer, events EventPublisher) *Service {
	return &Service{DB: db, Venues: venueDB, Artists: artistDB, Events: events, Clock: time.Now}
}

// ListUpcoming returns the upcoming shows joined with both
// counterparties' names and the artist's image. Past shows are not
// listed on the shows page.
func (s *Service) ListUpcoming(ctx context.Context) ([]models.ShowListing, error) {
	showList, err := s.DB.ListShows(ctx)
	if err != nil {
		return nil, err
	}

	venues, err := s.Venues.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	venueByID := make(map[int64]models.Venue, len(venues))
	for _, v := range venues {
		venueByID[v.ID] = v
	}

	artists, err := s.Artists.ListArtists(ctx)
	if err != nil {
		return nil, err
	}
	artistByID := make(map[int64]models.Artist, len(artists))
	for _, a := range artists {
		artistByID[a.ID] = a
	}

	_, upcoming := Partition(showList, s.Clock())

	listings := make([]models.ShowListing, 0, len(upcoming))
	for _, show := range upcoming {
		venue, ok := venueByID[show.VenueID]
		if !ok {
			return nil, fmt.Errorf("show %d: %w: venue %d", show.ID, models.ErrCounterpartMissing, show.VenueID)
		}
		artist, ok := artistByID[show.ArtistID]
		if !ok {
			return nil, fmt.Errorf("show %d: %w: artist %d", show.ID, models.ErrCounterpartMissing, show.ArtistID)
		}
		listings = append(listings, models.ShowListing{
			VenueID:         venue.ID,
			VenueName:       venue.Name,
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       show.StartTime,
		})
	}
	return listings, nil
}

// CreateShow validates the submission and books the show. The store
// verifies that both the artist and the venue exist before committing.
func (s *Service) CreateShow(ctx context.Context, in models.ShowInput) (*models.Show, error) {
	if err := validation.ShowInput(in); err != nil {
		return nil, err
	}

	show := &models.Show{
		ArtistID:  in.ArtistID,
		VenueID:   in.VenueID,
		StartTime: in.StartTime,
	}
	if err := s.DB.CreateShow(ctx, show); err != nil {
		return nil, err
	}

	if s.Events != nil {
		if err := s.Events.PublishShowCreated(*show); err != nil {
			fmt.Printf("Kafka publish error (show created): %v\n", err)
		}
	}
	return show, nil
}
