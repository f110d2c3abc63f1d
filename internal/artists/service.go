package artists

import (
	"context"
	"fmt"
	"time"

	"gigboard/internal/models"
	"gigboard/internal/shows"
	"gigboard/internal/validation"
)

type DBLayer interface {
	GetArtistByID(ctx context.Context, id int64) (*models.Artist, error)
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, artist *models.Artist) error
	DeleteArtist(ctx context.Context, id int64) error
}

type ShowDBLayer interface {
	ListShowsByArtist(ctx context.Context, artistID int64) ([]models.Show, error)
}

type VenueDBLayer interface {
	GetVenueByID(ctx context.Context, id int64) (*models.Venue, error)
}

type EventPublisher interface {
	PublishArtistCreated(artist models.Artist) error
	PublishArtistUpdated(artist models.Artist) error
	PublishArtistDeleted(id int64) error
}

type Service struct {
	DB     DBLayer
	Shows  ShowDBLayer
	Venues VenueDBLayer
	Events EventPublisher
	Clock  func() time.Time
}

func NewService(db DBLayer, showDB ShowDBLayer, venueDB VenueDBLayer, events EventPublisher) *Service {
	return &Service{DB: db, Shows: showDB, Venues: venueDB, Events: events, Clock: time.Now}
}

// GetArtist returns the full artist page payload with the artist's shows
// partitioned into past and upcoming, each enriched with the venue.
func (s *Service) GetArtist(ctx context.Context, id int64) (*models.ArtistDetail, error) {
	artist, err := s.DB.GetArtistByID(ctx, id)
	if err != nil {
		return nil, err
	}

	showList, err := s.Shows.ListShowsByArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]*models.Venue)
	lookup := func(show models.Show) (shows.Counterpart, error) {
		venue, ok := seen[show.VenueID]
		if !ok {
			venue, err = s.Venues.GetVenueByID(ctx, show.VenueID)
			if err != nil {
				return shows.Counterpart{}, fmt.Errorf("%w: venue %d", models.ErrCounterpartMissing, show.VenueID)
			}
			seen[show.VenueID] = venue
		}
		return shows.Counterpart{ID: venue.ID, Name: venue.Name, ImageLink: venue.ImageLink}, nil
	}

	classified, err := shows.Classify(showList, s.Clock(), lookup)
	if err != nil {
		return nil, err
	}

	detail := &models.ArtistDetail{
		Artist:             *artist,
		PastShows:          toVenueEntries(classified.Past),
		UpcomingShows:      toVenueEntries(classified.Upcoming),
		PastShowsCount:     classified.PastCount(),
		UpcomingShowsCount: classified.UpcomingCount(),
	}
	return detail, nil
}

func toVenueEntries(views []shows.ShowView) []models.VenueShowEntry {
	entries := make([]models.VenueShowEntry, len(views))
	for i, v := range views {
		entries[i] = models.VenueShowEntry{
			VenueID:        v.Counterpart.ID,
			VenueName:      v.Counterpart.Name,
			VenueImageLink: v.Counterpart.ImageLink,
			StartTime:      v.Show.StartTime,
		}
	}
	return entries
}

// CreateArtist validates the submission and inserts the artist.
func (s *Service) CreateArtist(ctx context.Context, in models.ArtistInput) (*models.Artist, error) {
	if err := validation.ArtistInput(in); err != nil {
		return nil, err
	}

	artist := &models.Artist{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		Genres:             in.Genres,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
	}
	if err := s.DB.CreateArtist(ctx, artist); err != nil {
		return nil, err
	}

	if s.Events != nil {
		if err := s.Events.PublishArtistCreated(*artist); err != nil {
			fmt.Printf("Kafka publish error (artist created): %v\n", err)
		}
	}
	return artist, nil
}

// UpdateArtist overwrites all user-editable fields of an existing artist.
func (s *Service) UpdateArtist(ctx context.Context, id int64, in models.ArtistInput) (*models.Artist, error) {
	if err := validation.ArtistInput(in); err != nil {
		return nil, err
	}

	artist := &models.Artist{
		ID:                 id,
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		Genres:             in.Genres,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
	}
	if err := s.DB.UpdateArtist(ctx, artist); err != nil {
		return nil, err
	}

	if s.Events != nil {
		if err := s.Events.PublishArtistUpdated(*artist); err != nil {
			fmt.Printf("Kafka publish error (artist updated): %v\n", err)
		}
	}
	return artist, nil
}

// DeleteArtist removes an artist; it fails while shows still reference
// the artist.
func (s *Service) DeleteArtist(ctx context.Context, id int64) error {
	if err := s.DB.DeleteArtist(ctx, id); err != nil {
		return err
	}

	if s.Events != nil {
		if err := s.Events.PublishArtistDeleted(id); err != nil {
			fmt.Printf("Kafka publish error (artist deleted): %v\n", err)
		}
	}
	return nil
}
