package venues

import (
	"context"
	"fmt"
	"time"

	"gigboard/internal/models"
	"gigboard/internal/shows"
	"gigboard/internal/validation"
)

type DBLayer interface {
	GetVenueByID(ctx context.Context, id int64) (*models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
}

type ShowDBLayer interface {
	ListShowsByVenue(ctx context.Context, venueID int64) ([]models.Show, error)
}

type ArtistDBLayer interface {
	GetArtistByID(ctx context.Context, id int64) (*models.Artist, error)
}

type EventPublisher interface {
	PublishVenueCreated(venue models.Venue) error
	PublishVenueUpdated(venue models.Venue) error
	PublishVenueDeleted(id int64) error
}

type Service struct {
	DB      DBLayer
	Shows   ShowDBLayer
	Artists ArtistDBLayer
	Events  EventPublisher
	Clock   func() time.Time
}

func NewService(db DBLayer, showDB ShowDBLayer, artistDB ArtistDBLayer, events EventPublisher) *Service {
	return &Service{DB: db, Shows: showDB, Artists: artistDB, Events: events, Clock: time.Now}
}

// GetVenue returns the full venue page payload: the venue's fields plus
// its shows partitioned into past and upcoming against the current time,
// each enriched with the booked artist. Counts are the bucket lengths.
func (s *Service) GetVenue(ctx context.Context, id int64) (*models.VenueDetail, error) {
	venue, err := s.DB.GetVenueByID(ctx, id)
	if err != nil {
		return nil, err
	}

	showList, err := s.Shows.ListShowsByVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	// Memoize artist lookups; several shows often share an artist.
	seen := make(map[int64]*models.Artist)
	lookup := func(show models.Show) (shows.Counterpart, error) {
		artist, ok := seen[show.ArtistID]
		if !ok {
			artist, err = s.Artists.GetArtistByID(ctx, show.ArtistID)
			if err != nil {
				return shows.Counterpart{}, fmt.Errorf("%w: artist %d", models.ErrCounterpartMissing, show.ArtistID)
			}
			seen[show.ArtistID] = artist
		}
		return shows.Counterpart{ID: artist.ID, Name: artist.Name, ImageLink: artist.ImageLink}, nil
	}

	classified, err := shows.Classify(showList, s.Clock(), lookup)
	if err != nil {
		return nil, err
	}

	detail := &models.VenueDetail{
		Venue:              *venue,
		PastShows:          toArtistEntries(classified.Past),
		UpcomingShows:      toArtistEntries(classified.Upcoming),
		PastShowsCount:     classified.PastCount(),
		UpcomingShowsCount: classified.UpcomingCount(),
	}
	return detail, nil
}

func toArtistEntries(views []shows.ShowView) []models.ArtistShowEntry {
	entries := make([]models.ArtistShowEntry, len(views))
	for i, v := range views {
		entries[i] = models.ArtistShowEntry{
			ArtistID:        v.Counterpart.ID,
			ArtistName:      v.Counterpart.Name,
			ArtistImageLink: v.Counterpart.ImageLink,
			StartTime:       v.Show.StartTime,
		}
	}
	return entries
}

// CreateVenue validates the submission and inserts the venue. Every
// field error is collected and returned together; nothing is persisted
// on a validation failure.
func (s *Service) CreateVenue(ctx context.Context, in models.VenueInput) (*models.Venue, error) {
	if err := validation.VenueInput(in); err != nil {
		return nil, err
	}

	venue := &models.Venue{
		Name:               in.Name,
		Address:            in.Address,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		Genres:             in.Genres,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}
	if err := s.DB.CreateVenue(ctx, venue); err != nil {
		return nil, err
	}

	if s.Events != nil {
		if err := s.Events.PublishVenueCreated(*venue); err != nil {
			fmt.Printf("Kafka publish error (venue created): %v\n", err)
		}
	}
	return venue, nil
}

// UpdateVenue overwrites all user-editable fields of an existing venue.
// There is no partial patch.
func (s *Service) UpdateVenue(ctx context.Context, id int64, in models.VenueInput) (*models.Venue, error) {
	if err := validation.VenueInput(in); err != nil {
		return nil, err
	}

	venue := &models.Venue{
		ID:                 id,
		Name:               in.Name,
		Address:            in.Address,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		Genres:             in.Genres,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}
	if err := s.DB.UpdateVenue(ctx, venue); err != nil {
		return nil, err
	}

	if s.Events != nil {
		if err := s.Events.PublishVenueUpdated(*venue); err != nil {
			fmt.Printf("Kafka publish error (venue updated): %v\n", err)
		}
	}
	return venue, nil
}

// DeleteVenue removes a venue together with all of its shows.
func (s *Service) DeleteVenue(ctx context.Context, id int64) error {
	if err := s.DB.DeleteVenue(ctx, id); err != nil {
		return err
	}

	if s.Events != nil {
		if err := s.Events.PublishVenueDeleted(id); err != nil {
			fmt.Printf("Kafka publish error (venue deleted): %v\n", err)
		}
	}
	return nil
}
