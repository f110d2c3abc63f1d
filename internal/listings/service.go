package listings

import (
	"context"
	"time"

	"gigboard/internal/models"
	"gigboard/internal/shows"
)

// homePageLimit caps how many recent venues and artists the home page
// lists.
const homePageLimit = 10

type VenueDBLayer interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
	ListRecentVenues(ctx context.Context, limit int) ([]models.Venue, error)
}

type ArtistDBLayer interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	ListRecentArtists(ctx context.Context, limit int) ([]models.Artist, error)
}

type ShowDBLayer interface {
	ListShows(ctx context.Context) ([]models.Show, error)
}

type Service struct {
	Venues  VenueDBLayer
	Artists ArtistDBLayer
	Shows   ShowDBLayer
	Clock   func() time.Time
}

func NewService(venueDB VenueDBLayer, artistDB ArtistDBLayer, showDB ShowDBLayer) *Service {
	return &Service{Venues: venueDB, Artists: artistDB, Shows: showDB, Clock: time.Now}
}

// upcomingCounts partitions every show against now and counts the
// upcoming ones per owning entity, keyed by keyOf.
func (s *Service) upcomingCounts(ctx context.Context, keyOf func(models.Show) int64) (map[int64]int, error) {
	all, err := s.Shows.ListShows(ctx)
	if err != nil {
		return nil, err
	}
	_, upcoming := shows.Partition(all, s.Clock())

	counts := make(map[int64]int)
	for _, show := range upcoming {
		counts[keyOf(show)]++
	}
	return counts, nil
}

// VenuesByCity groups every venue by its exact (city, state) pair. Each
// input venue lands in exactly one group; groups and the venues inside
// them keep store iteration order.
func (s *Service) VenuesByCity(ctx context.Context) ([]models.CityGroup, error) {
	venues, err := s.Venues.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.upcomingCounts(ctx, func(show models.Show) int64 { return show.VenueID })
	if err != nil {
		return nil, err
	}

	type cityKey struct {
		city  string
		state string
	}
	groupIdx := make(map[cityKey]int)
	groups := make([]models.CityGroup, 0)

	for _, venue := range venues {
		key := cityKey{city: venue.City, state: venue.State}
		idx, ok := groupIdx[key]
		if !ok {
			idx = len(groups)
			groupIdx[key] = idx
			groups = append(groups, models.CityGroup{City: venue.City, State: venue.State})
		}
		groups[idx].Venues = append(groups[idx].Venues, models.VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: counts[venue.ID],
		})
	}
	return groups, nil
}

// ListArtists returns every artist in store order.
func (s *Service) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.Artists.ListArtists(ctx)
}

// SearchVenues matches the term against venue names, case-insensitively
// as a substring, and annotates each match with its own upcoming-show
// count.
func (s *Service) SearchVenues(ctx context.Context, term string) (*models.VenueSearchResults, error) {
	venues, err := s.Venues.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.upcomingCounts(ctx, func(show models.Show) int64 { return show.VenueID })
	if err != nil {
		return nil, err
	}

	results := &models.VenueSearchResults{Data: []models.VenueSummary{}}
	for _, venue := range venues {
		if !NameMatches(venue.Name, term) {
			continue
		}
		results.Data = append(results.Data, models.VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: counts[venue.ID],
		})
	}
	results.Count = len(results.Data)
	return results, nil
}

// SearchArtists is SearchVenues for artists. The count is the artist's
// actual upcoming shows, not a recount of term matches.
func (s *Service) SearchArtists(ctx context.Context, term string) (*models.ArtistSearchResults, error) {
	artists, err := s.Artists.ListArtists(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.upcomingCounts(ctx, func(show models.Show) int64 { return show.ArtistID })
	if err != nil {
		return nil, err
	}

	results := &models.ArtistSearchResults{Data: []models.ArtistSummary{}}
	for _, artist := range artists {
		if !NameMatches(artist.Name, term) {
			continue
		}
		results.Data = append(results.Data, models.ArtistSummary{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: counts[artist.ID],
		})
	}
	results.Count = len(results.Data)
	return results, nil
}

// Home returns the ten most recently listed venues and artists.
func (s *Service) Home(ctx context.Context) (*models.HomePage, error) {
	venues, err := s.Venues.ListRecentVenues(ctx, homePageLimit)
	if err != nil {
		return nil, err
	}
	artists, err := s.Artists.ListRecentArtists(ctx, homePageLimit)
	if err != nil {
		return nil, err
	}
	return &models.HomePage{Venues: venues, Artists: artists}, nil
}
