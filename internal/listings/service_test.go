package listings_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gigboard/internal/listings"
	"gigboard/internal/models"
)

type MockVenueDB struct {
	mock.Mock
}

func (m *MockVenueDB) ListVenues(ctx context.Context) ([]models.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venue), args.Error(1)
}

func (m *MockVenueDB) ListRecentVenues(ctx context.Context, limit int) ([]models.Venue, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venue), args.Error(1)
}

type MockArtistDB struct {
	mock.Mock
}

func (m *MockArtistDB) ListArtists(ctx context.Context) ([]models.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Artist), args.Error(1)
}

func (m *MockArtistDB) ListRecentArtists(ctx context.Context, limit int) ([]models.Artist, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Artist), args.Error(1)
}

type MockShowDB struct {
	mock.Mock
}

func (m *MockShowDB) ListShows(ctx context.Context) ([]models.Show, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Show), args.Error(1)
}

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newTestService(venueDB *MockVenueDB, artistDB *MockArtistDB, showDB *MockShowDB) *listings.Service {
	svc := listings.NewService(venueDB, artistDB, showDB)
	svc.Clock = func() time.Time { return testNow }
	return svc
}

func sampleVenues() []models.Venue {
	return []models.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
	}
}

func TestVenuesByCityGroupsByExactCityStatePair(t *testing.T) {
	venueDB := new(MockVenueDB)
	artistDB := new(MockArtistDB)
	showDB := new(MockShowDB)
	svc := newTestService(venueDB, artistDB, showDB)

	venueDB.On("ListVenues", mock.Anything).Return(sampleVenues(), nil)
	showDB.On("ListShows", mock.Anything).Return([]models.Show{
		{ID: 1, ArtistID: 1, VenueID: 3, StartTime: testNow.Add(24 * time.Hour)},
		{ID: 2, ArtistID: 1, VenueID: 3, StartTime: testNow.Add(48 * time.Hour)},
		{ID: 3, ArtistID: 1, VenueID: 3, StartTime: testNow.Add(-24 * time.Hour)},
	}, nil)

	groups, err := svc.VenuesByCity(context.Background())
	assert.NoError(t, err)
	assert.Len(t, groups, 2)

	// Every venue lands in exactly one group.
	total := 0
	for _, g := range groups {
		total += len(g.Venues)
	}
	assert.Equal(t, 3, total)

	// First-seen order: San Francisco before New York.
	assert.Equal(t, "San Francisco", groups[0].City)
	assert.Equal(t, "CA", groups[0].State)
	assert.Len(t, groups[0].Venues, 2)
	assert.Equal(t, "New York", groups[1].City)
	assert.Len(t, groups[1].Venues, 1)

	// Counts come from the classifier; past shows do not count.
	assert.Equal(t, 0, groups[0].Venues[0].NumUpcomingShows)
	assert.Equal(t, 2, groups[0].Venues[1].NumUpcomingShows)
}

func TestVenuesByCityTreatsSameCityDifferentStateAsDistinct(t *testing.T) {
	venueDB := new(MockVenueDB)
	artistDB := new(MockArtistDB)
	showDB := new(MockShowDB)
	svc := newTestService(venueDB, artistDB, showDB)

	venueDB.On("ListVenues", mock.Anything).Return([]models.Venue{
		{ID: 1, Name: "Springfield Hall", City: "Springfield", State: "IL"},
		{ID: 2, Name: "Springfield Arena", City: "Springfield", State: "MA"},
	}, nil)
	showDB.On("ListShows", mock.Anything).Return([]models.Show{}, nil)

	groups, err := svc.VenuesByCity(context.Background())
	assert.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestSearchVenuesIsCaseInsensitiveSubstring(t *testing.T) {
	venueDB := new(MockVenueDB)
	artistDB := new(MockArtistDB)
	showDB := new(MockShowDB)
	svc := newTestService(venueDB, artistDB, showDB)

	venueDB.On("ListVenues", mock.Anything).Return(sampleVenues(), nil)
	showDB.On("ListShows", mock.Anything).Return([]models.Show{}, nil)

	results, err := svc.SearchVenues(context.Background(), "Hop")
	assert.NoError(t, err)
	assert.Equal(t, 1, results.Count)
	assert.Equal(t, "The Musical Hop", results.Data[0].Name)

	results, err = svc.SearchVenues(context.Background(), "music")
	assert.NoError(t, err)
	assert.Equal(t, 2, results.Count)

	results, err = svc.SearchVenues(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, 3, results.Count)

	results, err = svc.SearchVenues(context.Background(), "zebra")
	assert.NoError(t, err)
	assert.Equal(t, 0, results.Count)
	assert.NotNil(t, results.Data)
}

func TestSearchArtistsCountsTheArtistsOwnUpcomingShows(t *testing.T) {
	venueDB := new(MockVenueDB)
	artistDB := new(MockArtistDB)
	showDB := new(MockShowDB)
	svc := newTestService(venueDB, artistDB, showDB)

	artistDB.On("ListArtists", mock.Anything).Return([]models.Artist{
		{ID: 10, Name: "Guns N Petals"},
		{ID: 20, Name: "The Wild Sax Band"},
	}, nil)
	showDB.On("ListShows", mock.Anything).Return([]models.Show{
		{ID: 1, ArtistID: 20, VenueID: 3, StartTime: testNow.Add(24 * time.Hour)},
		{ID: 2, ArtistID: 20, VenueID: 3, StartTime: testNow.Add(48 * time.Hour)},
		{ID: 3, ArtistID: 20, VenueID: 3, StartTime: testNow.Add(72 * time.Hour)},
		{ID: 4, ArtistID: 10, VenueID: 1, StartTime: testNow.Add(-24 * time.Hour)},
	}, nil)

	results, err := svc.SearchArtists(context.Background(), "sax")
	assert.NoError(t, err)
	assert.Equal(t, 1, results.Count)
	// The count is the artist's upcoming shows, not how many artists
	// matched the term.
	assert.Equal(t, 3, results.Data[0].NumUpcomingShows)

	results, err = svc.SearchArtists(context.Background(), "guns")
	assert.NoError(t, err)
	assert.Equal(t, 1, results.Count)
	assert.Equal(t, 0, results.Data[0].NumUpcomingShows)
}

func TestHomeReturnsTheTenMostRecent(t *testing.T) {
	venueDB := new(MockVenueDB)
	artistDB := new(MockArtistDB)
	showDB := new(MockShowDB)
	svc := newTestService(venueDB, artistDB, showDB)

	venueDB.On("ListRecentVenues", mock.Anything, 10).Return([]models.Venue{
		{ID: 12, Name: "Newest Venue"},
		{ID: 11, Name: "Older Venue"},
	}, nil)
	artistDB.On("ListRecentArtists", mock.Anything, 10).Return([]models.Artist{
		{ID: 30, Name: "Newest Artist"},
	}, nil)

	home, err := svc.Home(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Newest Venue", home.Venues[0].Name)
	assert.Len(t, home.Artists, 1)

	venueDB.AssertExpectations(t)
	artistDB.AssertExpectations(t)
}

func TestNameMatches(t *testing.T) {
	assert.True(t, listings.NameMatches("The Musical Hop", "Hop"))
	assert.True(t, listings.NameMatches("The Musical Hop", "hop"))
	assert.True(t, listings.NameMatches("The Musical Hop", "MUSICAL"))
	assert.True(t, listings.NameMatches("The Musical Hop", ""))
	assert.False(t, listings.NameMatches("The Musical Hop", "Sax"))
}
