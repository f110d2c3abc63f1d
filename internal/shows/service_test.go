package shows_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gigboard/internal/models"
	"gigboard/internal/shows"
)

type MockShowDB struct {
	mock.Mock
}

func (m *MockShowDB) CreateShow(ctx context.Context, show *models.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

func (m *MockShowDB) ListShows(ctx context.Context) ([]models.Show, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Show), args.Error(1)
}

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

type MockShowPublisher struct {
	mock.Mock
}

func (m *MockShowPublisher) PublishShowCreated(show models.Show) error {
	args := m.Called(show)
	return args.Error(0)
}

func newTestService(db *MockShowDB, venueDB *MockVenueDB, artistDB *MockArtistDB, events shows.EventPublisher) *shows.Service {
	svc := shows.NewService(db, venueDB, artistDB, events)
	svc.Clock = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestListUpcomingSkipsPastShows(t *testing.T) {
	db := new(MockShowDB)
	venueDB := new(MockVenueDB)
	artistDB := new(MockArtistDB)
	svc := newTestService(db, venueDB, artistDB, nil)
	now := svc.Clock()

	db.On("ListShows", mock.Anything).Return([]models.Show{
		{ID: 1, ArtistID: 10, VenueID: 1, StartTime: now.Add(-24 * time.Hour)},
		{ID: 2, ArtistID: 10, VenueID: 1, StartTime: now.Add(24 * time.Hour)},
		{ID: 3, ArtistID: 20, VenueID: 2, StartTime: now.Add(48 * time.Hour)},
	}, nil)
	venueDB.On("ListVenues", mock.Anything).Return([]models.Venue{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 2, Name: "Park Square Live Music & Coffee"},
	}, nil)
	artistDB.On("ListArtists", mock.Anything).Return([]models.Artist{
		{ID: 10, Name: "Guns N Petals", ImageLink: "https://example.com/gnp.jpg"},
		{ID: 20, Name: "The Wild Sax Band"},
	}, nil)

	listings, err := svc.ListUpcoming(context.Background())
	assert.NoError(t, err)
	assert.Len(t, listings, 2)
	assert.Equal(t, "The Musical Hop", listings[0].VenueName)
	assert.Equal(t, "Guns N Petals", listings[0].ArtistName)
	assert.Equal(t, "https://example.com/gnp.jpg", listings[0].ArtistImageLink)
	assert.Equal(t, "The Wild Sax Band", listings[1].ArtistName)
}

func TestListUpcomingFailsOnDanglingReference(t *testing.T) {
	db := new(MockShowDB)
	venueDB := new(MockVenueDB)
	artistDB := new(MockArtistDB)
	svc := newTestService(db, venueDB, artistDB, nil)
	now := svc.Clock()

	db.On("ListShows", mock.Anything).Return([]models.Show{
		{ID: 1, ArtistID: 10, VenueID: 99, StartTime: now.Add(24 * time.Hour)},
	}, nil)
	venueDB.On("ListVenues", mock.Anything).Return([]models.Venue{}, nil)
	artistDB.On("ListArtists", mock.Anything).Return([]models.Artist{{ID: 10, Name: "Guns N Petals"}}, nil)

	listings, err := svc.ListUpcoming(context.Background())
	assert.Nil(t, listings)
	assert.ErrorIs(t, err, models.ErrCounterpartMissing)
}

func TestCreateShowValidatesBeforeBooking(t *testing.T) {
	db := new(MockShowDB)
	events := new(MockShowPublisher)
	svc := newTestService(db, new(MockVenueDB), new(MockArtistDB), events)

	show, err := svc.CreateShow(context.Background(), models.ShowInput{})
	assert.Nil(t, show)

	ve, ok := models.AsValidationError(err)
	assert.True(t, ok)
	assert.Len(t, ve.Fields, 3)

	db.AssertNotCalled(t, "CreateShow", mock.Anything, mock.Anything)
	events.AssertNotCalled(t, "PublishShowCreated", mock.Anything)
}

func TestCreateShowPersistsAndPublishes(t *testing.T) {
	db := new(MockShowDB)
	events := new(MockShowPublisher)
	svc := newTestService(db, new(MockVenueDB), new(MockArtistDB), events)

	db.On("CreateShow", mock.Anything, mock.AnythingOfType("*models.Show")).Return(nil)
	events.On("PublishShowCreated", mock.AnythingOfType("models.Show")).Return(nil)

	show, err := svc.CreateShow(context.Background(), models.ShowInput{
		ArtistID:  10,
		VenueID:   1,
		StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), show.ArtistID)

	db.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCreateShowPassesThroughMissingCounterparts(t *testing.T) {
	db := new(MockShowDB)
	svc := newTestService(db, new(MockVenueDB), new(MockArtistDB), nil)

	db.On("CreateShow", mock.Anything, mock.Anything).Return(models.ErrVenueNotFound)

	show, err := svc.CreateShow(context.Background(), models.ShowInput{
		ArtistID:  10,
		VenueID:   99,
		StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
	})
	assert.Nil(t, show)
	assert.ErrorIs(t, err, models.ErrVenueNotFound)
}
