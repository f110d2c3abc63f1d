package venue_api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	artistdb "gigboard/internal/artists/db"
	"gigboard/internal/logger"
	"gigboard/internal/models"
	"gigboard/internal/venues"
	venuedb "gigboard/internal/venues/db"
	"gigboard/internal/venues/venue_api"
)

func setupRouter(t *testing.T) (*chi.Mux, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A second connection would get its own empty :memory: database.
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	ctx := context.Background()
	for _, model := range []interface{}{
		(*models.Venue)(nil), (*models.Artist)(nil), (*models.Show)(nil),
	} {
		_, err := bunDB.NewCreateTable().Model(model).Exec(ctx)
		require.NoError(t, err)
	}

	venueStore := &venuedb.DB{Bun: bunDB}
	artistStore := &artistdb.DB{Bun: bunDB}
	service := venues.NewService(venueStore, &showStoreStub{}, artistStore, nil)
	service.Clock = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}

	handler := venue_api.NewHandler(service, logger.NewLogger())

	r := chi.NewRouter()
	r.Post("/api/venues", handler.CreateVenue)
	r.Get("/api/venues/{venueID}", handler.GetVenue)
	r.Put("/api/venues/{venueID}", handler.UpdateVenue)
	r.Delete("/api/venues/{venueID}", handler.DeleteVenue)
	return r, bunDB
}

type showStoreStub struct{}

func (s *showStoreStub) ListShowsByVenue(ctx context.Context, venueID int64) ([]models.Show, error) {
	return nil, nil
}

func validBody() []byte {
	body, _ := json.Marshal(models.VenueInput{
		Name:   "The Musical Hop",
		City:   "San Francisco",
		State:  "CA",
		Phone:  "123-123-1234",
		Genres: []string{"Jazz"},
	})
	return body
}

func TestCreateVenueReturns201(t *testing.T) {
	router, bunDB := setupRouter(t)
	defer bunDB.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/venues", bytes.NewReader(validBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var venue models.Venue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &venue))
	assert.NotZero(t, venue.ID)
	assert.Equal(t, "The Musical Hop", venue.Name)
}

func TestCreateVenueMalformedBodyReturns400(t *testing.T) {
	router, bunDB := setupRouter(t)
	defer bunDB.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/venues", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateVenueValidationFailureListsEveryField(t *testing.T) {
	router, bunDB := setupRouter(t)
	defer bunDB.Close()

	body, _ := json.Marshal(models.VenueInput{
		Name:  "",
		City:  "San Francisco",
		State: "CA",
		Phone: "bad-phone",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/venues", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ValidationError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Fields, 3)
}

func TestGetMissingVenueReturns404(t *testing.T) {
	router, bunDB := setupRouter(t)
	defer bunDB.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/venues/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetVenueNonNumericIDReturns400(t *testing.T) {
	router, bunDB := setupRouter(t)
	defer bunDB.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/venues/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteVenueReturns204(t *testing.T) {
	router, bunDB := setupRouter(t)
	defer bunDB.Close()

	create := httptest.NewRequest(http.MethodPost, "/api/venues", bytes.NewReader(validBody()))
	createRec := httptest.NewRecorder()
	router.ServeHTTP(createRec, create)
	require.Equal(t, http.StatusCreated, createRec.Code)

	var venue models.Venue
	require.NoError(t, json.Unmarshal(createRec.Body.Bytes(), &venue))

	del := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/venues/%d", venue.ID), nil)
	delRec := httptest.NewRecorder()
	router.ServeHTTP(delRec, del)
	assert.Equal(t, http.StatusNoContent, delRec.Code)

	get := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/venues/%d", venue.ID), nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, get)
	assert.Equal(t, http.StatusNotFound, getRec.Code)
}

func TestUpdateVenueRoundTrip(t *testing.T) {
	router, bunDB := setupRouter(t)
	defer bunDB.Close()

	create := httptest.NewRequest(http.MethodPost, "/api/venues", bytes.NewReader(validBody()))
	createRec := httptest.NewRecorder()
	router.ServeHTTP(createRec, create)
	require.Equal(t, http.StatusCreated, createRec.Code)

	var venue models.Venue
	require.NoError(t, json.Unmarshal(createRec.Body.Bytes(), &venue))

	body, _ := json.Marshal(models.VenueInput{
		Name:   "The Musical Hop II",
		City:   "San Francisco",
		State:  "CA",
		Phone:  "415-000-1234",
		Genres: []string{"Jazz", "Swing"},
	})
	update := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/venues/%d", venue.ID), bytes.NewReader(body))
	updateRec := httptest.NewRecorder()
	router.ServeHTTP(updateRec, update)
	assert.Equal(t, http.StatusOK, updateRec.Code)

	get := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/venues/%d", venue.ID), nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, get)
	require.Equal(t, http.StatusOK, getRec.Code)

	var detail models.VenueDetail
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &detail))
	assert.Equal(t, "The Musical Hop II", detail.Name)
	assert.Equal(t, []string{"Jazz", "Swing"}, detail.Genres)
}
