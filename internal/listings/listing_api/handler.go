package listing_api

import (
	"fmt"
	"net/http"

	"gigboard/internal/api"
	"gigboard/internal/listings"
	"gigboard/internal/logger"
	"gigboard/internal/models"
)

type Handler struct {
	ListingService *listings.Service
	Logger         *logger.Logger
}

func NewHandler(service *listings.Service, log *logger.Logger) *Handler {
	return &Handler{ListingService: service, Logger: log}
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	groups, err := h.ListingService.VenuesByCity(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListVenues: %v", err))
		api.WriteError(w, err)
		return
	}
	if groups == nil {
		groups = []models.CityGroup{}
	}
	api.WriteJSON(w, http.StatusOK, groups)
}

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.ListingService.ListArtists(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListArtists: %v", err))
		api.WriteError(w, err)
		return
	}
	if artists == nil {
		artists = []models.Artist{}
	}
	api.WriteJSON(w, http.StatusOK, artists)
}

func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	results, err := h.ListingService.SearchVenues(r.Context(), term)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchVenues: term=%q: %v", term, err))
		api.WriteError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, results)
}

func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	results, err := h.ListingService.SearchArtists(r.Context(), term)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchArtists: term=%q: %v", term, err))
		api.WriteError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, results)
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.ListingService.Home(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Home: %v", err))
		api.WriteError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, page)
}
