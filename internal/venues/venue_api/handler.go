package venue_api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gigboard/internal/api"
	"gigboard/internal/logger"
	"gigboard/internal/models"
	"gigboard/internal/venues"
)

type Handler struct {
	VenueService *venues.Service
	Logger       *logger.Logger
}

func NewHandler(service *venues.Service, log *logger.Logger) *Handler {
	return &Handler{VenueService: service, Logger: log}
}

func (h *Handler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		api.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid venue ID"})
		return
	}
	h.Logger.Info("API", fmt.Sprintf("GetVenue: venueID=%d", id))

	detail, err := h.VenueService.GetVenue(r.Context(), id)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetVenue: %v", err))
		api.WriteError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var in models.VenueInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateVenue: failed to decode request body: %v", err))
		api.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	venue, err := h.VenueService.CreateVenue(r.Context(), in)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateVenue: %v", err))
		api.WriteError(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("CreateVenue: venue %d listed", venue.ID))
	api.WriteJSON(w, http.StatusCreated, venue)
}

func (h *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		api.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid venue ID"})
		return
	}

	var in models.VenueInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateVenue: failed to decode request body: %v", err))
		api.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	venue, err := h.VenueService.UpdateVenue(r.Context(), id, in)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateVenue: %v", err))
		api.WriteError(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("UpdateVenue: venue %d updated", id))
	api.WriteJSON(w, http.StatusOK, venue)
}

func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		api.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid venue ID"})
		return
	}

	if err := h.VenueService.DeleteVenue(r.Context(), id); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteVenue: %v", err))
		api.WriteError(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("DeleteVenue: venue %d deleted with its shows", id))
	w.WriteHeader(http.StatusNoContent)
}
