package artist_api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gigboard/internal/api"
	"gigboard/internal/artists"
	"gigboard/internal/logger"
	"gigboard/internal/models"
)

type Handler struct {
	ArtistService *artists.Service
	Logger        *logger.Logger
}

func NewHandler(service *artists.Service, log *logger.Logger) *Handler {
	return &Handler{ArtistService: service, Logger: log}
}

func (h *Handler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
	if err != nil {
		api.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid artist ID"})
		return
	}
	h.Logger.Info("API", fmt.Sprintf("GetArtist: artistID=%d", id))

	detail, err := h.ArtistService.GetArtist(r.Context(), id)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetArtist: %v", err))
		api.WriteError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var in models.ArtistInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateArtist: failed to decode request body: %v", err))
		api.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	artist, err := h.ArtistService.CreateArtist(r.Context(), in)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateArtist: %v", err))
		api.WriteError(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("CreateArtist: artist %d listed", artist.ID))
	api.WriteJSON(w, http.StatusCreated, artist)
}

func (h *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
	if err != nil {
		api.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid artist ID"})
		return
	}

	var in models.ArtistInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateArtist: failed to decode request body: %v", err))
		api.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	artist, err := h.ArtistService.UpdateArtist(r.Context(), id, in)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateArtist: %v", err))
		api.WriteError(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("UpdateArtist: artist %d updated", id))
	api.WriteJSON(w, http.StatusOK, artist)
}

func (h *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
	if err != nil {
		api.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid artist ID"})
		return
	}

	// Refused with a conflict while shows still reference the artist
	if err := h.ArtistService.DeleteArtist(r.Context(), id); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteArtist: %v", err))
		api.WriteError(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("DeleteArtist: artist %d deleted", id))
	w.WriteHeader(http.StatusNoContent)
}
