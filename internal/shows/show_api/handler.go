package show_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gigboard/internal/api"
	"gigboard/internal/logger"
	"gigboard/internal/models"
	"gigboard/internal/shows"
)

type Handler struct {
	ShowService *shows.Service
	Logger      *logger.Logger
}

func NewHandler(service *shows.Service, log *logger.Logger) *Handler {
	return &Handler{ShowService: service, Logger: log}
}

func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	listings, err := h.ShowService.ListUpcoming(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListShows: %v", err))
		api.WriteError(w, err)
		return
	}
	if listings == nil {
		listings = []models.ShowListing{}
	}
	api.WriteJSON(w, http.StatusOK, listings)
}

func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	var in models.ShowInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateShow: failed to decode request body: %v", err))
		api.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	show, err := h.ShowService.CreateShow(r.Context(), in)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateShow: %v", err))
		api.WriteError(w, err)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("CreateShow: show %d listed", show.ID))
	api.WriteJSON(w, http.StatusCreated, show)
}
