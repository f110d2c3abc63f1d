package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"gigboard/internal/models"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a service error onto an HTTP status and a structured
// body. Validation failures return every field error together; the
// rendering layer owns turning these into user-visible prose.
func WriteError(w http.ResponseWriter, err error) {
	if ve, ok := models.AsValidationError(err); ok {
		WriteJSON(w, http.StatusBadRequest, ve)
		return
	}

	switch {
	case errors.Is(err, models.ErrVenueNotFound),
		errors.Is(err, models.ErrArtistNotFound),
		errors.Is(err, models.ErrShowNotFound):
		WriteJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrArtistBooked):
		WriteJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
