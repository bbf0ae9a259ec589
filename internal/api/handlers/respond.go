package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/SanjayFlutterTrainer/post-server/internal/services"
)

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes the normalized error body. Every failure in the API
// surfaces as {"error": "..."} regardless of origin.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service sentinel errors onto HTTP status codes.
// Unrecognized errors are treated as persistence failures: logged in full,
// surfaced as an opaque 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("Unexpected service error")
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
