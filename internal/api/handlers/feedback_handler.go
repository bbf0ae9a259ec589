package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/SanjayFlutterTrainer/post-server/internal/services"
)

// FeedbackHandler handles the public feedback route.
type FeedbackHandler struct {
	service services.FeedbackServiceProvider
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(service services.FeedbackServiceProvider) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Create stores the feedback and echoes it back.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Message  string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fb, err := h.service.Create(payload.Username, payload.Message)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, fb)
}
