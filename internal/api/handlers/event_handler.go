package handlers

import (
	"net/http"

	"github.com/SanjayFlutterTrainer/post-server/internal/models"
	"github.com/SanjayFlutterTrainer/post-server/internal/services"
)

// EventHandler serves the recent activity feed.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// GetRecent returns the 50 most recent events, newest first.
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.GetRecent(50)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	respondJSON(w, http.StatusOK, events)
}
