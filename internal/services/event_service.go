package services

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/SanjayFlutterTrainer/post-server/internal/models"
	"github.com/SanjayFlutterTrainer/post-server/internal/websocket"
)

// EventServiceProvider defines the interface for the activity feed.
type EventServiceProvider interface {
	Record(eventType, message string, resourceID *string)
	GetRecent(limit int) ([]models.Event, error)
}

// EventService persists activity events and pushes them to connected
// websocket clients.
type EventService struct {
	db  *sql.DB
	hub *websocket.Hub
}

// NewEventService creates a new EventService. hub may be nil, in which case
// events are persisted but not broadcast.
func NewEventService(db *sql.DB, hub *websocket.Hub) *EventService {
	return &EventService{db: db, hub: hub}
}

// Record logs a new event. The feed is best effort: failures are logged and
// never surfaced to the mutation that triggered them.
func (s *EventService) Record(eventType, message string, resourceID *string) {
	event := models.Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		Message:    message,
		ResourceID: resourceID,
	}

	_, err := s.db.Exec("INSERT INTO events (id, type, message, resource_id) VALUES (?, ?, ?, ?)",
		event.ID, event.Type, event.Message, event.ResourceID)
	if err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("Failed to record event")
		return
	}

	if s.hub != nil {
		payload, err := json.Marshal(websocket.Message{Action: "event", Payload: event})
		if err != nil {
			log.Error().Err(err).Msg("Failed to encode event for broadcast")
			return
		}
		s.hub.Broadcast <- payload
	}
}

// GetRecent retrieves the most recent events, newest first. created_at only
// has second granularity, so ordering leans on the implicit rowid, which is
// monotonic over inserts.
func (s *EventService) GetRecent(limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query("SELECT id, type, message, resource_id, created_at FROM events ORDER BY rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.Type, &event.Message, &event.ResourceID, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
