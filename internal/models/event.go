package models

import "time"

// Event represents one entry in the activity feed.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"` // e.g. "task.created", "product.deleted"
	Message    string    `json:"message"`
	ResourceID *string   `json:"resourceId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
