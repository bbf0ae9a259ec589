package models

import "time"

// Feedback is an unauthenticated message left by a visitor.
type Feedback struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
