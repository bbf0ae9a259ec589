package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/SanjayFlutterTrainer/post-server/internal/models"
)

// FeedbackServiceProvider defines the interface for feedback services.
type FeedbackServiceProvider interface {
	Create(username, message string) (models.Feedback, error)
}

// FeedbackService stores visitor feedback. The route is unauthenticated, so
// the username is whatever the visitor claims.
type FeedbackService struct {
	db *sql.DB
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(db *sql.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// Create persists a feedback entry and returns it for echoing back.
func (s *FeedbackService) Create(username, message string) (models.Feedback, error) {
	if message == "" {
		return models.Feedback{}, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	fb := models.Feedback{
		ID:       uuid.New().String(),
		Username: username,
		Message:  message,
	}

	_, err := s.db.Exec("INSERT INTO feedback(id, username, message) VALUES(?, ?, ?)",
		fb.ID, fb.Username, fb.Message)
	if err != nil {
		return models.Feedback{}, err
	}

	row := s.db.QueryRow("SELECT id, username, message, created_at FROM feedback WHERE id = ?", fb.ID)
	if err := row.Scan(&fb.ID, &fb.Username, &fb.Message, &fb.CreatedAt); err != nil {
		return models.Feedback{}, err
	}
	return fb, nil
}
