package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/SanjayFlutterTrainer/post-server/internal/models"
)

// TaskServiceProvider defines the interface for task services.
type TaskServiceProvider interface {
	Create(userID, title, description string) (models.Task, error)
	ListForOwner(userID string) ([]models.Task, error)
	Update(id, userID, title, description string) (models.Task, error)
	Delete(id, userID string) error
}

// TaskService provides owner-scoped CRUD for tasks.
type TaskService struct {
	db     *sql.DB
	events EventServiceProvider
}

// NewTaskService creates a new TaskService.
func NewTaskService(db *sql.DB, events EventServiceProvider) *TaskService {
	return &TaskService{db: db, events: events}
}

// Create persists a new task owned by userID.
func (s *TaskService) Create(userID, title, description string) (models.Task, error) {
	if title == "" || description == "" {
		return models.Task{}, fmt.Errorf("%w: title and description are required", ErrInvalidInput)
	}

	task := models.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
	}

	_, err := s.db.Exec("INSERT INTO tasks(id, user_id, title, description) VALUES(?, ?, ?, ?)",
		task.ID, task.UserID, task.Title, task.Description)
	if err != nil {
		return models.Task{}, err
	}

	s.events.Record("task.created", "Task created: "+task.Title, &task.ID)
	return s.getForOwner(task.ID, userID)
}

// ListForOwner returns all tasks owned by userID.
func (s *TaskService) ListForOwner(userID string) ([]models.Task, error) {
	rows, err := s.db.Query("SELECT id, user_id, title, description, created_at FROM tasks WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.Description, &task.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Update replaces a task's fields. The (id, owner) filter means a task that
// exists but belongs to someone else reports ErrNotFound.
func (s *TaskService) Update(id, userID, title, description string) (models.Task, error) {
	if title == "" || description == "" {
		return models.Task{}, fmt.Errorf("%w: title and description are required", ErrInvalidInput)
	}

	res, err := s.db.Exec("UPDATE tasks SET title = ?, description = ? WHERE id = ? AND user_id = ?",
		title, description, id, userID)
	if err != nil {
		return models.Task{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.Task{}, err
	} else if n == 0 {
		return models.Task{}, ErrNotFound
	}

	s.events.Record("task.updated", "Task updated: "+title, &id)
	return s.getForOwner(id, userID)
}

// Delete removes a task, applying the same (id, owner) filter as Update.
func (s *TaskService) Delete(id, userID string) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}

	s.events.Record("task.deleted", "Task deleted", &id)
	return nil
}

func (s *TaskService) getForOwner(id, userID string) (models.Task, error) {
	var task models.Task
	row := s.db.QueryRow("SELECT id, user_id, title, description, created_at FROM tasks WHERE id = ? AND user_id = ?", id, userID)
	err := row.Scan(&task.ID, &task.UserID, &task.Title, &task.Description, &task.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}
