package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SanjayFlutterTrainer/post-server/internal/auth"
	"github.com/SanjayFlutterTrainer/post-server/internal/models"
	"github.com/SanjayFlutterTrainer/post-server/internal/services"
)

// TaskHandler handles HTTP requests for tasks. The owner is always taken
// from the verified token claims, never from the request body.
type TaskHandler struct {
	service services.TaskServiceProvider
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service services.TaskServiceProvider) *TaskHandler {
	return &TaskHandler{service: service}
}

// TaskPayload defines the structure for create and update requests.
type TaskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create handles the request to create a new task.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	var payload TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.service.Create(claims.UserID, payload.Title, payload.Description)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

// GetAll handles the request to list the caller's tasks.
func (h *TaskHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	tasks, err := h.service.ListForOwner(claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	respondJSON(w, http.StatusOK, tasks)
}

// Update handles the request to replace a task's fields.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	id := chi.URLParam(r, "id")
	var payload TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.service.Update(id, claims.UserID, payload.Title, payload.Description)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// Delete handles the request to delete a task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(id, claims.UserID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
