package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SanjayFlutterTrainer/post-server/internal/auth"
	"github.com/SanjayFlutterTrainer/post-server/internal/models"
	"github.com/SanjayFlutterTrainer/post-server/internal/services"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service services.PostServiceProvider
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostServiceProvider) *PostHandler {
	return &PostHandler{service: service}
}

// PostPayload defines the structure for create and update requests.
type PostPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create handles the request to create a new post.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.service.Create(claims.UserID, payload.Title, payload.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, post)
}

// GetAll handles the request to list the caller's posts.
func (h *PostHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	posts, err := h.service.ListForOwner(claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	respondJSON(w, http.StatusOK, posts)
}

// Update handles the request to replace a post's fields.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	id := chi.URLParam(r, "id")
	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.service.Update(id, claims.UserID, payload.Title, payload.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

// Delete handles the request to delete a post.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(id, claims.UserID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
