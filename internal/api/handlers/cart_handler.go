package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SanjayFlutterTrainer/post-server/internal/auth"
	"github.com/SanjayFlutterTrainer/post-server/internal/models"
	"github.com/SanjayFlutterTrainer/post-server/internal/services"
)

// CartHandler handles HTTP requests for the caller's cart.
type CartHandler struct {
	service services.CartServiceProvider
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service services.CartServiceProvider) *CartHandler {
	return &CartHandler{service: service}
}

// AddItem handles the request to add a product to the cart. Repeating a
// product accumulates quantity into the existing row.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	var payload struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.AddItem(claims.UserID, payload.ProductID, payload.Quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// GetAll handles the request to list the caller's cart.
func (h *CartHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	items, err := h.service.ListForOwner(claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

// UpdateQuantity handles the request to set a cart row's quantity.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	id := chi.URLParam(r, "id")
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.UpdateQuantity(id, claims.UserID, payload.Quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Delete handles the request to remove a cart row.
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(id, claims.UserID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Cart item removed successfully"})
}
