package models

import "time"

// CartItem is one (user, product) row in a cart. Re-adding the same product
// accumulates into this row rather than creating a second one.
type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}
