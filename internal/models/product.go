package models

import "time"

// Product is a catalog entry. Unlike tasks and posts it is not owned by a
// user; the public stock and delete routes mutate it without a token.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}
