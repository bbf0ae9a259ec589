package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/SanjayFlutterTrainer/post-server/internal/models"
)

// CartServiceProvider defines the interface for cart services.
type CartServiceProvider interface {
	AddItem(userID, productID string, quantity int) (models.CartItem, error)
	ListForOwner(userID string) ([]models.CartItem, error)
	UpdateQuantity(id, userID string, quantity int) (models.CartItem, error)
	Delete(id, userID string) error
}

// CartService provides owner-scoped cart operations. Inserting a product
// already in the cart accumulates into the existing row; there is never more
// than one row per (user, product).
type CartService struct {
	db     *sql.DB
	events EventServiceProvider
}

// NewCartService creates a new CartService.
func NewCartService(db *sql.DB, events EventServiceProvider) *CartService {
	return &CartService{db: db, events: events}
}

// AddItem inserts a cart row, or increments quantity when the (user, product)
// pair already exists. The increment happens inside a single upsert statement
// so concurrent adds cannot lose updates.
func (s *CartService) AddItem(userID, productID string, quantity int) (models.CartItem, error) {
	if productID == "" {
		return models.CartItem{}, fmt.Errorf("%w: productId is required", ErrInvalidInput)
	}
	if quantity < 1 {
		return models.CartItem{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	// Adding an unknown product is a not-found, not a validation error.
	var exists int
	if err := s.db.QueryRow("SELECT COUNT(1) FROM products WHERE id = ?", productID).Scan(&exists); err != nil {
		return models.CartItem{}, err
	}
	if exists == 0 {
		return models.CartItem{}, ErrNotFound
	}

	_, err := s.db.Exec(`INSERT INTO cart_items(id, user_id, product_id, quantity) VALUES(?, ?, ?, ?)
		ON CONFLICT(user_id, product_id) DO UPDATE SET quantity = quantity + excluded.quantity`,
		uuid.New().String(), userID, productID, quantity)
	if err != nil {
		return models.CartItem{}, err
	}

	item, err := s.getByProduct(userID, productID)
	if err != nil {
		return models.CartItem{}, err
	}

	s.events.Record("cart.item_added", "Product added to cart", &item.ID)
	return item, nil
}

// ListForOwner returns the caller's cart.
func (s *CartService) ListForOwner(userID string) ([]models.CartItem, error) {
	rows, err := s.db.Query("SELECT id, user_id, product_id, quantity, created_at FROM cart_items WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateQuantity replaces (not increments) the quantity of a cart row,
// applying the (id, owner) filter.
func (s *CartService) UpdateQuantity(id, userID string, quantity int) (models.CartItem, error) {
	if quantity < 1 {
		return models.CartItem{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	res, err := s.db.Exec("UPDATE cart_items SET quantity = ? WHERE id = ? AND user_id = ?", quantity, id, userID)
	if err != nil {
		return models.CartItem{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.CartItem{}, err
	} else if n == 0 {
		return models.CartItem{}, ErrNotFound
	}

	s.events.Record("cart.item_updated", "Cart quantity updated", &id)
	return s.getForOwner(id, userID)
}

// Delete removes a cart row with the (id, owner) filter.
func (s *CartService) Delete(id, userID string) error {
	res, err := s.db.Exec("DELETE FROM cart_items WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}

	s.events.Record("cart.item_removed", "Product removed from cart", &id)
	return nil
}

func (s *CartService) getForOwner(id, userID string) (models.CartItem, error) {
	var item models.CartItem
	row := s.db.QueryRow("SELECT id, user_id, product_id, quantity, created_at FROM cart_items WHERE id = ? AND user_id = ?", id, userID)
	err := row.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.CartItem{}, ErrNotFound
		}
		return models.CartItem{}, err
	}
	return item, nil
}

func (s *CartService) getByProduct(userID, productID string) (models.CartItem, error) {
	var item models.CartItem
	row := s.db.QueryRow("SELECT id, user_id, product_id, quantity, created_at FROM cart_items WHERE user_id = ? AND product_id = ?", userID, productID)
	err := row.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.CartItem{}, ErrNotFound
		}
		return models.CartItem{}, err
	}
	return item, nil
}
