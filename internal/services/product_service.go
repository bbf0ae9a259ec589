package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/SanjayFlutterTrainer/post-server/internal/models"
)

// ProductServiceProvider defines the interface for product services.
type ProductServiceProvider interface {
	Create(name, description string, price float64, stock int) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	UpdateStock(id string, stock int) (models.Product, error)
	Delete(id string) error
}

// ProductService provides CRUD for the global product catalog. Products are
// not owner-scoped; the stock and delete routes are deliberately public.
type ProductService struct {
	db     *sql.DB
	events EventServiceProvider
}

// NewProductService creates a new ProductService.
func NewProductService(db *sql.DB, events EventServiceProvider) *ProductService {
	return &ProductService{db: db, events: events}
}

// Create persists a new product.
func (s *ProductService) Create(name, description string, price float64, stock int) (models.Product, error) {
	if name == "" {
		return models.Product{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if price < 0 || stock < 0 {
		return models.Product{}, fmt.Errorf("%w: price and stock must not be negative", ErrInvalidInput)
	}

	product := models.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}

	_, err := s.db.Exec("INSERT INTO products(id, name, description, price, stock) VALUES(?, ?, ?, ?, ?)",
		product.ID, product.Name, product.Description, product.Price, product.Stock)
	if err != nil {
		return models.Product{}, err
	}

	s.events.Record("product.created", "Product created: "+product.Name, &product.ID)
	return s.GetByID(product.ID)
}

// GetAll returns every product. Both the authenticated and the public
// listing route call this.
func (s *ProductService) GetAll() ([]models.Product, error) {
	rows, err := s.db.Query("SELECT id, name, description, price, stock, created_at FROM products ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock, &product.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// GetByID retrieves a single product.
func (s *ProductService) GetByID(id string) (models.Product, error) {
	var product models.Product
	row := s.db.QueryRow("SELECT id, name, description, price, stock, created_at FROM products WHERE id = ?", id)
	err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock, &product.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

// UpdateStock sets a product's stock level.
func (s *ProductService) UpdateStock(id string, stock int) (models.Product, error) {
	if stock < 0 {
		return models.Product{}, fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}

	res, err := s.db.Exec("UPDATE products SET stock = ? WHERE id = ?", stock, id)
	if err != nil {
		return models.Product{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.Product{}, err
	} else if n == 0 {
		return models.Product{}, ErrNotFound
	}

	s.events.Record("product.stock_updated", "Product stock updated", &id)
	return s.GetByID(id)
}

// Delete removes a product.
func (s *ProductService) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}

	s.events.Record("product.deleted", "Product deleted", &id)
	return nil
}
