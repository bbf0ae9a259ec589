package services

import (
	"errors"
	"testing"
)

func TestProductService_CRUD(t *testing.T) {
	db := newTestDB(t, "productsvc")
	svc := NewProductService(db, NewEventService(db, nil))

	product, err := svc.Create("widget", "a widget", 4.50, 20)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.ID == "" || product.Price != 4.50 || product.Stock != 20 {
		t.Fatalf("unexpected created product: %+v", product)
	}

	all, err := svc.GetAll()
	if err != nil || len(all) != 1 {
		t.Fatalf("get all: %v len=%d", err, len(all))
	}

	updated, err := svc.UpdateStock(product.ID, 5)
	if err != nil || updated.Stock != 5 {
		t.Fatalf("update stock: %v %+v", err, updated)
	}

	if _, err := svc.UpdateStock("missing", 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: got %v, want ErrNotFound", err)
	}

	if err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(product.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing: got %v, want ErrNotFound", err)
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	db := newTestDB(t, "productsvc_validation")
	svc := NewProductService(db, NewEventService(db, nil))

	if _, err := svc.Create("", "desc", 1, 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty name: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create("widget", "", -1, 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative price: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create("widget", "", 1, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative stock: got %v, want ErrInvalidInput", err)
	}
}
