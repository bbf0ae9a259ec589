package services

import (
	"errors"
	"testing"
)

func TestCartService_AddAccumulates(t *testing.T) {
	db := newTestDB(t, "cartsvc_add")
	seedUser(t, db, "u1", "alice")
	seedProduct(t, db, "p1", "widget")
	svc := NewCartService(db, NewEventService(db, nil))

	first, err := svc.AddItem("u1", "p1", 2)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := svc.AddItem("u1", "p1", 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	// Same row, accumulated quantity, no duplicate.
	if second.ID != first.ID {
		t.Fatalf("expected one row, got two ids %s and %s", first.ID, second.ID)
	}
	if second.Quantity != 5 {
		t.Fatalf("quantity: got %d, want 5", second.Quantity)
	}
	items, err := svc.ListForOwner("u1")
	if err != nil || len(items) != 1 {
		t.Fatalf("list: %v len=%d", err, len(items))
	}
}

func TestCartService_AddValidation(t *testing.T) {
	db := newTestDB(t, "cartsvc_validation")
	seedUser(t, db, "u1", "alice")
	seedProduct(t, db, "p1", "widget")
	svc := NewCartService(db, NewEventService(db, nil))

	if _, err := svc.AddItem("u1", "p1", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero quantity: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.AddItem("u1", "", 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty product: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.AddItem("u1", "nope", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown product: got %v, want ErrNotFound", err)
	}
}

func TestCartService_UpdateReplacesAndIsOwnerScoped(t *testing.T) {
	db := newTestDB(t, "cartsvc_update")
	seedUser(t, db, "u1", "alice")
	seedUser(t, db, "u2", "bob")
	seedProduct(t, db, "p1", "widget")
	svc := NewCartService(db, NewEventService(db, nil))

	item, err := svc.AddItem("u1", "p1", 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// Update replaces the quantity rather than adding to it.
	updated, err := svc.UpdateQuantity(item.ID, "u1", 7)
	if err != nil || updated.Quantity != 7 {
		t.Fatalf("update: %v %+v", err, updated)
	}

	if _, err := svc.UpdateQuantity(item.ID, "u2", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign update: got %v, want ErrNotFound", err)
	}
	if err := svc.Delete(item.ID, "u2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete: got %v, want ErrNotFound", err)
	}

	if err := svc.Delete(item.ID, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if items, _ := svc.ListForOwner("u1"); len(items) != 0 {
		t.Fatalf("cart not empty after delete: %+v", items)
	}
}
