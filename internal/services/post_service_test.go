package services

import (
	"errors"
	"testing"
)

func TestPostService_CRUDAndOwnership(t *testing.T) {
	db := newTestDB(t, "postsvc")
	seedUser(t, db, "u1", "alice")
	seedUser(t, db, "u2", "bob")
	svc := NewPostService(db, NewEventService(db, nil))

	post, err := svc.Create("u1", "hello", "first post")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.UserID != "u1" || post.Content != "first post" {
		t.Fatalf("unexpected created post: %+v", post)
	}

	if _, err := svc.Create("u1", "no content", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty content: got %v, want ErrInvalidInput", err)
	}

	updated, err := svc.Update(post.ID, "u1", "hello", "edited")
	if err != nil || updated.Content != "edited" {
		t.Fatalf("update: %v %+v", err, updated)
	}

	if _, err := svc.Update(post.ID, "u2", "x", "y"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign update: got %v, want ErrNotFound", err)
	}
	if err := svc.Delete(post.ID, "u2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete: got %v, want ErrNotFound", err)
	}

	if err := svc.Delete(post.ID, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if list, _ := svc.ListForOwner("u1"); len(list) != 0 {
		t.Fatalf("post not deleted, list=%+v", list)
	}
}
