package services

import (
	"errors"
	"testing"
)

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t, "usersvc")
	svc := NewUserService(db)

	user, err := svc.Register("alice", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" || user.Username != "alice" {
		t.Fatalf("unexpected registered user: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("password hash echoed to caller")
	}

	// Second registration with the same username must fail.
	if _, err := svc.Register("alice", "other"); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("duplicate register: got %v, want ErrDuplicateUsername", err)
	}

	// Wrong password for an existing user.
	if _, err := svc.Authenticate("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	// Unknown user gets the same error as a wrong password.
	if _, err := svc.Authenticate("nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v, want ErrInvalidCredentials", err)
	}

	got, err := svc.Authenticate("alice", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID || got.PasswordHash != "" {
		t.Fatalf("unexpected authenticated user: %+v", got)
	}
}

func TestUserService_GetByID(t *testing.T) {
	db := newTestDB(t, "usersvc_getbyid")
	svc := NewUserService(db)

	user, err := svc.Register("alice", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.GetByID(user.ID)
	if err != nil || got.Username != "alice" {
		t.Fatalf("get by id: %v %+v", err, got)
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash echoed to caller")
	}

	if _, err := svc.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: got %v, want ErrNotFound", err)
	}
}

func TestUserService_Register_MissingFields(t *testing.T) {
	db := newTestDB(t, "usersvc_missing")
	svc := NewUserService(db)

	if _, err := svc.Register("", "secret"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty username: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Register("bob", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty password: got %v, want ErrInvalidInput", err)
	}
}
