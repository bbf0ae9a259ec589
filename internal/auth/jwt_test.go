package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SanjayFlutterTrainer/post-server/internal/models"
)

const testSecret = "test-secret"

func TestGenerateValidate_RoundTrip(t *testing.T) {
	m := NewManager(testSecret, time.Hour)
	token, err := m.Generate(models.User{ID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "u1" || claims.Username != "alice" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager(testSecret, -time.Minute)
	token, err := m.Generate(models.User{ID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := m.Validate(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := NewManager(testSecret, time.Hour).Generate(models.User{ID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewManager("other-secret", time.Hour).Validate(token); err == nil {
		t.Fatalf("expected wrong-secret token to be rejected")
	}
}

func TestMiddleware(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	var gotClaims *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := m.Middleware()(next)

	// Missing token
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest("GET", "/tasks", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: got %d, want 401", rec.Code)
	}

	// Garbage token
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/tasks", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: got %d, want 401", rec.Code)
	}

	// Valid token
	token, err := m.Generate(models.User{ID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: got %d, want 200", rec.Code)
	}
	if gotClaims == nil || gotClaims.UserID != "u1" {
		t.Fatalf("claims not attached to context: %+v", gotClaims)
	}
}
