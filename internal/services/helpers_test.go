package services

import (
	"database/sql"
	"testing"

	"github.com/SanjayFlutterTrainer/post-server/internal/database"
)

// newTestDB opens a uniquely named in-memory SQLite database and applies the
// schema. Shared cache keeps the database alive across pooled connections.
func newTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := database.New("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *sql.DB, id, username string) {
	t.Helper()
	if _, err := db.Exec("INSERT INTO users(id, username, password_hash) VALUES(?, ?, ?)", id, username, "x"); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
}

func seedProduct(t *testing.T, db *sql.DB, id, name string) {
	t.Helper()
	if _, err := db.Exec("INSERT INTO products(id, name, description, price, stock) VALUES(?, ?, '', 9.99, 10)", id, name); err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
}
