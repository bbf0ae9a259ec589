package services

import "errors"

// Sentinel errors shared by all services. Handlers translate these into HTTP
// status codes with errors.Is.
var (
	// ErrNotFound covers both a genuinely absent record and a record owned
	// by another user. Owner-scoped queries filter on (id, owner) so the two
	// cases are indistinguishable, which avoids leaking that a foreign
	// record exists.
	ErrNotFound = errors.New("record not found")

	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)
