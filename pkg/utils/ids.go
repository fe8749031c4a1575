package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 for new database rows. Falls back to
// a random v4 if v7 generation fails.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
