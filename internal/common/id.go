package common

import (
	"github.com/google/uuid"
)

// NewID generates a unique record identifier
func NewID() string {
	return uuid.New().String()
}

// ValidID reports whether s has the expected identifier shape. Malformed IDs
// are rejected at the boundary without consulting the store.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
