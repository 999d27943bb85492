package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by services and mapped to HTTP statuses by handlers
var (
	// ErrJobNotFound means the referenced job ID does not exist
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidJobID means the ID does not have the expected identifier shape.
	// Distinct from not-found: the store was never consulted.
	ErrInvalidJobID = errors.New("invalid job id")

	// ErrNotOwner means the actor is authenticated but does not own the record
	ErrNotOwner = errors.New("actor does not own this job")

	// ErrForbidden means the actor is authenticated but lacks the required role
	ErrForbidden = errors.New("forbidden")

	// ErrUserNotFound means the referenced user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken means an account already exists for the email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials means the email/password pair did not verify
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FieldError describes a single validation failure on a named field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the full set of field-level failures for a payload.
// It implements error so services can return it through a plain error value;
// handlers recover the structured form with errors.As.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
