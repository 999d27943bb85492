package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ternarybob/jobdeck/internal/models"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response with a stable error code.
func WriteError(w http.ResponseWriter, statusCode int, message, code string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"message": message,
		"error":   code,
	})
}

// WriteValidationErrors writes the field-level validation failure response.
func WriteValidationErrors(w http.ResponseWriter, errs models.ValidationErrors) error {
	return WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": "Validation failed",
		"errors":  errs,
	})
}

// writeJobError maps service errors onto the HTTP taxonomy. Validation and
// not-found/ownership failures carry their own statuses; anything else is an
// internal error reported with the caller-supplied fallback code and no
// internal detail.
func writeJobError(w http.ResponseWriter, err error, fallbackMessage, fallbackCode string) {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		WriteValidationErrors(w, verrs)
	case errors.Is(err, models.ErrInvalidJobID):
		WriteError(w, http.StatusBadRequest, "Invalid job ID", "INVALID_JOB_ID")
	case errors.Is(err, models.ErrJobNotFound):
		WriteError(w, http.StatusNotFound, "Job not found", "JOB_NOT_FOUND")
	case errors.Is(err, models.ErrForbidden):
		WriteError(w, http.StatusForbidden, "Access denied. Required role: recruiter", "INSUFFICIENT_PERMISSIONS")
	default:
		WriteError(w, http.StatusInternalServerError, fallbackMessage, fallbackCode)
	}
}
