package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/jobdeck/internal/interfaces"
	"github.com/ternarybob/jobdeck/internal/models"
)

// AuthHandler handles account registration and login
type AuthHandler struct {
	authService interfaces.AuthService
	logger      arbor.ILogger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService interfaces.AuthService, logger arbor.ILogger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RegisterHandler handles POST /api/auth/register
func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var input interfaces.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	user, token, err := h.authService.Register(r.Context(), &input)
	if err != nil {
		var verrs models.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			WriteValidationErrors(w, verrs)
		case errors.Is(err, models.ErrEmailTaken):
			WriteError(w, http.StatusBadRequest, "An account with this email already exists", "EMAIL_IN_USE")
		default:
			h.logger.Error().Err(err).Msg("Failed to register user")
			WriteError(w, http.StatusInternalServerError, "Failed to register user", "REGISTER_ERROR")
		}
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

// LoginHandler handles POST /api/auth/login
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	user, token, err := h.authService.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			WriteError(w, http.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to log in user")
		WriteError(w, http.StatusInternalServerError, "Failed to log in", "LOGIN_ERROR")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}
