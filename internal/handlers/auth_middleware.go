package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/jobdeck/internal/interfaces"
	"github.com/ternarybob/jobdeck/internal/models"
	"github.com/ternarybob/jobdeck/internal/services/auth"
)

// ActorHandlerFunc is a handler that receives the acting identity explicitly.
// The actor is nil for anonymous requests on routes that allow them.
type ActorHandlerFunc func(w http.ResponseWriter, r *http.Request, actor *models.Actor)

// AuthMiddleware resolves bearer tokens into actors and gates routes by role
type AuthMiddleware struct {
	auth   interfaces.AuthService
	logger arbor.ILogger
}

// NewAuthMiddleware creates the auth middleware
func NewAuthMiddleware(authService interfaces.AuthService, logger arbor.ILogger) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   authService,
		logger: logger,
	}
}

// Authenticate requires a valid bearer token; any role is accepted
func (m *AuthMiddleware) Authenticate(next ActorHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := m.resolveActor(w, r, true)
		if !ok {
			return
		}
		next(w, r, actor)
	}
}

// RequireRecruiter requires a valid bearer token with the recruiter role
func (m *AuthMiddleware) RequireRecruiter(next ActorHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := m.resolveActor(w, r, true)
		if !ok {
			return
		}
		if actor.Role != models.RoleRecruiter {
			WriteError(w, http.StatusForbidden, "Access denied. Required role: recruiter", "INSUFFICIENT_PERMISSIONS")
			return
		}
		next(w, r, actor)
	}
}

// Optional resolves a token when one is presented but lets anonymous
// requests through with a nil actor. A token that is present but invalid is
// still rejected.
func (m *AuthMiddleware) Optional(next ActorHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := m.resolveActor(w, r, false)
		if !ok {
			return
		}
		next(w, r, actor)
	}
}

func (m *AuthMiddleware) resolveActor(w http.ResponseWriter, r *http.Request, required bool) (*models.Actor, bool) {
	token := bearerToken(r)
	if token == "" {
		if required {
			WriteError(w, http.StatusUnauthorized, "Access token is required", "MISSING_TOKEN")
			return nil, false
		}
		return nil, true
	}

	actor, err := m.auth.VerifyToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			WriteError(w, http.StatusUnauthorized, "Token has expired", "TOKEN_EXPIRED")
		} else {
			WriteError(w, http.StatusUnauthorized, "Invalid token", "INVALID_TOKEN")
		}
		return nil, false
	}

	return actor, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
