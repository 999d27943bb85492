package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/jobdeck/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Issue("user-1", models.RoleRecruiter)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	actor, err := manager.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", actor.ID)
	require.Equal(t, models.RoleRecruiter, actor.Role)
	require.True(t, actor.IsRecruiter())
}

func TestTokenExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue("user-1", models.RoleJobSeeker)
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("user-1", models.RoleRecruiter)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	_, err := manager.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = manager.Verify("")
	require.ErrorIs(t, err, ErrInvalidToken)
}
