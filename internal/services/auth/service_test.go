package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/jobdeck/internal/common"
	"github.com/ternarybob/jobdeck/internal/interfaces"
	"github.com/ternarybob/jobdeck/internal/models"
	"github.com/ternarybob/jobdeck/internal/storage/badger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	logger := arbor.NewLogger()
	manager, err := badger.NewManager(logger, &common.BadgerConfig{Path: t.TempDir() + "/db"})
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	config := &common.AuthConfig{JWTSecret: "test-secret", TokenTTL: "1h"}
	return NewService(manager, config, logger)
}

func registerInput() *interfaces.RegisterInput {
	return &interfaces.RegisterInput{
		Email:     "jane@example.com",
		Password:  "correct-horse",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleRecruiter,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	user, token, err := service.Register(ctx, registerInput())
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "jane@example.com", user.Email)
	require.NotEqual(t, "correct-horse", user.PasswordHash)

	actor, err := service.VerifyToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, actor.ID)
	require.Equal(t, models.RoleRecruiter, actor.Role)

	// Login is case-insensitive on the email
	loggedIn, token, err := service.Login(ctx, "Jane@Example.COM", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)
	require.NotEmpty(t, token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, _, err := service.Register(ctx, registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.Email = "JANE@example.com"
	_, _, err = service.Register(ctx, input)
	require.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*interfaces.RegisterInput)
	}{
		{"bad email", func(in *interfaces.RegisterInput) { in.Email = "not-an-email" }},
		{"short password", func(in *interfaces.RegisterInput) { in.Password = "short" }},
		{"missing first name", func(in *interfaces.RegisterInput) { in.FirstName = "" }},
		{"unknown role", func(in *interfaces.RegisterInput) { in.Role = models.Role("admin") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := registerInput()
			tt.mutate(input)
			_, _, err := service.Register(ctx, input)
			var verrs models.ValidationErrors
			require.ErrorAs(t, err, &verrs)
		})
	}
}

func TestLoginBadCredentials(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, _, err := service.Register(ctx, registerInput())
	require.NoError(t, err)

	// Unknown account and wrong password are indistinguishable to the caller
	_, _, err = service.Login(ctx, "nobody@example.com", "correct-horse")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, _, err = service.Login(ctx, "jane@example.com", "wrong-password")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}
