package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/jobdeck/internal/common"
	"github.com/ternarybob/jobdeck/internal/interfaces"
	"github.com/ternarybob/jobdeck/internal/models"
	"github.com/ternarybob/jobdeck/internal/services/validation"
	"golang.org/x/crypto/bcrypt"
)

// Service issues and verifies bearer identity tokens and manages accounts
type Service struct {
	users  interfaces.UserStorage
	tokens *TokenManager
	logger arbor.ILogger
}

// NewService creates a new auth service
func NewService(storage interfaces.StorageManager, config *common.AuthConfig, logger arbor.ILogger) *Service {
	return &Service{
		users:  storage.UserStorage(),
		tokens: NewTokenManager(config.JWTSecret, config.TokenTTLDuration()),
		logger: logger,
	}
}

// Register creates an account and returns it with a signed token
func (s *Service) Register(ctx context.Context, input *interfaces.RegisterInput) (*models.User, string, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)

	if errs := validateRegister(input); len(errs) > 0 {
		return nil, "", errs
	}

	if _, err := s.users.GetUserByEmail(ctx, input.Email); err == nil {
		return nil, "", models.ErrEmailTaken
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := &models.User{
		ID:           common.NewID(),
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, token, nil
}

// Login verifies the credentials and returns the account with a signed token
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// VerifyToken parses a bearer token into the acting identity
func (s *Service) VerifyToken(ctx context.Context, token string) (*models.Actor, error) {
	return s.tokens.Verify(token)
}

func validateRegister(input *interfaces.RegisterInput) models.ValidationErrors {
	var errs models.ValidationErrors
	if err := validation.Validator().Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, models.FieldError{
					Field:   fe.Field(),
					Message: registerMessage(fe),
				})
			}
		} else {
			errs = append(errs, models.FieldError{Field: "", Message: err.Error()})
		}
	}
	return errs
}

func registerMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Email must be a valid email address"
	case "min":
		return "Password must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " cannot exceed " + fe.Param() + " characters"
	case "role":
		return "Role must be one of: jobseeker, recruiter"
	default:
		return fe.Field() + " is invalid"
	}
}
