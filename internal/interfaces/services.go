package interfaces

import (
	"context"

	"github.com/ternarybob/jobdeck/internal/models"
)

// JobService orchestrates job listing and mutation operations. Every method
// takes the acting identity explicitly; a nil actor is an anonymous caller.
type JobService interface {
	CreateJob(ctx context.Context, actor *models.Actor, input *models.JobInput) (*models.Job, error)
	UpdateJob(ctx context.Context, actor *models.Actor, id string, update *models.JobUpdate) (*models.Job, error)
	DeleteJob(ctx context.Context, actor *models.Actor, id string) error

	// GetJob fetches a single record by ID regardless of status. As a side
	// effect the view counter is incremented unless the actor owns the record.
	GetJob(ctx context.Context, actor *models.Actor, id string) (*models.Job, error)

	// ListJobs is the public listing: active records only
	ListJobs(ctx context.Context, actor *models.Actor, query *models.JobQuery) (*models.JobPage, error)

	// ListOwnJobs lists the actor's own records in any status
	ListOwnJobs(ctx context.Context, actor *models.Actor, query *models.JobQuery) (*models.OwnerJobPage, error)

	// GetOwnStats aggregates the actor's records for the dashboard
	GetOwnStats(ctx context.Context, actor *models.Actor) (*models.OwnerStats, error)

	// RecordApplication bumps a job's application counter atomically
	RecordApplication(ctx context.Context, id string) error
}

// AuthService issues and verifies bearer identity tokens
type AuthService interface {
	Register(ctx context.Context, input *RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)

	// VerifyToken parses a bearer token into the acting identity
	VerifyToken(ctx context.Context, token string) (*models.Actor, error)
}

// RegisterInput is the account registration payload
type RegisterInput struct {
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required,min=8,max=128"`
	FirstName string      `json:"firstName" validate:"required,max=50"`
	LastName  string      `json:"lastName" validate:"required,max=50"`
	Role      models.Role `json:"role" validate:"required,role"`
}
