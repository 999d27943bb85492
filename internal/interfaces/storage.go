package interfaces

import (
	"context"

	"github.com/ternarybob/jobdeck/internal/models"
)

// JobStorage persists job postings in the document store
type JobStorage interface {
	SaveJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id string) (*models.Job, error)
	DeleteJob(ctx context.Context, id string) error

	// FindJobs executes a filtered, sorted, paginated query
	FindJobs(ctx context.Context, query *models.JobQuery) ([]*models.Job, error)

	// CountJobs counts all records matching the query's filters, ignoring paging
	CountJobs(ctx context.Context, query *models.JobQuery) (int, error)

	// CountByStatus groups an owner's full record set by status
	CountByStatus(ctx context.Context, ownerID string) (map[models.JobStatus]int, error)

	// SumCounters totals applicationCount and viewCount across an owner's records
	SumCounters(ctx context.Context, ownerID string) (applications, views int64, err error)

	// RecentJobs returns the owner's most recently created records, newest first
	RecentJobs(ctx context.Context, ownerID string, limit int) ([]*models.Job, error)

	// IncrementViewCount and IncrementApplicationCount apply an atomic +1 to a
	// single counter field inside one store transaction. These are the only
	// write paths for the counters.
	IncrementViewCount(ctx context.Context, id string) error
	IncrementApplicationCount(ctx context.Context, id string) error
}

// UserStorage persists accounts
type UserStorage interface {
	SaveUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// StorageManager provides access to all storage interfaces
type StorageManager interface {
	JobStorage() JobStorage
	UserStorage() UserStorage

	// RunGC runs a value-log garbage collection pass on the underlying store
	RunGC() error

	Close() error
}
