package badger

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/jobdeck/internal/interfaces"
	"github.com/ternarybob/jobdeck/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// JobStorage implements the JobStorage interface for Badger
type JobStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewJobStorage creates a new JobStorage instance
func NewJobStorage(db *BadgerDB, logger arbor.ILogger) interfaces.JobStorage {
	return &JobStorage{
		db:     db,
		logger: logger,
	}
}

func (s *JobStorage) SaveJob(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		return fmt.Errorf("job ID is required")
	}

	if err := s.db.Store().Upsert(job.ID, job); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

func (s *JobStorage) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := s.db.Store().Get(id, &job); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, models.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

func (s *JobStorage) DeleteJob(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &models.Job{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return models.ErrJobNotFound
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func (s *JobStorage) FindJobs(ctx context.Context, query *models.JobQuery) ([]*models.Job, error) {
	var jobs []models.Job
	if err := s.db.Store().Find(&jobs, buildJobCriteria(query)); err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}

	result := make([]*models.Job, len(jobs))
	for i := range jobs {
		result[i] = &jobs[i]
	}

	if query != nil {
		sortJobs(result, query.SortBy, query.SortDesc)
		result = pageJobs(result, query)
	}
	return result, nil
}

func (s *JobStorage) CountJobs(ctx context.Context, query *models.JobQuery) (int, error) {
	count, err := s.db.Store().Count(&models.Job{}, buildJobCriteria(query))
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return int(count), nil
}

func (s *JobStorage) CountByStatus(ctx context.Context, ownerID string) (map[models.JobStatus]int, error) {
	// BadgerHold doesn't support grouped aggregation; iterate the owner's set
	counts := make(map[models.JobStatus]int)
	err := s.db.Store().ForEach(badgerhold.Where("PostedBy").Eq(ownerID), func(job *models.Job) error {
		counts[job.Status]++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs by status: %w", err)
	}
	return counts, nil
}

func (s *JobStorage) SumCounters(ctx context.Context, ownerID string) (int64, int64, error) {
	var applications, views int64
	err := s.db.Store().ForEach(badgerhold.Where("PostedBy").Eq(ownerID), func(job *models.Job) error {
		applications += job.ApplicationCount
		views += job.ViewCount
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum job counters: %w", err)
	}
	return applications, views, nil
}

func (s *JobStorage) RecentJobs(ctx context.Context, ownerID string, limit int) ([]*models.Job, error) {
	var jobs []models.Job
	query := badgerhold.Where("PostedBy").Eq(ownerID).SortBy("CreatedAt").Reverse().Limit(limit)
	if err := s.db.Store().Find(&jobs, query); err != nil {
		return nil, fmt.Errorf("failed to get recent jobs: %w", err)
	}

	result := make([]*models.Job, len(jobs))
	for i := range jobs {
		result[i] = &jobs[i]
	}
	return result, nil
}

// IncrementViewCount bumps a job's view counter by one inside a single store
// transaction. Concurrent increments never lose updates; the counter is not
// writable through the general update path.
func (s *JobStorage) IncrementViewCount(ctx context.Context, id string) error {
	return s.incrementCounter(id, func(job *models.Job) {
		job.ViewCount++
	})
}

// IncrementApplicationCount bumps a job's application counter by one inside a
// single store transaction.
func (s *JobStorage) IncrementApplicationCount(ctx context.Context, id string) error {
	return s.incrementCounter(id, func(job *models.Job) {
		job.ApplicationCount++
	})
}

func (s *JobStorage) incrementCounter(id string, bump func(*models.Job)) error {
	matched := false
	err := s.db.Store().UpdateMatching(&models.Job{}, badgerhold.Where(badgerhold.Key).Eq(id), func(record interface{}) error {
		job, ok := record.(*models.Job)
		if !ok {
			return fmt.Errorf("unexpected record type %T", record)
		}
		bump(job)
		matched = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to increment counter: %w", err)
	}
	if !matched {
		return models.ErrJobNotFound
	}
	return nil
}
