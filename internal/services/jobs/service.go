package jobs

import (
	"context"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/jobdeck/internal/common"
	"github.com/ternarybob/jobdeck/internal/interfaces"
	"github.com/ternarybob/jobdeck/internal/models"
)

// Service orchestrates job listing and mutation over the document store.
// Access scoping lives here: the storage layer knows nothing about actors.
type Service struct {
	jobs   interfaces.JobStorage
	logger arbor.ILogger
}

// NewService creates a new job service
func NewService(storage interfaces.StorageManager, logger arbor.ILogger) *Service {
	return &Service{
		jobs:   storage.JobStorage(),
		logger: logger,
	}
}

// CreateJob validates the payload and stores a new posting owned by the actor
func (s *Service) CreateJob(ctx context.Context, actor *models.Actor, input *models.JobInput) (*models.Job, error) {
	if !actor.IsRecruiter() {
		return nil, models.ErrForbidden
	}

	if errs := ValidateInput(input); len(errs) > 0 {
		return nil, errs
	}

	now := time.Now()
	job := &models.Job{
		ID:              common.NewID(),
		Title:           input.Title,
		Company:         input.Company,
		Description:     input.Description,
		Requirements:    input.Requirements,
		Location:        input.Location,
		JobType:         input.JobType,
		ExperienceLevel: input.ExperienceLevel,
		Salary:          salaryFromInput(input.Salary),
		Skills:          input.Skills,
		Benefits:        input.Benefits,
		Status:          models.JobStatusActive,
		PostedBy:        actor.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.ApplicationDeadline != nil {
		deadline := *input.ApplicationDeadline
		job.ApplicationDeadline = &deadline
	}
	if input.Status != "" {
		job.Status = input.Status
	}
	if input.Featured != nil {
		job.Featured = *input.Featured
	}
	if input.Remote != nil {
		job.Remote = *input.Remote
	}

	if err := s.jobs.SaveJob(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Str("posted_by", actor.ID).Msg("Job created")
	return job, nil
}

// GetJob fetches a single posting by ID regardless of status: anyone with the
// link can view it, drafts and closed postings included. The view counter is
// bumped unless the requester owns the posting; anonymous fetches count.
func (s *Service) GetJob(ctx context.Context, actor *models.Actor, id string) (*models.Job, error) {
	if !common.ValidID(id) {
		return nil, models.ErrInvalidJobID
	}

	job, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor == nil || actor.ID != job.PostedBy {
		if err := s.jobs.IncrementViewCount(ctx, id); err != nil {
			return nil, err
		}
		job.ViewCount++
	}

	return job, nil
}

// ListJobs is the public listing. Only active postings are visible here,
// whatever filters the caller supplies.
func (s *Service) ListJobs(ctx context.Context, actor *models.Actor, query *models.JobQuery) (*models.JobPage, error) {
	scoped := *query
	scoped.Status = models.JobStatusActive
	scoped.PostedBy = ""

	jobs, err := s.jobs.FindJobs(ctx, &scoped)
	if err != nil {
		return nil, err
	}
	total, err := s.jobs.CountJobs(ctx, &scoped)
	if err != nil {
		return nil, err
	}

	return &models.JobPage{
		Jobs:       jobs,
		Pagination: models.NewPagination(scoped.Page, scoped.Limit, total),
	}, nil
}

// ListOwnJobs lists the actor's own postings in any status, with an optional
// status filter, plus a status summary over the owner's full record set
// (the summary ignores both the filter and the paging).
func (s *Service) ListOwnJobs(ctx context.Context, actor *models.Actor, query *models.JobQuery) (*models.OwnerJobPage, error) {
	if !actor.IsRecruiter() {
		return nil, models.ErrForbidden
	}

	scoped := *query
	scoped.PostedBy = actor.ID

	jobs, err := s.jobs.FindJobs(ctx, &scoped)
	if err != nil {
		return nil, err
	}
	total, err := s.jobs.CountJobs(ctx, &scoped)
	if err != nil {
		return nil, err
	}
	counts, err := s.jobs.CountByStatus(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	return &models.OwnerJobPage{
		Jobs: jobs,
		StatusSummary: models.StatusSummary{
			Active: counts[models.JobStatusActive],
			Paused: counts[models.JobStatusPaused],
			Closed: counts[models.JobStatusClosed],
			Draft:  counts[models.JobStatusDraft],
		},
		Pagination: models.NewPagination(scoped.Page, scoped.Limit, total),
	}, nil
}

// GetOwnStats aggregates the actor's postings for the dashboard
func (s *Service) GetOwnStats(ctx context.Context, actor *models.Actor) (*models.OwnerStats, error) {
	if !actor.IsRecruiter() {
		return nil, models.ErrForbidden
	}

	total, err := s.jobs.CountJobs(ctx, &models.JobQuery{PostedBy: actor.ID})
	if err != nil {
		return nil, err
	}
	active, err := s.jobs.CountJobs(ctx, &models.JobQuery{PostedBy: actor.ID, Status: models.JobStatusActive})
	if err != nil {
		return nil, err
	}
	draft, err := s.jobs.CountJobs(ctx, &models.JobQuery{PostedBy: actor.ID, Status: models.JobStatusDraft})
	if err != nil {
		return nil, err
	}
	applications, views, err := s.jobs.SumCounters(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	recent, err := s.jobs.RecentJobs(ctx, actor.ID, 5)
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.JobSummary, len(recent))
	for i, job := range recent {
		summaries[i] = job.Summary()
	}

	return &models.OwnerStats{
		Stats: models.JobStats{
			TotalJobs:         total,
			ActiveJobs:        active,
			DraftJobs:         draft,
			TotalApplications: applications,
			TotalViews:        views,
		},
		RecentJobs: summaries,
	}, nil
}

// UpdateJob applies a partial update to an owned posting. Existence is
// checked before ownership, so a non-owner learns the record exists (403,
// not 404); that ordering is deliberate. The merged record is re-validated
// in full before the write.
func (s *Service) UpdateJob(ctx context.Context, actor *models.Actor, id string, update *models.JobUpdate) (*models.Job, error) {
	if !actor.IsRecruiter() {
		return nil, models.ErrForbidden
	}
	if !common.ValidID(id) {
		return nil, models.ErrInvalidJobID
	}

	job, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.PostedBy != actor.ID {
		return nil, models.ErrNotOwner
	}

	merged := mergeUpdate(job, update)
	if errs := ValidateInput(merged); len(errs) > 0 {
		return nil, errs
	}

	applyInput(job, merged, update)
	job.UpdatedAt = time.Now()

	if err := s.jobs.SaveJob(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Msg("Job updated")
	return job, nil
}

// DeleteJob removes an owned posting permanently. Same 404-before-403
// ordering as UpdateJob; deleting an already-deleted ID is not-found.
func (s *Service) DeleteJob(ctx context.Context, actor *models.Actor, id string) error {
	if !actor.IsRecruiter() {
		return models.ErrForbidden
	}
	if !common.ValidID(id) {
		return models.ErrInvalidJobID
	}

	job, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		return err
	}
	if job.PostedBy != actor.ID {
		return models.ErrNotOwner
	}

	if err := s.jobs.DeleteJob(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("job_id", id).Msg("Job deleted")
	return nil
}

// RecordApplication bumps a posting's application counter atomically. Hook
// for the application workflow; not reachable through the general update path.
func (s *Service) RecordApplication(ctx context.Context, id string) error {
	if !common.ValidID(id) {
		return models.ErrInvalidJobID
	}
	return s.jobs.IncrementApplicationCount(ctx, id)
}

func salaryFromInput(s *models.SalaryInput) models.Salary {
	if s == nil {
		return models.Salary{}
	}
	salary := models.Salary{
		Min:      s.Min,
		Max:      s.Max,
		Currency: s.Currency,
	}
	if salary.Currency == "" {
		salary.Currency = models.CurrencyUSD
	}
	return salary
}

// mergeUpdate builds the merged payload for re-validation: current record
// values overlaid with the fields the update provides. The deadline is only
// carried when the update sets it, so an untouched past deadline does not
// fail the future-dated check.
func mergeUpdate(job *models.Job, update *models.JobUpdate) *models.JobInput {
	merged := &models.JobInput{
		Title:           job.Title,
		Company:         job.Company,
		Description:     job.Description,
		Requirements:    job.Requirements,
		Location:        job.Location,
		JobType:         job.JobType,
		ExperienceLevel: job.ExperienceLevel,
		Skills:          job.Skills,
		Benefits:        job.Benefits,
		Status:          job.Status,
	}

	if update.Title != nil {
		merged.Title = *update.Title
	}
	if update.Company != nil {
		merged.Company = *update.Company
	}
	if update.Description != nil {
		merged.Description = *update.Description
	}
	if update.Requirements != nil {
		merged.Requirements = *update.Requirements
	}
	if update.Location != nil {
		merged.Location = *update.Location
	}
	if update.JobType != nil {
		merged.JobType = *update.JobType
	}
	if update.ExperienceLevel != nil {
		merged.ExperienceLevel = *update.ExperienceLevel
	}
	if update.Salary != nil {
		merged.Salary = update.Salary
	}
	if update.Skills != nil {
		merged.Skills = *update.Skills
	}
	if update.Benefits != nil {
		merged.Benefits = *update.Benefits
	}
	if update.ApplicationDeadline != nil {
		merged.ApplicationDeadline = update.ApplicationDeadline
	}
	if update.Status != nil {
		merged.Status = *update.Status
	}
	merged.Featured = update.Featured
	merged.Remote = update.Remote

	return merged
}

// applyInput writes the validated merged payload back onto the stored record.
// A provided salary block replaces the whole block. Any status transition is
// allowed; the lifecycle is deliberately flat.
func applyInput(job *models.Job, merged *models.JobInput, update *models.JobUpdate) {
	job.Title = merged.Title
	job.Company = merged.Company
	job.Description = merged.Description
	job.Requirements = merged.Requirements
	job.Location = merged.Location
	job.JobType = merged.JobType
	job.ExperienceLevel = merged.ExperienceLevel
	job.Skills = merged.Skills
	job.Benefits = merged.Benefits
	job.Status = merged.Status

	if update.Salary != nil {
		job.Salary = salaryFromInput(update.Salary)
	}
	if update.ApplicationDeadline != nil {
		deadline := *update.ApplicationDeadline
		job.ApplicationDeadline = &deadline
	}
	if update.Featured != nil {
		job.Featured = *update.Featured
	}
	if update.Remote != nil {
		job.Remote = *update.Remote
	}
}
