package models

import "time"

// SalaryInput is the compensation block of a create/update payload
type SalaryInput struct {
	Min      *int64   `json:"min"`
	Max      *int64   `json:"max"`
	Currency Currency `json:"currency"`
}

// JobInput is the payload for creating a job posting. Field constraints are
// declared as validator tags and checked by services/jobs before any write.
type JobInput struct {
	Title               string          `json:"title" validate:"required,min=3,max=100"`
	Company             string          `json:"company" validate:"required,min=2,max=100"`
	Description         string          `json:"description" validate:"required,min=50,max=5000"`
	Requirements        string          `json:"requirements" validate:"required,max=3000"`
	Location            string          `json:"location" validate:"required,min=2,max=100"`
	JobType             JobType         `json:"jobType" validate:"required,jobtype"`
	ExperienceLevel     ExperienceLevel `json:"experienceLevel" validate:"required,explevel"`
	Salary              *SalaryInput    `json:"salary"`
	Skills              []string        `json:"skills" validate:"omitempty,max=20,dive,required,max=50"`
	Benefits            []string        `json:"benefits" validate:"omitempty,max=15,dive,required,max=100"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline"`
	Status              JobStatus       `json:"status" validate:"omitempty,jobstatus"`
	Featured            *bool           `json:"featured"`
	Remote              *bool           `json:"remote"`
}

// JobUpdate is the payload for updating a job posting. Every field is
// optional; nil means "leave unchanged". The merged record is re-validated
// against the full field constraints before the write.
type JobUpdate struct {
	Title               *string          `json:"title"`
	Company             *string          `json:"company"`
	Description         *string          `json:"description"`
	Requirements        *string          `json:"requirements"`
	Location            *string          `json:"location"`
	JobType             *JobType         `json:"jobType"`
	ExperienceLevel     *ExperienceLevel `json:"experienceLevel"`
	Salary              *SalaryInput     `json:"salary"`
	Skills              *[]string        `json:"skills"`
	Benefits            *[]string        `json:"benefits"`
	ApplicationDeadline *time.Time       `json:"applicationDeadline"`
	Status              *JobStatus       `json:"status"`
	Featured            *bool            `json:"featured"`
	Remote              *bool            `json:"remote"`
}

// JobPage is a page of listing results plus its pagination envelope
type JobPage struct {
	Jobs       []*Job     `json:"jobs"`
	Pagination Pagination `json:"pagination"`
}

// OwnerJobPage is the recruiter "my jobs" view: a page of the owner's
// postings plus a status summary computed over the owner's full record set
type OwnerJobPage struct {
	Jobs          []*Job        `json:"jobs"`
	StatusSummary StatusSummary `json:"statusSummary"`
	Pagination    Pagination    `json:"pagination"`
}

// OwnerStats is the recruiter dashboard payload
type OwnerStats struct {
	Stats      JobStats      `json:"stats"`
	RecentJobs []*JobSummary `json:"recentJobs"`
}
