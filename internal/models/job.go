package models

import "time"

// JobStatus represents the lifecycle state of a job posting
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// Valid returns true if the status is one of the known states
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusActive, JobStatusPaused, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

// JobType represents the employment type of a job posting
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeFreelance  JobType = "freelance"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance, JobTypeInternship:
		return true
	}
	return false
}

// ExperienceLevel represents the seniority a job posting targets
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

func (e ExperienceLevel) Valid() bool {
	switch e {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	}
	return false
}

// Currency represents a supported salary currency
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyINR, CurrencyCAD, CurrencyAUD:
		return true
	}
	return false
}

// Salary is the optional compensation range on a job posting. Min and Max are
// pointers so "not provided" is distinct from zero.
type Salary struct {
	Min      *int64   `json:"min,omitempty"`
	Max      *int64   `json:"max,omitempty"`
	Currency Currency `json:"currency,omitempty"`
}

// IsZero reports whether no salary information was provided
func (s Salary) IsZero() bool {
	return s.Min == nil && s.Max == nil && s.Currency == ""
}

// Job is a job posting document stored in BadgerDB (keyed by ID)
type Job struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Company             string          `json:"company"`
	Description         string          `json:"description"`
	Requirements        string          `json:"requirements"`
	Location            string          `json:"location"`
	JobType             JobType         `json:"jobType"`
	ExperienceLevel     ExperienceLevel `json:"experienceLevel"`
	Salary              Salary          `json:"salary"`
	Skills              []string        `json:"skills,omitempty"`
	Benefits            []string        `json:"benefits,omitempty"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline,omitempty"`
	Status              JobStatus       `json:"status"`
	ApplicationCount    int64           `json:"applicationCount"`
	ViewCount           int64           `json:"viewCount"`
	PostedBy            string          `json:"postedBy"`
	Featured            bool            `json:"featured"`
	Remote              bool            `json:"remote"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// JobSummary is the projection returned in the recruiter dashboard's
// recent-jobs list. Not a full job record.
type JobSummary struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Status           JobStatus `json:"status"`
	ApplicationCount int64     `json:"applicationCount"`
	ViewCount        int64     `json:"viewCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Summary projects a job down to its dashboard summary fields
func (j *Job) Summary() *JobSummary {
	return &JobSummary{
		ID:               j.ID,
		Title:            j.Title,
		Status:           j.Status,
		ApplicationCount: j.ApplicationCount,
		ViewCount:        j.ViewCount,
		CreatedAt:        j.CreatedAt,
	}
}

// StatusSummary holds per-status counts over a recruiter's postings
type StatusSummary struct {
	Active int `json:"active"`
	Paused int `json:"paused"`
	Closed int `json:"closed"`
	Draft  int `json:"draft"`
}

// JobStats holds the recruiter dashboard aggregates
type JobStats struct {
	TotalJobs         int   `json:"totalJobs"`
	ActiveJobs        int   `json:"activeJobs"`
	DraftJobs         int   `json:"draftJobs"`
	TotalApplications int64 `json:"totalApplications"`
	TotalViews        int64 `json:"totalViews"`
}
