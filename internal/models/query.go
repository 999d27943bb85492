package models

// SortField is a validated, store-facing sort key. The API layer only ever
// produces values from the allowlist in services/jobs.
type SortField string

const (
	SortByCreatedAt        SortField = "CreatedAt"
	SortByTitle            SortField = "Title"
	SortByCompany          SortField = "Company"
	SortBySalaryMin        SortField = "Salary.Min"
	SortByApplicationCount SortField = "ApplicationCount"
	SortByViewCount        SortField = "ViewCount"
)

// JobQuery is the persistence-facing description of a filtered, sorted,
// paginated job listing. Filter fields are optional; nil/empty means the
// predicate is absent. Status and PostedBy are scope predicates set by the
// listing service, never directly from request parameters.
type JobQuery struct {
	// Filters
	Search          string
	Location        string
	JobType         JobType
	ExperienceLevel ExperienceLevel
	Remote          *bool
	MinSalary       *int64
	MaxSalary       *int64

	// Scope
	Status   JobStatus
	PostedBy string

	// Sort and paging
	SortBy   SortField
	SortDesc bool
	Page     int
	Limit    int
}

// Skip returns the record offset implied by the 1-based page number
func (q *JobQuery) Skip() int {
	return (q.Page - 1) * q.Limit
}

// MatchesSalary applies the salary-range filter to a record's salary. The
// clauses are OR-combined on purpose: a record matches a MinSalary bound when
// either of its bounds is at or above it, and matches a MaxSalary bound when
// either of its bounds is at or below it. When both query bounds are present
// the four clauses stay OR-combined (loose overlap, not interval containment).
// This mirrors the long-standing listing behavior; do not tighten it to a
// strict containment check.
func (q *JobQuery) MatchesSalary(s Salary) bool {
	if q.MinSalary == nil && q.MaxSalary == nil {
		return true
	}
	if q.MinSalary != nil {
		if s.Min != nil && *s.Min >= *q.MinSalary {
			return true
		}
		if s.Max != nil && *s.Max >= *q.MinSalary {
			return true
		}
	}
	if q.MaxSalary != nil {
		if s.Max != nil && *s.Max <= *q.MaxSalary {
			return true
		}
		if s.Min != nil && *s.Min <= *q.MaxSalary {
			return true
		}
	}
	return false
}

// Pagination is the listing envelope returned alongside job results
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalJobs   int  `json:"totalJobs"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination derives the pagination envelope from a total match count
func NewPagination(page, limit, totalJobs int) Pagination {
	totalPages := totalJobs / limit
	if totalJobs%limit != 0 {
		totalPages++
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalJobs:   totalJobs,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
