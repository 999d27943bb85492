package jobs

import (
	"net/url"
	"strconv"

	"github.com/ternarybob/jobdeck/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

// sortFields is the allowlist of sortable fields. Anything else is rejected
// at the boundary, never silently ignored.
var sortFields = map[string]models.SortField{
	"createdAt":        models.SortByCreatedAt,
	"title":            models.SortByTitle,
	"company":          models.SortByCompany,
	"salary.min":       models.SortBySalaryMin,
	"applicationCount": models.SortByApplicationCount,
	"viewCount":        models.SortByViewCount,
}

// ParseListParams translates the public listing query string into a JobQuery.
// All parameters are optional; invalid values are returned as field-level
// errors rather than clamped or dropped.
func ParseListParams(values url.Values) (*models.JobQuery, models.ValidationErrors) {
	query := &models.JobQuery{
		SortBy:   models.SortByCreatedAt,
		SortDesc: true,
		Page:     defaultPage,
		Limit:    defaultLimit,
	}
	var errs models.ValidationErrors

	query.Search = values.Get("search")
	query.Location = values.Get("location")

	if v := values.Get("jobType"); v != "" {
		if jt := models.JobType(v); jt.Valid() {
			query.JobType = jt
		} else {
			errs = append(errs, models.FieldError{Field: "jobType", Message: "Job type must be valid"})
		}
	}
	if v := values.Get("experienceLevel"); v != "" {
		if el := models.ExperienceLevel(v); el.Valid() {
			query.ExperienceLevel = el
		} else {
			errs = append(errs, models.FieldError{Field: "experienceLevel", Message: "Experience level must be valid"})
		}
	}
	if v := values.Get("remote"); v != "" {
		if remote, err := strconv.ParseBool(v); err == nil {
			query.Remote = &remote
		} else {
			errs = append(errs, models.FieldError{Field: "remote", Message: "Remote must be a boolean value"})
		}
	}
	if v := values.Get("minSalary"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			query.MinSalary = &n
		} else {
			errs = append(errs, models.FieldError{Field: "minSalary", Message: "Minimum salary must be a number"})
		}
	}
	if v := values.Get("maxSalary"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			query.MaxSalary = &n
		} else {
			errs = append(errs, models.FieldError{Field: "maxSalary", Message: "Maximum salary must be a number"})
		}
	}

	errs = append(errs, parseSortAndPaging(values, query)...)

	if len(errs) > 0 {
		return nil, errs
	}
	return query, nil
}

// ParseOwnerListParams translates the "my jobs" query string: an optional
// status filter plus the shared sort/paging parameters.
func ParseOwnerListParams(values url.Values) (*models.JobQuery, models.ValidationErrors) {
	query := &models.JobQuery{
		SortBy:   models.SortByCreatedAt,
		SortDesc: true,
		Page:     defaultPage,
		Limit:    defaultLimit,
	}
	var errs models.ValidationErrors

	if v := values.Get("status"); v != "" {
		if st := models.JobStatus(v); st.Valid() {
			query.Status = st
		} else {
			errs = append(errs, models.FieldError{Field: "status", Message: "Status must be one of: active, paused, closed, draft"})
		}
	}

	errs = append(errs, parseSortAndPaging(values, query)...)

	if len(errs) > 0 {
		return nil, errs
	}
	return query, nil
}

func parseSortAndPaging(values url.Values, query *models.JobQuery) models.ValidationErrors {
	var errs models.ValidationErrors

	if v := values.Get("sortBy"); v != "" {
		if field, ok := sortFields[v]; ok {
			query.SortBy = field
		} else {
			errs = append(errs, models.FieldError{Field: "sortBy", Message: "Sort by must be a valid field"})
		}
	}
	if v := values.Get("sortOrder"); v != "" {
		switch v {
		case "asc":
			query.SortDesc = false
		case "desc":
			query.SortDesc = true
		default:
			errs = append(errs, models.FieldError{Field: "sortOrder", Message: "Sort order must be asc or desc"})
		}
	}
	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			query.Page = n
		} else {
			errs = append(errs, models.FieldError{Field: "page", Message: "Page must be a positive integer"})
		}
	}
	if v := values.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= maxLimit {
			query.Limit = n
		} else {
			errs = append(errs, models.FieldError{Field: "limit", Message: "Limit must be between 1 and 50"})
		}
	}

	return errs
}
