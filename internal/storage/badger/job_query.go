package badger

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ternarybob/jobdeck/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// buildJobCriteria translates a JobQuery's filter and scope predicates into a
// badgerhold query. Sorting and paging are applied separately so the same
// criteria can back both Find and Count.
func buildJobCriteria(q *models.JobQuery) *badgerhold.Query {
	query := badgerhold.Where("ID").Ne("")

	if q == nil {
		return query
	}

	if q.Status != "" {
		query = query.And("Status").Eq(q.Status)
	}
	if q.PostedBy != "" {
		query = query.And("PostedBy").Eq(q.PostedBy)
	}
	if q.JobType != "" {
		query = query.And("JobType").Eq(q.JobType)
	}
	if q.ExperienceLevel != "" {
		query = query.And("ExperienceLevel").Eq(q.ExperienceLevel)
	}
	if q.Remote != nil {
		query = query.And("Remote").Eq(*q.Remote)
	}
	if q.Location != "" {
		// Case-insensitive substring match; the location is treated as literal text
		regex := regexp.MustCompile("(?i)" + regexp.QuoteMeta(q.Location))
		query = query.And("Location").RegExp(regex)
	}
	if q.Search != "" {
		// BadgerHold has no text index; match the search terms as a
		// case-insensitive substring across title, company and description.
		needle := strings.ToLower(q.Search)
		query = query.And("Title").MatchFunc(func(ra *badgerhold.RecordAccess) (bool, error) {
			job, ok := ra.Record().(*models.Job)
			if !ok {
				return false, nil
			}
			return strings.Contains(strings.ToLower(job.Title), needle) ||
				strings.Contains(strings.ToLower(job.Company), needle) ||
				strings.Contains(strings.ToLower(job.Description), needle), nil
		})
	}
	if q.MinSalary != nil || q.MaxSalary != nil {
		query = query.And("Salary").MatchFunc(func(ra *badgerhold.RecordAccess) (bool, error) {
			job, ok := ra.Record().(*models.Job)
			if !ok {
				return false, nil
			}
			return q.MatchesSalary(job.Salary), nil
		})
	}

	return query
}

// sortJobs orders records in memory. BadgerHold's SortBy cannot reach nested
// fields like Salary.Min, and MatchFunc criteria bypass indexes anyway, so
// the filtered set is sorted here. Stable sort keeps insertion order for ties.
func sortJobs(jobs []*models.Job, field models.SortField, desc bool) {
	less := jobLess(field)
	sort.SliceStable(jobs, func(i, j int) bool {
		if desc {
			return less(jobs[j], jobs[i])
		}
		return less(jobs[i], jobs[j])
	})
}

func jobLess(field models.SortField) func(a, b *models.Job) bool {
	switch field {
	case models.SortByTitle:
		return func(a, b *models.Job) bool { return a.Title < b.Title }
	case models.SortByCompany:
		return func(a, b *models.Job) bool { return a.Company < b.Company }
	case models.SortBySalaryMin:
		// Records without a minimum salary sort first in ascending order
		return func(a, b *models.Job) bool {
			return salaryMinOrZero(a) < salaryMinOrZero(b)
		}
	case models.SortByApplicationCount:
		return func(a, b *models.Job) bool { return a.ApplicationCount < b.ApplicationCount }
	case models.SortByViewCount:
		return func(a, b *models.Job) bool { return a.ViewCount < b.ViewCount }
	default:
		return func(a, b *models.Job) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}

func salaryMinOrZero(j *models.Job) int64 {
	if j.Salary.Min == nil {
		return 0
	}
	return *j.Salary.Min
}

// pageJobs applies the query's skip/limit window to the sorted set
func pageJobs(jobs []*models.Job, q *models.JobQuery) []*models.Job {
	if q == nil || q.Limit <= 0 {
		return jobs
	}
	skip := q.Skip()
	if skip >= len(jobs) {
		return []*models.Job{}
	}
	end := skip + q.Limit
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[skip:end]
}
