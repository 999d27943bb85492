package badger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/jobdeck/internal/models"
)

func int64p(v int64) *int64 { return &v }
func boolp(v bool) *bool    { return &v }

func seedQueryFixtures(t *testing.T, storage *JobStorage) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	fixtures := []*models.Job{
		{
			ID: "go-berlin", Title: "Go Engineer", Company: "Acme",
			Description: "Design and build the Go services powering our marketplace platform.",
			Location:    "Berlin", JobType: models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceSenior,
			Salary:          models.Salary{Min: int64p(50000), Max: int64p(80000), Currency: models.CurrencyEUR},
			Status:          models.JobStatusActive, PostedBy: "owner-1",
			CreatedAt: base,
		},
		{
			ID: "python-remote", Title: "Python Developer", Company: "Globex",
			Description: "Maintain data pipelines and internal tooling for the analytics team.",
			Location:    "Remote", JobType: models.JobTypeContract,
			ExperienceLevel: models.ExperienceMid, Remote: true,
			Salary: models.Salary{Min: int64p(90000), Max: int64p(120000), Currency: models.CurrencyUSD},
			Status: models.JobStatusActive, PostedBy: "owner-2",
			CreatedAt: base.Add(time.Hour),
		},
		{
			ID: "intern-paused", Title: "Engineering Intern", Company: "Initech",
			Description: "Support the platform team with tooling, scripts and small features.",
			Location:    "berlin mitte", JobType: models.JobTypeInternship,
			ExperienceLevel: models.ExperienceEntry,
			Salary:          models.Salary{Max: int64p(30000), Currency: models.CurrencyEUR},
			Status:          models.JobStatusPaused, PostedBy: "owner-1",
			CreatedAt: base.Add(2 * time.Hour),
		},
	}
	for _, job := range fixtures {
		job.UpdatedAt = job.CreatedAt
		require.NoError(t, storage.SaveJob(ctx, job))
	}
}

func jobIDs(jobs []*models.Job) []string {
	ids := make([]string, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
	}
	return ids
}

func TestFindJobsFilters(t *testing.T) {
	db := newTestDB(t)
	storage := NewJobStorage(db, arbor.NewLogger()).(*JobStorage)
	seedQueryFixtures(t, storage)
	ctx := context.Background()

	tests := []struct {
		name  string
		query *models.JobQuery
		want  []string
	}{
		{"status", &models.JobQuery{Status: models.JobStatusActive}, []string{"go-berlin", "python-remote"}},
		{"owner", &models.JobQuery{PostedBy: "owner-1"}, []string{"go-berlin", "intern-paused"}},
		{"job type", &models.JobQuery{JobType: models.JobTypeContract}, []string{"python-remote"}},
		{"experience", &models.JobQuery{ExperienceLevel: models.ExperienceSenior}, []string{"go-berlin"}},
		{"remote", &models.JobQuery{Remote: boolp(true)}, []string{"python-remote"}},
		{"location is case-insensitive substring", &models.JobQuery{Location: "Berlin"}, []string{"go-berlin", "intern-paused"}},
		{"search spans title company description", &models.JobQuery{Search: "pipelines"}, []string{"python-remote"}},
		{"search matches company", &models.JobQuery{Search: "initech"}, []string{"intern-paused"}},
		{"no filters returns everything", &models.JobQuery{}, []string{"go-berlin", "python-remote", "intern-paused"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := storage.FindJobs(ctx, tt.query)
			require.NoError(t, err)
			require.ElementsMatch(t, tt.want, jobIDs(jobs))

			count, err := storage.CountJobs(ctx, tt.query)
			require.NoError(t, err)
			require.Equal(t, len(tt.want), count)
		})
	}
}

func TestFindJobsSalaryBounds(t *testing.T) {
	db := newTestDB(t)
	storage := NewJobStorage(db, arbor.NewLogger()).(*JobStorage)
	seedQueryFixtures(t, storage)
	ctx := context.Background()

	tests := []struct {
		name  string
		query *models.JobQuery
		want  []string
	}{
		// 50-80k matches minSalary=60000 because its upper bound clears it
		{"min bound matched by either record bound", &models.JobQuery{MinSalary: int64p(60000)}, []string{"go-berlin", "python-remote"}},
		{"min bound excludes low ranges", &models.JobQuery{MinSalary: int64p(130000)}, nil},
		// record with only a max still participates in the filter
		{"max bound with max-only record", &models.JobQuery{MaxSalary: int64p(35000)}, []string{"intern-paused"}},
		{"max bound matched by record min", &models.JobQuery{MaxSalary: int64p(95000)}, []string{"go-berlin", "python-remote", "intern-paused"}},
		// both bounds stay OR-combined, not interval containment
		{"both bounds are loose overlap", &models.JobQuery{MinSalary: int64p(85000), MaxSalary: int64p(40000)}, []string{"go-berlin", "python-remote", "intern-paused"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := storage.FindJobs(ctx, tt.query)
			require.NoError(t, err)
			require.ElementsMatch(t, tt.want, jobIDs(jobs))
		})
	}
}

func TestFindJobsSorting(t *testing.T) {
	db := newTestDB(t)
	storage := NewJobStorage(db, arbor.NewLogger()).(*JobStorage)
	seedQueryFixtures(t, storage)
	ctx := context.Background()

	jobs, err := storage.FindJobs(ctx, &models.JobQuery{SortBy: models.SortByTitle})
	require.NoError(t, err)
	require.Equal(t, []string{"intern-paused", "go-berlin", "python-remote"}, jobIDs(jobs))

	jobs, err = storage.FindJobs(ctx, &models.JobQuery{SortBy: models.SortByCreatedAt, SortDesc: true})
	require.NoError(t, err)
	require.Equal(t, []string{"intern-paused", "python-remote", "go-berlin"}, jobIDs(jobs))

	// Missing salary minimum sorts as zero, so the max-only record comes first
	jobs, err = storage.FindJobs(ctx, &models.JobQuery{SortBy: models.SortBySalaryMin})
	require.NoError(t, err)
	require.Equal(t, []string{"intern-paused", "go-berlin", "python-remote"}, jobIDs(jobs))
}

func TestFindJobsPaging(t *testing.T) {
	db := newTestDB(t)
	storage := NewJobStorage(db, arbor.NewLogger()).(*JobStorage)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		job := testJob(fmt.Sprintf("job-%02d", i), "owner", models.JobStatusActive)
		job.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, storage.SaveJob(ctx, job))
	}

	query := &models.JobQuery{SortBy: models.SortByCreatedAt, Page: 1, Limit: 3}
	var paged []string
	for page := 1; page <= 3; page++ {
		query.Page = page
		jobs, err := storage.FindJobs(ctx, query)
		require.NoError(t, err)
		paged = append(paged, jobIDs(jobs)...)
	}

	require.Equal(t, []string{"job-00", "job-01", "job-02", "job-03", "job-04", "job-05", "job-06"}, paged)

	// Count is the unpaged match total
	count, err := storage.CountJobs(ctx, query)
	require.NoError(t, err)
	require.Equal(t, 7, count)

	// A page past the end is empty, not an error
	query.Page = 5
	jobs, err := storage.FindJobs(ctx, query)
	require.NoError(t, err)
	require.Empty(t, jobs)
}
