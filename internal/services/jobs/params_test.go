package jobs

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/jobdeck/internal/models"
)

func TestParseListParamsDefaults(t *testing.T) {
	query, errs := ParseListParams(url.Values{})
	require.Empty(t, errs)
	require.Equal(t, 1, query.Page)
	require.Equal(t, 10, query.Limit)
	require.Equal(t, models.SortByCreatedAt, query.SortBy)
	require.True(t, query.SortDesc)
	require.Nil(t, query.Remote)
	require.Nil(t, query.MinSalary)
}

func TestParseListParamsFilters(t *testing.T) {
	values := url.Values{
		"search":          {"golang"},
		"location":        {"Berlin"},
		"jobType":         {"contract"},
		"experienceLevel": {"senior"},
		"remote":          {"true"},
		"minSalary":       {"60000"},
		"maxSalary":       {"120000"},
		"sortBy":          {"salary.min"},
		"sortOrder":       {"asc"},
		"page":            {"2"},
		"limit":           {"25"},
	}

	query, errs := ParseListParams(values)
	require.Empty(t, errs)
	require.Equal(t, "golang", query.Search)
	require.Equal(t, "Berlin", query.Location)
	require.Equal(t, models.JobTypeContract, query.JobType)
	require.Equal(t, models.ExperienceSenior, query.ExperienceLevel)
	require.True(t, *query.Remote)
	require.Equal(t, int64(60000), *query.MinSalary)
	require.Equal(t, int64(120000), *query.MaxSalary)
	require.Equal(t, models.SortBySalaryMin, query.SortBy)
	require.False(t, query.SortDesc)
	require.Equal(t, 2, query.Page)
	require.Equal(t, 25, query.Limit)
	require.Equal(t, 25, query.Skip())
}

func TestParseListParamsRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{"unknown sort field", "sortBy", "postedBy", "sortBy"},
		{"unknown sort order", "sortOrder", "descending", "sortOrder"},
		{"page zero", "page", "0", "page"},
		{"negative page", "page", "-1", "page"},
		{"page not a number", "page", "abc", "page"},
		{"limit zero", "limit", "0", "limit"},
		{"limit over maximum", "limit", "51", "limit"},
		{"bad job type", "jobType", "fulltime", "jobType"},
		{"bad experience level", "experienceLevel", "junior", "experienceLevel"},
		{"bad remote flag", "remote", "maybe", "remote"},
		{"bad min salary", "minSalary", "lots", "minSalary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, errs := ParseListParams(url.Values{tt.key: {tt.value}})
			// Invalid values are rejected outright, never clamped into range
			require.Nil(t, query)
			require.Len(t, errs, 1)
			require.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestParseListParamsLimitBoundary(t *testing.T) {
	query, errs := ParseListParams(url.Values{"limit": {"50"}})
	require.Empty(t, errs)
	require.Equal(t, 50, query.Limit)

	query, errs = ParseListParams(url.Values{"limit": {"1"}})
	require.Empty(t, errs)
	require.Equal(t, 1, query.Limit)
}

func TestParseOwnerListParams(t *testing.T) {
	query, errs := ParseOwnerListParams(url.Values{"status": {"draft"}, "page": {"3"}})
	require.Empty(t, errs)
	require.Equal(t, models.JobStatusDraft, query.Status)
	require.Equal(t, 3, query.Page)

	query, errs = ParseOwnerListParams(url.Values{"status": {"archived"}})
	require.Nil(t, query)
	require.Len(t, errs, 1)
	require.Equal(t, "status", errs[0].Field)
}

func TestParseListParamsCollectsAllErrors(t *testing.T) {
	query, errs := ParseListParams(url.Values{
		"page":   {"0"},
		"limit":  {"100"},
		"sortBy": {"secret"},
	})
	require.Nil(t, query)
	require.Len(t, errs, 3)
}
