package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/jobdeck/internal/interfaces"
	"github.com/ternarybob/jobdeck/internal/models"
	"github.com/ternarybob/jobdeck/internal/services/jobs"
)

// JobHandler handles HTTP requests for job postings
type JobHandler struct {
	jobService interfaces.JobService
	logger     arbor.ILogger
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobService interfaces.JobService, logger arbor.ILogger) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		logger:     logger,
	}
}

// ListJobsHandler handles GET /api/jobs
func (h *JobHandler) ListJobsHandler(w http.ResponseWriter, r *http.Request, actor *models.Actor) {
	query, errs := jobs.ParseListParams(r.URL.Query())
	if len(errs) > 0 {
		WriteValidationErrors(w, errs)
		return
	}

	page, err := h.jobService.ListJobs(r.Context(), actor, query)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list jobs")
		writeJobError(w, err, "Failed to retrieve jobs", "GET_JOBS_ERROR")
		return
	}

	if page.Jobs == nil {
		page.Jobs = []*models.Job{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Jobs retrieved successfully",
		"jobs":       page.Jobs,
		"pagination": page.Pagination,
	})
}

// GetJobHandler handles GET /api/jobs/{id}
func (h *JobHandler) GetJobHandler(w http.ResponseWriter, r *http.Request, actor *models.Actor) {
	id := extractIDFromPath(r.URL.Path, "/api/jobs/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Job ID is required", "INVALID_JOB_ID")
		return
	}

	job, err := h.jobService.GetJob(r.Context(), actor, id)
	if err != nil {
		h.logger.Warn().Err(err).Str("id", id).Msg("Failed to get job")
		writeJobError(w, err, "Failed to retrieve job", "GET_JOB_ERROR")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Job retrieved successfully",
		"job":     job,
	})
}

// CreateJobHandler handles POST /api/jobs
func (h *JobHandler) CreateJobHandler(w http.ResponseWriter, r *http.Request, actor *models.Actor) {
	var input models.JobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to decode job payload")
		WriteError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	job, err := h.jobService.CreateJob(r.Context(), actor, &input)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to create job")
		writeJobError(w, err, "Failed to create job", "CREATE_JOB_ERROR")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Job created successfully",
		"job":     job,
	})
}

// UpdateJobHandler handles PUT /api/jobs/{id}
func (h *JobHandler) UpdateJobHandler(w http.ResponseWriter, r *http.Request, actor *models.Actor) {
	id := extractIDFromPath(r.URL.Path, "/api/jobs/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Job ID is required", "INVALID_JOB_ID")
		return
	}

	var update models.JobUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to decode job payload")
		WriteError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	job, err := h.jobService.UpdateJob(r.Context(), actor, id, &update)
	if err != nil {
		if err == models.ErrNotOwner {
			WriteError(w, http.StatusForbidden, "You can only update your own jobs", "UNAUTHORIZED_UPDATE")
			return
		}
		h.logger.Warn().Err(err).Str("id", id).Msg("Failed to update job")
		writeJobError(w, err, "Failed to update job", "UPDATE_JOB_ERROR")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Job updated successfully",
		"job":     job,
	})
}

// DeleteJobHandler handles DELETE /api/jobs/{id}
func (h *JobHandler) DeleteJobHandler(w http.ResponseWriter, r *http.Request, actor *models.Actor) {
	id := extractIDFromPath(r.URL.Path, "/api/jobs/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Job ID is required", "INVALID_JOB_ID")
		return
	}

	if err := h.jobService.DeleteJob(r.Context(), actor, id); err != nil {
		if err == models.ErrNotOwner {
			WriteError(w, http.StatusForbidden, "You can only delete your own jobs", "UNAUTHORIZED_DELETE")
			return
		}
		h.logger.Warn().Err(err).Str("id", id).Msg("Failed to delete job")
		writeJobError(w, err, "Failed to delete job", "DELETE_JOB_ERROR")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Job deleted successfully",
	})
}

// MyJobsHandler handles GET /api/jobs/my/jobs
func (h *JobHandler) MyJobsHandler(w http.ResponseWriter, r *http.Request, actor *models.Actor) {
	query, errs := jobs.ParseOwnerListParams(r.URL.Query())
	if len(errs) > 0 {
		WriteValidationErrors(w, errs)
		return
	}

	page, err := h.jobService.ListOwnJobs(r.Context(), actor, query)
	if err != nil {
		h.logger.Error().Err(err).Str("actor", actor.ID).Msg("Failed to list own jobs")
		writeJobError(w, err, "Failed to retrieve jobs", "GET_MY_JOBS_ERROR")
		return
	}

	if page.Jobs == nil {
		page.Jobs = []*models.Job{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Jobs retrieved successfully",
		"jobs":          page.Jobs,
		"statusSummary": page.StatusSummary,
		"pagination":    page.Pagination,
	})
}

// MyStatsHandler handles GET /api/jobs/my/stats
func (h *JobHandler) MyStatsHandler(w http.ResponseWriter, r *http.Request, actor *models.Actor) {
	stats, err := h.jobService.GetOwnStats(r.Context(), actor)
	if err != nil {
		h.logger.Error().Err(err).Str("actor", actor.ID).Msg("Failed to get job stats")
		writeJobError(w, err, "Failed to retrieve job statistics", "GET_STATS_ERROR")
		return
	}

	if stats.RecentJobs == nil {
		stats.RecentJobs = []*models.JobSummary{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Job statistics retrieved successfully",
		"stats":      stats.Stats,
		"recentJobs": stats.RecentJobs,
	})
}

// ApplyHandler handles POST /api/jobs/{id}/apply
func (h *JobHandler) ApplyHandler(w http.ResponseWriter, r *http.Request, actor *models.Actor) {
	id := extractIDFromPath(strings.TrimSuffix(r.URL.Path, "/apply"), "/api/jobs/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Job ID is required", "INVALID_JOB_ID")
		return
	}

	if err := h.jobService.RecordApplication(r.Context(), id); err != nil {
		h.logger.Warn().Err(err).Str("id", id).Msg("Failed to record application")
		writeJobError(w, err, "Failed to record application", "APPLY_JOB_ERROR")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Application recorded successfully",
	})
}

// extractIDFromPath pulls the trailing ID segment from a URL path
func extractIDFromPath(path, prefix string) string {
	id := strings.TrimPrefix(path, prefix)
	id = strings.Trim(id, "/")
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
