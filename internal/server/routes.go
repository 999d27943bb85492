package server

import (
	"net/http"
	"strings"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	auth := s.app.AuthMiddleware

	// API routes - Authentication
	mux.HandleFunc("/api/auth/register", s.app.AuthHandler.RegisterHandler) // POST
	mux.HandleFunc("/api/auth/login", s.app.AuthHandler.LoginHandler)       // POST

	// API routes - Jobs
	// GET  /api/jobs            - public listing (any authenticated role)
	// POST /api/jobs            - create posting (recruiter)
	mux.HandleFunc("/api/jobs", s.handleJobsRoute)
	mux.HandleFunc("/api/jobs/my/jobs", auth.RequireRecruiter(s.app.JobHandler.MyJobsHandler))   // GET
	mux.HandleFunc("/api/jobs/my/stats", auth.RequireRecruiter(s.app.JobHandler.MyStatsHandler)) // GET
	mux.HandleFunc("/api/jobs/", s.handleJobRoutes)                                              // GET/PUT/DELETE /{id}, POST /{id}/apply

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}

// handleJobsRoute dispatches the /api/jobs collection endpoint by method
func (s *Server) handleJobsRoute(w http.ResponseWriter, r *http.Request) {
	auth := s.app.AuthMiddleware

	switch r.Method {
	case "GET":
		auth.Authenticate(s.app.JobHandler.ListJobsHandler)(w, r)
	case "POST":
		auth.RequireRecruiter(s.app.JobHandler.CreateJobHandler)(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleJobRoutes dispatches /api/jobs/{id} and its subpaths
func (s *Server) handleJobRoutes(w http.ResponseWriter, r *http.Request) {
	auth := s.app.AuthMiddleware
	path := r.URL.Path

	// POST /api/jobs/{id}/apply
	if r.Method == "POST" && strings.HasSuffix(path, "/apply") {
		auth.Authenticate(s.app.JobHandler.ApplyHandler)(w, r)
		return
	}

	switch r.Method {
	case "GET":
		// Single-record fetch is open: anyone with the link can view,
		// but a presented token must still verify
		auth.Optional(s.app.JobHandler.GetJobHandler)(w, r)
	case "PUT":
		auth.RequireRecruiter(s.app.JobHandler.UpdateJobHandler)(w, r)
	case "DELETE":
		auth.RequireRecruiter(s.app.JobHandler.DeleteJobHandler)(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
