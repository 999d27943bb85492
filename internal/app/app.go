package app

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/jobdeck/internal/common"
	"github.com/ternarybob/jobdeck/internal/handlers"
	"github.com/ternarybob/jobdeck/internal/interfaces"
	authsvc "github.com/ternarybob/jobdeck/internal/services/auth"
	jobsvc "github.com/ternarybob/jobdeck/internal/services/jobs"
	"github.com/ternarybob/jobdeck/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	// Services
	JobService  interfaces.JobService
	AuthService interfaces.AuthService

	// Handlers
	JobHandler     *handlers.JobHandler
	AuthHandler    *handlers.AuthHandler
	APIHandler     *handlers.APIHandler
	AuthMiddleware *handlers.AuthMiddleware

	// Background maintenance
	maintenance *cron.Cron
}

// New wires up storage, services and handlers from the configuration
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	storageManager, err := badger.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	jobService := jobsvc.NewService(storageManager, logger)
	authService := authsvc.NewService(storageManager, &config.Auth, logger)

	app := &App{
		Config:         config,
		Logger:         logger,
		StorageManager: storageManager,
		JobService:     jobService,
		AuthService:    authService,
		JobHandler:     handlers.NewJobHandler(jobService, logger),
		AuthHandler:    handlers.NewAuthHandler(authService, logger),
		APIHandler:     handlers.NewAPIHandler(logger),
		AuthMiddleware: handlers.NewAuthMiddleware(authService, logger),
	}

	if err := app.startMaintenance(); err != nil {
		storageManager.Close()
		return nil, err
	}

	return app, nil
}

// startMaintenance schedules periodic Badger value-log GC
func (a *App) startMaintenance() error {
	schedule := a.Config.Maintenance.GCSchedule
	if schedule == "" {
		a.Logger.Debug().Msg("Value-log GC disabled (no schedule configured)")
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := a.StorageManager.RunGC(); err != nil {
			a.Logger.Warn().Err(err).Msg("Value-log GC failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid gc_schedule %q: %w", schedule, err)
	}

	c.Start()
	a.maintenance = c

	a.Logger.Info().Str("schedule", schedule).Msg("Storage maintenance scheduled")
	return nil
}

// Close stops background work and closes the storage manager
func (a *App) Close() error {
	if a.maintenance != nil {
		a.maintenance.Stop()
	}
	if a.StorageManager != nil {
		return a.StorageManager.Close()
	}
	return nil
}
