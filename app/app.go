package app

import (
	"log/slog"
	"registro/database"
	"registro/services"
	"registro/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Records   *services.RecordView
	Schedule  *services.ScheduleService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, schedule *services.ScheduleService, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Repo:      repo,
		Records:   services.NewRecordView(repo, logger),
		Schedule:  schedule,
		Validator: validator.New(),
		Logger:    logger,
	}
}
