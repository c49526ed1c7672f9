package setup

import (
	"log/slog"
	"registro/app"
	"registro/config"
	"registro/database"
	"registro/export"
	"registro/schedule"
	"registro/services"
)

// InitDatabase opens the SQLite database and ensures the Registro table
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies and loads the
// initial record list
func InitApp(cfg *config.Config, db *database.DB, logger *slog.Logger) (*app.App, error) {
	repo := database.NewRepository(db)

	client := schedule.NewClient(cfg.ScheduleAPIURL, cfg.ScheduleTimeout)
	exporter := export.NewPDFExporter(cfg.ExportDir)
	scheduleService := services.NewScheduleService(client, exporter, logger)
	logger.Info("schedule client configured", "url", cfg.ScheduleAPIURL, "timeout", cfg.ScheduleTimeout)

	application := app.New(repo, scheduleService, logger)
	if err := application.Records.Load(); err != nil {
		return nil, err
	}
	logger.Info("application initialized", "records", len(application.Records.Snapshot().Records))

	return application, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
