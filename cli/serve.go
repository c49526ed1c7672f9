package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"registro/config/setup"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newServeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.serve()
		},
	}
}

func (e *env) serve() error {
	// The server logs to stdout like any long-running service
	logger := setup.NewLogger(e.cfg, e.out)
	slog.SetDefault(logger)

	db, err := setup.InitDatabase(e.cfg.DBPath, logger)
	if err != nil {
		return sysError("initialize database: %w", err)
	}

	application, err := setup.InitApp(e.cfg, db, logger)
	if err != nil {
		setup.Shutdown(db, logger)
		return sysError("initialize app: %w", err)
	}

	app := setup.NewFiberApp(e.cfg, logger)
	setup.ApplyMiddleware(app, e.cfg, logger)
	setup.RegisterRoutes(app, application)

	logger.Info("starting server", "port", e.cfg.Port, "env", e.cfg.Env)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(":" + e.cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		logger.Error("server failed", "error", err)
		setup.Shutdown(db, logger)
		return sysError("listen on port %s: %w", e.cfg.Port, err)
	case <-quit:
	}

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	setup.Shutdown(db, logger)
	logger.Info("server stopped")
	return nil
}
