package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"registro/models"
	"registro/schedule"
	"registro/templates/pages"
	"strings"
	"sync"
)

// ScheduleService loads a class schedule from the remote API and keeps the
// last successful result for rendering and export
type ScheduleService struct {
	fetcher  ScheduleFetcher
	exporter ScheduleExporter
	logger   *slog.Logger

	mu      sync.RWMutex
	entries []models.ScheduleEntry
}

// NewScheduleService creates a new schedule service
func NewScheduleService(fetcher ScheduleFetcher, exporter ScheduleExporter, logger *slog.Logger) *ScheduleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleService{
		fetcher:  fetcher,
		exporter: exporter,
		logger:   logger,
		entries:  make([]models.ScheduleEntry, 0),
	}
}

// Load fetches the schedule for the given credentials and replaces the
// current one. The current schedule is kept when the fetch fails.
func (ss *ScheduleService) Load(controlNumber, password string) ([]models.ScheduleEntry, error) {
	if strings.TrimSpace(controlNumber) == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	entries, err := ss.fetcher.Fetch(controlNumber, password)
	if err != nil {
		var statusErr *schedule.StatusError
		if errors.As(err, &statusErr) {
			ss.logger.Warn("schedule request rejected", "status", statusErr.Code)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if entries == nil {
		entries = make([]models.ScheduleEntry, 0)
	}

	ss.mu.Lock()
	ss.entries = entries
	ss.mu.Unlock()

	ss.logger.Info("schedule loaded", "entries", len(entries))
	return ss.Entries(), nil
}

// Entries returns a copy of the current schedule
func (ss *ScheduleService) Entries() []models.ScheduleEntry {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return append(make([]models.ScheduleEntry, 0, len(ss.entries)), ss.entries...)
}

// Export writes the current schedule to a PDF file and returns its path
func (ss *ScheduleService) Export() (string, error) {
	path, err := ss.exporter.Export(ss.Entries())
	if err != nil {
		return "", fmt.Errorf("failed to export schedule: %w", err)
	}
	ss.logger.Info("schedule exported", "path", path)
	return path, nil
}

// WritePDF streams the current schedule as a PDF document
func (ss *ScheduleService) WritePDF(w io.Writer) error {
	return ss.exporter.Write(w, ss.Entries())
}

// RenderHTML writes the current schedule as an HTML document
func (ss *ScheduleService) RenderHTML(ctx context.Context, w io.Writer) error {
	return pages.ScheduleDocument(ss.Entries()).Render(ctx, w)
}
