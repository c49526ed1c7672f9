package services

import (
	"io"
	"registro/models"
)

// RecordRepository defines the record store operations used by RecordView
type RecordRepository interface {
	EnsureSchema() error
	Insert(text string) (models.Record, error)
	Update(id int64, text string) error
	Delete(id int64) error
	Clear() error
	ListAll() ([]models.Record, error)
}

// ScheduleFetcher retrieves a schedule from the remote API
type ScheduleFetcher interface {
	Fetch(controlNumber, password string) ([]models.ScheduleEntry, error)
}

// ScheduleExporter turns a schedule into a PDF document
// Interface for testability - production uses export.PDFExporter
type ScheduleExporter interface {
	Export(entries []models.ScheduleEntry) (string, error)
	Write(w io.Writer, entries []models.ScheduleEntry) error
}
