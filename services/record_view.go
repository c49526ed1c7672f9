package services

import (
	"log/slog"
	"registro/models"
	"strings"
	"sync"
)

// RecordView keeps a displayed list of records in step with the store and
// tracks which record, if any, is being edited.
//
// Every mutation is one store call followed by a full reload. The mutex
// serialises operations so a view never has two store calls in flight.
type RecordView struct {
	repo   RecordRepository
	logger *slog.Logger

	mu         sync.Mutex
	records    []models.Record
	mode       models.ViewMode
	editingID  int64
	editBuffer string
}

// NewRecordView creates a view that owns repo for its lifetime
func NewRecordView(repo RecordRepository, logger *slog.Logger) *RecordView {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordView{
		repo:    repo,
		logger:  logger,
		records: make([]models.Record, 0),
		mode:    models.ViewModeIdle,
	}
}

// Load ensures the schema exists and replaces the displayed list.
func (v *RecordView) Load() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.repo.EnsureSchema(); err != nil {
		return err
	}
	return v.reload()
}

// Add inserts a record and reloads. Only allowed while idle.
func (v *RecordView) Add(text string) (models.Record, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mode != models.ViewModeIdle {
		return models.Record{}, ErrEditInProgress
	}
	if strings.TrimSpace(text) == "" {
		return models.Record{}, ErrEmptyText
	}

	rec, err := v.repo.Insert(text)
	if err != nil {
		return models.Record{}, err
	}
	v.logger.Debug("record added", "id", rec.ID)

	// The insert is durable even if the reload fails; the caller clears its
	// input either way.
	return rec, v.reload()
}

// EnterEdit puts the view in edit mode for id and returns the text the edit
// buffer was filled with. Switching from one edited record to another is
// allowed and discards the previous buffer.
func (v *RecordView) EnterEdit(id int64) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, rec := range v.records {
		if rec.ID == id {
			v.mode = models.ViewModeEditing
			v.editingID = id
			v.editBuffer = rec.Text
			return rec.Text, nil
		}
	}
	return "", ErrRecordNotFound
}

// SetEditBuffer replaces the pending text of the edited record.
func (v *RecordView) SetEditBuffer(text string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mode != models.ViewModeEditing {
		return ErrNotEditing
	}
	v.editBuffer = text
	return nil
}

// Save commits the edit buffer and returns to idle. On a failed update the
// view stays in edit mode with the buffer intact.
func (v *RecordView) Save() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.save()
}

// SaveText replaces the edit buffer with text and saves it in one step, so
// no other operation can change the edited record in between.
func (v *RecordView) SaveText(text string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mode != models.ViewModeEditing {
		return ErrNotEditing
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	v.editBuffer = text
	return v.save()
}

// save commits the edit buffer. Callers hold v.mu.
func (v *RecordView) save() error {
	if v.mode != models.ViewModeEditing {
		return ErrNotEditing
	}
	if strings.TrimSpace(v.editBuffer) == "" {
		return ErrEmptyText
	}

	if err := v.repo.Update(v.editingID, v.editBuffer); err != nil {
		return err
	}
	v.logger.Debug("record updated", "id", v.editingID)

	v.exitEdit()
	return v.reload()
}

// CancelEdit drops the edit buffer and returns to idle.
func (v *RecordView) CancelEdit() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitEdit()
}

// Delete removes a record in any mode. Deleting the record under edit
// returns the view to idle.
func (v *RecordView) Delete(id int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.repo.Delete(id); err != nil {
		return err
	}
	v.logger.Debug("record deleted", "id", id)

	if v.mode == models.ViewModeEditing && v.editingID == id {
		v.exitEdit()
	}
	return v.reload()
}

// ClearAll removes every record and empties the displayed list without a
// reload.
func (v *RecordView) ClearAll() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.repo.Clear(); err != nil {
		return err
	}
	v.logger.Debug("records cleared")

	v.records = make([]models.Record, 0)
	v.exitEdit()
	return nil
}

// Snapshot returns a copy of the current view state.
func (v *RecordView) Snapshot() models.RecordViewState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := models.RecordViewState{
		Mode:       v.mode,
		EditBuffer: v.editBuffer,
		Records:    append(make([]models.Record, 0, len(v.records)), v.records...),
	}
	if v.mode == models.ViewModeEditing {
		id := v.editingID
		state.EditingID = &id
	}
	return state
}

// reload replaces the displayed list. A failed read keeps the last list that
// was loaded successfully. Callers hold v.mu.
func (v *RecordView) reload() error {
	records, err := v.repo.ListAll()
	if err != nil {
		v.logger.Warn("reload failed, keeping last displayed records", "count", len(v.records), "error", err)
		return err
	}
	if records == nil {
		records = make([]models.Record, 0)
	}
	v.records = records
	return nil
}

func (v *RecordView) exitEdit() {
	v.mode = models.ViewModeIdle
	v.editingID = 0
	v.editBuffer = ""
}
