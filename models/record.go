package models

type Record struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type CreateRecordRequest struct {
	Text string `json:"text" validate:"required,notblank,max=10000"`
}

type UpdateRecordRequest struct {
	Text string `json:"text" validate:"required,notblank,max=10000"`
}

// ViewMode is the edit state of a record view.
type ViewMode string

const (
	ViewModeIdle    ViewMode = "idle"
	ViewModeEditing ViewMode = "editing"
)

// RecordViewState is a point-in-time copy of a record view.
type RecordViewState struct {
	Mode       ViewMode `json:"mode"`
	EditingID  *int64   `json:"editing_id"`
	EditBuffer string   `json:"edit_buffer"`
	Records    []Record `json:"records"`
}
