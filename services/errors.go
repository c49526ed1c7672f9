package services

import "errors"

// Common service-level errors
var (
	// Record view errors
	ErrEmptyText      = errors.New("text must not be empty")
	ErrRecordNotFound = errors.New("record not found")
	ErrNotEditing     = errors.New("no record is being edited")
	ErrEditInProgress = errors.New("a record is being edited")

	// Schedule errors
	ErrMissingCredentials = errors.New("control number and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
