package database

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a storage failure.
type ErrorKind int

const (
	KindSchema ErrorKind = iota + 1
	KindWrite
	KindRead
)

func (k ErrorKind) String() string {
	switch k {
	case KindSchema:
		return "schema error"
	case KindWrite:
		return "write error"
	case KindRead:
		return "read error"
	default:
		return "storage error"
	}
}

// Sentinels for errors.Is against a *StorageError.
var (
	ErrSchema = errors.New("schema error")
	ErrWrite  = errors.New("write error")
	ErrRead   = errors.New("read error")
)

// StorageError is returned by every Repository operation that fails.
type StorageError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *StorageError) Is(target error) bool {
	switch target {
	case ErrSchema:
		return e.Kind == KindSchema
	case ErrWrite:
		return e.Kind == KindWrite
	case ErrRead:
		return e.Kind == KindRead
	}
	return false
}

func writeError(op string, err error) error {
	return &StorageError{Kind: KindWrite, Op: op, Err: err}
}

func readError(op string, err error) error {
	return &StorageError{Kind: KindRead, Op: op, Err: err}
}
