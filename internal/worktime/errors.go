package worktime

import (
	"errors"
	"fmt"
)

// Time tracking errors
var (
	// Session errors
	ErrNoOpenSession        = errors.New("no active work session")
	ErrDuplicateOpenSession = errors.New("work session already open")
	ErrExitBeforeEntry      = errors.New("exit time is before entry time")

	// Store errors
	ErrEntryNotFound = errors.New("time entry not found")
	ErrEntryClosed   = errors.New("time entry already closed")

	ErrMissingEmployee = errors.New("employee id is required")
	ErrInvalidDate     = errors.New("invalid date")
)

// ParseError reports a persisted timestamp that does not match TimestampLayout.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StoreError wraps a failure of the time entry store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
