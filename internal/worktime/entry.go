package worktime

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EntryID identifies a time entry in the store.
type EntryID = uuid.UUID

// State is the lifecycle state of a time entry.
type State int

const (
	StateOpen State = iota
	StateClosed
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Entry is one clock-in to clock-out session of an employee.
type Entry struct {
	ID         EntryID
	EmployeeID string
	EntryAt    time.Time
	ExitAt     *time.Time // nil while the session is open
	WorkHours  float64
}

// State reports whether the entry is still open.
func (e Entry) State() State {
	if e.ExitAt == nil {
		return StateOpen
	}
	return StateClosed
}

// Reader is the read side of the time entry store.
type Reader interface {
	// QueryByDateRange returns entries whose entry time lies in [start, end],
	// ascending by entry time.
	QueryByDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]Entry, error)
	// QueryByExactDay returns entries whose entry time falls on the given date,
	// ascending by entry time.
	QueryByExactDay(ctx context.Context, employeeID string, year int, month time.Month, day int) ([]Entry, error)
}

// Store is the durable record of time entries.
type Store interface {
	Reader
	InsertOpen(ctx context.Context, employeeID string, entryAt time.Time) (EntryID, error)
	// CloseEntry fails with a *StoreError wrapping ErrEntryNotFound or
	// ErrEntryClosed when the entry cannot be closed.
	CloseEntry(ctx context.Context, id EntryID, exitAt time.Time, workHours float64) error
	// FindLastOpen returns the most recent open entry, or nil if there is none.
	FindLastOpen(ctx context.Context, employeeID string) (*Entry, error)
}
