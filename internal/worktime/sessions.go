package worktime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// HoursBetween returns the whole seconds from a to b divided by 3600. The
// result is negative when b is before a.
func HoursBetween(a, b time.Time) float64 {
	return float64(wallSeconds(a, b)) / 3600.0
}

// Sessions governs the open/closed lifecycle of work sessions. Clock-in and
// clock-out for the same employee are serialised so that at most one session
// per employee is open.
type Sessions struct {
	store  Store
	clock  Clock
	logger *slog.Logger
	locks  employeeLocks
}

// NewSessions creates a session state machine over store.
func NewSessions(store Store, clock Clock, logger *slog.Logger) *Sessions {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sessions{store: store, clock: clock, logger: logger}
}

// ClockIn opens a session for employeeID at the current time.
func (s *Sessions) ClockIn(ctx context.Context, employeeID string) (Entry, error) {
	return s.ClockInAt(ctx, employeeID, s.clock.Now())
}

// ClockInAt opens a session for employeeID starting at now.
func (s *Sessions) ClockInAt(ctx context.Context, employeeID string, now time.Time) (Entry, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return Entry{}, ErrMissingEmployee
	}
	now = now.Truncate(time.Second)

	unlock := s.locks.lock(employeeID)
	defer unlock()

	open, err := s.store.FindLastOpen(ctx, employeeID)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to look up open session: %w", err)
	}
	if open != nil {
		return Entry{}, fmt.Errorf("%w for employee %s since %s",
			ErrDuplicateOpenSession, employeeID, FormatTimestamp(open.EntryAt))
	}

	id, err := s.store.InsertOpen(ctx, employeeID, now)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to open session: %w", err)
	}

	s.logger.Info("clocked in",
		slog.String("employee_id", employeeID),
		slog.String("entry_id", id.String()),
		slog.String("at", FormatTimestamp(now)))

	return Entry{ID: id, EmployeeID: employeeID, EntryAt: now}, nil
}

// ClockOut closes the open session of employeeID at the current time.
func (s *Sessions) ClockOut(ctx context.Context, employeeID string) (Entry, error) {
	return s.ClockOutAt(ctx, employeeID, s.clock.Now())
}

// ClockOutAt closes the most recent open session of employeeID at now and
// freezes its work hours. The store is left untouched when no session is open
// or now precedes the entry time.
func (s *Sessions) ClockOutAt(ctx context.Context, employeeID string, now time.Time) (Entry, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return Entry{}, ErrMissingEmployee
	}
	now = now.Truncate(time.Second)

	unlock := s.locks.lock(employeeID)
	defer unlock()

	open, err := s.store.FindLastOpen(ctx, employeeID)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to look up open session: %w", err)
	}
	if open == nil {
		return Entry{}, fmt.Errorf("%w for employee %s", ErrNoOpenSession, employeeID)
	}
	if wallClock(now).Before(wallClock(open.EntryAt)) {
		return Entry{}, fmt.Errorf("%w: entry %s, exit %s",
			ErrExitBeforeEntry, FormatTimestamp(open.EntryAt), FormatTimestamp(now))
	}

	hours := HoursBetween(open.EntryAt, now)
	if err := s.store.CloseEntry(ctx, open.ID, now, hours); err != nil {
		return Entry{}, fmt.Errorf("failed to close session: %w", err)
	}

	closed := *open
	closed.ExitAt = &now
	closed.WorkHours = hours

	s.logger.Info("clocked out",
		slog.String("employee_id", employeeID),
		slog.String("entry_id", closed.ID.String()),
		slog.String("at", FormatTimestamp(now)),
		slog.Float64("work_hours", hours))

	return closed, nil
}

// Active returns the open session of employeeID, or nil if there is none.
func (s *Sessions) Active(ctx context.Context, employeeID string) (*Entry, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrMissingEmployee
	}
	return s.store.FindLastOpen(ctx, employeeID)
}
