package worktime

import (
	"context"
	"fmt"
	"time"
)

// Fixed daily schedule, as offsets from local midnight.
const (
	ScheduledEntry = 9 * time.Hour
	ScheduledExit  = 18 * time.Hour
)

// DayLateness holds the penalised minutes of one day.
type DayLateness struct {
	Day               int
	LateMinutes       int
	EarlyLeaveMinutes int
}

// Minutes returns late and early-leave minutes combined.
func (d DayLateness) Minutes() int {
	return d.LateMinutes + d.EarlyLeaveMinutes
}

// Lateness compares recorded entry and exit times against the fixed
// schedule. The day's earliest entry decides lateness and the day's latest
// exit decides early leave, so a day split into several sessions is judged on
// its overall span.
type Lateness struct {
	store Reader
}

// NewLateness creates a lateness calculator reading from store.
func NewLateness(store Reader) *Lateness {
	return &Lateness{store: store}
}

// LateMinutes returns the whole minutes by which the day's earliest entry
// follows 09:00, or 0.
func (l *Lateness) LateMinutes(ctx context.Context, employeeID string, year int, month time.Month, day int) (int, error) {
	d, err := l.DailyAttendance(ctx, employeeID, year, month, day)
	if err != nil {
		return 0, err
	}
	return d.LateMinutes, nil
}

// EarlyLeaveMinutes returns the whole minutes by which the day's latest exit
// precedes 18:00, or 0.
func (l *Lateness) EarlyLeaveMinutes(ctx context.Context, employeeID string, year int, month time.Month, day int) (int, error) {
	d, err := l.DailyAttendance(ctx, employeeID, year, month, day)
	if err != nil {
		return 0, err
	}
	return d.EarlyLeaveMinutes, nil
}

// DailyAttendance returns late and early-leave minutes of one day from a
// single store read.
func (l *Lateness) DailyAttendance(ctx context.Context, employeeID string, year int, month time.Month, day int) (DayLateness, error) {
	if err := validateDay(year, month, day); err != nil {
		return DayLateness{}, err
	}
	entries, err := l.store.QueryByExactDay(ctx, employeeID, year, month, day)
	if err != nil {
		return DayLateness{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return DayLateness{
		Day:               day,
		LateMinutes:       lateMinutes(entries, scheduled(year, month, day, ScheduledEntry)),
		EarlyLeaveMinutes: earlyLeaveMinutes(entries, scheduled(year, month, day, ScheduledExit)),
	}, nil
}

// scheduled returns the wall-clock time offset after midnight of the date.
func scheduled(year int, month time.Month, day int, offset time.Duration) time.Time {
	return time.Date(year, month, day, 0, 0, int(offset/time.Second), 0, time.Local)
}

// MonthlyAttendance returns DailyAttendance for every day of the month, day 1
// first.
func (l *Lateness) MonthlyAttendance(ctx context.Context, employeeID string, year int, month time.Month) ([]DayLateness, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	days := make([]DayLateness, DaysIn(year, month))
	err := forEachDay(ctx, year, month, func(ctx context.Context, day int) error {
		d, err := l.DailyAttendance(ctx, employeeID, year, month, day)
		if err != nil {
			return err
		}
		days[day-1] = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

func lateMinutes(entries []Entry, expected time.Time) int {
	if len(entries) == 0 {
		return 0
	}
	earliest := entries[0].EntryAt
	for _, e := range entries[1:] {
		if e.EntryAt.Before(earliest) {
			earliest = e.EntryAt
		}
	}
	if !wallClock(earliest).After(wallClock(expected)) {
		return 0
	}
	return int(wallSeconds(expected, earliest) / 60)
}

func earlyLeaveMinutes(entries []Entry, expected time.Time) int {
	var latest *time.Time
	for _, e := range entries {
		if e.ExitAt == nil {
			continue
		}
		if latest == nil || e.ExitAt.After(*latest) {
			latest = e.ExitAt
		}
	}
	if latest == nil || !wallClock(*latest).Before(wallClock(expected)) {
		return 0
	}
	return int(wallSeconds(*latest, expected) / 60)
}
