package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/timeclock/internal/models"
	"github.com/balkashynov/timeclock/internal/worktime"
)

// Store is the gorm implementation of worktime.Store.
type Store struct {
	db *gorm.DB
}

var _ worktime.Store = (*Store)(nil)

// NewStore wraps an open database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func storeError(op string, err error) error {
	return &worktime.StoreError{Op: op, Err: err}
}

// InsertOpen records a new open session.
func (s *Store) InsertOpen(ctx context.Context, employeeID string, entryAt time.Time) (worktime.EntryID, error) {
	row := models.EmployeeTime{
		EmployeeID: employeeID,
		EntryTime:  worktime.FormatTimestamp(entryAt),
	}

	err := s.db.WithContext(ctx).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The partial unique index allows one open session per employee.
		return worktime.EntryID{}, storeError("insert open", worktime.ErrDuplicateOpenSession)
	}
	if err != nil {
		return worktime.EntryID{}, storeError("insert open", err)
	}
	return row.ID, nil
}

// CloseEntry sets the exit time and work hours of an open session.
func (s *Store) CloseEntry(ctx context.Context, id worktime.EntryID, exitAt time.Time, workHours float64) error {
	tx := s.db.WithContext(ctx)

	res := tx.Model(&models.EmployeeTime{}).
		Where("id = ? AND exit_time IS NULL", id).
		Updates(map[string]any{
			"exit_time": worktime.FormatTimestamp(exitAt),
			"hours":     workHours,
		})
	if res.Error != nil {
		return storeError("close entry", res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.EmployeeTime{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return storeError("close entry", err)
	}
	if count == 0 {
		return storeError("close entry", fmt.Errorf("%w: %s", worktime.ErrEntryNotFound, id))
	}
	return storeError("close entry", fmt.Errorf("%w: %s", worktime.ErrEntryClosed, id))
}

// FindLastOpen returns the employee's most recent open session, if any.
func (s *Store) FindLastOpen(ctx context.Context, employeeID string) (*worktime.Entry, error) {
	var row models.EmployeeTime

	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND exit_time IS NULL", employeeID).
		Order("entry_time DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // No open session is not an error
	}
	if err != nil {
		return nil, storeError("find last open", err)
	}

	entry, err := toEntry(row)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// QueryByDateRange returns sessions whose entry time lies in [start, end].
func (s *Store) QueryByDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]worktime.Entry, error) {
	var rows []models.EmployeeTime

	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND entry_time BETWEEN ? AND ?",
			employeeID, worktime.FormatTimestamp(start), worktime.FormatTimestamp(end)).
		Order("entry_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storeError("query by date range", err)
	}
	return toEntries(rows)
}

// QueryByExactDay returns sessions whose entry time falls on the given date.
func (s *Store) QueryByExactDay(ctx context.Context, employeeID string, year int, month time.Month, day int) ([]worktime.Entry, error) {
	var rows []models.EmployeeTime

	date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND substr(entry_time, 1, 10) = ?", employeeID, date).
		Order("entry_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storeError("query by day", err)
	}
	return toEntries(rows)
}

func toEntries(rows []models.EmployeeTime) ([]worktime.Entry, error) {
	entries := make([]worktime.Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := toEntry(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toEntry(row models.EmployeeTime) (worktime.Entry, error) {
	entryAt, err := worktime.ParseTimestamp("entry_time", row.EntryTime)
	if err != nil {
		return worktime.Entry{}, err
	}

	entry := worktime.Entry{
		ID:         row.ID,
		EmployeeID: row.EmployeeID,
		EntryAt:    entryAt,
		WorkHours:  row.Hours,
	}
	if row.ExitTime != nil {
		exitAt, err := worktime.ParseTimestamp("exit_time", *row.ExitTime)
		if err != nil {
			return worktime.Entry{}, err
		}
		entry.ExitAt = &exitAt
	}
	return entry, nil
}
