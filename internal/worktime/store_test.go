package worktime

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store used by the calculator tests.
type memStore struct {
	mu      sync.Mutex
	entries []Entry
	err     error // returned by every call when set
	inserts int
	closes  int
}

func (s *memStore) InsertOpen(_ context.Context, employeeID string, entryAt time.Time) (EntryID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return uuid.Nil, &StoreError{Op: "insert", Err: s.err}
	}
	id := uuid.New()
	s.entries = append(s.entries, Entry{ID: id, EmployeeID: employeeID, EntryAt: entryAt})
	s.inserts++
	return id, nil
}

func (s *memStore) CloseEntry(_ context.Context, id EntryID, exitAt time.Time, workHours float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return &StoreError{Op: "close", Err: s.err}
	}
	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		if s.entries[i].ExitAt != nil {
			return &StoreError{Op: "close", Err: ErrEntryClosed}
		}
		s.entries[i].ExitAt = &exitAt
		s.entries[i].WorkHours = workHours
		s.closes++
		return nil
	}
	return &StoreError{Op: "close", Err: ErrEntryNotFound}
}

func (s *memStore) FindLastOpen(_ context.Context, employeeID string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, &StoreError{Op: "find open", Err: s.err}
	}
	var last *Entry
	for i := range s.entries {
		e := s.entries[i]
		if e.EmployeeID != employeeID || e.ExitAt != nil {
			continue
		}
		if last == nil || e.EntryAt.After(last.EntryAt) {
			last = &e
		}
	}
	return last, nil
}

func (s *memStore) QueryByDateRange(_ context.Context, employeeID string, start, end time.Time) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, &StoreError{Op: "query range", Err: s.err}
	}
	var out []Entry
	for _, e := range s.entries {
		if e.EmployeeID == employeeID && !e.EntryAt.Before(start) && !e.EntryAt.After(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryAt.Before(out[j].EntryAt) })
	return out, nil
}

func (s *memStore) QueryByExactDay(ctx context.Context, employeeID string, year int, month time.Month, day int) ([]Entry, error) {
	return s.QueryByDateRange(ctx, employeeID, startOfDay(year, month, day), endOfDay(year, month, day))
}

// add stores a closed entry with hours computed the way clock-out does.
func (s *memStore) add(employeeID, entry, exit string) {
	in := mustTime(entry)
	e := Entry{ID: uuid.New(), EmployeeID: employeeID, EntryAt: in}
	if exit != "" {
		out := mustTime(exit)
		e.ExitAt = &out
		e.WorkHours = HoursBetween(in, out)
	}
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()
}

func mustTime(s string) time.Time {
	t, err := ParseTimestamp("test", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestService(store Store, now string) *Service {
	clock := ClockFunc(func() time.Time { return mustTime(now) })
	return New(store, clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var errDiskGone = errors.New("disk I/O error")

func requireStoreError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	require.ErrorIs(t, err, errDiskGone)
}
