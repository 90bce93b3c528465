package worktime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLateness_Scenarios(t *testing.T) {
	ctx := context.Background()
	late := NewLateness(seededStore())

	tests := []struct {
		name       string
		day        int
		late, left int
	}{
		{"scenario A: late arrival, stays after six", 6, 15, 0},
		{"scenario B: early arrival, leaves early", 7, 0, 20},
		{"split day judged on its span", 13, 0, 0},
		{"open session has no exit", 14, 0, 0},
		{"no entries", 20, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLate, err := late.LateMinutes(ctx, "E1", 2025, time.January, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.late, gotLate)

			gotLeft, err := late.EarlyLeaveMinutes(ctx, "E1", 2025, time.January, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.left, gotLeft)
		})
	}
}

func TestLateness_TruncatesToWholeMinutes(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	store.add("E1", "2025-03-03 09:07:59", "2025-03-03 17:58:01")
	late := NewLateness(store)

	d, err := late.DailyAttendance(ctx, "E1", 2025, time.March, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, d.LateMinutes)
	assert.Equal(t, 1, d.EarlyLeaveMinutes)
	assert.Equal(t, 8, d.Minutes())
}

func TestLateness_SelectsEarliestEntryAndLatestExit(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	store.add("E1", "2025-03-04 13:00:00", "2025-03-04 16:00:00")
	store.add("E1", "2025-03-04 09:30:00", "2025-03-04 12:00:00")
	store.add("E1", "2025-03-04 16:30:00", "")
	late := NewLateness(store)

	d, err := late.DailyAttendance(ctx, "E1", 2025, time.March, 4)
	require.NoError(t, err)
	assert.Equal(t, 30, d.LateMinutes)
	// The open 16:30 session has no exit; the latest exit is 16:00.
	assert.Equal(t, 120, d.EarlyLeaveMinutes)
}

func TestLateness_ExitOnNextDayIsNotEarly(t *testing.T) {
	store := &memStore{}
	store.add("E1", "2025-03-05 20:00:00", "2025-03-06 04:00:00")
	late := NewLateness(store)

	d, err := late.DailyAttendance(context.Background(), "E1", 2025, time.March, 5)
	require.NoError(t, err)
	assert.Equal(t, 660, d.LateMinutes)
	assert.Zero(t, d.EarlyLeaveMinutes)
}

func TestLateness_MonthlyAttendance(t *testing.T) {
	late := NewLateness(seededStore())

	days, err := late.MonthlyAttendance(context.Background(), "E1", 2025, time.January)
	require.NoError(t, err)
	require.Len(t, days, 31)
	assert.Equal(t, DayLateness{Day: 6, LateMinutes: 15}, days[5])
	assert.Equal(t, DayLateness{Day: 7, EarlyLeaveMinutes: 20}, days[6])
	for i, d := range days {
		assert.Equal(t, i+1, d.Day)
	}
}

func TestLateness_StoreError(t *testing.T) {
	ctx := context.Background()
	late := NewLateness(&memStore{err: errDiskGone})

	_, err := late.LateMinutes(ctx, "E1", 2025, time.January, 6)
	requireStoreError(t, err)
	_, err = late.EarlyLeaveMinutes(ctx, "E1", 2025, time.January, 6)
	requireStoreError(t, err)
	_, err = late.MonthlyAttendance(ctx, "E1", 2025, time.January)
	requireStoreError(t, err)
}
