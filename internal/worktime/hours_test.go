package worktime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *memStore {
	store := &memStore{}
	// ISO week 1 of 2025 (Sunday).
	store.add("E1", "2025-01-05 10:00:00", "2025-01-05 12:00:00")
	// ISO week 2 of 2025.
	store.add("E1", "2025-01-06 09:15:00", "2025-01-06 18:30:00")
	store.add("E1", "2025-01-07 08:50:00", "2025-01-07 17:40:00")
	store.add("E1", "2025-01-12 23:00:00", "2025-01-13 01:00:00")
	// ISO week 3 of 2025.
	store.add("E1", "2025-01-13 09:00:00", "2025-01-13 13:00:00")
	store.add("E1", "2025-01-13 14:00:00", "2025-01-13 18:00:00")
	// Other months and years.
	store.add("E1", "2025-02-03 09:00:00", "2025-02-03 17:00:00")
	store.add("E1", "2024-12-31 09:00:00", "2024-12-31 12:00:00")
	// Still open.
	store.add("E1", "2025-01-14 09:00:00", "")
	// Another employee.
	store.add("E2", "2025-01-06 09:00:00", "2025-01-06 18:00:00")
	return store
}

func TestAggregator_DailyHours(t *testing.T) {
	ctx := context.Background()
	agg := NewAggregator(seededStore())

	tests := []struct {
		day  int
		want float64
	}{
		{6, 9.25},
		{7, 8 + 50.0/60},
		{12, 2}, // counted on the day the session started
		{13, 8},
		{14, 0}, // open session
		{20, 0}, // no data
	}
	for _, tt := range tests {
		got, err := agg.DailyHours(ctx, "E1", 2025, time.January, tt.day)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "day %d", tt.day)
	}
}

func TestAggregator_WeeklyHours(t *testing.T) {
	ctx := context.Background()
	agg := NewAggregator(seededStore())

	week1, err := agg.WeeklyHours(ctx, "E1", 2025, 1)
	require.NoError(t, err)
	assert.InDelta(t, 3+2, week1, 1e-9)

	week2, err := agg.WeeklyHours(ctx, "E1", 2025, 2)
	require.NoError(t, err)
	assert.InDelta(t, 9.25+8+50.0/60+2, week2, 1e-9)

	week3, err := agg.WeeklyHours(ctx, "E1", 2025, 3)
	require.NoError(t, err)
	assert.InDelta(t, 8, week3, 1e-9)

	_, err = agg.WeeklyHours(ctx, "E1", 2025, 53)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAggregator_MonthlyAndYearlyHours(t *testing.T) {
	ctx := context.Background()
	agg := NewAggregator(seededStore())

	jan, err := agg.MonthlyHours(ctx, "E1", 2025, time.January)
	require.NoError(t, err)
	assert.InDelta(t, 2+9.25+8+50.0/60+2+8, jan, 1e-9)

	feb, err := agg.MonthlyHours(ctx, "E1", 2025, time.February)
	require.NoError(t, err)
	assert.InDelta(t, 8, feb, 1e-9)

	year, err := agg.YearlyHours(ctx, "E1", 2025)
	require.NoError(t, err)
	assert.InDelta(t, jan+feb, year, 1e-9)

	prev, err := agg.YearlyHours(ctx, "E1", 2024)
	require.NoError(t, err)
	assert.InDelta(t, 3, prev, 1e-9)

	none, err := agg.MonthlyHours(ctx, "nobody", 2025, time.January)
	require.NoError(t, err)
	assert.Zero(t, none)
}

func TestAggregator_MonthlyBreakdown(t *testing.T) {
	agg := NewAggregator(seededStore())

	months, err := agg.MonthlyBreakdown(context.Background(), "E1", 2025)
	require.NoError(t, err)
	assert.InDelta(t, 2+9.25+8+50.0/60+2+8, months[0], 1e-9)
	assert.InDelta(t, 8, months[1], 1e-9)
	for _, h := range months[2:] {
		assert.Zero(t, h)
	}
}

func TestAggregator_MonthlyRecords(t *testing.T) {
	agg := NewAggregator(seededStore())

	records, err := agg.MonthlyRecords(context.Background(), "E1", 2025, time.January)
	require.NoError(t, err)
	require.Len(t, records, 7)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].EntryAt.Before(records[i-1].EntryAt))
	}
	assert.Equal(t, StateOpen, records[len(records)-1].State())
}

func TestAggregator_InvalidDates(t *testing.T) {
	ctx := context.Background()
	agg := NewAggregator(seededStore())

	_, err := agg.DailyHours(ctx, "E1", 2025, time.February, 30)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = agg.MonthlyHours(ctx, "E1", 2025, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = agg.YearlyHours(ctx, "E1", 10000)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAggregator_StoreErrorIsNotZero(t *testing.T) {
	ctx := context.Background()
	agg := NewAggregator(&memStore{err: errDiskGone})

	_, err := agg.DailyHours(ctx, "E1", 2025, time.January, 6)
	requireStoreError(t, err)
	_, err = agg.WeeklyHours(ctx, "E1", 2025, 2)
	requireStoreError(t, err)
	_, err = agg.MonthlyHours(ctx, "E1", 2025, time.January)
	requireStoreError(t, err)
	_, err = agg.YearlyHours(ctx, "E1", 2025)
	requireStoreError(t, err)
	_, err = agg.MonthlyBreakdown(ctx, "E1", 2025)
	requireStoreError(t, err)
}
