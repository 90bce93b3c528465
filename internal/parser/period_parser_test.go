package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday of ISO week 2025-W01.
var now = time.Date(2025, time.January, 1, 10, 30, 0, 0, time.Local)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input   string
		want    Day
		wantErr bool
	}{
		{"2025-01-06", Day{2025, time.January, 6}, false},
		{"2024-2-29", Day{2024, time.February, 29}, false},
		{"06/01/2025", Day{2025, time.January, 6}, false},
		{"today", Day{2025, time.January, 1}, false},
		{" Yesterday ", Day{2024, time.December, 31}, false},
		{"", Day{2025, time.January, 1}, false},
		{"2025-02-29", Day{}, true},
		{"2025-13-01", Day{}, true},
		{"2025-01-00", Day{}, true},
		{"0000-01-01", Day{}, true},
		{"tomorrow", Day{}, true},
		{"2025/01/06", Day{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDay(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWeek(t *testing.T) {
	tests := []struct {
		input   string
		want    Week
		wantErr bool
	}{
		{"2025-W02", Week{2025, 2}, false},
		{"2025w2", Week{2025, 2}, false},
		{"2026-W53", Week{2026, 53}, false},
		{"this-week", Week{2025, 1}, false},
		{"last-week", Week{2024, 52}, false},
		{"2025-W53", Week{}, true},
		{"2025-W00", Week{}, true},
		{"2025-02", Week{}, true},
		{"next-week", Week{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeek(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    Month
		wantErr bool
	}{
		{"2025-01", Month{2025, time.January}, false},
		{"2025-1", Month{2025, time.January}, false},
		{"this-month", Month{2025, time.January}, false},
		{"last-month", Month{2024, time.December}, false},
		{"2025-13", Month{}, true},
		{"2025-00", Month{}, true},
		{"january", Month{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonth(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMonth_LastMonthFromMonthEnd(t *testing.T) {
	got, err := ParseMonth("last-month", time.Date(2025, time.March, 31, 12, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, Month{2025, time.February}, got)
}

func TestParseYear(t *testing.T) {
	got, err := ParseYear("2024", now)
	require.NoError(t, err)
	assert.Equal(t, 2024, got)

	got, err = ParseYear("this-year", now)
	require.NoError(t, err)
	assert.Equal(t, 2025, got)

	got, err = ParseYear("last-year", now)
	require.NoError(t, err)
	assert.Equal(t, 2024, got)

	_, err = ParseYear("25", now)
	assert.Error(t, err)
	_, err = ParseYear("0000", now)
	assert.Error(t, err)
}

func TestPeriodStrings(t *testing.T) {
	assert.Equal(t, "2025-01-06", Day{2025, time.January, 6}.String())
	assert.Equal(t, "2025-W02", Week{2025, 2}.String())
	assert.Equal(t, "2025-01", Month{2025, time.January}.String())
}
