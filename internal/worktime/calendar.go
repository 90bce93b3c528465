package worktime

import (
	"fmt"
	"time"
)

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func validateYear(year int) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d", ErrInvalidDate, year)
	}
	return nil
}

func validateMonth(year int, month time.Month) error {
	if err := validateYear(year); err != nil {
		return err
	}
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	return nil
}

func validateDay(year int, month time.Month, day int) error {
	if err := validateMonth(year, month); err != nil {
		return err
	}
	if day < 1 || day > DaysIn(year, month) {
		return fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return nil
}

func startOfDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func endOfDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 23, 59, 59, 0, time.Local)
}

// ISOWeeksInYear returns 52 or 53, the number of ISO 8601 weeks in year.
func ISOWeeksInYear(year int) int {
	// Dec 28 always falls in the last ISO week of its year.
	_, week := time.Date(year, time.December, 28, 12, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// ISOWeekRange returns Monday 00:00:00 and Sunday 23:59:59 of the given ISO
// week-based year and week.
func ISOWeekRange(year, week int) (time.Time, time.Time, error) {
	if err := validateYear(year); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if week < 1 || week > ISOWeeksInYear(year) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: week %d of %d", ErrInvalidDate, week, year)
	}

	// Jan 4 always falls in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	sinceMonday := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, 7*(week-1)-sinceMonday)
	sunday := monday.AddDate(0, 0, 6)

	return startOfDay(monday.Year(), monday.Month(), monday.Day()),
		endOfDay(sunday.Year(), sunday.Month(), sunday.Day()), nil
}

// wallClock drops the zone so that differences follow the wall clock even
// across a DST change.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

func wallSeconds(from, to time.Time) int64 {
	return int64(wallClock(to).Sub(wallClock(from)) / time.Second)
}
