package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/timeclock/internal/worktime"
)

var (
	isoDayRegex = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dmyDayRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	weekRegex   = regexp.MustCompile(`^(\d{4})-?w(\d{1,2})$`)
	monthRegex  = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	yearRegex   = regexp.MustCompile(`^(\d{4})$`)
)

// Day is a calendar date without a time of day.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Week is an ISO-8601 week.
type Week struct {
	Year int
	Week int
}

func (w Week) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Week)
}

// Month is a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// ParseDay parses a day
// Supported formats:
// - yyyy-mm-dd (e.g., "2025-01-06")
// - dd/mm/yyyy (e.g., "06/01/2025")
// - today, yesterday
func ParseDay(input string, now time.Time) (Day, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "", "today":
		return dayOf(now), nil
	case "yesterday":
		return dayOf(now.AddDate(0, 0, -1)), nil
	}

	var y, m, d string
	if matches := isoDayRegex.FindStringSubmatch(input); len(matches) == 4 {
		y, m, d = matches[1], matches[2], matches[3]
	} else if matches := dmyDayRegex.FindStringSubmatch(input); len(matches) == 4 {
		d, m, y = matches[1], matches[2], matches[3]
	} else {
		return Day{}, fmt.Errorf("invalid day %q. Use: yyyy-mm-dd, dd/mm/yyyy, today or yesterday", input)
	}

	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)

	if year < 1 {
		return Day{}, fmt.Errorf("invalid year %d", year)
	}
	if month < 1 || month > 12 {
		return Day{}, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > worktime.DaysIn(year, time.Month(month)) {
		return Day{}, fmt.Errorf("day must be between 1 and %d", worktime.DaysIn(year, time.Month(month)))
	}

	return Day{Year: year, Month: time.Month(month), Day: day}, nil
}

// ParseWeek parses an ISO week
// Supported formats:
// - yyyy-Www (e.g., "2025-W02", "2025w2")
// - this-week, last-week
func ParseWeek(input string, now time.Time) (Week, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "", "this-week":
		year, week := now.ISOWeek()
		return Week{Year: year, Week: week}, nil
	case "last-week":
		year, week := now.AddDate(0, 0, -7).ISOWeek()
		return Week{Year: year, Week: week}, nil
	}

	matches := weekRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return Week{}, fmt.Errorf("invalid week %q. Use: yyyy-Www, this-week or last-week", input)
	}

	year, _ := strconv.Atoi(matches[1])
	week, _ := strconv.Atoi(matches[2])
	if year < 1 {
		return Week{}, fmt.Errorf("invalid year %d", year)
	}
	if weeks := worktime.ISOWeeksInYear(year); week < 1 || week > weeks {
		return Week{}, fmt.Errorf("week must be between 1 and %d for %d", weeks, year)
	}

	return Week{Year: year, Week: week}, nil
}

// ParseMonth parses a month
// Supported formats:
// - yyyy-mm (e.g., "2025-01")
// - this-month, last-month
func ParseMonth(input string, now time.Time) (Month, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "", "this-month":
		return Month{Year: now.Year(), Month: now.Month()}, nil
	case "last-month":
		// Step back from the 1st; March 31 minus a month would land in March.
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		prev := first.AddDate(0, -1, 0)
		return Month{Year: prev.Year(), Month: prev.Month()}, nil
	}

	matches := monthRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return Month{}, fmt.Errorf("invalid month %q. Use: yyyy-mm, this-month or last-month", input)
	}

	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	if year < 1 {
		return Month{}, fmt.Errorf("invalid year %d", year)
	}
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("month must be between 1 and 12")
	}

	return Month{Year: year, Month: time.Month(month)}, nil
}

// ParseYear parses "yyyy" or "this-year".
func ParseYear(input string, now time.Time) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "", "this-year":
		return now.Year(), nil
	case "last-year":
		return now.Year() - 1, nil
	}

	if !yearRegex.MatchString(input) {
		return 0, fmt.Errorf("invalid year %q. Use: yyyy or this-year", input)
	}
	year, _ := strconv.Atoi(input)
	if year < 1 {
		return 0, fmt.Errorf("invalid year %d", year)
	}
	return year, nil
}

func dayOf(t time.Time) Day {
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}
