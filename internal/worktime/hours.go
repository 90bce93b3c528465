package worktime

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// fanOut bounds the store round-trips a single aggregation runs at once.
const fanOut = 4

// Aggregator sums recorded work hours over day, ISO week, month and year
// windows. Open sessions contribute zero until they are closed.
type Aggregator struct {
	store Reader
}

// NewAggregator creates an hours aggregator reading from store.
func NewAggregator(store Reader) *Aggregator {
	return &Aggregator{store: store}
}

func sumHours(entries []Entry) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.WorkHours
	}
	return total
}

// DailyHours returns the hours of sessions that started on the given date.
func (a *Aggregator) DailyHours(ctx context.Context, employeeID string, year int, month time.Month, day int) (float64, error) {
	if err := validateDay(year, month, day); err != nil {
		return 0, err
	}
	entries, err := a.store.QueryByExactDay(ctx, employeeID, year, month, day)
	if err != nil {
		return 0, fmt.Errorf("failed to get daily hours: %w", err)
	}
	return sumHours(entries), nil
}

// WeeklyHours returns the hours of sessions that started within the ISO week.
func (a *Aggregator) WeeklyHours(ctx context.Context, employeeID string, isoYear, isoWeek int) (float64, error) {
	start, end, err := ISOWeekRange(isoYear, isoWeek)
	if err != nil {
		return 0, err
	}
	return a.rangeHours(ctx, employeeID, start, end, "weekly")
}

// MonthlyHours returns the hours of sessions that started within the month.
func (a *Aggregator) MonthlyHours(ctx context.Context, employeeID string, year int, month time.Month) (float64, error) {
	if err := validateMonth(year, month); err != nil {
		return 0, err
	}
	start, end := monthRange(year, month)
	return a.rangeHours(ctx, employeeID, start, end, "monthly")
}

// YearlyHours returns the hours of sessions that started within the year.
func (a *Aggregator) YearlyHours(ctx context.Context, employeeID string, year int) (float64, error) {
	if err := validateYear(year); err != nil {
		return 0, err
	}
	start := startOfDay(year, time.January, 1)
	end := endOfDay(year, time.December, 31)
	return a.rangeHours(ctx, employeeID, start, end, "yearly")
}

// MonthlyRecords returns the month's entries ascending by entry time.
func (a *Aggregator) MonthlyRecords(ctx context.Context, employeeID string, year int, month time.Month) ([]Entry, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	start, end := monthRange(year, month)
	entries, err := a.store.QueryByDateRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly records: %w", err)
	}
	return entries, nil
}

// MonthlyBreakdown returns the monthly hours of each month of year, January
// first.
func (a *Aggregator) MonthlyBreakdown(ctx context.Context, employeeID string, year int) ([12]float64, error) {
	var months [12]float64
	if err := validateYear(year); err != nil {
		return months, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOut)
	for m := time.January; m <= time.December; m++ {
		m := m
		g.Go(func() error {
			hours, err := a.MonthlyHours(ctx, employeeID, year, m)
			if err != nil {
				return err
			}
			months[m-1] = hours
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return [12]float64{}, err
	}
	return months, nil
}

func (a *Aggregator) rangeHours(ctx context.Context, employeeID string, start, end time.Time, window string) (float64, error) {
	entries, err := a.store.QueryByDateRange(ctx, employeeID, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s hours: %w", window, err)
	}
	return sumHours(entries), nil
}

func monthRange(year int, month time.Month) (time.Time, time.Time) {
	return startOfDay(year, month, 1), endOfDay(year, month, DaysIn(year, month))
}

// forEachDay calls fn for every day of the month with bounded concurrency.
func forEachDay(ctx context.Context, year int, month time.Month, fn func(ctx context.Context, day int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOut)
	for day := 1; day <= DaysIn(year, month); day++ {
		day := day
		g.Go(func() error { return fn(ctx, day) })
	}
	return g.Wait()
}
