package worktime

import (
	"context"
	"math"
	"time"
)

// StandardDayHours is the full-time day; hours beyond it are overtime.
const StandardDayHours = 8.0

// Overtime derives overtime from daily hours.
type Overtime struct {
	hours *Aggregator
}

// NewOvertime creates an overtime calculator over hours.
func NewOvertime(hours *Aggregator) *Overtime {
	return &Overtime{hours: hours}
}

func overtimeOf(dailyHours float64) float64 {
	return math.Max(0, dailyHours-StandardDayHours)
}

// DailyOvertime returns the hours worked beyond StandardDayHours on the date.
func (o *Overtime) DailyOvertime(ctx context.Context, employeeID string, year int, month time.Month, day int) (float64, error) {
	hours, err := o.hours.DailyHours(ctx, employeeID, year, month, day)
	if err != nil {
		return 0, err
	}
	return overtimeOf(hours), nil
}

// MonthlyOvertime returns the sum of DailyOvertime over every day of the month.
func (o *Overtime) MonthlyOvertime(ctx context.Context, employeeID string, year int, month time.Month) (float64, error) {
	daily, err := o.DailyOvertimes(ctx, employeeID, year, month)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, ot := range daily {
		total += ot
	}
	return total, nil
}

// DailyOvertimes returns the overtime of each day of the month, day 1 first.
func (o *Overtime) DailyOvertimes(ctx context.Context, employeeID string, year int, month time.Month) ([]float64, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	daily := make([]float64, DaysIn(year, month))
	err := forEachDay(ctx, year, month, func(ctx context.Context, day int) error {
		ot, err := o.DailyOvertime(ctx, employeeID, year, month, day)
		if err != nil {
			return err
		}
		daily[day-1] = ot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return daily, nil
}
