package worktime

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Rates are the per-employee pay parameters of a payroll run.
type Rates struct {
	Hourly           float64 `json:"hourly_rate"`
	Overtime         float64 `json:"overtime_rate"`
	PenaltyPerMinute float64 `json:"penalty_per_minute"`
}

// Payslip is the month's payroll for one employee. Final is not clamped and
// is negative when deductions exceed earnings.
type Payslip struct {
	EmployeeID        string     `json:"employee_id"`
	Year              int        `json:"year"`
	Month             time.Month `json:"month"`
	Rates             Rates      `json:"rates"`
	Hours             float64    `json:"hours"`
	OvertimeHours     float64    `json:"overtime_hours"`
	LateMinutes       int        `json:"late_minutes"`
	EarlyLeaveMinutes int        `json:"early_leave_minutes"`
	Salary            float64    `json:"salary"`
	OvertimePay       float64    `json:"overtime_pay"`
	Deductions        float64    `json:"deductions"`
	Total             float64    `json:"total"`
	Final             float64    `json:"final"`
}

// Negative reports whether deductions exceed earnings.
func (p Payslip) Negative() bool {
	return p.Final < 0
}

// Payroll combines hours, overtime and lateness into pay figures.
type Payroll struct {
	hours    *Aggregator
	overtime *Overtime
	lateness *Lateness
}

// NewPayroll creates a payroll calculator.
func NewPayroll(hours *Aggregator, overtime *Overtime, lateness *Lateness) *Payroll {
	return &Payroll{hours: hours, overtime: overtime, lateness: lateness}
}

// DailyWage returns the day's hours times hourlyRate.
func (p *Payroll) DailyWage(ctx context.Context, employeeID string, year int, month time.Month, day int, hourlyRate float64) (float64, error) {
	hours, err := p.hours.DailyHours(ctx, employeeID, year, month, day)
	if err != nil {
		return 0, err
	}
	return hours * hourlyRate, nil
}

// MonthlySalary returns the month's hours times hourlyRate.
func (p *Payroll) MonthlySalary(ctx context.Context, employeeID string, year int, month time.Month, hourlyRate float64) (float64, error) {
	hours, err := p.hours.MonthlyHours(ctx, employeeID, year, month)
	if err != nil {
		return 0, err
	}
	return hours * hourlyRate, nil
}

// MonthlyOvertimePay returns the month's overtime hours times overtimeRate.
func (p *Payroll) MonthlyOvertimePay(ctx context.Context, employeeID string, year int, month time.Month, overtimeRate float64) (float64, error) {
	ot, err := p.overtime.MonthlyOvertime(ctx, employeeID, year, month)
	if err != nil {
		return 0, err
	}
	return ot * overtimeRate, nil
}

// MonthlyDeductions returns the sum over the month's days of late plus
// early-leave minutes times penaltyPerMinute.
func (p *Payroll) MonthlyDeductions(ctx context.Context, employeeID string, year int, month time.Month, penaltyPerMinute float64) (float64, error) {
	days, err := p.lateness.MonthlyAttendance(ctx, employeeID, year, month)
	if err != nil {
		return 0, err
	}
	return deductionsOf(days, penaltyPerMinute), nil
}

// TotalMonthlyPay returns monthly salary plus monthly overtime pay.
func (p *Payroll) TotalMonthlyPay(ctx context.Context, employeeID string, year int, month time.Month, hourlyRate, overtimeRate float64) (float64, error) {
	var salary, overtimePay float64

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		salary, err = p.MonthlySalary(ctx, employeeID, year, month, hourlyRate)
		return err
	})
	g.Go(func() (err error) {
		overtimePay, err = p.MonthlyOvertimePay(ctx, employeeID, year, month, overtimeRate)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return salary + overtimePay, nil
}

// FinalPayroll returns total monthly pay minus monthly deductions.
func (p *Payroll) FinalPayroll(ctx context.Context, employeeID string, year int, month time.Month, rates Rates) (float64, error) {
	slip, err := p.Payslip(ctx, employeeID, year, month, rates)
	if err != nil {
		return 0, err
	}
	return slip.Final, nil
}

// Payslip gathers every payroll figure of the month.
func (p *Payroll) Payslip(ctx context.Context, employeeID string, year int, month time.Month, rates Rates) (Payslip, error) {
	if err := validateMonth(year, month); err != nil {
		return Payslip{}, err
	}

	var (
		hours    float64
		overtime float64
		days     []DayLateness
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		hours, err = p.hours.MonthlyHours(gctx, employeeID, year, month)
		return err
	})
	g.Go(func() (err error) {
		overtime, err = p.overtime.MonthlyOvertime(gctx, employeeID, year, month)
		return err
	})
	g.Go(func() (err error) {
		days, err = p.lateness.MonthlyAttendance(gctx, employeeID, year, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return Payslip{}, err
	}

	slip := Payslip{
		EmployeeID:    employeeID,
		Year:          year,
		Month:         month,
		Rates:         rates,
		Hours:         hours,
		OvertimeHours: overtime,
		Salary:        hours * rates.Hourly,
		OvertimePay:   overtime * rates.Overtime,
		Deductions:    deductionsOf(days, rates.PenaltyPerMinute),
	}
	for _, d := range days {
		slip.LateMinutes += d.LateMinutes
		slip.EarlyLeaveMinutes += d.EarlyLeaveMinutes
	}
	slip.Total = slip.Salary + slip.OvertimePay
	slip.Final = slip.Total - slip.Deductions
	return slip, nil
}

func deductionsOf(days []DayLateness, penaltyPerMinute float64) float64 {
	total := 0.0
	for _, d := range days {
		total += float64(d.Minutes()) * penaltyPerMinute
	}
	return total
}
