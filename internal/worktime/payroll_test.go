package worktime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioAStore() *memStore {
	store := &memStore{}
	store.add("E1", "2025-01-06 09:15:00", "2025-01-06 18:30:00")
	return store
}

func TestPayroll_ScenarioC(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(scenarioAStore(), "2025-02-01 00:00:00")
	rates := Rates{Hourly: 1000, Overtime: 1500, PenaltyPerMinute: 10}

	salary, err := svc.Payroll.MonthlySalary(ctx, "E1", 2025, time.January, rates.Hourly)
	require.NoError(t, err)
	assert.InDelta(t, 9250, salary, 1e-9)

	otPay, err := svc.Payroll.MonthlyOvertimePay(ctx, "E1", 2025, time.January, rates.Overtime)
	require.NoError(t, err)
	assert.InDelta(t, 1875, otPay, 1e-9)

	deductions, err := svc.Payroll.MonthlyDeductions(ctx, "E1", 2025, time.January, rates.PenaltyPerMinute)
	require.NoError(t, err)
	assert.InDelta(t, 150, deductions, 1e-9)

	total, err := svc.Payroll.TotalMonthlyPay(ctx, "E1", 2025, time.January, rates.Hourly, rates.Overtime)
	require.NoError(t, err)
	assert.InDelta(t, 11125, total, 1e-9)

	final, err := svc.Payroll.FinalPayroll(ctx, "E1", 2025, time.January, rates)
	require.NoError(t, err)
	assert.InDelta(t, 10975, final, 1e-9)

	wage, err := svc.Payroll.DailyWage(ctx, "E1", 2025, time.January, 6, rates.Hourly)
	require.NoError(t, err)
	assert.InDelta(t, 9250, wage, 1e-9)
}

func TestPayroll_Payslip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(seededStore(), "2025-02-01 00:00:00")
	rates := Rates{Hourly: 1200, Overtime: 1800, PenaltyPerMinute: 12.5}

	slip, err := svc.Payroll.Payslip(ctx, "E1", 2025, time.January, rates)
	require.NoError(t, err)

	assert.Equal(t, "E1", slip.EmployeeID)
	assert.Equal(t, time.January, slip.Month)
	assert.Equal(t, rates, slip.Rates)
	// Jan 5 (10:00-12:00), Jan 6 (09:15) and Jan 12 (23:00 to past midnight).
	assert.Equal(t, 60+15+840, slip.LateMinutes)
	// Jan 5 (12:00) and Jan 7 (17:40).
	assert.Equal(t, 360+20, slip.EarlyLeaveMinutes)
	assert.Equal(t, slip.Total-slip.Deductions, slip.Final)
	assert.Equal(t, slip.Salary+slip.OvertimePay, slip.Total)

	total, err := svc.Payroll.TotalMonthlyPay(ctx, "E1", 2025, time.January, rates.Hourly, rates.Overtime)
	require.NoError(t, err)
	deductions, err := svc.Payroll.MonthlyDeductions(ctx, "E1", 2025, time.January, rates.PenaltyPerMinute)
	require.NoError(t, err)
	assert.InDelta(t, total, slip.Total, 1e-9)
	assert.InDelta(t, deductions, slip.Deductions, 1e-9)
}

func TestPayroll_FinalMayBeNegative(t *testing.T) {
	store := &memStore{}
	store.add("E1", "2025-01-06 11:00:00", "2025-01-06 12:00:00")
	svc := newTestService(store, "2025-02-01 00:00:00")

	slip, err := svc.Payroll.Payslip(context.Background(), "E1", 2025, time.January, Rates{Hourly: 10, Overtime: 15, PenaltyPerMinute: 1})
	require.NoError(t, err)
	// 120 late + 360 early minutes against one paid hour.
	assert.InDelta(t, 10-480, slip.Final, 1e-9)
	assert.True(t, slip.Negative())
}

func TestPayroll_EmptyMonthIsZero(t *testing.T) {
	svc := newTestService(&memStore{}, "2025-02-01 00:00:00")

	final, err := svc.Payroll.FinalPayroll(context.Background(), "E1", 2025, time.January, Rates{Hourly: 1000, Overtime: 1500, PenaltyPerMinute: 10})
	require.NoError(t, err)
	assert.Zero(t, final)
}

func TestPayroll_StoreErrorPropagates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&memStore{err: errDiskGone}, "2025-02-01 00:00:00")
	rates := Rates{Hourly: 1000, Overtime: 1500, PenaltyPerMinute: 10}

	_, err := svc.Payroll.DailyWage(ctx, "E1", 2025, time.January, 6, rates.Hourly)
	requireStoreError(t, err)
	_, err = svc.Payroll.MonthlySalary(ctx, "E1", 2025, time.January, rates.Hourly)
	requireStoreError(t, err)
	_, err = svc.Payroll.MonthlyOvertimePay(ctx, "E1", 2025, time.January, rates.Overtime)
	requireStoreError(t, err)
	_, err = svc.Payroll.MonthlyDeductions(ctx, "E1", 2025, time.January, rates.PenaltyPerMinute)
	requireStoreError(t, err)
	_, err = svc.Payroll.TotalMonthlyPay(ctx, "E1", 2025, time.January, rates.Hourly, rates.Overtime)
	requireStoreError(t, err)
	_, err = svc.Payroll.FinalPayroll(ctx, "E1", 2025, time.January, rates)
	requireStoreError(t, err)
}

func TestPayroll_InvalidMonth(t *testing.T) {
	svc := newTestService(&memStore{}, "2025-02-01 00:00:00")

	_, err := svc.Payroll.Payslip(context.Background(), "E1", 2025, 13, Rates{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
