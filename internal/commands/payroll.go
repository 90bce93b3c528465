package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timeclock/internal/worktime"
)

var payrollCmd = &cobra.Command{
	Use:   "payroll <employee-id>",
	Short: "Compute a monthly payslip",
	Long: `Compute an employee's payslip for a month:

  total = hours x hourly rate + overtime hours x overtime rate
  final = total - (late + early leave minutes) x penalty

Rates default to TIMECLOCK_HOURLY_RATE, TIMECLOCK_OVERTIME_RATE and
TIMECLOCK_PENALTY_PER_MINUTE. The final amount is not clamped and can be negative.

Examples:
  timeclock payroll E1042 --month 2025-01 --hourly-rate 1000 --overtime-rate 1500 --penalty 10
  timeclock payroll E1042 --month last-month --json`,
	Args: cobra.ExactArgs(1),
	RunE: withService(func(ctx context.Context, cmd *cobra.Command, args []string, e *env) error {
		out := cmd.OutOrStdout()
		employeeID, err := employeeArg(args)
		if err != nil {
			return err
		}
		p, err := readPeriod(cmd, periodMonth)
		if err != nil {
			return err
		}

		rates := e.cfg.Rates()
		if cmd.Flags().Changed("hourly-rate") {
			rates.Hourly, _ = cmd.Flags().GetFloat64("hourly-rate")
		}
		if cmd.Flags().Changed("overtime-rate") {
			rates.Overtime, _ = cmd.Flags().GetFloat64("overtime-rate")
		}
		if cmd.Flags().Changed("penalty") {
			rates.PenaltyPerMinute, _ = cmd.Flags().GetFloat64("penalty")
		}
		if rates.Hourly < 0 || rates.Overtime < 0 || rates.PenaltyPerMinute < 0 {
			return fmt.Errorf("rates must not be negative")
		}

		slip, err := e.svc.Payroll.Payslip(ctx, employeeID, p.month.Year, p.month.Month, rates)
		if err != nil {
			return err
		}
		e.log.Debug("payslip computed",
			"employee_id", employeeID,
			"month", p.String(),
			"final", slip.Final)

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return writeJSON(out, slip)
		}
		renderPayslip(out, slip)
		return nil
	}),
}

func renderPayslip(out io.Writer, slip worktime.Payslip) {
	deductions := -slip.Deductions
	if deductions == 0 {
		deductions = 0 // no "-0.00"
	}

	rows := [][]string{
		{"Hours worked", fmt.Sprintf("%.2f", slip.Hours)},
		{"Overtime hours", fmt.Sprintf("%.2f", slip.OvertimeHours)},
		{"Late minutes", fmt.Sprintf("%d", slip.LateMinutes)},
		{"Early leave minutes", fmt.Sprintf("%d", slip.EarlyLeaveMinutes)},
		{fmt.Sprintf("Salary (%.2f/h)", slip.Rates.Hourly), money(slip.Salary)},
		{fmt.Sprintf("Overtime pay (%.2f/h)", slip.Rates.Overtime), money(slip.OvertimePay)},
		{"Total", money(slip.Total)},
		{fmt.Sprintf("Deductions (%.2f/min)", slip.Rates.PenaltyPerMinute), money(deductions)},
		{"Final pay", money(slip.Final)},
	}

	fmt.Fprintf(out, "Payslip for %s, %s %d\n", slip.EmployeeID, slip.Month, slip.Year)
	fmt.Fprintln(out, newTable([]string{"Item", "Amount"}, rows, true))
	if slip.Negative() {
		fmt.Fprintln(out, warnStyle.Render("⚠️  Deductions exceed earnings: final pay is negative"))
	}
}

func init() {
	addPeriodFlags(payrollCmd, periodMonth)
	payrollCmd.Flags().Float64("hourly-rate", 0, "Pay per hour worked")
	payrollCmd.Flags().Float64("overtime-rate", 0, "Pay per overtime hour")
	payrollCmd.Flags().Float64("penalty", 0, "Deduction per late or early-leave minute")
	payrollCmd.Flags().Bool("json", false, "Output as JSON")
}
