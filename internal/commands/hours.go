package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timeclock/internal/worktime"
)

var hoursCmd = &cobra.Command{
	Use:   "hours <employee-id>",
	Short: "Show hours worked in a day, week, month or year",
	Long: `Show the hours an employee worked. Defaults to today.

Examples:
  timeclock hours E1042                      # Today
  timeclock hours E1042 --week 2025-W02      # ISO week
  timeclock hours E1042 --month last-month
  timeclock hours E1042 --year 2025 --by-month`,
	Args: cobra.ExactArgs(1),
	RunE: withService(runHours),
}

func runHours(ctx context.Context, cmd *cobra.Command, args []string, e *env) error {
	out := cmd.OutOrStdout()
	employeeID, err := employeeArg(args)
	if err != nil {
		return err
	}

	byMonth, _ := cmd.Flags().GetBool("by-month")
	fallback := periodDay
	if byMonth {
		fallback = periodYear
	}
	p, err := readPeriod(cmd, fallback)
	if err != nil {
		return err
	}

	if byMonth {
		if p.kind != periodYear {
			return fmt.Errorf("--by-month only works with --year")
		}
		breakdown, err := e.svc.Hours.MonthlyBreakdown(ctx, employeeID, p.year)
		if err != nil {
			return err
		}

		labels := make([]string, len(breakdown))
		var total float64
		for i, h := range breakdown {
			labels[i] = time.Month(i + 1).String()[:3]
			total += h
		}
		fmt.Fprintf(out, "Hours worked by %s in %d\n\n", employeeID, p.year)
		renderBarChart(out, labels, breakdown[:])
		fmt.Fprintf(out, "\nTotal: %.2fh\n", total)
		return nil
	}

	var hours float64
	switch p.kind {
	case periodDay:
		hours, err = e.svc.Hours.DailyHours(ctx, employeeID, p.day.Year, p.day.Month, p.day.Day)
	case periodWeek:
		hours, err = e.svc.Hours.WeeklyHours(ctx, employeeID, p.week.Year, p.week.Week)
	case periodMonth:
		hours, err = e.svc.Hours.MonthlyHours(ctx, employeeID, p.month.Year, p.month.Month)
	case periodYear:
		hours, err = e.svc.Hours.YearlyHours(ctx, employeeID, p.year)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s worked %.2fh in %s\n", employeeID, hours, p)

	if p.kind == periodDay && e.cfg.HourlyRate > 0 {
		wage, err := e.svc.Payroll.DailyWage(ctx, employeeID, p.day.Year, p.day.Month, p.day.Day, e.cfg.HourlyRate)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Daily wage at %.2f/h: %s\n", e.cfg.HourlyRate, money(wage))
	}
	if p.kind == periodWeek {
		start, end, err := worktime.ISOWeekRange(p.week.Year, p.week.Week)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Week of %s to %s\n", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
	return nil
}

func init() {
	addPeriodFlags(hoursCmd, periodDay, periodWeek, periodMonth, periodYear)
	hoursCmd.Flags().Bool("by-month", false, "Break a year down by month")
}
