package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var latenessCmd = &cobra.Command{
	Use:   "lateness <employee-id>",
	Short: "Show late arrivals and early leaves",
	Long: `Show the minutes an employee arrived after 09:00 and left before 18:00.
A day's first clock-in counts for lateness and its last clock-out for early leave.
Defaults to the current month.`,
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

		if p.kind == periodDay {
			d, err := e.svc.Lateness.DailyAttendance(ctx, employeeID, p.day.Year, p.day.Month, p.day.Day)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s on %s\n", employeeID, p)
			fmt.Fprintf(out, "Late arrival: %d min\n", d.LateMinutes)
			fmt.Fprintf(out, "Early leave:  %d min\n", d.EarlyLeaveMinutes)
			return nil
		}

		days, err := e.svc.Lateness.MonthlyAttendance(ctx, employeeID, p.month.Year, p.month.Month)
		if err != nil {
			return err
		}

		var rows [][]string
		var late, early int
		for _, d := range days {
			late += d.LateMinutes
			early += d.EarlyLeaveMinutes
			if d.Minutes() == 0 {
				continue
			}
			day := time.Date(p.month.Year, p.month.Month, d.Day, 0, 0, 0, 0, time.Local)
			rows = append(rows, []string{day.Format("Mon Jan 02"), minutesCell(d.LateMinutes), minutesCell(d.EarlyLeaveMinutes)})
		}

		if len(rows) == 0 {
			fmt.Fprintf(out, "%s was never late nor left early in %s\n", employeeID, p)
			return nil
		}

		rows = append(rows, []string{"Total", minutesCell(late), minutesCell(early)})
		fmt.Fprintf(out, "Lateness of %s in %s\n", employeeID, p)
		fmt.Fprintln(out, newTable([]string{"Day", "Late (min)", "Early (min)"}, rows, true))

		if e.cfg.PenaltyPerMinute > 0 {
			deductions, err := e.svc.Payroll.MonthlyDeductions(ctx, employeeID, p.month.Year, p.month.Month, e.cfg.PenaltyPerMinute)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Deductions at %.2f/min: %s\n", e.cfg.PenaltyPerMinute, money(deductions))
		}
		return nil
	}),
}

func init() {
	addPeriodFlags(latenessCmd, periodDay, periodMonth)
}
