package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var overtimeCmd = &cobra.Command{
	Use:   "overtime <employee-id>",
	Short: "Show overtime beyond 8 hours a day",
	Long: `Show the hours an employee worked beyond the 8 hour standard day.
Overtime is counted per day; a month's overtime is the sum of its days.
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
			overtime, err := e.svc.Overtime.DailyOvertime(ctx, employeeID, p.day.Year, p.day.Month, p.day.Day)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s overtime on %s: %.2fh\n", employeeID, p, overtime)
			return nil
		}

		total, err := e.svc.Overtime.MonthlyOvertime(ctx, employeeID, p.month.Year, p.month.Month)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s overtime in %s: %.2fh\n", employeeID, p, total)

		if byDay, _ := cmd.Flags().GetBool("by-day"); byDay && total > 0 {
			days, err := e.svc.Overtime.DailyOvertimes(ctx, employeeID, p.month.Year, p.month.Month)
			if err != nil {
				return err
			}
			var rows [][]string
			for i, h := range days {
				if h == 0 {
					continue
				}
				day := time.Date(p.month.Year, p.month.Month, i+1, 0, 0, 0, 0, time.Local)
				rows = append(rows, []string{day.Format("Mon Jan 02"), hoursCell(h)})
			}
			rows = append(rows, []string{"Total", hoursCell(total)})
			fmt.Fprintln(out, newTable([]string{"Day", "Overtime"}, rows, true))
		}
		if e.cfg.OvertimeRate > 0 {
			pay, err := e.svc.Payroll.MonthlyOvertimePay(ctx, employeeID, p.month.Year, p.month.Month, e.cfg.OvertimeRate)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Overtime pay at %.2f/h: %s\n", e.cfg.OvertimeRate, money(pay))
		}
		return nil
	}),
}

func init() {
	addPeriodFlags(overtimeCmd, periodDay, periodMonth)
	overtimeCmd.Flags().Bool("by-day", false, "List the days with overtime")
}
