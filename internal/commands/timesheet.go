package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timeclock/internal/worktime"
)

var timesheetCmd = &cobra.Command{
	Use:   "timesheet <employee-id>",
	Short: "Show a weekly timesheet",
	Long: `Show hours, overtime, late arrival and early leave per day of an ISO week.
Weekend days are only listed when work was recorded on them.

Example output:
  Day          Hours  Overtime  Late  Early
  Mon Jan 06    9.25      1.25    15      -
  Tue Jan 07    8.00         -     -      -
  ...
  Total        41.50      1.25    15     20`,
	Args: cobra.ExactArgs(1),
	RunE: withService(func(ctx context.Context, cmd *cobra.Command, args []string, e *env) error {
		employeeID, err := employeeArg(args)
		if err != nil {
			return err
		}
		p, err := readPeriod(cmd, periodWeek)
		if err != nil {
			return err
		}
		return generateTimesheet(ctx, cmd.OutOrStdout(), e.svc, employeeID, p.week.Year, p.week.Week)
	}),
}

type timesheetDay struct {
	date     time.Time
	hours    float64
	overtime float64
	late     int
	early    int
}

// generateTimesheet creates and displays the weekly timesheet
func generateTimesheet(ctx context.Context, out io.Writer, svc *worktime.Service, employeeID string, year, week int) error {
	weekStart, weekEnd, err := worktime.ISOWeekRange(year, week)
	if err != nil {
		return err
	}

	var days []timesheetDay
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		y, m, d := date.Date()

		hours, err := svc.Hours.DailyHours(ctx, employeeID, y, m, d)
		if err != nil {
			return fmt.Errorf("failed to get hours: %w", err)
		}
		overtime, err := svc.Overtime.DailyOvertime(ctx, employeeID, y, m, d)
		if err != nil {
			return fmt.Errorf("failed to get overtime: %w", err)
		}
		att, err := svc.Lateness.DailyAttendance(ctx, employeeID, y, m, d)
		if err != nil {
			return fmt.Errorf("failed to get attendance: %w", err)
		}

		days = append(days, timesheetDay{date: date, hours: hours, overtime: overtime, late: att.LateMinutes, early: att.EarlyLeaveMinutes})
	}

	total, err := svc.Hours.WeeklyHours(ctx, employeeID, year, week)
	if err != nil {
		return fmt.Errorf("failed to get weekly hours: %w", err)
	}
	if total == 0 {
		fmt.Fprintf(out, "No time recorded for %s in %04d-W%02d.\n", employeeID, year, week)
		return nil
	}

	displayTimesheet(out, days, total)
	fmt.Fprintf(out, "\nWeek of %s to %s\n", weekStart.Format("Jan 2"), weekEnd.Format("Jan 2, 2006"))
	return nil
}

// displayTimesheet outputs the formatted timesheet table
func displayTimesheet(out io.Writer, days []timesheetDay, total float64) {
	var rows [][]string
	var overtime float64
	var late, early int

	for _, d := range days {
		overtime += d.overtime
		late += d.late
		early += d.early

		weekend := d.date.Weekday() == time.Saturday || d.date.Weekday() == time.Sunday
		if weekend && d.hours == 0 {
			continue
		}
		rows = append(rows, []string{
			d.date.Format("Mon Jan 02"),
			hoursCell(d.hours),
			hoursCell(d.overtime),
			minutesCell(d.late),
			minutesCell(d.early),
		})
	}
	rows = append(rows, []string{"Total", hoursCell(total), hoursCell(overtime), minutesCell(late), minutesCell(early)})

	fmt.Fprintln(out, newTable([]string{"Day", "Hours", "Overtime", "Late", "Early"}, rows, true))
}

func init() {
	addPeriodFlags(timesheetCmd, periodWeek)
}
