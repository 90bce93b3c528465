package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timeclock/internal/parser"
	"github.com/balkashynov/timeclock/internal/tui"
	"github.com/balkashynov/timeclock/internal/worktime"
)

var inCmd = &cobra.Command{
	Use:   "in [employee-id]",
	Short: "Clock an employee in",
	Long: `Clock an employee in. Opens the interactive timer by default, use --no-ui for a plain clock-in.
Without an employee id you are prompted for one.

Examples:
  timeclock in E1042          # Clock in and watch the timer
  timeclock in E1042 --no-ui  # Clock in and return`,
	Args: cobra.MaximumNArgs(1),
	RunE: withService(runIn),
}

func runIn(ctx context.Context, cmd *cobra.Command, args []string, e *env) error {
	out := cmd.OutOrStdout()
	noUI, _ := cmd.Flags().GetBool("no-ui")

	var employeeID string
	var err error
	if len(args) == 0 && !noUI {
		employeeID, err = tui.RunPromptTUI("Clock in")
		if errors.Is(err, tui.ErrCancelled) {
			fmt.Fprintln(out, "❌ Clock-in cancelled.")
			return nil
		}
	} else {
		employeeID, err = employeeArg(args)
	}
	if err != nil {
		return err
	}

	entry, err := e.svc.Sessions.ClockIn(ctx, employeeID)
	if errors.Is(err, worktime.ErrDuplicateOpenSession) {
		if open, aerr := e.svc.Sessions.Active(ctx, employeeID); aerr == nil && open != nil {
			return fmt.Errorf("%s is already clocked in since %s", employeeID, worktime.FormatTimestamp(open.EntryAt))
		}
	}
	if err != nil {
		return err
	}

	if noUI {
		fmt.Fprintf(out, "⏱️  Clocked in %s\n", entry.EmployeeID)
		fmt.Fprintf(out, "Clocked in at: %s\n", entry.EntryAt.Format("15:04:05"))
		return nil
	}

	today, err := todaySummary(ctx, e.svc, entry)
	if err != nil {
		return err
	}
	return tui.RunTimerTUI(ctx, e.svc.Sessions, entry, today, out)
}

// todaySummary collects the closed hours and lateness of the entry's day.
func todaySummary(ctx context.Context, svc *worktime.Service, entry worktime.Entry) (tui.TodaySummary, error) {
	y, m, d := entry.EntryAt.Date()
	hours, err := svc.Hours.DailyHours(ctx, entry.EmployeeID, y, m, d)
	if err != nil {
		return tui.TodaySummary{}, err
	}
	late, err := svc.Lateness.LateMinutes(ctx, entry.EmployeeID, y, m, d)
	if err != nil {
		return tui.TodaySummary{}, err
	}
	return tui.TodaySummary{ClosedHours: hours, LateMinutes: late}, nil
}

var outCmd = &cobra.Command{
	Use:   "out <employee-id>",
	Short: "Clock an employee out",
	Args:  cobra.ExactArgs(1),
	RunE: withService(func(ctx context.Context, cmd *cobra.Command, args []string, e *env) error {
		out := cmd.OutOrStdout()
		employeeID, err := parser.NormalizeEmployeeID(args[0])
		if err != nil {
			return err
		}

		entry, err := e.svc.Sessions.ClockOut(ctx, employeeID)
		if errors.Is(err, worktime.ErrNoOpenSession) {
			fmt.Fprintf(out, "No active session for %s\n", employeeID)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "⏹️  Clocked out %s at %s\n", entry.EmployeeID, entry.ExitAt.Format("15:04:05"))
		fmt.Fprintf(out, "Session duration: %s (%.2f hours)\n", tui.FormatDuration(entry.ExitAt.Sub(entry.EntryAt)), entry.WorkHours)
		return nil
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status <employee-id>",
	Short: "Show whether an employee is clocked in",
	Args:  cobra.ExactArgs(1),
	RunE: withService(func(ctx context.Context, cmd *cobra.Command, args []string, e *env) error {
		out := cmd.OutOrStdout()
		employeeID, err := parser.NormalizeEmployeeID(args[0])
		if err != nil {
			return err
		}

		entry, err := e.svc.Sessions.Active(ctx, employeeID)
		if err != nil {
			return err
		}
		if entry == nil {
			fmt.Fprintf(out, "No active session for %s\n", employeeID)
			return nil
		}

		fmt.Fprintf(out, "⏱️  %s is clocked in\n", employeeID)
		fmt.Fprintf(out, "Clocked in at: %s\n", worktime.FormatTimestamp(entry.EntryAt))
		fmt.Fprintf(out, "Elapsed time: %s\n", tui.FormatDuration(now().Sub(entry.EntryAt)))
		return nil
	}),
}

func init() {
	inCmd.Flags().Bool("no-ui", false, "Clock in without the interactive timer")
}
