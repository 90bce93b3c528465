package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timeclock/internal/worktime"
)

var recordsCmd = &cobra.Command{
	Use:   "records <employee-id>",
	Short: "List the clock-in records of a month",
	Long: `List every clock-in and clock-out of an employee in a month, oldest first.
Defaults to the current month.`,
	Args: cobra.ExactArgs(1),
	RunE: withService(func(ctx context.Context, cmd *cobra.Command, args []string, e *env) error {
		employeeID, err := employeeArg(args)
		if err != nil {
			return err
		}
		p, err := readPeriod(cmd, periodMonth)
		if err != nil {
			return err
		}

		entries, err := e.svc.Hours.MonthlyRecords(ctx, employeeID, p.month.Year, p.month.Month)
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return renderRecordsJSON(cmd.OutOrStdout(), employeeID, p.String(), entries)
		}
		renderRecordsTable(cmd.OutOrStdout(), employeeID, p.String(), entries)
		return nil
	}),
}

// renderRecordsJSON outputs the records as JSON
func renderRecordsJSON(out io.Writer, employeeID, month string, entries []worktime.Entry) error {
	type jsonRecord struct {
		ID      string  `json:"id"`
		EntryAt string  `json:"entry_time"`
		ExitAt  *string `json:"exit_time"`
		Hours   float64 `json:"hours"`
		State   string  `json:"state"`
	}

	type recordsResult struct {
		EmployeeID string       `json:"employee_id"`
		Month      string       `json:"month"`
		Count      int          `json:"count"`
		Records    []jsonRecord `json:"records"`
	}

	records := make([]jsonRecord, 0, len(entries))
	for _, entry := range entries {
		r := jsonRecord{
			ID:      entry.ID.String(),
			EntryAt: worktime.FormatTimestamp(entry.EntryAt),
			Hours:   entry.WorkHours,
			State:   entry.State().String(),
		}
		if entry.ExitAt != nil {
			exit := worktime.FormatTimestamp(*entry.ExitAt)
			r.ExitAt = &exit
		}
		records = append(records, r)
	}

	return writeJSON(out, recordsResult{
		EmployeeID: employeeID,
		Month:      month,
		Count:      len(entries),
		Records:    records,
	})
}

// renderRecordsTable outputs the records as a formatted table
func renderRecordsTable(out io.Writer, employeeID, month string, entries []worktime.Entry) {
	fmt.Fprintf(out, "Records for %s in %s (%d found):\n", employeeID, month, len(entries))
	if len(entries) == 0 {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-8s  %-19s  %-19s  %6s  %s\n", "ID", "CLOCKED IN", "CLOCKED OUT", "HOURS", "STATE")
	fmt.Fprintln(out, "--------  -------------------  -------------------  ------  ------")

	var total float64
	for _, entry := range entries {
		exit := "-"
		if entry.ExitAt != nil {
			exit = worktime.FormatTimestamp(*entry.ExitAt)
		}
		fmt.Fprintf(out, "%-8s  %-19s  %-19s  %6.2f  %s\n",
			entry.ID.String()[:8],
			worktime.FormatTimestamp(entry.EntryAt),
			exit,
			entry.WorkHours,
			entry.State())
		total += entry.WorkHours
	}
	fmt.Fprintf(out, "\nTotal: %.2fh\n", total)
}

func init() {
	addPeriodFlags(recordsCmd, periodMonth)
	recordsCmd.Flags().Bool("json", false, "Output as JSON")
}
