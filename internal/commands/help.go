package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show comprehensive help for timeclock",
	Long:  `Display detailed help for all timeclock commands and flags, or the help of one command.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
				_ = target.Help()
				return
			}
		}
		showCustomHelp(cmd.OutOrStdout())
	},
}

func showCustomHelp(out io.Writer) {
	fmt.Fprint(out, `
▀█▀ █ █▀▄▀█ █▀▀ █▀▀ █   █▀█ █▀▀ █▄▀
 █  █ █ ▀ █ ██▄ █▄▄ █▄▄ █▄█ █▄▄ █ █

timeclock - Employee Time Clock + Payroll

COMMANDS:

  in [employee-id]        Clock an employee in
    --no-ui               Skip the interactive timer

    Timer keys:
      o             Clock out
      esc/q         Leave the timer, keep the session running
      ctrl+c        Force quit

  out <employee-id>       Clock an employee out
  status <employee-id>    Show the open session and elapsed time

  hours <employee-id>     Hours worked (default: today)
    --day                 yyyy-mm-dd, dd/mm/yyyy, today, yesterday
    --week                yyyy-Www, this-week, last-week
    --month               yyyy-mm, this-month, last-month
    --year                yyyy, this-year, last-year
    --by-month            With --year: one bar per month

  overtime <employee-id>  Hours beyond 8 per day (default: this month)
    --day, --month        Period
    --by-day              List the days with overtime

  lateness <employee-id>  Minutes after 09:00 and before 18:00 (default: this month)
    --day, --month        Period

  timesheet <employee-id> Per-day hours, overtime and lateness of an ISO week
    --week                Week (default: this week)

  payroll <employee-id>   Monthly payslip
    --month               Month (default: this month)
    --hourly-rate         Pay per hour
    --overtime-rate       Pay per overtime hour
    --penalty             Deduction per late or early minute
    --json                JSON output

  records <employee-id>   Clock-in records of a month
    --month               Month (default: this month)
    --json                JSON output

  version                 Show version information
  help [command]          Show this help

CONFIGURATION (environment or .env):

  TIMECLOCK_DB_PATH             SQLite file (default ~/.timeclock/timeclock.db)
  TIMECLOCK_LOG_LEVEL           debug|info|warn|error (default warn)
  TIMECLOCK_LOG_FORMAT          text|json (default text)
  TIMECLOCK_HOURLY_RATE         Default hourly rate
  TIMECLOCK_OVERTIME_RATE       Default overtime rate
  TIMECLOCK_PENALTY_PER_MINUTE  Default penalty per minute

`)
}
