package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timeclock/internal/config"
	"github.com/balkashynov/timeclock/internal/db"
	"github.com/balkashynov/timeclock/internal/parser"
	"github.com/balkashynov/timeclock/internal/worktime"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// now is the wall clock used for relative periods such as "today".
var now = time.Now

var rootCmd = &cobra.Command{
	Use:   "timeclock",
	Short: "Employee time clock and payroll",
	Long: `timeclock records employee clock-in and clock-out sessions and derives
work hours, overtime, lateness and monthly payroll from them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "timeclock %s (commit %s, built %s)\n", version, commit, date)
	},
}

// env is what a command gets to work with once the database is open.
type env struct {
	cfg *config.Config
	log *slog.Logger
	svc *worktime.Service
}

// withService wraps a command function to load configuration and open the
// database first. The database is closed when the command returns.
func withService(fn func(ctx context.Context, cmd *cobra.Command, args []string, e *env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := config.NewLogger(cfg)

		conn, err := db.Open(cfg.DBPath, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(conn); err != nil {
				logger.Warn("failed to close database", "error", err)
			}
		}()

		svc := worktime.New(db.NewStore(conn), worktime.ClockFunc(now), logger)
		return fn(cmd.Context(), cmd, args, &env{cfg: cfg, log: logger, svc: svc})
	}
}

// employeeArg normalizes the employee id given as the first argument.
func employeeArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("employee id is required")
	}
	return parser.NormalizeEmployeeID(args[0])
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, typically cancelled on
// interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(overtimeCmd)
	rootCmd.AddCommand(latenessCmd)
	rootCmd.AddCommand(timesheetCmd)
	rootCmd.AddCommand(payrollCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.SetHelpCommand(helpCmd)
}
