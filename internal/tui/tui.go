package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/timeclock/internal/worktime"
)

// ErrCancelled is returned when the user leaves a prompt without submitting.
var ErrCancelled = errors.New("cancelled")

// RunPromptTUI asks for an employee id and returns it normalized.
func RunPromptTUI(title string) (string, error) {
	p := tea.NewProgram(NewPromptModel(title))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m := finalModel.(PromptModel)
	if m.Cancelled() {
		return "", ErrCancelled
	}
	return m.Value(), nil
}

// RunTimerTUI shows the live timer for an open entry until the user clocks
// out or leaves it running.
func RunTimerTUI(ctx context.Context, sessions SessionCloser, entry worktime.Entry, today TodaySummary, out io.Writer) error {
	model := NewTimerModel(ctx, sessions, entry, today)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m := finalModel.(TimerModel)
	switch {
	case m.err != nil:
		return fmt.Errorf("failed to clock out: %w", m.err)
	case m.closed != nil:
		fmt.Fprintf(out, "⏹️  Clocked out %s at %s\n", m.closed.EmployeeID, m.closed.ExitAt.Format("15:04:05"))
		fmt.Fprintf(out, "📊 Session duration: %s (%.2f hours)\n", FormatDuration(m.closed.ExitAt.Sub(m.closed.EntryAt)), m.closed.WorkHours)
	case m.exiting:
		fmt.Fprintf(out, "\n💡 %s is still clocked in since %s\n", entry.EmployeeID, entry.EntryAt.Format("15:04:05"))
		fmt.Fprintf(out, "   Use 'timeclock status %s' to check or 'timeclock out %s' to clock out.\n", entry.EmployeeID, entry.EmployeeID)
	}
	return nil
}

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
