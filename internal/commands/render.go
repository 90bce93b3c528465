package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/balkashynov/timeclock/internal/tui"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorAccentBright)).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorPrimaryText)).Padding(0, 1)
	totalStyle  = cellStyle.Bold(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorAccentMain))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorWarning)).Bold(true)
)

// newTable returns a bordered table. When boldLast is set the last row is
// rendered as a totals row.
func newTable(headers []string, rows [][]string, boldLast bool) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorBorder))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case boldLast && row == len(rows)-1:
				style = totalStyle
			}
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})
}

var printer = message.NewPrinter(language.English)

// money formats an amount with two decimals and thousands separators.
func money(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// hoursCell shows a dash for zero.
func hoursCell(h float64) string {
	if h == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", h)
}

func minutesCell(m int) string {
	if m == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", m)
}

// renderBarChart draws one horizontal bar per label, scaled to the largest
// value.
func renderBarChart(out io.Writer, labels []string, values []float64) {
	const width = 40

	var peak float64
	for _, v := range values {
		peak = max(peak, v)
	}

	for i, v := range values {
		n := 0
		if peak > 0 {
			n = int(v / peak * width)
		}
		if v > 0 && n == 0 {
			n = 1
		}
		fmt.Fprintf(out, "%-4s %s %7.2fh\n", labels[i], barStyle.Render(strings.Repeat("█", n)+strings.Repeat(" ", width-n)), v)
	}
}

func writeJSON(out io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}
