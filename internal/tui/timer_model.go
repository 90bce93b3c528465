package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/timeclock/internal/worktime"
)

// SessionCloser clocks an employee out.
type SessionCloser interface {
	ClockOut(ctx context.Context, employeeID string) (worktime.Entry, error)
}

// TodaySummary is what the employee has on record today apart from the
// running session.
type TodaySummary struct {
	ClosedHours float64
	LateMinutes int
}

// TimerModel represents the TUI model for a running work session
type TimerModel struct {
	width  int
	height int

	ctx      context.Context
	sessions SessionCloser
	entry    worktime.Entry
	today    TodaySummary
	now      func() time.Time

	keys timerKeyMap
	help help.Model

	elapsed time.Duration
	frame   int

	closing bool            // o pressed, clock-out in flight
	closed  *worktime.Entry // set once the session is closed
	exiting bool            // q pressed, session left running
	err     error
}

// timerTickMsg is sent every second to update the timer
type timerTickMsg struct{}

// animationTickMsg is sent for faster animations
type animationTickMsg struct{}

type clockedOutMsg struct {
	entry worktime.Entry
	err   error
}

// NewTimerModel creates a timer for an open entry
func NewTimerModel(ctx context.Context, sessions SessionCloser, entry worktime.Entry, today TodaySummary) TimerModel {
	m := TimerModel{
		ctx:      ctx,
		sessions: sessions,
		entry:    entry,
		today:    today,
		now:      time.Now,
		keys:     newTimerKeyMap(),
		help:     help.New(),
	}
	m.elapsed = m.now().Sub(entry.EntryAt)
	return m
}

func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(timerTick(), animationTick())
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

func animationTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

func (m TimerModel) done() bool {
	return m.closing || m.exiting || m.closed != nil
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsed = m.now().Sub(m.entry.EntryAt)
		if m.done() {
			return m, nil
		}
		return m, timerTick()

	case animationTickMsg:
		m.frame = (m.frame + 1) % 4
		if m.done() {
			return m, nil
		}
		return m, animationTick()

	case clockedOutMsg:
		m.closing = false
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.closed = &msg.entry
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.closing {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.ClockOut):
			m.closing = true
			return m, m.clockOut()
		case key.Matches(msg, m.keys.Leave, m.keys.Quit):
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m TimerModel) clockOut() tea.Cmd {
	ctx, sessions, employeeID := m.ctx, m.sessions, m.entry.EmployeeID
	return func() tea.Msg {
		entry, err := sessions.ClockOut(ctx, employeeID)
		return clockedOutMsg{entry: entry, err: err}
	}
}

// todayHours counts the running session on top of what is already closed.
func (m TimerModel) todayHours() float64 {
	return m.today.ClosedHours + m.elapsed.Hours()
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.width < 90 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTimerPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTimerPanel(leftWidth, contentHeight),
		"  ",
		m.renderDayPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Align(lipgloss.Center).Width(width)
}

// renderTimerPanel renders the left timer panel
func (m TimerModel) renderTimerPanel(width, height int) string {
	var components []string

	anim := []string{"⏱", "⏲", "⏱", "⏲"}[m.frame]
	header := centered(width).
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Render(fmt.Sprintf("%s  ON THE CLOCK  %s", anim, anim))
	components = append(components, header)

	employee := centered(width).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Render(m.entry.EmployeeID)
	components = append(components, employee)

	var clock []string
	for _, line := range strings.Split(renderBigClock(m.elapsed), "\n") {
		clock = append(clock, centered(width).Render(line))
	}
	components = append(components, strings.Join(clock, "\n"))

	started := centered(width).
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Render("Clocked in at " + m.entry.EntryAt.Format("15:04:05"))
	components = append(components, started)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n\n"))
}

// renderDayPanel renders today's figures on the right
func (m TimerModel) renderDayPanel(width, height int) string {
	var b strings.Builder
	inner := width - 8

	b.WriteString("\n")
	b.WriteString(centered(inner).
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render(strings.Join(banner, "\n")))
	b.WriteString("\n\n")

	b.WriteString(centered(inner).
		Foreground(lipgloss.Color(ColorBorder)).
		Render(strings.Repeat("─", min(width-12, 40))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width-12).
		Padding(0, 1).
		Render("Today, "+m.entry.EntryAt.Format("Mon Jan 02")))
	b.WriteString("\n\n")

	line := func(icon, label, value, color string) {
		b.WriteString(centered(inner).Render(fmt.Sprintf("%s %s: %s", icon, label,
			lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(value))))
		b.WriteString("\n")
	}

	hours := m.todayHours()
	line("🕘", "Schedule", "09:00 - 18:00", ColorSecondaryText)
	line("📊", "Worked today", fmt.Sprintf("%.2fh", hours), ColorAccentBright)

	if overtime := hours - worktime.StandardDayHours; overtime > 0 {
		line("⏫", "Overtime", fmt.Sprintf("%.2fh", overtime), ColorWarning)
	} else {
		line("⏳", "Until 8h", FormatDuration(time.Duration(-overtime*float64(time.Hour))), ColorSecondaryText)
	}

	if m.today.LateMinutes > 0 {
		line("⚠️ ", "Late", fmt.Sprintf("%d min", m.today.LateMinutes), ColorWarning)
	} else {
		line("✅", "Arrival", "on time", ColorSuccess)
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	if m.closing {
		return centered(m.width).
			Foreground(lipgloss.Color(ColorHelpText)).
			Italic(true).
			Render("clocking out...")
	}
	return centered(m.width).Render(m.help.View(m.keys))
}

var banner = []string{
	"▀█▀ █ █▀▄▀█ █▀▀ █▀▀ █   █▀█ █▀▀ █▄▀",
	" █  █ █ ▀ █ ██▄ █▄▄ █▄▄ █▄█ █▄▄ █ █",
}

// bigDigits are 5x5 glyphs for the elapsed time display.
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

func clockText(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	mm := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, mm, s)
	}
	return fmt.Sprintf("%02d:%02d", mm, s)
}

func renderBigClock(d time.Duration) string {
	var lines [5]strings.Builder
	for _, r := range clockText(d) {
		glyph, ok := bigDigits[r]
		if !ok {
			continue
		}
		for i := range lines {
			lines[i].WriteString(glyph[i])
			lines[i].WriteString(" ")
		}
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	out := make([]string, len(lines))
	for i := range lines {
		out[i] = style.Render(lines[i].String())
	}
	return strings.Join(out, "\n")
}
