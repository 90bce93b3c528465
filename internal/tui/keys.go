package tui

import "github.com/charmbracelet/bubbles/key"

type timerKeyMap struct {
	ClockOut key.Binding
	Leave    key.Binding
	Quit     key.Binding
}

func newTimerKeyMap() timerKeyMap {
	return timerKeyMap{
		ClockOut: key.NewBinding(
			key.WithKeys("o", "O"),
			key.WithHelp("o", "clock out"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "exit (keep running)"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ClockOut, k.Leave, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
