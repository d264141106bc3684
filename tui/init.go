package tui

import tea "github.com/charmbracelet/bubbletea"

func (b *bubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.waitForEvent(), tick())
}
