package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mpq-cli/mpq/player"
)

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return b, b.handleKey(msg)
	case eventMsg:
		if msg.Kind == player.Played {
			b.lastError = nil
		}
		b.refresh()
		return b, tea.Batch(b.waitForEvent(), b.progressC.SetPercent(b.percent()))
	case errorMsg:
		b.lastError = msg.err
		return b, b.waitForEvent()
	case tickMsg:
		b.refresh()
		return b, tea.Batch(tick(), b.progressC.SetPercent(b.percent()))
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case progress.FrameMsg:
		model, cmd := b.progressC.Update(msg)
		b.progressC = model.(progress.Model)
		return b, cmd
	}

	return b, nil
}

func (b *bubble) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.forceQuit), key.Matches(msg, b.keymap.quit):
		return tea.Quit
	case key.Matches(msg, b.keymap.next):
		return b.playNext()
	case key.Matches(msg, b.keymap.stop):
		return b.stop()
	case key.Matches(msg, b.keymap.pause):
		return b.togglePause()
	case key.Matches(msg, b.keymap.auto):
		return b.toggleAuto()
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}

	return nil
}
