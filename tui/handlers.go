package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mpq-cli/mpq/player"
)

type (
	eventMsg player.Event
	errorMsg struct{ err error }
	tickMsg  time.Time
)

func (b *bubble) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-b.events
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (b *bubble) playNext() tea.Cmd {
	return b.check(b.session.Player.PlayNext())
}

func (b *bubble) stop() tea.Cmd {
	return b.check(b.session.Player.Stop())
}

func (b *bubble) togglePause() tea.Cmd {
	b.session.Player.Command("pause")
	b.paused = !b.paused
	return nil
}

func (b *bubble) toggleAuto() tea.Cmd {
	return b.check(b.session.Player.SetAutoPlaying(!b.autoPlaying))
}

// check records err for the view; launch failures also arrive as events.
func (b *bubble) check(err error) tea.Cmd {
	if err != nil {
		b.lastError = err
	}
	b.refresh()
	return nil
}
