// Package tui is the interactive now-playing view.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mpq-cli/mpq/player"
	"github.com/mpq-cli/mpq/session"
)

// Run plays opts in a session and shows it until the user quits. Quitting
// stops playback.
func Run(ctx context.Context, opts session.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tea.Msg, eventBuffer)
	send := func(msg tea.Msg) {
		select {
		case events <- msg:
		default:
		}
	}

	onEvent := opts.OnEvent
	opts.OnEvent = func(e player.Event) {
		if onEvent != nil {
			onEvent(e)
		}
		send(eventMsg(e))
	}
	onError := opts.OnError
	opts.OnError = func(err error) {
		if onError != nil {
			onError(err)
		}
		send(errorMsg{err})
	}

	s := session.New(opts)
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	bubble := newBubble(s, events)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	cancel()
	runErr := <-done
	if s.Player.NowPlaying().IsPresent() {
		s.Shutdown()
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
