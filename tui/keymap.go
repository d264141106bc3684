package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	playing bool

	next, stop, pause, auto,
	quit, forceQuit,
	showHelp key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next"),
		),
		stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		auto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle autoplay"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// setPlaying switches the bindings that only make sense with a running item.
func (k *keymap) setPlaying(playing bool) {
	k.playing = playing
	k.stop.SetEnabled(playing)
	k.pause.SetEnabled(playing)
}

func (k *keymap) ShortHelp() []key.Binding {
	if k.playing {
		return []key.Binding{k.pause, k.next, k.stop, k.quit}
	}
	return []key.Binding{k.next, k.auto, k.quit}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.stop, k.pause},
		{k.auto, k.showHelp, k.quit},
	}
}
