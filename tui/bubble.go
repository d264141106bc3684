package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mpq-cli/mpq/output"
	"github.com/mpq-cli/mpq/playlist"
	"github.com/mpq-cli/mpq/session"
	"github.com/mpq-cli/mpq/style"
	"github.com/mpq-cli/mpq/util"
	"github.com/samber/mo"
)

const (
	eventBuffer  = 64
	refreshEvery = 500 * time.Millisecond
	queueShown   = 5
)

type bubble struct {
	session *session.Session
	events  <-chan tea.Msg

	keymap *keymap

	spinnerC  spinner.Model
	progressC progress.Model
	helpC     help.Model

	// snapshot of the player, refreshed on events and ticks
	nowPlaying  mo.Option[playlist.Item]
	autoPlaying bool
	paused      bool
	metadata    output.Metadata
	status      output.Status
	pending     []playlist.Item
	played      int

	lastError error

	width, height int
}

func newBubble(s *session.Session, events <-chan tea.Msg) *bubble {
	b := &bubble{
		session: s,
		events:  events,
		keymap:  newKeymap(),
		helpC:   help.New(),
	}

	b.spinnerC = spinner.New()
	b.spinnerC.Spinner = spinner.Dot
	b.spinnerC.Style = lipgloss.NewStyle().Foreground(style.Accent)

	b.progressC = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	if w, h, err := util.TerminalSize(); err == nil {
		b.resize(w, h)
	}

	b.refresh()
	return b
}

func (b *bubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y
	b.progressC.Width = util.Max(b.width-lipgloss.Width(" 00:00:00 / 00:00:00"), 10)
	b.helpC.Width = b.width
}

// refresh copies the player state into the bubble.
func (b *bubble) refresh() {
	p := b.session.Player

	nowPlaying := p.NowPlaying()
	if nowPlaying.IsAbsent() {
		b.paused = false
	}

	b.nowPlaying = nowPlaying
	b.autoPlaying = p.AutoPlaying()
	b.metadata = p.Metadata()
	b.status = p.Status()
	b.pending = b.session.Playlist.Pending()
	b.played = len(b.session.Playlist.History())
	b.keymap.setPlaying(nowPlaying.IsPresent())
}
