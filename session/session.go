// Package session wires a playlist, a player and the history store into one playback run.
package session

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/mpq-cli/mpq/history"
	"github.com/mpq-cli/mpq/log"
	"github.com/mpq-cli/mpq/player"
	"github.com/mpq-cli/mpq/playlist"
)

// Options configures a Session.
type Options struct {
	// URIs are queued before playback starts.
	URIs []string
	// Input, when set, is read for more URIs, one per line. Blank lines and
	// lines starting with # are skipped.
	Input io.Reader

	// AutoPlay advances through the queue. Without it only the first item plays.
	AutoPlay bool

	Player player.Options
	// Launcher defaults to mplayer.
	Launcher player.Launcher
	// History receives every finished item when set.
	History *history.Store

	// OnEvent observes every player transition, after the transition is
	// complete.
	OnEvent func(player.Event)
	// OnError receives launch failures. They never end the session.
	OnError func(error)
}

// Session is one playback run.
type Session struct {
	Playlist *playlist.Playlist
	Player   *player.Player

	opts    Options
	changed chan struct{}
}

func New(opts Options) *Session {
	launcher := opts.Launcher
	if launcher == nil {
		launcher = player.NewMPlayer()
	}

	pl := playlist.New()
	s := &Session{
		Playlist: pl,
		Player:   player.New(pl, launcher, opts.Player),
		opts:     opts,
		changed:  make(chan struct{}, 1),
	}

	s.Player.Subscribe(s.observe)
	return s
}

// Run plays the queue and blocks until there is nothing left to play and
// the input, if any, is exhausted. Cancelling ctx stops playback; Run then
// returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	for _, uri := range s.opts.URIs {
		s.Playlist.Enqueue(playlist.NewItem(uri))
	}

	inputDone := make(chan struct{})
	if s.opts.Input != nil {
		go s.produce(s.opts.Input, inputDone)
	} else {
		close(inputDone)
	}

	s.Start()

	input := inputDone
	for {
		if input == nil && s.idle() {
			return nil
		}

		select {
		case <-ctx.Done():
			s.Shutdown()
			return ctx.Err()
		case <-input:
			input = nil
		case <-s.changed:
			if s.opts.AutoPlay && s.Player.NowPlaying().IsAbsent() {
				s.autoplay()
			}
		}
	}
}

// Start begins playback: continuous when auto-playing, a single item otherwise.
func (s *Session) Start() {
	if s.opts.AutoPlay {
		s.autoplay()
		return
	}

	s.report(s.Player.PlayNext())
}

// Shutdown disables auto-play and stops the current item.
func (s *Session) Shutdown() {
	s.report(s.Player.SetAutoPlaying(false))
	s.report(s.Player.Stop())
}

// autoplay enables continuous playback. A failed launch has already dropped
// its item from the queue, so retrying moves on to the next one.
func (s *Session) autoplay() {
	for {
		err := s.Player.SetAutoPlaying(true)
		if err == nil {
			return
		}
		s.report(err)
	}
}

func (s *Session) idle() bool {
	if s.Player.NowPlaying().IsPresent() {
		return false
	}
	return !s.opts.AutoPlay || len(s.Playlist.Pending()) == 0
}

func (s *Session) produce(r io.Reader, done chan<- struct{}) {
	defer close(done)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		uri := strings.TrimSpace(scanner.Text())
		if uri == "" || strings.HasPrefix(uri, "#") {
			continue
		}

		s.Playlist.Enqueue(playlist.NewItem(uri))
		s.notify()
	}

	if err := scanner.Err(); err != nil {
		log.Errorf("read queue input: %v", err)
	}
}

func (s *Session) observe(e player.Event) {
	if e.Kind == player.Failed && s.opts.OnError != nil {
		s.opts.OnError(e.Err)
	}

	if item, ok := e.Item.Get(); ok && e.Kind == player.Stopped && s.opts.History != nil {
		if err := s.opts.History.Append(history.NewEntry(item, e.Metadata)); err != nil {
			log.Errorf("save history: %v", err)
		}
	}

	if s.opts.OnEvent != nil {
		s.opts.OnEvent(e)
	}

	s.notify()
}

func (s *Session) notify() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

func (s *Session) report(err error) {
	if err == nil {
		return
	}

	log.Error(err)
}
