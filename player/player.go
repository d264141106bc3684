// Package player supervises a single mplayer subprocess and advances it through a playlist.
//
// A Player is either idle or playing exactly one item in exactly one
// subprocess. Every public method and every subprocess observer runs under
// the same mutex, so a transition always completes before the next one
// starts. Events are queued during a transition and delivered in order once
// the mutex is released, so subscribers may call back into the Player or
// its Playlist. Events raised while another goroutine is delivering are
// handed to that goroutine.
package player

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mpq-cli/mpq/log"
	"github.com/mpq-cli/mpq/output"
	"github.com/mpq-cli/mpq/playlist"
	"github.com/samber/mo"
)

// IdentifyModule carries the metadata lines mplayer prints with -identify.
const IdentifyModule = "IDENTIFY"

// Player is the playback state machine.
type Player struct {
	mu sync.Mutex

	playlist *playlist.Playlist
	launcher Launcher
	opts     Options

	autoPlaying bool
	nowPlaying  mo.Option[playlist.Item]
	proc        Process
	cancelExit  func()

	buffers    map[string][]string
	statusLine string

	subscribers []func(Event)
	notices     []notice
	delivering  bool
}

// notice is a queued event. listen, when set, is told to Listen right
// after the event is delivered so no output precedes the Played event.
type notice struct {
	event  Event
	listen Process
}

// New creates an idle player over pl. It registers itself on pl so that
// an enqueue while auto-playing and idle starts playback.
func New(pl *playlist.Playlist, launcher Launcher, opts Options) *Player {
	p := &Player{
		playlist: pl,
		launcher: launcher,
		opts:     opts.clone(),
	}
	p.resetBuffers()

	pl.OnEnqueue(p.queued)
	return p
}

func (p *Player) queued() {
	p.mu.Lock()
	defer p.unlock()

	if err := p.advance(); err != nil {
		log.Errorf("autoplay after enqueue: %v", err)
	}
}

// PlayNext stops the current item, if any, and plays the head of the queue.
// With an empty queue the player is left idle.
func (p *Player) PlayNext() error {
	p.mu.Lock()
	defer p.unlock()

	if p.proc != nil {
		p.terminate()
		p.finish(nil)
	}

	next, ok := p.playlist.PeekNext().Get()
	if !ok {
		return nil
	}
	p.playlist.PopNext()

	return p.start(next)
}

// Play starts item immediately, bypassing the queue. A running item is
// stopped and recorded first.
func (p *Player) Play(item playlist.Item) error {
	p.mu.Lock()
	defer p.unlock()

	if p.proc != nil {
		p.terminate()
		p.finish(nil)
	}

	return p.start(item)
}

// Stop kills the running subprocess, records the item in the history and
// notifies subscribers. On an idle player only the notification happens.
// While auto-playing the next queued item starts right after.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.unlock()

	p.terminate()
	p.finish(nil)
	return p.advance()
}

// SetAutoPlaying toggles continuous playback. Turning it on while idle
// starts the head of the queue.
func (p *Player) SetAutoPlaying(autoPlaying bool) error {
	p.mu.Lock()
	defer p.unlock()

	p.autoPlaying = autoPlaying
	return p.advance()
}

// Command writes a slave-mode command to the subprocess. It does nothing
// while idle; write failures are only logged.
func (p *Player) Command(cmd string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.proc == nil {
		return
	}
	if err := p.proc.WriteLine(cmd); err != nil {
		log.Warnf("write %q to pid %d: %v", cmd, p.proc.PID(), err)
	}
}

func (p *Player) NowPlaying() mo.Option[playlist.Item] {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.nowPlaying
}

func (p *Player) AutoPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.autoPlaying
}

// Metadata decodes the IDENTIFY lines recorded for the current play.
func (p *Player) Metadata() output.Metadata {
	p.mu.Lock()
	defer p.mu.Unlock()

	return output.BuildMetadata(p.buffers[IdentifyModule])
}

// Status decodes the last status line of the current play.
func (p *Player) Status() output.Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	return output.ParseStatus(p.statusLine)
}

// Lines returns a copy of the raw values recorded for module.
func (p *Player) Lines(module string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]string(nil), p.buffers[module]...)
}

// Subscribe registers fn for every future transition.
func (p *Player) Subscribe(fn func(Event)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subscribers = append(p.subscribers, fn)
}

// OnPlay registers fn for Played events.
func (p *Player) OnPlay(fn func(item playlist.Item)) {
	p.Subscribe(func(e Event) {
		if e.Kind == Played {
			fn(e.Item.MustGet())
		}
	})
}

// OnStop registers fn for Stopped events.
func (p *Player) OnStop(fn func(item mo.Option[playlist.Item])) {
	p.Subscribe(func(e Event) {
		if e.Kind == Stopped {
			fn(e.Item)
		}
	})
}

// advance plays queued items while auto-playing and idle. It loops rather
// than recursing so long auto-play chains keep a flat stack; in practice
// the loop ends after one successful launch.
func (p *Player) advance() error {
	for p.autoPlaying && p.proc == nil {
		next, ok := p.playlist.PeekNext().Get()
		if !ok {
			return nil
		}
		p.playlist.PopNext()

		if err := p.start(next); err != nil {
			return err
		}
	}
	return nil
}

// start launches item. The caller guarantees the player is idle.
func (p *Player) start(item playlist.Item) error {
	if p.opts.Remote {
		item.Host = p.opts.RemoteHost
	}

	p.nowPlaying = mo.Some(item)
	p.resetBuffers()

	proc, err := p.launcher.Launch(item, p.opts)
	if err != nil {
		p.nowPlaying = mo.None[playlist.Item]()
		err = fmt.Errorf("launch %s: %w", item, err)
		p.emit(Event{Kind: Failed, Item: mo.Some(item), Err: err})
		return err
	}
	p.proc = proc
	log.Process(proc.PID(), item.URI).Info("playing")

	splitter := &output.Splitter{}
	proc.OnStdout(func(chunk []byte) { p.stdout(proc, splitter, chunk) })
	proc.OnStderr(func(chunk []byte) { p.stderr(proc.PID(), item, chunk) })
	p.cancelExit = proc.OnExit(func(err error) { p.exited(proc, splitter, err) })

	p.notices = append(p.notices, notice{event: Event{Kind: Played, Item: p.nowPlaying}, listen: proc})
	return nil
}

// terminate kills the subprocess without triggering its exit observer.
func (p *Player) terminate() {
	if p.proc == nil {
		return
	}

	if p.cancelExit != nil {
		p.cancelExit()
	}
	if err := p.proc.Kill(); err != nil {
		log.Warnf("kill pid %d: %v", p.proc.PID(), err)
	}

	p.proc, p.cancelExit = nil, nil
}

// finish records and announces the end of the current item.
func (p *Player) finish(exitErr error) {
	e := Event{Kind: Stopped, Item: p.nowPlaying, Err: exitErr}
	if it, ok := p.nowPlaying.Get(); ok {
		p.playlist.RecordHistory(it)
		e.Metadata = output.BuildMetadata(p.buffers[IdentifyModule])
	}

	p.emit(e)
	p.nowPlaying = mo.None[playlist.Item]()
}

func (p *Player) stdout(proc Process, splitter *output.Splitter, chunk []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.proc != proc {
		return
	}
	for _, line := range splitter.Feed(chunk) {
		p.fold(line)
	}
}

// stderr forwards diagnostics unless quiet. opts never change, so no lock.
func (p *Player) stderr(pid int, item playlist.Item, chunk []byte) {
	if p.opts.Quiet {
		return
	}
	log.Process(pid, item.URI).Error(strings.TrimRight(string(chunk), "\r\n"))
}

func (p *Player) exited(proc Process, splitter *output.Splitter, err error) {
	p.mu.Lock()
	defer p.unlock()

	if p.proc != proc {
		return
	}
	if tail, ok := splitter.Flush(); ok {
		p.fold(tail)
	}

	if err != nil {
		log.Process(proc.PID(), p.nowPlaying.OrEmpty().URI).Warnf("exited: %v", err)
	}
	p.proc, p.cancelExit = nil, nil

	p.finish(err)
	if advanceErr := p.advance(); advanceErr != nil {
		log.Errorf("autoplay after exit: %v", advanceErr)
	}
}

func (p *Player) fold(line string) {
	update, ok := output.Parse(line, p.opts.Modules).Get()
	if !ok {
		log.Debugf("mplayer: %s", line)
		return
	}

	switch update.Kind {
	case output.StatusUpdate:
		p.statusLine = update.Value
	case output.ModuleUpdate:
		p.buffers[update.Module] = append(p.buffers[update.Module], update.Value)
	}
}

func (p *Player) resetBuffers() {
	p.buffers = make(map[string][]string, len(p.opts.Modules))
	for _, module := range p.opts.Modules {
		p.buffers[module] = []string{}
	}
	p.statusLine = ""
}

func (p *Player) emit(e Event) {
	p.notices = append(p.notices, notice{event: e})
}

// unlock releases the mutex and delivers the queued notices. Only one
// goroutine delivers at a time; notices queued by subscribers or by other
// goroutines meanwhile are picked up by the same loop.
func (p *Player) unlock() {
	if p.delivering {
		p.mu.Unlock()
		return
	}

	p.delivering = true
	for len(p.notices) > 0 {
		notices := p.notices
		p.notices = nil
		subscribers := append([]func(Event){}, p.subscribers...)
		p.mu.Unlock()

		for _, n := range notices {
			for _, fn := range subscribers {
				fn(n.event)
			}
			if n.listen != nil {
				n.listen.Listen()
			}
		}

		p.mu.Lock()
	}
	p.delivering = false
	p.mu.Unlock()
}
