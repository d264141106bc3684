package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mpq-cli/mpq/filesystem"
	"github.com/mpq-cli/mpq/history"
	"github.com/mpq-cli/mpq/player"
	"github.com/mpq-cli/mpq/playlist"
	. "github.com/smartystreets/goconvey/convey"
)

// instantProcess prints a title and exits as soon as it is listened to,
// unless it is told to hang until killed.
type instantProcess struct {
	uri    string
	hang   bool
	stdout func([]byte)

	mu     sync.Mutex
	exit   func(error)
	killed chan struct{}
	once   sync.Once
}

func (p *instantProcess) OnStdout(fn func([]byte)) { p.stdout = fn }
func (p *instantProcess) OnStderr(func([]byte))    {}

func (p *instantProcess) OnExit(fn func(error)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.exit = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.exit = nil
	}
}

func (p *instantProcess) Listen() {
	if p.hang {
		return
	}
	go func() {
		p.stdout([]byte("IDENTIFY: ID_TITLE=" + p.uri + "\n"))

		p.mu.Lock()
		fn := p.exit
		p.exit = nil
		p.mu.Unlock()
		if fn != nil {
			fn(nil)
		}
	}()
}

func (p *instantProcess) WriteLine(string) error { return nil }

func (p *instantProcess) Kill() error {
	p.once.Do(func() { close(p.killed) })
	return nil
}

func (p *instantProcess) PID() int { return 1 }

type instantLauncher struct {
	mu       sync.Mutex
	launched []string
	hang     bool
	last     *instantProcess
}

func (l *instantLauncher) Launch(item playlist.Item, _ player.Options) (player.Process, error) {
	if strings.HasPrefix(item.URI, "bad") {
		return nil, errors.New("cannot open " + item.URI)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.launched = append(l.launched, item.URI)
	l.last = &instantProcess{uri: item.URI, hang: l.hang, killed: make(chan struct{})}
	return l.last, nil
}

func (l *instantLauncher) uris() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.launched...)
}

func run(s *Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Run(ctx)
}

func init() {
	filesystem.SetMemMapFs()
}

func TestRun(t *testing.T) {
	Convey("Given a session over instantly finishing media", t, func() {
		launcher := &instantLauncher{}
		store := history.New("/history/session.json", 0)
		So(store.Clear(), ShouldBeNil)

		var (
			mu     sync.Mutex
			events []player.EventKind
			errs   []error
		)
		opts := Options{
			URIs:     []string{"a", "b", "c"},
			AutoPlay: true,
			Launcher: launcher,
			History:  store,
			OnEvent: func(e player.Event) {
				mu.Lock()
				defer mu.Unlock()
				events = append(events, e.Kind)
			},
			OnError: func(err error) {
				mu.Lock()
				defer mu.Unlock()
				errs = append(errs, err)
			},
		}

		Convey("Auto-play runs the whole queue in order", func() {
			s := New(opts)
			So(run(s), ShouldBeNil)

			So(launcher.uris(), ShouldResemble, []string{"a", "b", "c"})
			So(s.Playlist.Pending(), ShouldBeEmpty)
			So(s.Playlist.History(), ShouldHaveLength, 3)
			So(s.Player.NowPlaying().IsAbsent(), ShouldBeTrue)

			mu.Lock()
			So(events, ShouldHaveLength, 6)
			mu.Unlock()

			Convey("and every finished item lands in the history with its title", func() {
				entries, err := store.Get()
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 3)
				So(entries[0].Title, ShouldEqual, "a")
				So(entries[2].URI, ShouldEqual, "c")
			})
		})

		Convey("Items that fail to launch are reported and skipped", func() {
			opts.URIs = []string{"bad1", "a", "bad2", "b"}
			So(run(New(opts)), ShouldBeNil)

			So(launcher.uris(), ShouldResemble, []string{"a", "b"})
			mu.Lock()
			So(errs, ShouldHaveLength, 2)
			mu.Unlock()
		})

		Convey("Without auto-play only the first item plays", func() {
			opts.AutoPlay = false
			s := New(opts)
			So(run(s), ShouldBeNil)

			So(launcher.uris(), ShouldResemble, []string{"a"})
			So(s.Playlist.Pending(), ShouldHaveLength, 2)
		})

		Convey("URIs read from the input are queued after the arguments", func() {
			opts.URIs = []string{"a"}
			opts.Input = strings.NewReader("b\n\n# comment\n  c  \n")
			So(run(New(opts)), ShouldBeNil)

			So(launcher.uris(), ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("An empty session ends at once", func() {
			opts.URIs = nil
			So(run(New(opts)), ShouldBeNil)
			So(launcher.uris(), ShouldBeEmpty)
		})
	})

	Convey("Given media that never ends", t, func() {
		launcher := &instantLauncher{hang: true}
		s := New(Options{URIs: []string{"a", "b"}, AutoPlay: true, Launcher: launcher})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- s.Run(ctx) }()

		So(waitFor(func() bool { return s.Player.NowPlaying().IsPresent() }), ShouldBeTrue)
		cancel()

		Convey("Cancelling stops playback without advancing", func() {
			select {
			case err := <-done:
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			case <-time.After(10 * time.Second):
				t.Fatal("Run did not return")
			}

			So(s.Player.NowPlaying().IsAbsent(), ShouldBeTrue)
			So(s.Player.AutoPlaying(), ShouldBeFalse)
			So(launcher.uris(), ShouldResemble, []string{"a"})
			So(s.Playlist.Pending(), ShouldHaveLength, 1)

			select {
			case <-launcher.last.killed:
			default:
				t.Fatal("process was not killed")
			}
		})
	})
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}
