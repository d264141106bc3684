package player

import (
	"errors"
	"sync"

	"github.com/mpq-cli/mpq/playlist"
)

var errLaunch = errors.New("no such binary")

// fakeProcess records what the player does with it and lets a test drive
// its output and exit by hand.
type fakeProcess struct {
	mu sync.Mutex

	pid       int
	item      playlist.Item
	stdout    func([]byte)
	stderr    func([]byte)
	exit      func(error)
	listening bool
	killed    bool
	written   []string
}

func (f *fakeProcess) OnStdout(fn func([]byte)) { f.stdout = fn }
func (f *fakeProcess) OnStderr(fn func([]byte)) { f.stderr = fn }

func (f *fakeProcess) OnExit(fn func(error)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exit = fn

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.exit = nil
	}
}

func (f *fakeProcess) Listen() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listening = true
}

func (f *fakeProcess) WriteLine(line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.written = append(f.written, line)
	return nil
}

func (f *fakeProcess) Kill() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.killed = true
	return nil
}

func (f *fakeProcess) PID() int { return f.pid }

func (f *fakeProcess) emit(out string) {
	f.stdout([]byte(out))
}

func (f *fakeProcess) emitStderr(out string) {
	f.stderr([]byte(out))
}

// finish simulates the process exiting on its own.
func (f *fakeProcess) finish(err error) {
	f.mu.Lock()
	fn := f.exit
	f.exit = nil
	f.mu.Unlock()

	if fn != nil {
		fn(err)
	}
}

func (f *fakeProcess) exitObserved() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exit != nil
}

type fakeLauncher struct {
	procs []*fakeProcess
	opts  []Options
	fail  bool
}

func (l *fakeLauncher) Launch(item playlist.Item, opts Options) (Process, error) {
	if l.fail {
		return nil, errLaunch
	}

	proc := &fakeProcess{pid: 1000 + len(l.procs), item: item}
	l.procs = append(l.procs, proc)
	l.opts = append(l.opts, opts)
	return proc, nil
}

func (l *fakeLauncher) last() *fakeProcess {
	if len(l.procs) == 0 {
		return nil
	}
	return l.procs[len(l.procs)-1]
}
