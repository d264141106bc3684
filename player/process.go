package player

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"
)

const readBufSize = 4096

// ErrExited is returned when writing to a process that has already exited.
var ErrExited = errors.New("process exited")

// execProcess adapts an *exec.Cmd with piped stdio to Process.
type execProcess struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	stderr io.ReadCloser

	exited chan struct{} // closed after cmd.Wait returns

	// quitGrace, when set, is how long Kill waits for the process to honour
	// a slave-mode quit before signalling it.
	quitGrace time.Duration

	mu        sync.Mutex // guards the observers and listening
	onStdout  func([]byte)
	onStderr  func([]byte)
	onExit    func(error)
	listening bool

	writeMu sync.Mutex
}

func startProcess(cmd *exec.Cmd) (*execProcess, error) {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", cmd.Path, err)
	}

	return &execProcess{
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		exited: make(chan struct{}),
	}, nil
}

func (p *execProcess) OnStdout(fn func(chunk []byte)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onStdout = fn
}

func (p *execProcess) OnStderr(fn func(chunk []byte)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onStderr = fn
}

func (p *execProcess) OnExit(fn func(err error)) (cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onExit = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.onExit = nil
	}
}

// Listen starts one pump per output stream and a reaper that waits for
// both pumps to drain before calling cmd.Wait, as exec requires.
func (p *execProcess) Listen() {
	p.mu.Lock()
	if p.listening {
		p.mu.Unlock()
		return
	}
	p.listening = true
	onStdout, onStderr := p.onStdout, p.onStderr
	p.mu.Unlock()

	var pumps sync.WaitGroup
	pumps.Add(2)
	go func() {
		defer pumps.Done()
		pump(p.stdout, onStdout)
	}()
	go func() {
		defer pumps.Done()
		pump(p.stderr, onStderr)
	}()

	go func() {
		pumps.Wait()
		err := p.cmd.Wait()
		close(p.exited)

		p.mu.Lock()
		onExit := p.onExit
		p.onExit = nil
		p.mu.Unlock()

		if onExit != nil {
			onExit(err)
		}
	}()
}

func (p *execProcess) WriteLine(line string) error {
	select {
	case <-p.exited:
		return ErrExited
	default:
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	_, err := io.WriteString(p.stdin, line+"\n")
	return err
}

func (p *execProcess) Kill() error {
	select {
	case <-p.exited:
		return nil
	default:
	}

	if p.quitGrace > 0 && p.WriteLine("quit") == nil {
		select {
		case <-p.exited:
			return nil
		case <-time.After(p.quitGrace):
		}
	}
	return killProcess(p.cmd)
}

func (p *execProcess) PID() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

// Wait returns a channel closed when the process has been reaped.
func (p *execProcess) Wait() <-chan struct{} {
	return p.exited
}

// pump copies r to deliver in chunks until EOF or a read error. deliver
// may be nil, in which case the stream is drained and discarded.
func pump(r io.Reader, deliver func([]byte)) {
	buf := make([]byte, readBufSize)
	for {
		n, err := r.Read(buf)
		if n > 0 && deliver != nil {
			deliver(append([]byte(nil), buf[:n]...))
		}
		if err != nil {
			return
		}
	}
}
