package player

import "github.com/mpq-cli/mpq/playlist"

// Launcher starts the playback subprocess for an item.
type Launcher interface {
	Launch(item playlist.Item, opts Options) (Process, error)
}

// Process is a running playback subprocess.
//
// Observers are registered before Listen. Listen starts delivery on other
// goroutines and must never invoke an observer synchronously.
type Process interface {
	// OnStdout and OnStderr receive raw chunks of the respective stream.
	OnStdout(fn func(chunk []byte))
	OnStderr(fn func(chunk []byte))

	// OnExit registers fn to run once when the process exits on its own.
	// The returned cancel func detaches it.
	OnExit(fn func(err error)) (cancel func())

	// Listen starts delivering output and exit events.
	Listen()

	// WriteLine writes line plus a newline to the process input.
	WriteLine(line string) error

	// Kill terminates the process.
	Kill() error

	PID() int
}
