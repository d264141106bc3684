package player

import (
	"github.com/mpq-cli/mpq/constant"
	"github.com/mpq-cli/mpq/output"
)

// Options is the configuration snapshot the player hands to its launcher.
// It is copied at construction and never changes afterwards.
type Options struct {
	// Binary is the player executable, mplayer when empty.
	Binary string
	// Args are appended after the slave-mode flags.
	Args []string

	Remote     bool
	RemoteHost string
	// Display is exported as DISPLAY for remote playback.
	Display string

	// Quiet suppresses forwarding of the subprocess stderr to the log.
	Quiet bool

	// Modules lists the output modules recorded per play.
	Modules []string
}

func (o Options) binary() string {
	if o.Binary == "" {
		return constant.MPlayer
	}
	return o.Binary
}

func (o Options) modules() []string {
	if len(o.Modules) == 0 {
		return output.DefaultModules
	}
	return o.Modules
}

func (o Options) clone() Options {
	o.Args = append([]string(nil), o.Args...)
	o.Modules = append([]string(nil), o.modules()...)
	return o
}
