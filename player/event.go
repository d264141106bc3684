package player

import (
	"fmt"

	"github.com/mpq-cli/mpq/output"
	"github.com/mpq-cli/mpq/playlist"
	"github.com/samber/mo"
)

// EventKind distinguishes player transitions.
type EventKind int

const (
	Played EventKind = iota + 1
	Stopped
	// Failed reports an item whose subprocess could not be launched. The
	// player stays idle and the item is not recorded in the history.
	Failed
)

func (k EventKind) String() string {
	switch k {
	case Played:
		return "played"
	case Stopped:
		return "stopped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes one transition.
type Event struct {
	Kind EventKind
	// Item is the item that started or stopped. A Stopped event with no
	// item is emitted by Stop on an idle player.
	Item mo.Option[playlist.Item]
	// Err is the launch error of a Failed event, or the wait error of a
	// subprocess that exited on its own with a failure status. Advancement
	// does not depend on it.
	Err error
	// Metadata is what a stopped item reported before it ended.
	Metadata output.Metadata
}
