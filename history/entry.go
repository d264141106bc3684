package history

import (
	"fmt"
	"time"

	"github.com/mpq-cli/mpq/output"
	"github.com/mpq-cli/mpq/playlist"
)

// Entry is one finished play.
type Entry struct {
	ID       string    `json:"id"`
	URI      string    `json:"uri"`
	Host     string    `json:"host,omitempty"`
	Title    string    `json:"title,omitempty"`
	PlayedAt time.Time `json:"played_at"`
}

// NewEntry records item as played now, titled from its metadata when it
// reported one.
func NewEntry(item playlist.Item, meta output.Metadata) *Entry {
	return &Entry{
		ID:       item.ID,
		URI:      item.URI,
		Host:     item.Host,
		Title:    meta.String("title").OrEmpty(),
		PlayedAt: time.Now(),
	}
}

// Name is the title when known, the URI otherwise.
func (e *Entry) Name() string {
	if e.Title != "" {
		return e.Title
	}
	return e.URI
}

func (e *Entry) String() string {
	if e.Host != "" {
		return fmt.Sprintf("%s (on %s)", e.Name(), e.Host)
	}
	return e.Name()
}
