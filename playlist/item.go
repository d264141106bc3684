package playlist

import (
	"fmt"

	"github.com/google/uuid"
)

// Item is a single queued media locator.
type Item struct {
	ID  string `json:"id"`
	URI string `json:"uri"`

	// Host is set on the copy handed to a remote player at play time.
	Host string `json:"host,omitempty"`
}

// NewItem wraps uri in an Item with a fresh identifier.
func NewItem(uri string) Item {
	return Item{
		ID:  uuid.NewString(),
		URI: uri,
	}
}

func (i Item) String() string {
	if i.Host != "" {
		return fmt.Sprintf("%s (on %s)", i.URI, i.Host)
	}
	return i.URI
}
