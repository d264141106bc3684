// Package playlist holds the pending queue and the play history that the player advances through.
package playlist

import (
	"sync"

	"github.com/samber/mo"
)

// Playlist is a FIFO of pending items plus an append-only history.
// It is safe for concurrent use; listeners are invoked without the lock held.
type Playlist struct {
	mu        sync.Mutex
	pending   []Item
	history   []Item
	listeners []func()
}

func New() *Playlist {
	return &Playlist{}
}

// Enqueue appends item to the pending queue and then notifies every
// listener in registration order.
func (p *Playlist) Enqueue(item Item) {
	p.mu.Lock()
	p.pending = append(p.pending, item)
	listeners := append([]func(){}, p.listeners...)
	p.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}

// PeekNext returns the head of the queue without removing it.
func (p *Playlist) PeekNext() mo.Option[Item] {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.pending) == 0 {
		return mo.None[Item]()
	}
	return mo.Some(p.pending[0])
}

// PopNext removes the head of the queue. It does nothing on an empty queue.
func (p *Playlist) PopNext() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.pending) == 0 {
		return
	}
	p.pending[0] = Item{}
	p.pending = p.pending[1:]
}

// RecordHistory appends item to the history.
func (p *Playlist) RecordHistory(item Item) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.history = append(p.history, item)
}

// OnEnqueue registers a listener fired after every future Enqueue.
func (p *Playlist) OnEnqueue(listener func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.listeners = append(p.listeners, listener)
}

// Pending returns a copy of the queued items, head first.
func (p *Playlist) Pending() []Item {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]Item(nil), p.pending...)
}

// History returns a copy of the played items in play order.
func (p *Playlist) History() []Item {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]Item(nil), p.history...)
}
