// Package refresh implements the session-refetch broadcast: screens register a
// callback and get invoked after the timeline is resynced, so they re-read
// their data. The registry is owned by the composition root, not package state.
package refresh

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Listener is invoked synchronously on every refetch trigger.
type Listener func()

// Broadcaster is a registry of session-refresh listeners.
type Broadcaster struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

// NewBroadcaster creates an empty listener registry.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		listeners: make(map[int]Listener),
	}
}

// Register adds a listener and returns its unsubscribe function.
// Unsubscribing twice is harmless.
func (b *Broadcaster) Register(fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.listeners[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

// TriggerRefetch invokes every registered listener synchronously. A panicking
// listener is logged and skipped so it cannot block the others.
func (b *Broadcaster) TriggerRefetch() {
	b.mu.Lock()
	ids := make([]int, 0, len(b.listeners))
	for id := range b.listeners {
		ids = append(ids, id)
	}
	fns := make([]Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, b.listeners[id])
	}
	b.mu.Unlock()

	for _, fn := range fns {
		b.invoke(fn)
	}
}

func (b *Broadcaster) invoke(fn Listener) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("session refresh listener panicked: %v", r)
		}
	}()
	fn()
}
