// Package broadcast implements port.ChangeNotifier for in-process and
// cross-process listeners.
package broadcast

import (
	"context"
	"sync"

	"github.com/bnema/tabstash/internal/application/port"
	"github.com/bnema/tabstash/internal/logging"
)

// Bus fans change signals out to in-process subscribers.
// Publishing never blocks: a subscriber with a full buffer misses the signal.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]chan port.ChangeSignal
	nextID int
}

var _ port.ChangeNotifier = (*Bus)(nil)

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan port.ChangeSignal)}
}

// Subscribe registers a listener. The returned func unsubscribes and closes the channel.
func (b *Bus) Subscribe(buffer int) (<-chan port.ChangeSignal, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan port.ChangeSignal, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// Publish delivers signal to every subscriber that has room for it.
func (b *Bus) Publish(ctx context.Context, signal port.ChangeSignal) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	dropped := 0
	for _, ch := range b.subs {
		select {
		case ch <- signal:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		logging.FromContext(ctx).Debug().
			Str("signal", string(signal)).
			Int("dropped", dropped).
			Msg("change signal dropped for slow subscribers")
	}
	return nil
}

// Subscribers returns the current subscriber count.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
