// Package broadcast implements the in-process signal hub used to tell UI
// surfaces that client state changed.
package broadcast

import (
	"log/slog"
	"sync"

	"storefront/internal/domain/service"
)

type subscriber struct {
	id uint64
	fn func()
}

type broadcaster struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string][]subscriber
	logger *slog.Logger
}

// NewBroadcaster creates an empty hub.
func NewBroadcaster(logger *slog.Logger) service.Broadcaster {
	return &broadcaster{
		subs:   make(map[string][]subscriber),
		logger: logger,
	}
}

func (b *broadcaster) Subscribe(signal string, fn func()) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[signal] = append(b.subs[signal], subscriber{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { b.remove(signal, id) })
	}
}

func (b *broadcaster) remove(signal string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[signal]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		next := make([]subscriber, 0, len(subs)-1)
		next = append(next, subs[:i]...)
		next = append(next, subs[i+1:]...)
		if len(next) == 0 {
			delete(b.subs, signal)
		} else {
			b.subs[signal] = next
		}

		return
	}
}

// Publish calls the subscribers registered at the time of the call, in
// subscription order. Handlers run without the lock held so they may
// subscribe or unsubscribe.
func (b *broadcaster) Publish(signal string) {
	b.mu.Lock()
	subs := b.subs[signal]
	b.mu.Unlock()

	for _, s := range subs {
		b.deliver(signal, s)
	}
}

func (b *broadcaster) deliver(signal string, s subscriber) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Subscriber panicked",
				slog.String("signal", signal),
				slog.Any("panic", r),
			)
		}
	}()

	s.fn()
}
