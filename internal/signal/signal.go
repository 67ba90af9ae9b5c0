// Package signal provides a minimal typed publish-subscribe primitive.
// Services broadcast change notifications through it so that a UI
// surface can recompute derived state when the underlying data moves.
package signal

import "sync"

// Broadcaster notifies registered observers synchronously on Publish.
// The zero value is not usable; create one with New.
type Broadcaster[T any] struct {
	mu   sync.Mutex
	subs map[int]func(T)
	next int
}

func New[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{subs: make(map[int]func(T))}
}

// Subscribe registers fn and returns its teardown. The teardown is
// idempotent and must be called when the observing surface goes away.
func (b *Broadcaster[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish invokes every subscriber registered at the time of the call,
// on the caller's goroutine. Subscribers must not block.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	fns := make([]func(T), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}
