package broadcast

import (
	"context"
	"sync"
)

const defaultBufferSize = 100

// Broadcaster delivers every published value to all current subscribers.
// Publish blocks while a subscriber buffer is full, until the value is taken, the subscriber
// unsubscribes or the publishing context is done.
type Broadcaster[T any] struct {
	mu         sync.Mutex
	subs       map[uint64]*subscriber[T]
	nextID     uint64
	bufferSize int
	closed     bool
}

type subscriber[T any] struct {
	ch   chan T
	done chan struct{}
}

func New[T any](bufferSize int) *Broadcaster[T] {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	return &Broadcaster[T]{
		subs:       make(map[uint64]*subscriber[T]),
		bufferSize: bufferSize,
	}
}

// Subscribe registers a new subscriber. The returned channel is closed by Close.
// After unsubscribing no further values are delivered, the channel is left open.
func (b *Broadcaster[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := &subscriber[T]{
		ch:   make(chan T, b.bufferSize),
		done: make(chan struct{}),
	}

	if b.closed {
		close(s.ch)
		return s.ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = s

	var once sync.Once
	return s.ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()

			close(s.done)
		})
	}
}

func (b *Broadcaster[T]) Publish(ctx context.Context, v T) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	subs := make([]*subscriber[T], 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	for _, s := range subs {
		select {
		case s.ch <- v:
		case <-s.done:
		case <-ctx.Done():
			return
		}
	}
}

func (b *Broadcaster[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs)
}

// Close closes the channels of all subscribers. Publish must not run concurrently with Close.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for id, s := range b.subs {
		delete(b.subs, id)
		close(s.ch)
	}
}
