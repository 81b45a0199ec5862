package events

import (
	"log/slog"
	"sync"
)

// DefaultBufferSize is the channel capacity given to subscribers that ask for 0
const DefaultBufferSize = 16

// Bus fans board events out to in-process subscribers.
// Publishing never waits: a subscriber whose buffer is full misses the event.
type Bus struct {
	mu           sync.Mutex
	subscribers  map[int]chan Event
	nextID       int
	lastSequence int64
	closed       bool // Prevent double-close panics
}

// NewBus creates a bus with no subscribers
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[int]chan Event),
	}
}

// Subscribe registers a new listener and returns its channel together with
// a function that unregisters it and closes the channel.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
}

// Publish stamps the event with the next sequence number and delivers it
// to every subscriber with room in its buffer.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.lastSequence++
	event.SequenceID = b.lastSequence

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			slog.Debug("dropping event for slow subscriber",
				"subscriber", id,
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
}

// LastSequence returns the sequence number of the most recent event
func (b *Bus) LastSequence() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSequence
}

// Close closes every subscriber channel; later publishes are dropped
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
	return nil
}
