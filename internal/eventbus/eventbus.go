package eventbus

import "sync"

// Event represents an arbitrary event passed on the bus.
type Event interface{}

// EventBus implements a simple publish/subscribe event bus.
type EventBus interface {
	Publish(Event)
	Subscribe() <-chan Event
	SubscribeBuffered(n int) <-chan Event
	Unsubscribe(<-chan Event)
	Close()
}

// Bus is the default EventBus implementation using fan-out channels.
// Delivery is non-blocking: a subscriber that falls behind loses events
// rather than stalling the publisher.
type Bus struct {
	mu     sync.RWMutex
	subs   []chan Event
	closed bool
}

// New creates a new Bus.
func New() *Bus { return &Bus{} }

// Publish sends the event to all subscribers. Delivery is non-blocking.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a new subscriber with the default buffer of 8.
func (b *Bus) Subscribe() <-chan Event {
	return b.SubscribeBuffered(8)
}

// SubscribeBuffered registers a new subscriber with a buffer of n events.
func (b *Bus) SubscribeBuffered(n int) <-chan Event {
	if n < 1 {
		n = 1
	}
	ch := make(chan Event, n)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs = append(b.subs, ch)
	}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the subscriber and closes its channel.
func (b *Bus) Unsubscribe(sub <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, ch := range b.subs {
		if ch == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			if !b.closed {
				close(ch)
			}
			return
		}
	}
}

// Close closes all subscriber channels and clears the list.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
	b.mu.Unlock()
}

// Filtered returns a channel carrying only the events of type T seen on
// sub. The forwarding goroutine exits when sub is closed. Forwarding is
// non-blocking like the bus itself.
func Filtered[T any](sub <-chan Event) <-chan T {
	out := make(chan T, 8)
	go func() {
		defer close(out)
		for ev := range sub {
			if tv, ok := ev.(T); ok {
				select {
				case out <- tv:
				default:
				}
			}
		}
	}()
	return out
}
