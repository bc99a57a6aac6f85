// ============================================================================
// Functions Host Event Bus - In-Process Message Broker
// ============================================================================
//
// Package: internal/eventbus
// File: bus.go
// Purpose: Publish/subscribe transport between worker channels and the gRPC
//          stream surface
//
// Model:
//   Messages are StreamingMessage envelopes tagged with a worker id and a
//   direction. Inbound messages travel worker -> host and are consumed by the
//   owning channel's pump; outbound messages travel host -> worker and are
//   consumed by the worker's stream writer. Each subscriber owns a buffered
//   Go channel; the bus fans a published message out to every subscriber
//   registered for that worker id and direction.
//
// Ownership:
//   The bus holds subscriptions only until they are closed. A worker channel
//   owns its subscription handle and closes it on Dispose, which removes the
//   bus's reference; nothing in the bus keeps a disposed channel alive.
//
// Delivery:
//   Publish never blocks the publisher. A subscriber that has fallen behind
//   past its buffer loses the message; that is logged and only happens when
//   the consumer has stopped draining.
//
// ============================================================================

package eventbus

import (
	"log/slog"
	"sync"

	pb "github.com/davidmrdavid/azure-functions-host/api/proto/v1"
	"github.com/davidmrdavid/azure-functions-host/pkg/types"
)

var log = slog.Default()

// Direction distinguishes the two halves of the stream
type Direction int

// Message directions
const (
	Inbound  Direction = iota // Worker -> host
	Outbound                  // Host -> worker
)

func (d Direction) String() string {
	if d == Inbound {
		return "inbound"
	}
	return "outbound"
}

// DefaultBufferSize is the per-subscription channel buffer
const DefaultBufferSize = 256

// topic keys a subscriber list by worker id and direction
type topic struct {
	workerID  types.WorkerID
	direction Direction
}

// Subscription is one subscriber's slice of the bus. The C channel delivers
// messages until Close is called; the subscriber is the sole consumer.
type Subscription struct {
	C <-chan *pb.StreamingMessage

	bus  *Bus
	key  topic
	ch   chan *pb.StreamingMessage
	done chan struct{}
	once sync.Once
}

// Close unsubscribes and releases the bus's reference to this subscription.
// Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		close(s.done)
		s.bus.remove(s)
	})
}

// Bus is the many-publisher / many-subscriber broker
type Bus struct {
	mu     sync.RWMutex
	subs   map[topic][]*Subscription
	buffer int
}

// New creates a bus with the given per-subscription buffer size.
// A non-positive buffer falls back to DefaultBufferSize.
func New(buffer int) *Bus {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	return &Bus{
		subs:   make(map[topic][]*Subscription),
		buffer: buffer,
	}
}

// Subscribe registers a consumer for one worker id and direction
func (b *Bus) Subscribe(workerID types.WorkerID, dir Direction) *Subscription {
	ch := make(chan *pb.StreamingMessage, b.buffer)
	sub := &Subscription{
		C:    ch,
		bus:  b,
		key:  topic{workerID: workerID, direction: dir},
		ch:   ch,
		done: make(chan struct{}),
	}

	b.mu.Lock()
	b.subs[sub.key] = append(b.subs[sub.key], sub)
	b.mu.Unlock()

	return sub
}

// Publish delivers msg to every subscriber registered for the worker id and
// direction. It never blocks the caller.
func (b *Bus) Publish(workerID types.WorkerID, dir Direction, msg *pb.StreamingMessage) {
	b.mu.RLock()
	subs := b.subs[topic{workerID: workerID, direction: dir}]
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-sub.done:
			// Subscriber closed between lookup and send
		case sub.ch <- msg:
		default:
			log.Warn("event bus subscriber overflow, dropping message",
				"workerID", workerID,
				"direction", dir)
		}
	}
}

// SubscriberCount returns the number of live subscriptions for a worker id
// and direction. Mainly for tests and diagnostics.
func (b *Bus) SubscriberCount(workerID types.WorkerID, dir Direction) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic{workerID: workerID, direction: dir}])
}

// remove drops a subscription from the registry
func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[sub.key]
	for i, s := range list {
		if s == sub {
			b.subs[sub.key] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(b.subs[sub.key]) == 0 {
		delete(b.subs, sub.key)
	}
}
