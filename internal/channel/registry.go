// ============================================================================
// Functions Host Invocation Registry
// ============================================================================
//
// Package: internal/channel
// File: registry.go
// Purpose: Track in-flight invocations, correlate responses, drive drain
//
// Design:
//   A single map keyed by invocation id is the source of truth; every
//   mutation happens under the registry mutex. Each invocation owns a
//   one-shot result sink: a buffered channel written through sync.Once, so a
//   racing worker response and a local failure can both attempt completion
//   and exactly one signal is ever delivered.
//
// Drain:
//   Waiters receive a channel that closes when the registry becomes empty.
//   Only removal (remove, or failAll clearing every entry) can empty the
//   registry, so waiters are checked there; a drain requested while empty
//   resolves immediately.
//
// ============================================================================

package channel

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	pb "github.com/davidmrdavid/azure-functions-host/api/proto/v1"
	"github.com/davidmrdavid/azure-functions-host/pkg/types"
)

// ResultStatus is the terminal status of one invocation
type ResultStatus int

// Terminal invocation statuses
const (
	ResultSuccess ResultStatus = iota
	ResultFailure
	ResultCancelled
)

func (s ResultStatus) String() string {
	switch s {
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	case ResultCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the single terminal signal delivered on an invocation's sink
type Result struct {
	Status  ResultStatus
	Outputs map[string]*pb.TypedData // Decoded output bindings
	Return  *pb.TypedData            // Function return value
	Err     error                    // Set for Failure and Cancelled
}

// Input is one named invocation input. The channel decides whether the value
// travels inline or through shared memory.
type Input struct {
	Name string
	Data *pb.TypedData
}

// Invocation is one in-flight function call
type Invocation struct {
	ID              types.InvocationID
	FunctionID      types.FunctionID
	Inputs          []Input
	TriggerMetadata map[string]*pb.TypedData

	ctx       context.Context
	enqueued  time.Time
	result    chan Result
	completed chan struct{}
	once      sync.Once

	wireSent     atomic.Bool // Request published to the worker
	inputRegions []string    // Shared-memory inputs to release on response
}

// NewInvocation builds an invocation with a generated id. ctx carries the
// caller's cancellation; it must not be nil.
func NewInvocation(ctx context.Context, functionID types.FunctionID, inputs []Input) *Invocation {
	return &Invocation{
		ID:         types.InvocationID(uuid.New().String()),
		FunctionID: functionID,
		Inputs:     inputs,
		ctx:        ctx,
		enqueued:   time.Now(),
		result:     make(chan Result, 1),
		completed:  make(chan struct{}),
	}
}

// Result returns the sink that delivers exactly one terminal signal
func (inv *Invocation) Result() <-chan Result {
	return inv.result
}

// complete delivers the terminal signal. Only the first call wins.
func (inv *Invocation) complete(res Result) {
	inv.once.Do(func() {
		inv.result <- res
		close(inv.completed)
	})
}

// done reports whether the terminal signal was delivered
func (inv *Invocation) done() bool {
	select {
	case <-inv.completed:
		return true
	default:
		return false
	}
}

// registry tracks the channel's in-flight invocations
type registry struct {
	mu      sync.Mutex
	entries map[types.InvocationID]*Invocation
	waiters []chan struct{}
}

func newRegistry() *registry {
	return &registry{entries: make(map[types.InvocationID]*Invocation)}
}

// add registers an invocation before its request is published, so a racing
// response cannot miss its sink
func (r *registry) add(inv *Invocation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[inv.ID] = inv
}

// get looks up an in-flight invocation
func (r *registry) get(id types.InvocationID) (*Invocation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.entries[id]
	return inv, ok
}

// remove drops an invocation and resolves drain waiters on empty
func (r *registry) remove(id types.InvocationID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, id)
	r.notifyIfEmptyLocked()
}

// contains reports whether id is in flight
func (r *registry) contains(id types.InvocationID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[id]
	return ok
}

// count returns the number of in-flight invocations
func (r *registry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// failAll signals every sink with a fault and clears the registry. Calling it
// twice is equivalent to calling it once.
func (r *registry) failAll(res Result) {
	r.mu.Lock()
	invs := make([]*Invocation, 0, len(r.entries))
	for _, inv := range r.entries {
		invs = append(invs, inv)
	}
	r.entries = make(map[types.InvocationID]*Invocation)
	r.notifyIfEmptyLocked()
	r.mu.Unlock()

	for _, inv := range invs {
		inv.complete(res)
	}
}

// drainWaiter returns a channel closed when the registry is empty
func (r *registry) drainWaiter() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan struct{})
	if len(r.entries) == 0 {
		close(ch)
		return ch
	}
	r.waiters = append(r.waiters, ch)
	return ch
}

// notifyIfEmptyLocked resolves drain waiters. Caller holds r.mu.
func (r *registry) notifyIfEmptyLocked() {
	if len(r.entries) != 0 {
		return
	}
	for _, ch := range r.waiters {
		close(ch)
	}
	r.waiters = nil
}
