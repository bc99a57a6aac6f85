// ============================================================================
// Functions Host Function Load Manager
// ============================================================================
//
// Package: internal/channel
// File: loadmgr.go
// Purpose: Order, batch, and track function load requests and their
//          pre-load invocation buffers
//
// Ordering:
//   Enabled functions load before disabled ones; ties keep insertion order.
//   Disabled functions are still registered (they appear in status output)
//   and their load request carries the disabled flag.
//
// Buffering:
//   Invocations for a Pending function queue in a bounded FIFO. A Loaded
//   transition hands the buffer back for dispatch in arrival order; a Failed
//   transition hands it back to be failed with the load error. An invocation
//   is never sent across the wire before its function is Loaded.
//
// ============================================================================

package channel

import (
	"errors"
	"sort"
	"sync"

	"github.com/davidmrdavid/azure-functions-host/pkg/types"
)

// Sentinel errors
var (
	ErrFunctionNotRegistered = errors.New("function not registered with this channel")
	ErrDuplicateFunction     = errors.New("function already registered")
	ErrBufferFull            = errors.New("pre-load invocation buffer full")
)

// DefaultBufferCap bounds each function's pre-load invocation buffer. The
// buffer only exists between SetupFunctionInvocationBuffers and the load
// response, so it never needs to be deep.
const DefaultBufferCap = 512

// loadEntry is one function registered with this worker
type loadEntry struct {
	meta   types.FunctionMetadata
	status types.LoadStatus
	err    error         // Cause, set when status is LoadFailed
	buffer []*Invocation // FIFO of invocations queued pre-load
}

// loadManager owns the channel's function load registry
type loadManager struct {
	mu        sync.Mutex
	order     []types.FunctionID // Insertion order
	entries   map[types.FunctionID]*loadEntry
	bufferCap int
}

func newLoadManager(bufferCap int) *loadManager {
	if bufferCap <= 0 {
		bufferCap = DefaultBufferCap
	}
	return &loadManager{
		entries:   make(map[types.FunctionID]*loadEntry),
		bufferCap: bufferCap,
	}
}

// setup registers a pending entry per metadata record
func (lm *loadManager) setup(metas []types.FunctionMetadata) error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	for _, meta := range metas {
		if _, exists := lm.entries[meta.FunctionID]; exists {
			return ErrDuplicateFunction
		}
		lm.entries[meta.FunctionID] = &loadEntry{meta: meta, status: types.LoadPending}
		lm.order = append(lm.order, meta.FunctionID)
	}
	return nil
}

// hasBuffers reports whether setup has registered at least one function
func (lm *loadManager) hasBuffers() bool {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.entries) > 0
}

// orderedMetadata returns load order: enabled first, disabled last,
// insertion order within each group
func (lm *loadManager) orderedMetadata() []types.FunctionMetadata {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	metas := make([]types.FunctionMetadata, 0, len(lm.order))
	for _, id := range lm.order {
		metas = append(metas, lm.entries[id].meta)
	}
	sort.SliceStable(metas, func(i, j int) bool {
		return !metas[i].Disabled && metas[j].Disabled
	})
	return metas
}

// status returns one function's load status
func (lm *loadManager) status(id types.FunctionID) (types.LoadStatus, bool) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	entry, ok := lm.entries[id]
	if !ok {
		return "", false
	}
	return entry.status, true
}

// statuses returns a snapshot of every function's load status
func (lm *loadManager) statuses() map[types.FunctionID]types.LoadStatus {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	out := make(map[types.FunctionID]types.LoadStatus, len(lm.entries))
	for id, entry := range lm.entries {
		out[id] = entry.status
	}
	return out
}

// loadedCount returns the number of successfully loaded functions
func (lm *loadManager) loadedCount() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	n := 0
	for _, entry := range lm.entries {
		if entry.status == types.LoadLoaded {
			n++
		}
	}
	return n
}

// pendingIDs returns the functions whose load has not resolved
func (lm *loadManager) pendingIDs() []types.FunctionID {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var ids []types.FunctionID
	for _, id := range lm.order {
		if lm.entries[id].status == types.LoadPending {
			ids = append(ids, id)
		}
	}
	return ids
}

// dispatchDecision tells SendInvocation what to do with a new invocation
type dispatchDecision int

const (
	dispatchSend     dispatchDecision = iota // Function loaded, send now
	dispatchBuffered                         // Queued pre-load
	dispatchFailed                           // Function failed to load
)

// route buffers the invocation when its function is still Pending.
// Returns the decision and, for dispatchFailed, the load error.
func (lm *loadManager) route(inv *Invocation) (dispatchDecision, error) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	entry, ok := lm.entries[inv.FunctionID]
	if !ok {
		return dispatchFailed, ErrFunctionNotRegistered
	}

	switch entry.status {
	case types.LoadLoaded:
		return dispatchSend, nil
	case types.LoadFailed:
		return dispatchFailed, entry.err
	default:
		if len(entry.buffer) >= lm.bufferCap {
			return dispatchFailed, ErrBufferFull
		}
		entry.buffer = append(entry.buffer, inv)
		return dispatchBuffered, nil
	}
}

// complete transitions an entry on its load response and hands back the
// buffered invocations in arrival order. Late or duplicate responses return
// ok=false and change nothing.
func (lm *loadManager) complete(id types.FunctionID, success bool, cause error) (buffered []*Invocation, ok bool) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	entry, exists := lm.entries[id]
	if !exists || entry.status != types.LoadPending {
		return nil, false
	}

	if success {
		entry.status = types.LoadLoaded
	} else {
		entry.status = types.LoadFailed
		entry.err = cause
	}
	buffered = entry.buffer
	entry.buffer = nil
	return buffered, true
}
