package channel

// ============================================================================
// Function Load Manager Test File
// Purpose: Verify ordering, buffering bounds, status transitions
// ============================================================================

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmrdavid/azure-functions-host/pkg/types"
)

func metaNamed(name string, disabled bool) types.FunctionMetadata {
	return types.FunctionMetadata{
		FunctionID: types.FunctionID(name),
		Name:       name,
		Disabled:   disabled,
	}
}

// TestSetupRegistersPendingEntries tests buffer setup
func TestSetupRegistersPendingEntries(t *testing.T) {
	lm := newLoadManager(0)
	assert.False(t, lm.hasBuffers())

	require.NoError(t, lm.setup([]types.FunctionMetadata{metaNamed("f1", false), metaNamed("f2", true)}))
	assert.True(t, lm.hasBuffers())

	status, ok := lm.status("f1")
	require.True(t, ok)
	assert.Equal(t, types.LoadPending, status)

	statuses := lm.statuses()
	assert.Len(t, statuses, 2)
}

// TestSetupRejectsDuplicates tests the duplicate guard
func TestSetupRejectsDuplicates(t *testing.T) {
	lm := newLoadManager(0)
	require.NoError(t, lm.setup([]types.FunctionMetadata{metaNamed("f1", false)}))
	assert.ErrorIs(t, lm.setup([]types.FunctionMetadata{metaNamed("f1", false)}), ErrDuplicateFunction)
}

// TestOrderingEnabledFirst tests disabled-last with stable ties
func TestOrderingEnabledFirst(t *testing.T) {
	lm := newLoadManager(0)
	require.NoError(t, lm.setup([]types.FunctionMetadata{
		metaNamed("d1", true),
		metaNamed("e1", false),
		metaNamed("d2", true),
		metaNamed("e2", false),
	}))

	var names []string
	for _, meta := range lm.orderedMetadata() {
		names = append(names, meta.Name)
	}
	assert.Equal(t, []string{"e1", "e2", "d1", "d2"}, names)
}

// TestRouteBuffersWhilePending tests pre-load queueing
func TestRouteBuffersWhilePending(t *testing.T) {
	lm := newLoadManager(0)
	require.NoError(t, lm.setup([]types.FunctionMetadata{metaNamed("f1", false)}))

	inv := NewInvocation(context.Background(), "f1", nil)
	decision, err := lm.route(inv)
	require.NoError(t, err)
	assert.Equal(t, dispatchBuffered, decision)

	buffered, ok := lm.complete("f1", true, nil)
	require.True(t, ok)
	require.Len(t, buffered, 1)
	assert.Same(t, inv, buffered[0])
}

// TestRouteSendsWhenLoaded tests direct dispatch after load
func TestRouteSendsWhenLoaded(t *testing.T) {
	lm := newLoadManager(0)
	require.NoError(t, lm.setup([]types.FunctionMetadata{metaNamed("f1", false)}))
	_, ok := lm.complete("f1", true, nil)
	require.True(t, ok)

	decision, err := lm.route(NewInvocation(context.Background(), "f1", nil))
	require.NoError(t, err)
	assert.Equal(t, dispatchSend, decision)
}

// TestRouteFailsAfterLoadFailure tests the failed-entry path
func TestRouteFailsAfterLoadFailure(t *testing.T) {
	lm := newLoadManager(0)
	require.NoError(t, lm.setup([]types.FunctionMetadata{metaNamed("f1", false)}))

	cause := errors.New("load blew up")
	_, ok := lm.complete("f1", false, cause)
	require.True(t, ok)

	decision, err := lm.route(NewInvocation(context.Background(), "f1", nil))
	assert.Equal(t, dispatchFailed, decision)
	assert.ErrorIs(t, err, cause)
}

// TestRouteUnknownFunction tests the registration guard
func TestRouteUnknownFunction(t *testing.T) {
	lm := newLoadManager(0)
	decision, err := lm.route(NewInvocation(context.Background(), "ghost", nil))
	assert.Equal(t, dispatchFailed, decision)
	assert.ErrorIs(t, err, ErrFunctionNotRegistered)
}

// TestBufferBound tests the explicit pre-load cap
func TestBufferBound(t *testing.T) {
	lm := newLoadManager(2)
	require.NoError(t, lm.setup([]types.FunctionMetadata{metaNamed("f1", false)}))

	for i := 0; i < 2; i++ {
		decision, err := lm.route(NewInvocation(context.Background(), "f1", nil))
		require.NoError(t, err)
		require.Equal(t, dispatchBuffered, decision)
	}

	decision, err := lm.route(NewInvocation(context.Background(), "f1", nil))
	assert.Equal(t, dispatchFailed, decision)
	assert.ErrorIs(t, err, ErrBufferFull)
}

// TestCompleteIsSingleShot tests that late responses change nothing
func TestCompleteIsSingleShot(t *testing.T) {
	lm := newLoadManager(0)
	require.NoError(t, lm.setup([]types.FunctionMetadata{metaNamed("f1", false)}))

	_, ok := lm.complete("f1", true, nil)
	require.True(t, ok)

	_, ok = lm.complete("f1", false, errors.New("late"))
	assert.False(t, ok)

	status, _ := lm.status("f1")
	assert.Equal(t, types.LoadLoaded, status)
	assert.Equal(t, 1, lm.loadedCount())
}

// TestPendingIDs tests straggler enumeration for the batch deadline
func TestPendingIDs(t *testing.T) {
	lm := newLoadManager(0)
	require.NoError(t, lm.setup([]types.FunctionMetadata{metaNamed("f1", false), metaNamed("f2", false)}))
	_, ok := lm.complete("f1", true, nil)
	require.True(t, ok)

	assert.Equal(t, []types.FunctionID{"f2"}, lm.pendingIDs())
}
