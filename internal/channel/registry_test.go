package channel

// ============================================================================
// Invocation Registry Test File
// Purpose: Verify exactly-once sinks, drain waiters, idempotent fail-all
// ============================================================================

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistryAddRemove tests basic membership
func TestRegistryAddRemove(t *testing.T) {
	reg := newRegistry()
	inv := NewInvocation(context.Background(), "f1", nil)

	reg.add(inv)
	assert.True(t, reg.contains(inv.ID))
	assert.Equal(t, 1, reg.count())

	got, ok := reg.get(inv.ID)
	require.True(t, ok)
	assert.Same(t, inv, got)

	reg.remove(inv.ID)
	assert.False(t, reg.contains(inv.ID))
	assert.Equal(t, 0, reg.count())
}

// TestCompleteExactlyOnce tests the one-shot sink under racing completions
func TestCompleteExactlyOnce(t *testing.T) {
	inv := NewInvocation(context.Background(), "f1", nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			inv.complete(Result{Status: ResultSuccess})
		}(i)
	}
	wg.Wait()

	<-inv.Result()
	select {
	case <-inv.Result():
		t.Fatal("sink delivered more than one signal")
	default:
	}
	assert.True(t, inv.done())
}

// TestFailAllIdempotent tests that applying failAll twice equals once
func TestFailAllIdempotent(t *testing.T) {
	reg := newRegistry()
	invs := make([]*Invocation, 3)
	for i := range invs {
		invs[i] = NewInvocation(context.Background(), "f1", nil)
		reg.add(invs[i])
	}

	cause := errors.New("worker gone")
	reg.failAll(Result{Status: ResultFailure, Err: cause})
	reg.failAll(Result{Status: ResultFailure, Err: errors.New("second pass")})

	assert.Equal(t, 0, reg.count())
	for _, inv := range invs {
		res := <-inv.Result()
		assert.Equal(t, ResultFailure, res.Status)
		assert.ErrorIs(t, res.Err, cause)
		select {
		case <-inv.Result():
			t.Fatal("sink delivered a second signal")
		default:
		}
	}
}

// TestDrainWaiterResolvesOnEmpty tests waiter notification on removal
func TestDrainWaiterResolvesOnEmpty(t *testing.T) {
	reg := newRegistry()
	a := NewInvocation(context.Background(), "f1", nil)
	b := NewInvocation(context.Background(), "f1", nil)
	reg.add(a)
	reg.add(b)

	done := reg.drainWaiter()

	reg.remove(a.ID)
	select {
	case <-done:
		t.Fatal("drain resolved with one invocation still in flight")
	default:
	}

	reg.remove(b.ID)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("drain never resolved")
	}
}

// TestDrainWaiterOnEmptyRegistry tests immediate resolution
func TestDrainWaiterOnEmptyRegistry(t *testing.T) {
	reg := newRegistry()
	select {
	case <-reg.drainWaiter():
	default:
		t.Fatal("drain on empty registry should resolve immediately")
	}
}

// TestInvocationIDsUnique tests generated id uniqueness
func TestInvocationIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		inv := NewInvocation(context.Background(), "f1", nil)
		require.False(t, seen[string(inv.ID)])
		seen[string(inv.ID)] = true
	}
}
