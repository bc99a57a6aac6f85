package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	err := NewError(KindTimeout, "StartWorkerProcess", "worker did not answer")

	assert.True(t, IsKind(err, KindTimeout))
	assert.False(t, IsKind(err, KindCancelled))
	assert.Contains(t, err.Error(), "timeout")
	assert.Contains(t, err.Error(), "StartWorkerProcess")
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(KindWorkerProcessFailure, "start", cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindWorkerProcessFailure))

	// Kind survives another layer of wrapping
	outer := fmt.Errorf("channel w1: %w", err)
	assert.True(t, IsKind(outer, KindWorkerProcessFailure))
	assert.ErrorIs(t, outer, cause)
}

func TestErrorIsMatchesByKind(t *testing.T) {
	a := NewError(KindCancelled, "a", "one")
	b := NewError(KindCancelled, "b", "two")
	c := NewError(KindTimeout, "c", "three")

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, c)
}

func TestKindStrings(t *testing.T) {
	kinds := []Kind{
		KindTimeout, KindProtocolViolation, KindWorkerProcessFailure,
		KindLoadFailure, KindInvocationFailure, KindCancelled, KindInvalidState,
	}
	for _, k := range kinds {
		assert.NotEqual(t, "unknown", k.String())
	}
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestChannelStateTerminal(t *testing.T) {
	assert.True(t, StateTerminated.Terminal())
	assert.True(t, StateFailed.Terminal())

	for _, s := range []ChannelState{
		StateCreated, StateStarting, StateStarted, StateInitializing,
		StateInitialized, StateLoadingFunctions, StateReady,
		StateDraining, StateTerminating,
	} {
		require.False(t, s.Terminal(), "state %s must not be terminal", s)
	}
}
