package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidmrdavid/azure-functions-host/pkg/types"
)

func TestCapabilitiesEmptyBeforeFreeze(t *testing.T) {
	caps := newCapabilities()
	assert.Empty(t, caps.Snapshot())
	assert.False(t, caps.Enabled(types.CapabilityHandlesWorkerTerminate))
}

func TestCapabilitiesFreezeOnce(t *testing.T) {
	caps := newCapabilities()
	caps.freeze(map[string]string{types.CapabilityHandlesInvocationCancel: "1"})

	// A second freeze is ignored
	caps.freeze(map[string]string{types.CapabilityHandlesWorkerTerminate: "1"})

	assert.True(t, caps.Enabled(types.CapabilityHandlesInvocationCancel))
	assert.False(t, caps.Enabled(types.CapabilityHandlesWorkerTerminate))
	assert.Len(t, caps.Snapshot(), 1)
}

func TestCapabilitiesTruthiness(t *testing.T) {
	caps := newCapabilities()
	caps.freeze(map[string]string{
		"A": "true",
		"B": "1",
		"C": "false",
		"D": "0",
		"E": "",
		"F": "anything",
	})

	assert.True(t, caps.Enabled("A"))
	assert.True(t, caps.Enabled("B"))
	assert.False(t, caps.Enabled("C"))
	assert.False(t, caps.Enabled("D"))
	assert.False(t, caps.Enabled("E"))
	assert.True(t, caps.Enabled("F"))
}

func TestCapabilitiesValue(t *testing.T) {
	caps := newCapabilities()
	caps.freeze(map[string]string{"A": "raw-value"})

	v, ok := caps.Value("A")
	assert.True(t, ok)
	assert.Equal(t, "raw-value", v)

	_, ok = caps.Value("missing")
	assert.False(t, ok)
}

func TestCapabilitiesSnapshotIsCopy(t *testing.T) {
	caps := newCapabilities()
	caps.freeze(map[string]string{"A": "1"})

	snap := caps.Snapshot()
	snap["A"] = "mutated"
	snap["B"] = "new"

	v, _ := caps.Value("A")
	assert.Equal(t, "1", v)
	_, ok := caps.Value("B")
	assert.False(t, ok)
}
