package channel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loopbackProbe wires a probe whose requests are answered inline
func loopbackProbe(interval time.Duration, history int) (*probe, *sync.Map) {
	var seen sync.Map
	var p *probe
	p = newProbe(interval, history, func(requestID string) {
		seen.Store(requestID, true)
		p.observe(requestID)
	}, nil)
	return p, &seen
}

func TestProbeRecordsLatencies(t *testing.T) {
	p, _ := loopbackProbe(10*time.Millisecond, 5)
	p.start()
	defer p.stop()

	require.Eventually(t, func() bool {
		return len(p.latencies()) > 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestProbeHistoryBounded(t *testing.T) {
	p, _ := loopbackProbe(5*time.Millisecond, 3)
	p.start()
	defer p.stop()

	require.Eventually(t, func() bool {
		return len(p.latencies()) == 3
	}, 2*time.Second, 5*time.Millisecond)

	// Never exceeds the bound
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, p.latencies(), 3)
}

func TestProbeNeverStartedIsEmpty(t *testing.T) {
	p := newProbe(time.Millisecond, 3, func(string) {}, nil)
	assert.Empty(t, p.latencies())
	p.stop() // stop without start must not hang
}

func TestProbeObserveUnknownRequest(t *testing.T) {
	p := newProbe(time.Hour, 3, func(string) {}, nil)
	assert.NotPanics(t, func() { p.observe("never-sent") })
	assert.Empty(t, p.latencies())
}

func TestProbeStopIdempotent(t *testing.T) {
	p, _ := loopbackProbe(time.Millisecond, 3)
	p.start()
	assert.NotPanics(t, func() {
		p.stop()
		p.stop()
	})
}
