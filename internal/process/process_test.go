package process

// ============================================================================
// Worker Process Supervisor Test File
// Purpose: Verify launch, console capture, exit signal, kill
// ============================================================================

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmrdavid/azure-functions-host/pkg/types"
)

func shellWorker(script string) types.WorkerDescription {
	return types.WorkerDescription{
		Language:        "sh",
		Executable:      "/bin/sh",
		Arguments:       []string{"-c", script},
		WorkerDirectory: "/tmp",
	}
}

// TestStartExposesPID tests that a launched process has a live PID
func TestStartExposesPID(t *testing.T) {
	p, err := Start(Options{
		WorkerID: "w1",
		Desc:     shellWorker("sleep 5"),
	})
	require.NoError(t, err)
	defer p.Kill()

	assert.Greater(t, p.PID(), 0)

	select {
	case <-p.Exited():
		t.Fatal("process exited immediately")
	case <-time.After(100 * time.Millisecond):
	}
}

// TestStartUnknownExecutable tests launch failure surfacing
func TestStartUnknownExecutable(t *testing.T) {
	_, err := Start(Options{
		WorkerID: "w1",
		Desc: types.WorkerDescription{
			Executable: "/nonexistent/worker-binary",
		},
	})
	assert.Error(t, err)
}

// TestExitSignal tests that Exited closes when the process terminates
func TestExitSignal(t *testing.T) {
	p, err := Start(Options{
		WorkerID: "w1",
		Desc:     shellWorker("exit 0"),
	})
	require.NoError(t, err)

	select {
	case <-p.Exited():
		assert.NoError(t, p.ExitErr())
	case <-time.After(5 * time.Second):
		t.Fatal("exit signal never fired")
	}
}

// TestExitErrNonZero tests that a failing worker surfaces its exit error
func TestExitErrNonZero(t *testing.T) {
	p, err := Start(Options{
		WorkerID: "w1",
		Desc:     shellWorker("exit 3"),
	})
	require.NoError(t, err)

	select {
	case <-p.Exited():
		assert.Error(t, p.ExitErr())
	case <-time.After(5 * time.Second):
		t.Fatal("exit signal never fired")
	}
}

// TestConsoleCapture tests stdout/stderr forwarding into the sink
func TestConsoleCapture(t *testing.T) {
	var mu sync.Mutex
	lines := make(map[string]bool)

	p, err := Start(Options{
		WorkerID: "w1",
		Desc:     shellWorker("echo out-line; echo err-line 1>&2"),
		Console: func(id types.WorkerID, line string, stderr bool) {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, types.WorkerID("w1"), id)
			lines[line] = stderr
		},
	})
	require.NoError(t, err)

	<-p.Exited()
	// Capture goroutines race the exit signal briefly
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		_, out := lines["out-line"]
		_, errl := lines["err-line"]
		return out && errl
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, lines["out-line"])
	assert.True(t, lines["err-line"])
}

// TestKill tests force termination and idempotence
func TestKill(t *testing.T) {
	p, err := Start(Options{
		WorkerID: "w1",
		Desc:     shellWorker("sleep 30"),
	})
	require.NoError(t, err)

	require.NoError(t, p.Kill())

	select {
	case <-p.Exited():
		assert.Error(t, p.ExitErr())
	case <-time.After(5 * time.Second):
		t.Fatal("killed process never exited")
	}

	// Second kill is a no-op
	assert.NoError(t, p.Kill())
}
