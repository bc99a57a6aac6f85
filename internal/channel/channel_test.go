package channel

// ============================================================================
// Worker Channel Test File
// Purpose: Verify the lifecycle state machine, start/init protocol,
//          environment reload, termination, log forwarding, latency probe
// ============================================================================

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/davidmrdavid/azure-functions-host/api/proto/v1"
	"github.com/davidmrdavid/azure-functions-host/internal/eventbus"
	"github.com/davidmrdavid/azure-functions-host/internal/process"
	"github.com/davidmrdavid/azure-functions-host/pkg/types"
)

// ============================================================================
// Start / Init Tests
// ============================================================================

// TestStartHappyPath tests the full construct -> Start -> load -> Ready path
func TestStartHappyPath(t *testing.T) {
	env := newTestEnv(t, map[string]string{}, nil)

	assert.Equal(t, types.StateCreated, env.ch.State())
	assert.False(t, env.ch.IsChannelReadyForInvocations())

	env.start()
	assert.Equal(t, 4242, env.ch.PID())

	env.load(jsFunc("js1", false), jsFunc("js2", false))
	assert.True(t, env.ch.IsChannelReadyForInvocations())

	statuses := env.ch.FunctionLoadStatuses()
	assert.Equal(t, types.LoadLoaded, statuses["js1-id"])
	assert.Equal(t, types.LoadLoaded, statuses["js2-id"])
}

// TestStartInForbiddenState tests the double-start InvalidState error
func TestStartInForbiddenState(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.start()

	err := env.ch.StartWorkerProcess(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindInvalidState))
}

// TestStartupTimeout tests startup with no StartStream arriving
func TestStartupTimeout(t *testing.T) {
	env := newTestEnv(t, nil, func(cfg *Config) {
		cfg.Timeouts.Startup = 100 * time.Millisecond
		proc := newFakeProc()
		cfg.Starter = func(process.Options) (WorkerProcess, error) {
			return proc, nil // never handshakes
		}
	})

	err := env.ch.StartWorkerProcess(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindTimeout))
	assert.Equal(t, types.StateFailed, env.ch.State())
}

// TestInitTimeout tests a worker that handshakes but never initializes
func TestInitTimeout(t *testing.T) {
	env := newTestEnv(t, nil, func(cfg *Config) {
		cfg.Timeouts.Init = 100 * time.Millisecond
	})
	env.fw.holdInit = true

	err := env.ch.StartWorkerProcess(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindTimeout))
	assert.Equal(t, types.StateFailed, env.ch.State())
}

// TestInitFailure tests a worker rejecting initialization
func TestInitFailure(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.fw.failInit = true

	err := env.ch.StartWorkerProcess(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindWorkerProcessFailure))
	assert.Contains(t, err.Error(), "worker refused to initialize")
	assert.Equal(t, types.StateFailed, env.ch.State())
}

// TestDisposeDuringInitCancelsStart tests that Dispose resolves the pending
// start promise with Cancelled
func TestDisposeDuringInitCancelsStart(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.fw.holdInit = true

	errCh := make(chan error, 1)
	go func() { errCh <- env.ch.StartWorkerProcess(context.Background()) }()

	// Wait for the handshake to land, then dispose mid-init
	env.fw.waitSent(t, func(msg *pb.StreamingMessage) bool {
		return msg.GetWorkerInitRequest() != nil
	}, "WorkerInitRequest")
	env.ch.Dispose()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.True(t, types.IsKind(err, types.KindCancelled))
	case <-time.After(2 * time.Second):
		t.Fatal("start promise never resolved")
	}
}

// TestProcessStartFailure tests the originating exception propagating
func TestProcessStartFailure(t *testing.T) {
	env := newTestEnv(t, nil, func(cfg *Config) {
		cfg.Starter = func(process.Options) (WorkerProcess, error) {
			return nil, assert.AnError
		}
	})

	err := env.ch.StartWorkerProcess(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindWorkerProcessFailure))
	assert.Equal(t, types.StateFailed, env.ch.State())
}

// TestWorkerProcessExitFailsChannel tests a worker dying under the host
func TestWorkerProcessExitFailsChannel(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.start()
	env.load(jsFunc("js1", false))

	env.fw.holdInvocations = true
	inv := NewInvocation(context.Background(), "js1-id", nil)
	require.NoError(t, env.ch.SendInvocation(context.Background(), inv))

	env.proc.exit(assert.AnError)

	res := awaitResult(t, inv)
	assert.Equal(t, ResultFailure, res.Status)
	require.Eventually(t, func() bool {
		return env.ch.State() == types.StateFailed
	}, 2*time.Second, 5*time.Millisecond)
}

// TestCapabilityFreeze tests that the capability set is empty before init and
// stable after it
func TestCapabilityFreeze(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		types.CapabilityHandlesInvocationCancel: "1",
		types.CapabilityRawHttpBodyBytes:        "true",
	}, nil)

	assert.Empty(t, env.ch.Capabilities().Snapshot())

	env.start()

	first := env.ch.Capabilities().Snapshot()
	require.Equal(t, "1", first[types.CapabilityHandlesInvocationCancel])
	assert.True(t, env.ch.Capabilities().Enabled(types.CapabilityRawHttpBodyBytes))
	assert.False(t, env.ch.Capabilities().Enabled(types.CapabilityHandlesWorkerTerminate))

	// Every later read observes the same map
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, env.ch.Capabilities().Snapshot())
	}
}

// TestV2CompatibilityFlag tests the compatibility flag in WorkerInitRequest
func TestV2CompatibilityFlag(t *testing.T) {
	env := newTestEnv(t, nil, func(cfg *Config) {
		cfg.Features = &Features{V2Compatibility: true}
	})
	env.start()

	msg := env.fw.waitSent(t, func(msg *pb.StreamingMessage) bool {
		return msg.GetWorkerInitRequest() != nil
	}, "WorkerInitRequest")
	assert.True(t, msg.GetWorkerInitRequest().GetV2Compatible())
	assert.True(t, env.logs.contains("V2 compatibility mode"))
}

// ============================================================================
// Environment Reload Tests
// ============================================================================

// TestEnvReloadSanitization tests that nil and empty values are dropped and
// the directory keys are always present
func TestEnvReloadSanitization(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.start()

	valid := "TestValue"
	empty := ""
	err := env.ch.SendFunctionEnvironmentReloadRequest(context.Background(), map[string]*string{
		"TestNull":  nil,
		"TestEmpty": &empty,
		"TestValid": &valid,
	})
	require.NoError(t, err)

	msg := env.fw.waitSent(t, func(msg *pb.StreamingMessage) bool {
		return msg.GetFunctionEnvironmentReloadRequest() != nil
	}, "FunctionEnvironmentReloadRequest")
	vars := msg.GetFunctionEnvironmentReloadRequest().GetEnvironmentVariables()

	assert.Equal(t, "TestValue", vars["TestValid"])
	assert.NotContains(t, vars, "TestNull")
	assert.NotContains(t, vars, "TestEmpty")
	assert.Equal(t, "/opt/workers/node", vars[types.EnvWorkerDirectory])
	assert.Equal(t, "/home/site/wwwroot", vars[types.EnvFunctionAppDirectory])
	assert.Equal(t, "/home/site/wwwroot", msg.GetFunctionEnvironmentReloadRequest().GetFunctionAppDirectory())
}

// TestSanitizeIdempotent tests that sanitizing twice yields the same map
func TestSanitizeIdempotent(t *testing.T) {
	valid := "v"
	empty := ""
	in := map[string]*string{"A": &valid, "B": nil, "C": &empty}

	once := sanitizeEnvironment(in)

	again := make(map[string]*string, len(once))
	for k := range once {
		v := once[k]
		again[k] = &v
	}
	assert.Equal(t, once, sanitizeEnvironment(again))
}

// TestEnvReloadTimeout tests the bounded await expiring without poisoning the
// channel
func TestEnvReloadTimeout(t *testing.T) {
	env := newTestEnv(t, nil, func(cfg *Config) {
		cfg.Timeouts.EnvReload = 100 * time.Millisecond
	})
	env.start()

	// The fake worker never answers reload requests
	err := env.ch.SendFunctionEnvironmentReloadRequest(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindTimeout))
	assert.Equal(t, types.StateInitialized, env.ch.State())
}

// TestEnvReloadInvalidState tests the verb gate
func TestEnvReloadInvalidState(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	err := env.ch.SendFunctionEnvironmentReloadRequest(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindInvalidState))
}

// ============================================================================
// Termination Tests
// ============================================================================

// TestTerminateWithCapability tests the graceful WorkerTerminate path
func TestTerminateWithCapability(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		types.CapabilityHandlesWorkerTerminate: "1",
	}, nil)
	env.start()

	env.ch.Dispose()

	assert.True(t, env.logs.contains("Sending WorkerTerminate message with grace period 5 seconds"))
	assert.Equal(t, 1, env.fw.countSent(func(msg *pb.StreamingMessage) bool {
		return msg.GetWorkerTerminate() != nil
	}))
	assert.False(t, env.proc.wasKilled(), "graceful exit should not kill")
	assert.Equal(t, types.StateTerminated, env.ch.State())
}

// TestTerminateWithoutCapability tests the kill path and the absent log line
func TestTerminateWithoutCapability(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.start()

	env.ch.Dispose()

	assert.False(t, env.logs.contains("Sending WorkerTerminate message"))
	assert.True(t, env.proc.wasKilled())
	assert.Equal(t, types.StateTerminated, env.ch.State())
}

// TestTerminateFailsInFlight tests that termination cancels pending work
func TestTerminateFailsInFlight(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.start()
	env.load(jsFunc("js1", false))

	env.fw.holdInvocations = true
	inv := NewInvocation(context.Background(), "js1-id", nil)
	require.NoError(t, env.ch.SendInvocation(context.Background(), inv))

	env.ch.Terminate()

	res := awaitResult(t, inv)
	assert.Equal(t, ResultCancelled, res.Status)
	assert.False(t, env.ch.IsExecutingInvocation(inv.ID))
}

// TestTerminateIdempotent tests double dispose
func TestTerminateIdempotent(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.start()

	assert.NotPanics(t, func() {
		env.ch.Terminate()
		env.ch.Terminate()
		env.ch.Dispose()
	})
}

// TestTerminateDetachesFromBus tests the subscription is released
func TestTerminateDetachesFromBus(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.start()

	require.Equal(t, 1, env.bus.SubscriberCount(testWorkerID, eventbus.Inbound))
	env.ch.Terminate()
	assert.Equal(t, 0, env.bus.SubscriberCount(testWorkerID, eventbus.Inbound))
}

// ============================================================================
// Log Forwarding Tests
// ============================================================================

// TestRpcLogRouting tests user/system routing and the console mirror
func TestRpcLogRouting(t *testing.T) {
	userLogs := newLogCapture()
	systemLogs := newLogCapture()
	consoleLogs := newLogCapture()
	env := newTestEnv(t, nil, func(cfg *Config) {
		cfg.UserLog = slog.New(userLogs)
		cfg.SystemLog = slog.New(systemLogs)
		cfg.ConsoleLog = slog.New(consoleLogs)
	})
	env.start()

	env.fw.send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_RpcLog{RpcLog: &pb.RpcLog{
			Level:       pb.RpcLog_Information,
			Message:     "user says hi",
			LogCategory: pb.RpcLog_User,
		}},
	})
	env.fw.send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_RpcLog{RpcLog: &pb.RpcLog{
			Level:       pb.RpcLog_Warning,
			Message:     "system complains",
			LogCategory: pb.RpcLog_System,
		}},
	})

	require.Eventually(t, func() bool {
		return userLogs.contains("user says hi") && systemLogs.contains("system complains")
	}, 2*time.Second, 5*time.Millisecond)

	assert.True(t, consoleLogs.contains("system complains"), "system logs mirror to console")
	assert.False(t, consoleLogs.contains("user says hi"), "user logs do not mirror to console")
	assert.False(t, userLogs.contains("system complains"))
}

// ============================================================================
// Latency Probe Tests
// ============================================================================

// TestLatencyProbeEnabled tests history accumulation under the feature flag
func TestLatencyProbeEnabled(t *testing.T) {
	env := newTestEnv(t, nil, func(cfg *Config) {
		cfg.Features = &Features{DynamicConcurrency: true}
		cfg.ProbeInterval = 20 * time.Millisecond
		cfg.ProbeHistory = 5
	})
	env.start()

	require.Eventually(t, func() bool {
		return len(env.ch.GetLatencies()) > 0
	}, 2*time.Second, 10*time.Millisecond, "probe never recorded a round trip")

	// History stays bounded
	require.Eventually(t, func() bool {
		return len(env.ch.GetLatencies()) == 5
	}, 2*time.Second, 10*time.Millisecond)
	assert.Len(t, env.ch.GetLatencies(), 5)
}

// TestLatencyProbeDisabled tests that the probe never starts without the flag
func TestLatencyProbeDisabled(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.start()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, env.ch.GetLatencies())
	assert.Zero(t, env.fw.countSent(func(msg *pb.StreamingMessage) bool {
		return msg.GetWorkerStatusRequest() != nil
	}))
}

// ============================================================================
// Worker Metadata Tests
// ============================================================================

// TestWorkerMetadataAdvisoryIndexing tests the advisory flag phrasing
func TestWorkerMetadataAdvisoryIndexing(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.start()

	env.fw.send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_WorkerMetadataResponse{
			WorkerMetadataResponse: &pb.WorkerMetadataResponse{UseDefaultMetadataIndexing: true},
		},
	})
	require.Eventually(t, func() bool {
		return env.logs.contains("Worker deferred to host metadata indexing")
	}, 2*time.Second, 5*time.Millisecond)

	env.fw.send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_WorkerMetadataResponse{
			WorkerMetadataResponse: &pb.WorkerMetadataResponse{
				FunctionMetadataResults: []*pb.RpcFunctionMetadata{{Name: "indexedFn"}},
			},
		},
	})
	require.Eventually(t, func() bool {
		return env.logs.contains("Received worker function metadata")
	}, 2*time.Second, 5*time.Millisecond)
}
