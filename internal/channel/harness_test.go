package channel

// ============================================================================
// Channel Test Harness
// Purpose: Drive the real state machine through a loopback event bus with a
//          scripted fake worker; no internal mocks
// ============================================================================

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pb "github.com/davidmrdavid/azure-functions-host/api/proto/v1"
	"github.com/davidmrdavid/azure-functions-host/internal/eventbus"
	"github.com/davidmrdavid/azure-functions-host/internal/process"
	"github.com/davidmrdavid/azure-functions-host/pkg/types"
)

const testWorkerID = types.WorkerID("testWorkerId")

// ----------------------------------------------------------------------------
// Log capture
// ----------------------------------------------------------------------------

// logCapture is a slog.Handler that renders records into inspectable strings
type logCapture struct {
	mu      sync.Mutex
	entries []string
}

func newLogCapture() *logCapture { return &logCapture{} }

func (l *logCapture) Enabled(context.Context, slog.Level) bool { return true }

func (l *logCapture) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Any())
		return true
	})
	l.mu.Lock()
	l.entries = append(l.entries, b.String())
	l.mu.Unlock()
	return nil
}

func (l *logCapture) WithAttrs([]slog.Attr) slog.Handler { return l }
func (l *logCapture) WithGroup(string) slog.Handler      { return l }

func (l *logCapture) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func (l *logCapture) matching(substr string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if strings.Contains(e, substr) {
			out = append(out, e)
		}
	}
	return out
}

// ----------------------------------------------------------------------------
// Fake worker process
// ----------------------------------------------------------------------------

// fakeProc satisfies WorkerProcess without an OS process
type fakeProc struct {
	pid    int
	once   sync.Once
	exited chan struct{}

	mu      sync.Mutex
	exitErr error
	killed  bool
}

func newFakeProc() *fakeProc {
	return &fakeProc{pid: 4242, exited: make(chan struct{})}
}

func (p *fakeProc) PID() int                { return p.pid }
func (p *fakeProc) Exited() <-chan struct{} { return p.exited }

func (p *fakeProc) ExitErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exitErr
}

func (p *fakeProc) Kill() error {
	p.mu.Lock()
	p.killed = true
	p.mu.Unlock()
	p.exit(fmt.Errorf("killed"))
	return nil
}

func (p *fakeProc) wasKilled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.killed
}

func (p *fakeProc) exit(err error) {
	p.once.Do(func() {
		p.mu.Lock()
		p.exitErr = err
		p.mu.Unlock()
		close(p.exited)
	})
}

// ----------------------------------------------------------------------------
// Fake worker
// ----------------------------------------------------------------------------

// fakeWorker plays the language worker over the loopback bus
type fakeWorker struct {
	bus  *eventbus.Bus
	id   types.WorkerID
	caps map[string]string
	proc *fakeProc

	mu              sync.Mutex
	received        []*pb.StreamingMessage
	holdInit        bool
	holdLoads       bool
	failLoads       map[string]bool
	holdInvocations bool
	respondCancel   bool
	failInit        bool

	sub  *eventbus.Subscription
	done chan struct{}
}

func newFakeWorker(bus *eventbus.Bus, id types.WorkerID, caps map[string]string, proc *fakeProc) *fakeWorker {
	fw := &fakeWorker{
		bus:       bus,
		id:        id,
		caps:      caps,
		proc:      proc,
		failLoads: make(map[string]bool),
		done:      make(chan struct{}),
	}
	fw.sub = bus.Subscribe(id, eventbus.Outbound)
	go fw.run()
	return fw
}

func (fw *fakeWorker) run() {
	for {
		select {
		case <-fw.done:
			return
		case msg := <-fw.sub.C:
			fw.mu.Lock()
			fw.received = append(fw.received, msg)
			fw.mu.Unlock()
			fw.react(msg)
		}
	}
}

func (fw *fakeWorker) stop() {
	select {
	case <-fw.done:
	default:
		close(fw.done)
	}
	fw.sub.Close()
}

func (fw *fakeWorker) react(msg *pb.StreamingMessage) {
	switch content := msg.GetContent().(type) {
	case *pb.StreamingMessage_WorkerInitRequest:
		fw.mu.Lock()
		holdInit, failInit := fw.holdInit, fw.failInit
		fw.mu.Unlock()
		if holdInit {
			return
		}
		result := &pb.StatusResult{Status: pb.StatusResult_Success}
		if failInit {
			result = &pb.StatusResult{
				Status:    pb.StatusResult_Failure,
				Exception: &pb.RpcException{Message: "worker refused to initialize"},
			}
		}
		fw.send(&pb.StreamingMessage{
			Content: &pb.StreamingMessage_WorkerInitResponse{
				WorkerInitResponse: &pb.WorkerInitResponse{
					WorkerVersion: "1.0.0-test",
					Capabilities:  fw.caps,
					Result:        result,
				},
			},
		})

	case *pb.StreamingMessage_FunctionLoadRequest:
		if !fw.holding() {
			fw.respondLoad(content.FunctionLoadRequest.GetFunctionId())
		}

	case *pb.StreamingMessage_FunctionLoadRequestCollection:
		if !fw.holding() {
			for _, req := range content.FunctionLoadRequestCollection.GetFunctionLoadRequests() {
				fw.respondLoad(req.GetFunctionId())
			}
		}

	case *pb.StreamingMessage_InvocationRequest:
		fw.mu.Lock()
		hold := fw.holdInvocations
		fw.mu.Unlock()
		if !hold {
			fw.completeInvocation(content.InvocationRequest.GetInvocationId(), pb.StatusResult_Success, nil)
		}

	case *pb.StreamingMessage_InvocationCancel:
		fw.mu.Lock()
		respond := fw.respondCancel
		fw.mu.Unlock()
		if respond {
			fw.completeInvocation(content.InvocationCancel.GetInvocationId(), pb.StatusResult_Cancelled, nil)
		}

	case *pb.StreamingMessage_WorkerStatusRequest:
		fw.send(&pb.StreamingMessage{
			RequestId: msg.GetRequestId(),
			Content: &pb.StreamingMessage_WorkerStatusResponse{
				WorkerStatusResponse: &pb.WorkerStatusResponse{},
			},
		})

	case *pb.StreamingMessage_WorkerTerminate:
		fw.proc.exit(nil)
	}
}

func (fw *fakeWorker) holding() bool {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.holdLoads
}

func (fw *fakeWorker) send(msg *pb.StreamingMessage) {
	fw.bus.Publish(fw.id, eventbus.Inbound, msg)
}

// handshake plays the worker's StartStream
func (fw *fakeWorker) handshake() {
	fw.send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_StartStream{
			StartStream: &pb.StartStream{WorkerId: string(fw.id)},
		},
	})
}

func (fw *fakeWorker) respondLoad(functionID string) {
	result := &pb.StatusResult{Status: pb.StatusResult_Success}
	fw.mu.Lock()
	failed := fw.failLoads[functionID]
	fw.mu.Unlock()
	if failed {
		result = &pb.StatusResult{
			Status:    pb.StatusResult_Failure,
			Exception: &pb.RpcException{Message: "load blew up"},
		}
	}
	fw.send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_FunctionLoadResponse{
			FunctionLoadResponse: &pb.FunctionLoadResponse{
				FunctionId: functionID,
				Result:     result,
			},
		},
	})
}

// releaseLoads answers every load request received so far
func (fw *fakeWorker) releaseLoads() {
	fw.mu.Lock()
	fw.holdLoads = false
	pending := make([]string, 0)
	for _, msg := range fw.received {
		if req := msg.GetFunctionLoadRequest(); req != nil {
			pending = append(pending, req.GetFunctionId())
		}
		if coll := msg.GetFunctionLoadRequestCollection(); coll != nil {
			for _, req := range coll.GetFunctionLoadRequests() {
				pending = append(pending, req.GetFunctionId())
			}
		}
	}
	fw.mu.Unlock()

	for _, id := range pending {
		fw.respondLoad(id)
	}
}

func (fw *fakeWorker) completeInvocation(id string, status pb.StatusResult_Status, outputs []*pb.ParameterBinding) {
	result := &pb.StatusResult{Status: status}
	if status == pb.StatusResult_Failure {
		result.Exception = &pb.RpcException{Message: "function threw"}
	}
	fw.send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_InvocationResponse{
			InvocationResponse: &pb.InvocationResponse{
				InvocationId: id,
				OutputData:   outputs,
				Result:       result,
			},
		},
	})
}

// sent returns a snapshot of everything the host published to this worker
func (fw *fakeWorker) sent() []*pb.StreamingMessage {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	out := make([]*pb.StreamingMessage, len(fw.received))
	copy(out, fw.received)
	return out
}

// countSent counts host messages matching pred
func (fw *fakeWorker) countSent(pred func(*pb.StreamingMessage) bool) int {
	n := 0
	for _, msg := range fw.sent() {
		if pred(msg) {
			n++
		}
	}
	return n
}

// waitSent polls until a host message matching pred arrives
func (fw *fakeWorker) waitSent(t *testing.T, pred func(*pb.StreamingMessage) bool, what string) *pb.StreamingMessage {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, msg := range fw.sent() {
			if pred(msg) {
				return msg
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("host never sent %s", what)
	return nil
}

// ----------------------------------------------------------------------------
// Test environment
// ----------------------------------------------------------------------------

type testEnv struct {
	t    *testing.T
	bus  *eventbus.Bus
	ch   *Channel
	fw   *fakeWorker
	proc *fakeProc
	logs *logCapture
}

// newTestEnv wires a channel to a scripted worker over a loopback bus.
// mutate may adjust the config before construction.
func newTestEnv(t *testing.T, caps map[string]string, mutate func(*Config)) *testEnv {
	t.Helper()

	bus := eventbus.New(256)
	proc := newFakeProc()
	fw := newFakeWorker(bus, testWorkerID, caps, proc)
	logs := newLogCapture()
	feats := Features{}

	cfg := Config{
		WorkerID: testWorkerID,
		Description: types.WorkerDescription{
			Language:        "node",
			Executable:      "/usr/bin/node",
			WorkerDirectory: "/opt/workers/node",
			FunctionAppDir:  "/home/site/wwwroot",
		},
		Timeouts: types.Timeouts{
			Startup:   2 * time.Second,
			Init:      2 * time.Second,
			EnvReload: 2 * time.Second,
			Grace:     5 * time.Second,
		},
		HostVersion:     "4.28.0",
		ProtocolVersion: "v1.10.0",
		HostInstanceID:  "host-instance-1",
		Features:        &feats,
		Bus:             bus,
		Logger:          slog.New(logs),
		UserLog:         slog.New(logs),
		SystemLog:       slog.New(logs),
		ConsoleLog:      slog.New(logs),
		Starter: func(process.Options) (WorkerProcess, error) {
			// The "subprocess" connects immediately
			go fw.handshake()
			return proc, nil
		},
	}
	if mutate != nil {
		mutate(&cfg)
	}

	env := &testEnv{t: t, bus: bus, ch: New(cfg), fw: fw, proc: proc, logs: logs}
	t.Cleanup(func() {
		env.ch.Terminate()
		fw.stop()
	})
	return env
}

// start drives the channel to Initialized
func (e *testEnv) start() {
	e.t.Helper()
	require.NoError(e.t, e.ch.StartWorkerProcess(context.Background()))
	require.Equal(e.t, types.StateInitialized, e.ch.State())
}

// load drives the channel to Ready with the given functions
func (e *testEnv) load(metas ...types.FunctionMetadata) {
	e.t.Helper()
	require.NoError(e.t, e.ch.SetupFunctionInvocationBuffers(metas))
	require.NoError(e.t, e.ch.SendFunctionLoadRequests())
	require.Eventually(e.t, func() bool {
		return e.ch.State() == types.StateReady
	}, 2*time.Second, 5*time.Millisecond, "channel never became Ready")
}

// jsFunc builds one function metadata record
func jsFunc(name string, disabled bool) types.FunctionMetadata {
	return types.FunctionMetadata{
		FunctionID: types.FunctionID(name + "-id"),
		Name:       name,
		Language:   "node",
		Directory:  "/home/site/wwwroot/" + name,
		ScriptFile: "index.js",
		Disabled:   disabled,
		Bindings:   map[string]string{"req": "httpTrigger"},
	}
}

// stringInput builds one inline string input
func stringInput(name, value string) Input {
	return Input{
		Name: name,
		Data: &pb.TypedData{Data: &pb.TypedData_StringValue{StringValue: value}},
	}
}

// bytesInput builds one inline byte input
func bytesInput(name string, value []byte) Input {
	return Input{
		Name: name,
		Data: &pb.TypedData{Data: &pb.TypedData_BytesValue{BytesValue: value}},
	}
}

// awaitResult reads the sink with a bound
func awaitResult(t *testing.T, inv *Invocation) Result {
	t.Helper()
	select {
	case res := <-inv.Result():
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("invocation result never arrived")
		return Result{}
	}
}

// isInvocationRequest matches InvocationRequest envelopes
func isInvocationRequest(msg *pb.StreamingMessage) bool {
	return msg.GetInvocationRequest() != nil
}

// isInvocationCancel matches InvocationCancel envelopes
func isInvocationCancel(msg *pb.StreamingMessage) bool {
	return msg.GetInvocationCancel() != nil
}
