// ============================================================================
// Functions Host Worker Channel - Per-Worker State Machine
// ============================================================================
//
// Package: internal/channel
// File: channel.go
// Purpose: Own one worker subprocess and one RPC stream; expose the verbs the
//          dispatcher uses to drive that worker
//
// Lifecycle:
//   Created -> Starting -> Started -> Initializing -> Initialized
//           -> LoadingFunctions -> Ready -> Draining -> Terminating
//           -> Terminated; Failed is reachable from any non-terminal state.
//
// Concurrency model:
//   Parallel across channels, serializable within one. State transitions
//   happen under the channel mutex; the registry, load manager and
//   capability set each guard themselves with their own mutex. The pump
//   goroutine is the sole consumer of the channel's inbound bus
//   subscription. Every awaited
//   protocol phase is bounded by a timeout from the channel configuration.
//
// Promises:
//   Start/Init and env reload are one-shot rendezvous over capacity-1
//   channels fed by the pump; the terminate grace wait races the worker
//   process's exit signal against a timer. Dispose and channel failure
//   resolve every pending promise with Cancelled or the failure.
//
// ============================================================================

package channel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	pb "github.com/davidmrdavid/azure-functions-host/api/proto/v1"
	"github.com/davidmrdavid/azure-functions-host/internal/eventbus"
	"github.com/davidmrdavid/azure-functions-host/internal/metrics"
	"github.com/davidmrdavid/azure-functions-host/internal/process"
	"github.com/davidmrdavid/azure-functions-host/internal/sharedmem"
	"github.com/davidmrdavid/azure-functions-host/pkg/types"
)

// ============================================================================
// Error Definitions
// ============================================================================

var (
	// ErrChannelDraining rejects new invocations while a drain is pending
	ErrChannelDraining = errors.New("channel is draining")
	// ErrReloadInFlight rejects overlapping environment reloads
	ErrReloadInFlight = errors.New("environment reload already in flight")
)

// DefaultSharedMemoryThreshold is the minimum payload size moved out of band
const DefaultSharedMemoryThreshold = 1 << 20

// Default phase timeouts, applied when the configuration leaves them zero
const (
	DefaultStartupTimeout   = 60 * time.Second
	DefaultInitTimeout      = 10 * time.Second
	DefaultEnvReloadTimeout = 30 * time.Second
	DefaultGracePeriod      = 5 * time.Second
)

// invocationLogCategory tags trace-context attributes for the telemetry agent
const invocationLogCategory = "Function.Invocation"

// ============================================================================
// Collaborator Abstractions
// ============================================================================

// WorkerProcess is the process-supervision capability the channel consumes
type WorkerProcess interface {
	PID() int
	Exited() <-chan struct{}
	ExitErr() error
	Kill() error
}

// ProcessStarter launches one worker subprocess
type ProcessStarter func(opts process.Options) (WorkerProcess, error)

// defaultStarter adapts the process package
func defaultStarter(opts process.Options) (WorkerProcess, error) {
	return process.Start(opts)
}

// Features snapshots the environment toggles the channel honors. The
// snapshot is taken once at construction; the channel never reads ambient
// environment afterwards.
type Features struct {
	SharedMemoryTransfer bool // FunctionsWorkerSharedMemoryDataTransferEnabled
	DynamicConcurrency   bool // FunctionsWorkerDynamicConcurrencyEnabled
	AppInsightsAgent     bool // APPLICATIONINSIGHTS_ENABLE_AGENT
	V2Compatibility      bool // FUNCTIONS_V2_COMPATIBILITY_MODE
}

// FeaturesFromEnv reads the toggles from the process environment
func FeaturesFromEnv() Features {
	return Features{
		SharedMemoryTransfer: truthy(os.Getenv(types.EnvSharedMemoryEnabled)),
		DynamicConcurrency:   truthy(os.Getenv(types.EnvDynamicConcurrencyEnabled)),
		AppInsightsAgent:     truthy(os.Getenv(types.EnvAppInsightsAgentEnabled)),
		V2Compatibility:      truthy(os.Getenv(types.EnvV2CompatibilityMode)),
	}
}

// truthy matches the platform's loose boolean convention
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// ============================================================================
// Configuration
// ============================================================================

// Config configures one worker channel
type Config struct {
	WorkerID    types.WorkerID          // Generated when empty
	Description types.WorkerDescription // Worker launch description
	Timeouts    types.Timeouts          // Per-phase deadlines

	HostVersion      string            // Reported in WorkerInitRequest
	ProtocolVersion  string            // Negotiated protocol version
	HostCapabilities map[string]string // Host-offered capabilities
	HostURI          string            // gRPC endpoint workers dial back to

	HostInstanceID    string // Trace-context attribute
	LiveLogsSessionID string // Trace-context attribute, optional

	SharedMemoryThreshold int64 // Min payload bytes for out-of-band transfer
	InvocationBufferCap   int   // Per-function pre-load buffer bound
	ProbeInterval         time.Duration
	ProbeHistory          int

	Features *Features // nil reads the process environment once

	// Collaborators. Bus is required; the rest are optional.
	Bus          *eventbus.Bus
	SharedMemory *sharedmem.Manager
	Cache        *sharedmem.Cache
	Collector    *metrics.Collector
	Starter      ProcessStarter

	// Log sinks. Nil sinks fall back to slog.Default().
	Logger     *slog.Logger // Channel lifecycle and protocol logs
	UserLog    *slog.Logger // Worker user logs
	SystemLog  *slog.Logger // Worker system logs
	ConsoleLog *slog.Logger // Host console source; mirrors system logs
}

// Channel owns one worker subprocess and one RPC stream
type Channel struct {
	cfg      Config
	features Features
	logger   *slog.Logger

	caps  *Capabilities
	reg   *registry
	loads *loadManager
	probe *probe

	mu               sync.Mutex
	state            types.ChannelState
	proc             WorkerProcess
	reloadInFlight   bool
	loadsOutstanding int
	loadPhaseStart   time.Time
	upReported       bool

	inbound *eventbus.Subscription

	startStreamCh chan *pb.StartStream
	initCh        chan *pb.WorkerInitResponse
	reloadCh      chan *pb.FunctionEnvironmentReloadResponse

	disposed    chan struct{}
	disposeOnce sync.Once
	failed      chan struct{}
	failOnce    sync.Once
	failErr     error
	pumpDone    chan struct{}
}

// New constructs a channel in the Created state and attaches its pump to the
// event bus, so inbound messages are never missed once the worker starts.
func New(cfg Config) *Channel {
	if cfg.WorkerID == "" {
		cfg.WorkerID = types.WorkerID(uuid.New().String())
	}
	if cfg.Timeouts.Startup <= 0 {
		cfg.Timeouts.Startup = DefaultStartupTimeout
	}
	if cfg.Timeouts.Init <= 0 {
		cfg.Timeouts.Init = DefaultInitTimeout
	}
	if cfg.Timeouts.EnvReload <= 0 {
		cfg.Timeouts.EnvReload = DefaultEnvReloadTimeout
	}
	if cfg.Timeouts.Grace <= 0 {
		cfg.Timeouts.Grace = DefaultGracePeriod
	}
	if cfg.SharedMemoryThreshold <= 0 {
		cfg.SharedMemoryThreshold = DefaultSharedMemoryThreshold
	}
	if cfg.Starter == nil {
		cfg.Starter = defaultStarter
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.UserLog == nil {
		cfg.UserLog = slog.Default()
	}
	if cfg.SystemLog == nil {
		cfg.SystemLog = slog.Default()
	}
	if cfg.ConsoleLog == nil {
		cfg.ConsoleLog = slog.Default()
	}

	features := FeaturesFromEnv()
	if cfg.Features != nil {
		features = *cfg.Features
	}

	c := &Channel{
		cfg:      cfg,
		features: features,
		logger:   cfg.Logger.With("workerID", cfg.WorkerID),

		caps:  newCapabilities(),
		reg:   newRegistry(),
		loads: newLoadManager(cfg.InvocationBufferCap),

		state: types.StateCreated,

		startStreamCh: make(chan *pb.StartStream, 1),
		initCh:        make(chan *pb.WorkerInitResponse, 1),
		reloadCh:      make(chan *pb.FunctionEnvironmentReloadResponse, 1),

		disposed: make(chan struct{}),
		failed:   make(chan struct{}),
		pumpDone: make(chan struct{}),
	}

	c.probe = newProbe(cfg.ProbeInterval, cfg.ProbeHistory, c.publishStatusProbe, c.recordProbeLatency)

	c.inbound = cfg.Bus.Subscribe(cfg.WorkerID, eventbus.Inbound)
	go c.pump()

	return c
}

// WorkerID returns the channel's worker id
func (c *Channel) WorkerID() types.WorkerID {
	return c.cfg.WorkerID
}

// State returns the current lifecycle state
func (c *Channel) State() types.ChannelState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// PID returns the worker subprocess id, zero before start
func (c *Channel) PID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.proc == nil {
		return 0
	}
	return c.proc.PID()
}

// Capabilities returns the negotiated capability set
func (c *Channel) Capabilities() *Capabilities {
	return c.caps
}

// FunctionLoadStatuses returns a snapshot of per-function load state
func (c *Channel) FunctionLoadStatuses() map[types.FunctionID]types.LoadStatus {
	return c.loads.statuses()
}

// GetLatencies returns the latency probe history, empty when dynamic
// concurrency is disabled
func (c *Channel) GetLatencies() []time.Duration {
	return c.probe.latencies()
}

// IsExecutingInvocation reports whether id is in the invocation registry
func (c *Channel) IsExecutingInvocation(id types.InvocationID) bool {
	return c.reg.contains(id)
}

// IsChannelReadyForInvocations reports whether invocation buffers exist and
// the channel can accept work
func (c *Channel) IsChannelReadyForInvocations() bool {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	switch state {
	case types.StateInitialized, types.StateLoadingFunctions, types.StateReady:
		return c.loads.hasBuffers()
	}
	return false
}

// ============================================================================
// Start / Init
// ============================================================================

// StartWorkerProcess launches the worker subprocess and drives the
// StartStream / WorkerInit handshake. It returns once the channel is
// Initialized, or with the classified failure that moved it to Failed.
// Disposing the channel mid-handshake resolves the call with Cancelled.
func (c *Channel) StartWorkerProcess(ctx context.Context) error {
	c.mu.Lock()
	if c.state != types.StateCreated {
		state := c.state
		c.mu.Unlock()
		return types.NewError(types.KindInvalidState, "StartWorkerProcess",
			fmt.Sprintf("cannot start worker in state %s", state))
	}
	c.setStateLocked(types.StateStarting)
	c.mu.Unlock()

	c.phaseBegin(metrics.EventWorkerStartupRequestResponse)
	phaseStart := time.Now()

	proc, err := c.cfg.Starter(process.Options{
		WorkerID: c.cfg.WorkerID,
		Desc:     c.cfg.Description,
		HostURI:  c.cfg.HostURI,
		Console:  c.forwardConsole,
	})
	if err != nil {
		werr := types.WrapError(types.KindWorkerProcessFailure, "StartWorkerProcess", err)
		c.fail(werr)
		return werr
	}

	c.mu.Lock()
	c.proc = proc
	c.setStateLocked(types.StateStarted)
	c.mu.Unlock()
	go c.watchProcessExit(proc)

	// Await the worker's StartStream handshake
	startupTimer := time.NewTimer(c.cfg.Timeouts.Startup)
	defer startupTimer.Stop()

	select {
	case <-c.startStreamCh:
	case <-startupTimer.C:
		werr := types.NewError(types.KindTimeout, "StartWorkerProcess",
			fmt.Sprintf("worker did not send StartStream within %s", c.cfg.Timeouts.Startup))
		c.fail(werr)
		return werr
	case <-ctx.Done():
		werr := types.WrapError(types.KindCancelled, "StartWorkerProcess", ctx.Err())
		c.fail(werr)
		return werr
	case <-c.disposed:
		return types.NewError(types.KindCancelled, "StartWorkerProcess", "channel disposed during startup")
	case <-c.failed:
		return c.failureErr()
	}

	// Send WorkerInitRequest and await the response
	c.mu.Lock()
	c.setStateLocked(types.StateInitializing)
	c.mu.Unlock()

	if c.features.V2Compatibility {
		c.logger.Info("Worker and host running in V2 compatibility mode")
	}

	c.publish(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_WorkerInitRequest{
			WorkerInitRequest: &pb.WorkerInitRequest{
				HostVersion:          c.cfg.HostVersion,
				WorkerDirectory:      c.cfg.Description.WorkerDirectory,
				FunctionAppDirectory: c.cfg.Description.FunctionAppDir,
				ProtocolVersion:      c.cfg.ProtocolVersion,
				Capabilities:         c.cfg.HostCapabilities,
				V2Compatible:         c.features.V2Compatibility,
			},
		},
	})

	initTimer := time.NewTimer(c.cfg.Timeouts.Init)
	defer initTimer.Stop()

	var initResp *pb.WorkerInitResponse
	select {
	case initResp = <-c.initCh:
	case <-initTimer.C:
		werr := types.NewError(types.KindTimeout, "StartWorkerProcess",
			fmt.Sprintf("worker did not respond to WorkerInitRequest within %s", c.cfg.Timeouts.Init))
		c.fail(werr)
		return werr
	case <-ctx.Done():
		werr := types.WrapError(types.KindCancelled, "StartWorkerProcess", ctx.Err())
		c.fail(werr)
		return werr
	case <-c.disposed:
		return types.NewError(types.KindCancelled, "StartWorkerProcess", "channel disposed during initialization")
	case <-c.failed:
		return c.failureErr()
	}

	if initResp.GetResult().GetStatus() != pb.StatusResult_Success {
		werr := types.NewError(types.KindWorkerProcessFailure, "StartWorkerProcess",
			fmt.Sprintf("worker initialization failed: %s", initResp.GetResult().GetException().GetMessage()))
		c.fail(werr)
		return werr
	}

	c.caps.freeze(initResp.GetCapabilities())

	c.mu.Lock()
	c.setStateLocked(types.StateInitialized)
	c.upReported = true
	c.mu.Unlock()

	if c.cfg.Collector != nil {
		c.cfg.Collector.WorkerUp()
	}
	c.phaseEnd(metrics.EventWorkerStartupRequestResponse, time.Since(phaseStart))

	c.logger.Info("Worker initialized",
		"workerVersion", initResp.GetWorkerVersion(),
		"capabilities", len(initResp.GetCapabilities()))

	if c.features.DynamicConcurrency {
		c.probe.start()
	}
	return nil
}

// watchProcessExit fails the channel when the subprocess dies underneath it
func (c *Channel) watchProcessExit(proc WorkerProcess) {
	select {
	case <-proc.Exited():
	case <-c.disposed:
		return
	}

	c.mu.Lock()
	terminalOrStopping := c.state.Terminal() || c.state == types.StateTerminating
	c.mu.Unlock()
	if terminalOrStopping {
		return
	}

	err := proc.ExitErr()
	if err == nil {
		err = errors.New("worker process exited unexpectedly")
	}
	c.fail(types.WrapError(types.KindWorkerProcessFailure, "worker process", err))
}

// ============================================================================
// Function Loading
// ============================================================================

// SetupFunctionInvocationBuffers registers a pending load entry and an
// invocation buffer per metadata record. Until this runs,
// IsChannelReadyForInvocations reports false.
func (c *Channel) SetupFunctionInvocationBuffers(metas []types.FunctionMetadata) error {
	c.mu.Lock()
	if c.state.Terminal() {
		state := c.state
		c.mu.Unlock()
		return types.NewError(types.KindInvalidState, "SetupFunctionInvocationBuffers",
			fmt.Sprintf("channel is %s", state))
	}
	c.mu.Unlock()

	return c.loads.setup(metas)
}

// SendFunctionLoadRequests publishes load requests for every registered
// function: enabled functions first, disabled last, one collection message
// when the worker supports it. Responses arrive on the pump; the configured
// per-batch deadline (zero means unbounded) fails functions still pending
// when it expires.
func (c *Channel) SendFunctionLoadRequests() error {
	c.mu.Lock()
	if c.state != types.StateInitialized {
		state := c.state
		c.mu.Unlock()
		return types.NewError(types.KindInvalidState, "SendFunctionLoadRequests",
			fmt.Sprintf("cannot load functions in state %s", state))
	}

	metas := c.loads.orderedMetadata()
	pending := 0
	for _, meta := range metas {
		if status, ok := c.loads.status(meta.FunctionID); ok && status == types.LoadPending {
			pending++
		}
	}
	if pending == 0 {
		c.mu.Unlock()
		return nil
	}

	c.setStateLocked(types.StateLoadingFunctions)
	c.loadsOutstanding = pending
	c.loadPhaseStart = time.Now()
	c.mu.Unlock()

	c.phaseBegin(metrics.EventFunctionLoadRequestResponse)

	requests := make([]*pb.FunctionLoadRequest, 0, len(metas))
	for _, meta := range metas {
		if status, ok := c.loads.status(meta.FunctionID); !ok || status != types.LoadPending {
			continue
		}
		c.logger.Info("Sending FunctionLoadRequest",
			"functionName", meta.Name,
			"functionID", meta.FunctionID,
			"disabled", meta.Disabled)
		requests = append(requests, &pb.FunctionLoadRequest{
			FunctionId: string(meta.FunctionID),
			Metadata:   functionMetadataProto(meta),
		})
	}

	if c.caps.Enabled(types.CapabilitySupportsLoadResponseCollection) {
		c.publish(&pb.StreamingMessage{
			Content: &pb.StreamingMessage_FunctionLoadRequestCollection{
				FunctionLoadRequestCollection: &pb.FunctionLoadRequestCollection{
					FunctionLoadRequests: requests,
				},
			},
		})
	} else {
		for _, req := range requests {
			c.publish(&pb.StreamingMessage{
				Content: &pb.StreamingMessage_FunctionLoadRequest{FunctionLoadRequest: req},
			})
		}
	}

	if d := c.cfg.Timeouts.FunctionLoad; d > 0 {
		time.AfterFunc(d, func() { c.expireLoadBatch(d) })
	}
	return nil
}

// expireLoadBatch fails every function still pending when the batch deadline
// fires
func (c *Channel) expireLoadBatch(after time.Duration) {
	for _, id := range c.loads.pendingIDs() {
		err := types.NewError(types.KindTimeout, "FunctionLoad",
			fmt.Sprintf("function %s did not load within %s", id, after))
		c.resolveFunctionLoad(string(id), false, err)
	}
}

// functionMetadataProto maps host metadata onto the wire form
func functionMetadataProto(meta types.FunctionMetadata) *pb.RpcFunctionMetadata {
	bindings := make(map[string]*pb.BindingInfo, len(meta.Bindings))
	for name, bindingType := range meta.Bindings {
		bindings[name] = &pb.BindingInfo{Type: bindingType}
	}
	return &pb.RpcFunctionMetadata{
		FunctionId: string(meta.FunctionID),
		Name:       meta.Name,
		Directory:  meta.Directory,
		ScriptFile: meta.ScriptFile,
		EntryPoint: meta.EntryPoint,
		Language:   meta.Language,
		IsDisabled: meta.Disabled,
		Bindings:   bindings,
	}
}

// resolveFunctionLoad transitions one entry, flushes or fails its buffered
// invocations, and closes out the load phase when the batch resolves
func (c *Channel) resolveFunctionLoad(functionID string, success bool, cause error) {
	id := types.FunctionID(functionID)
	buffered, ok := c.loads.complete(id, success, cause)
	if !ok {
		c.logger.Debug("Dropping load response for unknown or resolved function", "functionID", functionID)
		return
	}

	if success {
		c.logger.Info("Function loaded", "functionID", functionID)
		c.mu.Lock()
		if c.state == types.StateLoadingFunctions {
			c.setStateLocked(types.StateReady)
		}
		c.mu.Unlock()
		for _, inv := range buffered {
			if inv.done() {
				c.reg.remove(inv.ID)
				continue
			}
			c.mu.Lock()
			c.publishInvocationLocked(inv)
			c.mu.Unlock()
		}
	} else {
		c.logger.Error("Function failed to load", "functionID", functionID, "error", cause)
		for _, inv := range buffered {
			c.reg.remove(inv.ID)
			inv.complete(Result{
				Status: ResultFailure,
				Err:    types.WrapError(types.KindLoadFailure, "SendInvocation", cause),
			})
		}
	}

	c.mu.Lock()
	if c.loadsOutstanding > 0 {
		c.loadsOutstanding--
		if c.loadsOutstanding == 0 {
			elapsed := time.Since(c.loadPhaseStart)
			c.mu.Unlock()
			c.phaseEnd(metrics.EventFunctionLoadRequestResponse, elapsed)
			return
		}
	}
	c.mu.Unlock()
}

// ============================================================================
// Invocations
// ============================================================================

// SendInvocation dispatches one invocation to the worker. The invocation is
// registered before its request is published so a racing response cannot
// miss its sink. A context already cancelled on entry resolves the sink with
// Cancelled and sends nothing.
func (c *Channel) SendInvocation(ctx context.Context, inv *Invocation) error {
	if inv.ctx == nil {
		inv.ctx = ctx
	}

	c.mu.Lock()
	switch c.state {
	case types.StateReady, types.StateLoadingFunctions:
	case types.StateDraining:
		c.mu.Unlock()
		return ErrChannelDraining
	default:
		state := c.state
		c.mu.Unlock()
		return types.NewError(types.KindInvalidState, "SendInvocation",
			fmt.Sprintf("cannot invoke in state %s", state))
	}

	select {
	case <-ctx.Done():
		c.mu.Unlock()
		c.logger.Info("Cancellation has been requested, cancelling invocation request",
			"invocationID", inv.ID)
		inv.complete(Result{
			Status: ResultCancelled,
			Err:    types.WrapError(types.KindCancelled, "SendInvocation", ctx.Err()),
		})
		return nil
	default:
	}

	decision, routeErr := c.loads.route(inv)
	switch decision {
	case dispatchFailed:
		c.mu.Unlock()
		if errors.Is(routeErr, ErrFunctionNotRegistered) {
			return routeErr
		}
		inv.complete(Result{
			Status: ResultFailure,
			Err:    types.WrapError(types.KindLoadFailure, "SendInvocation", routeErr),
		})
		return nil
	case dispatchBuffered:
		c.reg.add(inv)
		c.mu.Unlock()
	case dispatchSend:
		c.reg.add(inv)
		c.publishInvocationLocked(inv)
		c.mu.Unlock()
	}

	go c.watchCancellation(inv)
	return nil
}

// publishInvocationLocked encodes and publishes one InvocationRequest.
// Caller holds c.mu, which fixes the publication order per function.
func (c *Channel) publishInvocationLocked(inv *Invocation) {
	inputs := make([]*pb.ParameterBinding, 0, len(inv.Inputs))
	for _, in := range inv.Inputs {
		inputs = append(inputs, c.encodeInput(inv, in))
	}

	c.publish(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_InvocationRequest{
			InvocationRequest: &pb.InvocationRequest{
				InvocationId:    string(inv.ID),
				FunctionId:      string(inv.FunctionID),
				InputData:       inputs,
				TriggerMetadata: inv.TriggerMetadata,
				TraceContext:    c.traceContext(),
			},
		},
	})
	inv.wireSent.Store(true)

	if c.cfg.Collector != nil {
		c.cfg.Collector.RecordInvocationStarted()
	}
}

// encodeInput carries a large transferable payload through shared memory
// when the feature is negotiated, inline otherwise
func (c *Channel) encodeInput(inv *Invocation, in Input) *pb.ParameterBinding {
	if c.sharedMemoryEnabled() {
		payload, dataType := transferablePayload(in.Data)
		if payload != nil && int64(len(payload)) >= c.cfg.SharedMemoryThreshold {
			name, err := c.cfg.SharedMemory.Put(payload)
			if err == nil {
				inv.inputRegions = append(inv.inputRegions, name)
				return &pb.ParameterBinding{
					Name: in.Name,
					RpcData: &pb.ParameterBinding_RpcSharedMemory{
						RpcSharedMemory: &pb.RpcSharedMemory{
							Name:  name,
							Count: int64(len(payload)),
							Type:  dataType,
						},
					},
				}
			}
			c.logger.Warn("Shared memory transfer failed, sending input inline",
				"invocationID", inv.ID, "input", in.Name, "error", err)
		}
	}
	return &pb.ParameterBinding{
		Name:    in.Name,
		RpcData: &pb.ParameterBinding_Data{Data: in.Data},
	}
}

// transferablePayload returns the raw bytes of a byte-buffer or string value
func transferablePayload(data *pb.TypedData) ([]byte, pb.RpcSharedMemory_RpcDataType) {
	switch d := data.GetData().(type) {
	case *pb.TypedData_BytesValue:
		return d.BytesValue, pb.RpcSharedMemory_Bytes
	case *pb.TypedData_StringValue:
		return []byte(d.StringValue), pb.RpcSharedMemory_String
	}
	return nil, pb.RpcSharedMemory_Unknown
}

// sharedMemoryEnabled requires both the environment toggle and the worker
// capability
func (c *Channel) sharedMemoryEnabled() bool {
	return c.features.SharedMemoryTransfer &&
		c.cfg.SharedMemory != nil &&
		c.caps.Enabled(types.CapabilitySharedMemoryDataTransfer)
}

// traceContext builds the invocation trace context when the telemetry agent
// is enabled, nil otherwise
func (c *Channel) traceContext() *pb.RpcTraceContext {
	if !c.features.AppInsightsAgent {
		return nil
	}
	attrs := map[string]string{
		"processId":      strconv.Itoa(c.PID()),
		"hostInstanceId": c.cfg.HostInstanceID,
		"categoryName":   invocationLogCategory,
	}
	if c.cfg.LiveLogsSessionID != "" {
		attrs["liveLogsSessionId"] = c.cfg.LiveLogsSessionID
	}
	return &pb.RpcTraceContext{Attributes: attrs}
}

// watchCancellation reacts to the caller's context expiring while the
// invocation is in flight
func (c *Channel) watchCancellation(inv *Invocation) {
	select {
	case <-inv.completed:
		return
	case <-c.disposed:
		return
	case <-inv.ctx.Done():
	}

	if inv.done() || !c.reg.contains(inv.ID) {
		return
	}

	if c.caps.Enabled(types.CapabilityHandlesInvocationCancel) && inv.wireSent.Load() {
		// The worker owns the terminal response; the registry entry stays.
		c.SendInvocationCancel(inv.ID)
		return
	}

	// No wire action possible: cancel locally
	c.reg.remove(inv.ID)
	inv.complete(Result{
		Status: ResultCancelled,
		Err:    types.WrapError(types.KindCancelled, "SendInvocation", inv.ctx.Err()),
	})
}

// SendInvocationCancel publishes an InvocationCancel when the worker
// advertised the capability; otherwise it does nothing.
func (c *Channel) SendInvocationCancel(id types.InvocationID) {
	if !c.caps.Enabled(types.CapabilityHandlesInvocationCancel) {
		return
	}
	c.logger.Info(fmt.Sprintf("Sending invocation cancel request for InvocationId %s", id))
	c.publish(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_InvocationCancel{
			InvocationCancel: &pb.InvocationCancel{InvocationId: string(id)},
		},
	})
}

// TryFailExecutions signals every in-flight invocation's sink with the fault
// and clears the registry. Applying it twice is equivalent to once.
func (c *Channel) TryFailExecutions(err error) {
	c.reg.failAll(Result{
		Status: ResultFailure,
		Err:    types.WrapError(types.KindInvocationFailure, "TryFailExecutions", err),
	})
}

// handleInvocationResponse correlates a worker response to its invocation
func (c *Channel) handleInvocationResponse(resp *pb.InvocationResponse) {
	id := types.InvocationID(resp.GetInvocationId())
	inv, ok := c.reg.get(id)
	if !ok {
		c.logger.Debug("Received response for unknown invocation, dropping", "invocationID", id)
		return
	}

	// Input regions transfer back to the host on response
	for _, region := range inv.inputRegions {
		c.cfg.SharedMemory.Release(region)
	}
	inv.inputRegions = nil

	outputs := make(map[string]*pb.TypedData, len(resp.GetOutputData()))
	for _, binding := range resp.GetOutputData() {
		outputs[binding.GetName()] = c.decodeOutput(inv, binding)
	}

	result := Result{Outputs: outputs, Return: resp.GetReturnValue()}
	switch resp.GetResult().GetStatus() {
	case pb.StatusResult_Success:
		result.Status = ResultSuccess
	case pb.StatusResult_Cancelled:
		result.Status = ResultCancelled
		result.Err = types.NewError(types.KindCancelled, "invocation", "worker cancelled the invocation")
	default:
		result.Status = ResultFailure
		result.Err = types.NewError(types.KindInvocationFailure, "invocation",
			resp.GetResult().GetException().GetMessage())
	}

	c.reg.remove(id)
	inv.complete(result)

	if c.cfg.Collector != nil {
		c.cfg.Collector.RecordInvocationCompleted(result.Status.String(), time.Since(inv.enqueued).Seconds())
	}
}

// decodeOutput maps one output binding back inline, copying shared-memory
// payloads into the host and releasing (or cache-pinning) the region
func (c *Channel) decodeOutput(inv *Invocation, binding *pb.ParameterBinding) *pb.TypedData {
	shm := binding.GetRpcSharedMemory()
	if shm == nil {
		return binding.GetData()
	}
	if c.cfg.SharedMemory == nil {
		c.logger.Error("Worker sent shared-memory output but transfer is not configured",
			"invocationID", inv.ID, "output", binding.GetName())
		return nil
	}

	if _, err := c.cfg.SharedMemory.Open(shm.GetName()); err != nil {
		c.logger.Error("Failed to open shared-memory output", "region", shm.GetName(), "error", err)
		return nil
	}
	payload, err := c.cfg.SharedMemory.Read(shm.GetName(), shm.GetOffset(), shm.GetCount())
	if err != nil {
		c.logger.Error("Failed to read shared-memory output", "region", shm.GetName(), "error", err)
		c.cfg.SharedMemory.Release(shm.GetName())
		return nil
	}

	if c.cfg.Cache != nil {
		key := fmt.Sprintf("%s:%s", inv.FunctionID, binding.GetName())
		c.cfg.Cache.Put(key, shm.GetName(), shm.GetCount())
	}
	c.cfg.SharedMemory.Release(shm.GetName())

	switch shm.GetType() {
	case pb.RpcSharedMemory_String:
		return &pb.TypedData{Data: &pb.TypedData_StringValue{StringValue: string(payload)}}
	case pb.RpcSharedMemory_Json:
		return &pb.TypedData{Data: &pb.TypedData_JsonValue{JsonValue: string(payload)}}
	default:
		return &pb.TypedData{Data: &pb.TypedData_BytesValue{BytesValue: payload}}
	}
}

// ============================================================================
// Environment Reload
// ============================================================================

// SendFunctionEnvironmentReloadRequest publishes a sanitized environment
// snapshot and awaits the worker's acknowledgement. Entries with nil or
// empty values are dropped; the worker-directory and function-app-directory
// variables are always present.
func (c *Channel) SendFunctionEnvironmentReloadRequest(ctx context.Context, env map[string]*string) error {
	c.mu.Lock()
	switch c.state {
	case types.StateInitialized, types.StateReady:
	default:
		state := c.state
		c.mu.Unlock()
		return types.NewError(types.KindInvalidState, "SendFunctionEnvironmentReloadRequest",
			fmt.Sprintf("cannot reload environment in state %s", state))
	}
	if c.reloadInFlight {
		c.mu.Unlock()
		return ErrReloadInFlight
	}
	c.reloadInFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.reloadInFlight = false
		c.mu.Unlock()
	}()

	c.phaseBegin(metrics.EventSpecializationEnvironmentReloadRequestResponse)
	phaseStart := time.Now()

	vars := sanitizeEnvironment(env)
	vars[types.EnvWorkerDirectory] = c.cfg.Description.WorkerDirectory
	vars[types.EnvFunctionAppDirectory] = c.cfg.Description.FunctionAppDir

	c.logger.Info("Sending FunctionEnvironmentReloadRequest", "variables", len(vars))
	c.publish(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_FunctionEnvironmentReloadRequest{
			FunctionEnvironmentReloadRequest: &pb.FunctionEnvironmentReloadRequest{
				EnvironmentVariables: vars,
				FunctionAppDirectory: c.cfg.Description.FunctionAppDir,
			},
		},
	})

	reloadTimer := time.NewTimer(c.cfg.Timeouts.EnvReload)
	defer reloadTimer.Stop()

	select {
	case resp := <-c.reloadCh:
		c.phaseEnd(metrics.EventSpecializationEnvironmentReloadRequestResponse, time.Since(phaseStart))
		if resp.GetResult().GetStatus() != pb.StatusResult_Success {
			return types.NewError(types.KindWorkerProcessFailure, "SendFunctionEnvironmentReloadRequest",
				fmt.Sprintf("environment reload failed: %s", resp.GetResult().GetException().GetMessage()))
		}
		return nil
	case <-reloadTimer.C:
		return types.NewError(types.KindTimeout, "SendFunctionEnvironmentReloadRequest",
			fmt.Sprintf("worker did not acknowledge environment reload within %s", c.cfg.Timeouts.EnvReload))
	case <-ctx.Done():
		return types.WrapError(types.KindCancelled, "SendFunctionEnvironmentReloadRequest", ctx.Err())
	case <-c.disposed:
		return types.NewError(types.KindCancelled, "SendFunctionEnvironmentReloadRequest", "channel disposed")
	case <-c.failed:
		return c.failureErr()
	}
}

// sanitizeEnvironment drops nil and empty values. Applying it twice yields
// the same map.
func sanitizeEnvironment(env map[string]*string) map[string]string {
	out := make(map[string]string, len(env))
	for k, v := range env {
		if v == nil || *v == "" {
			continue
		}
		out[k] = *v
	}
	return out
}

// ============================================================================
// Drain / Terminate
// ============================================================================

// DrainInvocations stops new invocations and returns a handle that resolves
// when the registry becomes empty. In-flight work is not aborted; callers
// bounding drain time race the handle against their own timer.
func (c *Channel) DrainInvocations() <-chan struct{} {
	c.mu.Lock()
	if c.state == types.StateReady || c.state == types.StateLoadingFunctions {
		c.setStateLocked(types.StateDraining)
	}
	c.mu.Unlock()

	return c.reg.drainWaiter()
}

// Terminate shuts the channel down: WorkerTerminate with the configured
// grace period when the worker handles it, a kill otherwise, then fails
// everything still pending with Cancelled and detaches from the bus.
// Idempotent.
func (c *Channel) Terminate() {
	c.disposeOnce.Do(c.terminate)
}

// Dispose is Terminate under its dispatcher-facing name
func (c *Channel) Dispose() {
	c.Terminate()
}

func (c *Channel) terminate() {
	c.mu.Lock()
	alreadyTerminal := c.state.Terminal()
	if !alreadyTerminal {
		c.setStateLocked(types.StateTerminating)
	}
	proc := c.proc
	upReported := c.upReported
	c.upReported = false
	c.mu.Unlock()

	graceful := !alreadyTerminal && proc != nil && c.caps.Enabled(types.CapabilityHandlesWorkerTerminate)
	if graceful {
		grace := c.cfg.Timeouts.Grace
		c.logger.Info(fmt.Sprintf("Sending WorkerTerminate message with grace period %d seconds",
			int(grace.Seconds())))
		c.publish(&pb.StreamingMessage{
			Content: &pb.StreamingMessage_WorkerTerminate{
				WorkerTerminate: &pb.WorkerTerminate{GracePeriodSeconds: int32(grace.Seconds())},
			},
		})

		graceTimer := time.NewTimer(grace)
		select {
		case <-proc.Exited():
			graceTimer.Stop()
		case <-graceTimer.C:
			_ = proc.Kill()
		}
	} else if proc != nil {
		_ = proc.Kill()
	}

	// Every pending promise and in-flight invocation resolves with Cancelled
	close(c.disposed)
	c.reg.failAll(Result{
		Status: ResultCancelled,
		Err:    types.NewError(types.KindCancelled, "Terminate", "channel terminated"),
	})
	c.probe.stop()
	c.inbound.Close()

	c.mu.Lock()
	if !c.state.Terminal() {
		c.setStateLocked(types.StateTerminated)
	}
	c.mu.Unlock()

	if upReported && c.cfg.Collector != nil {
		c.cfg.Collector.WorkerDown()
	}
	c.logger.Info("Channel terminated")
}

// fail moves the channel to Failed, resolves pending promises with the
// failure, and fails every in-flight invocation. First failure wins.
func (c *Channel) fail(err error) {
	c.failOnce.Do(func() {
		c.mu.Lock()
		c.failErr = err
		if !c.state.Terminal() {
			c.setStateLocked(types.StateFailed)
		}
		proc := c.proc
		upReported := c.upReported
		c.upReported = false
		c.mu.Unlock()

		c.logger.Error("Channel failed", "error", err)
		close(c.failed)

		c.reg.failAll(Result{Status: ResultFailure, Err: err})
		c.probe.stop()
		if proc != nil {
			_ = proc.Kill()
		}
		if upReported && c.cfg.Collector != nil {
			c.cfg.Collector.WorkerDown()
		}
	})
}

// failureErr returns the stored channel failure
func (c *Channel) failureErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failErr
}

// ============================================================================
// Message Pump
// ============================================================================

// pump is the sole consumer of the channel's inbound bus subscription.
// Inbound messages never touch channel state on the bus delivery goroutine.
func (c *Channel) pump() {
	defer close(c.pumpDone)

	for {
		select {
		case <-c.disposed:
			return
		case <-c.failed:
			return
		case msg := <-c.inbound.C:
			c.route(msg)
		}
	}
}

// route dispatches one inbound envelope by its content discriminant
func (c *Channel) route(msg *pb.StreamingMessage) {
	switch content := msg.GetContent().(type) {
	case *pb.StreamingMessage_StartStream:
		select {
		case c.startStreamCh <- content.StartStream:
		default:
			c.protocolViolation("unexpected StartStream")
		}

	case *pb.StreamingMessage_WorkerInitResponse:
		select {
		case c.initCh <- content.WorkerInitResponse:
		default:
			c.protocolViolation("unexpected WorkerInitResponse")
		}

	case *pb.StreamingMessage_FunctionLoadResponse:
		resp := content.FunctionLoadResponse
		c.resolveFunctionLoad(resp.GetFunctionId(), resp.GetResult().GetStatus() == pb.StatusResult_Success,
			loadFailureError(resp))

	case *pb.StreamingMessage_FunctionLoadResponseCollection:
		for _, resp := range content.FunctionLoadResponseCollection.GetFunctionLoadResponses() {
			c.resolveFunctionLoad(resp.GetFunctionId(), resp.GetResult().GetStatus() == pb.StatusResult_Success,
				loadFailureError(resp))
		}

	case *pb.StreamingMessage_InvocationResponse:
		c.handleInvocationResponse(content.InvocationResponse)

	case *pb.StreamingMessage_FunctionEnvironmentReloadResponse:
		select {
		case c.reloadCh <- content.FunctionEnvironmentReloadResponse:
		default:
			c.logger.Debug("Dropping environment reload response with no waiter")
		}

	case *pb.StreamingMessage_RpcLog:
		c.forwardLog(content.RpcLog)

	case *pb.StreamingMessage_WorkerStatusResponse:
		c.probe.observe(msg.GetRequestId())

	case *pb.StreamingMessage_WorkerMetadataResponse:
		c.handleWorkerMetadata(content.WorkerMetadataResponse)

	default:
		c.logger.Warn("Unhandled inbound message", "requestID", msg.GetRequestId())
	}
}

// loadFailureError extracts the worker's reason from a failed load response
func loadFailureError(resp *pb.FunctionLoadResponse) error {
	if resp.GetResult().GetStatus() == pb.StatusResult_Success {
		return nil
	}
	msg := resp.GetResult().GetException().GetMessage()
	if msg == "" {
		msg = "worker reported load failure"
	}
	return types.NewError(types.KindLoadFailure, "FunctionLoad", msg)
}

// protocolViolation fails the channel on an inbound message that is illegal
// in the current state
func (c *Channel) protocolViolation(detail string) {
	c.fail(types.NewError(types.KindProtocolViolation, "pump", detail))
}

// handleWorkerMetadata records worker-initiated function indexing. The
// useDefaultMetadataIndexing flag is advisory and only changes phrasing.
func (c *Channel) handleWorkerMetadata(resp *pb.WorkerMetadataResponse) {
	if resp.GetUseDefaultMetadataIndexing() {
		c.logger.Info("Worker deferred to host metadata indexing")
		return
	}
	c.logger.Info("Received worker function metadata",
		"functions", len(resp.GetFunctionMetadataResults()))
}

// ============================================================================
// Log Forwarding
// ============================================================================

// forwardLog routes one worker log line to the user or system sink. Trace
// promotes to Information; system logs are mirrored through the console
// source.
func (c *Channel) forwardLog(rl *pb.RpcLog) {
	level := rl.GetLevel()
	if level == pb.RpcLog_Trace {
		level = pb.RpcLog_Information
	}
	slogLevel := rpcLogLevel(level)

	attrs := []any{
		"workerID", c.cfg.WorkerID,
		"category", rl.GetCategory(),
	}
	if rl.GetInvocationId() != "" {
		attrs = append(attrs, "invocationID", rl.GetInvocationId())
	}

	if rl.GetLogCategory() == pb.RpcLog_System {
		c.cfg.SystemLog.Log(context.Background(), slogLevel, rl.GetMessage(), attrs...)
		c.cfg.ConsoleLog.Log(context.Background(), slogLevel, rl.GetMessage(), attrs...)
		return
	}
	c.cfg.UserLog.Log(context.Background(), slogLevel, rl.GetMessage(), attrs...)
}

// rpcLogLevel maps wire levels onto slog levels
func rpcLogLevel(level pb.RpcLog_Level) slog.Level {
	switch level {
	case pb.RpcLog_Trace, pb.RpcLog_Debug:
		return slog.LevelDebug
	case pb.RpcLog_Warning:
		return slog.LevelWarn
	case pb.RpcLog_Error, pb.RpcLog_Critical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// forwardConsole feeds captured subprocess console lines into the system
// console source
func (c *Channel) forwardConsole(id types.WorkerID, line string, stderr bool) {
	if stderr {
		c.cfg.ConsoleLog.Warn(line, "workerID", id, "source", "stderr")
		return
	}
	c.cfg.ConsoleLog.Info(line, "workerID", id, "source", "stdout")
}

// ============================================================================
// Helpers
// ============================================================================

// publish sends one outbound envelope tagged with this channel's worker id
func (c *Channel) publish(msg *pb.StreamingMessage) {
	c.cfg.Bus.Publish(c.cfg.WorkerID, eventbus.Outbound, msg)
}

// publishStatusProbe sends one latency probe round trip
func (c *Channel) publishStatusProbe(requestID string) {
	c.publish(&pb.StreamingMessage{
		RequestId: requestID,
		Content: &pb.StreamingMessage_WorkerStatusRequest{
			WorkerStatusRequest: &pb.WorkerStatusRequest{},
		},
	})
}

// recordProbeLatency feeds the metrics collector
func (c *Channel) recordProbeLatency(lat time.Duration) {
	if c.cfg.Collector != nil {
		c.cfg.Collector.RecordProbeLatency(lat.Seconds())
	}
}

// phaseBegin emits a phase-begin metric event
func (c *Channel) phaseBegin(phase string) {
	if c.cfg.Collector != nil {
		c.cfg.Collector.PhaseBegin(phase)
	}
}

// phaseEnd emits a phase-end metric event with the phase duration
func (c *Channel) phaseEnd(phase string, elapsed time.Duration) {
	if c.cfg.Collector != nil {
		c.cfg.Collector.PhaseEnd(phase, elapsed.Seconds())
	}
}

// setStateLocked records a state transition. Caller holds c.mu.
func (c *Channel) setStateLocked(next types.ChannelState) {
	c.logger.Debug("Channel state transition", "from", c.state, "to", next)
	c.state = next
}
