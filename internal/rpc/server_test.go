package rpc

// ============================================================================
// RPC Stream Bridge Test File
// Purpose: Verify the stream <-> bus bridge over an in-process connection
// ============================================================================

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/davidmrdavid/azure-functions-host/api/proto/v1"
	"github.com/davidmrdavid/azure-functions-host/internal/eventbus"
)

func dialBridge(t *testing.T, bus *eventbus.Bus) pb.FunctionRpcClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterFunctionRpcServer(srv, NewServer(bus))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewFunctionRpcClient(conn)
}

// TestStreamHandshakeReachesBus tests that StartStream is published inbound
func TestStreamHandshakeReachesBus(t *testing.T) {
	bus := eventbus.New(16)
	inbound := bus.Subscribe("testWorkerId", eventbus.Inbound)
	defer inbound.Close()

	client := dialBridge(t, bus)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.EventStream(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_StartStream{
			StartStream: &pb.StartStream{WorkerId: "testWorkerId"},
		},
	}))

	select {
	case msg := <-inbound.C:
		require.NotNil(t, msg.GetStartStream())
		assert.Equal(t, "testWorkerId", msg.GetStartStream().GetWorkerId())
	case <-time.After(2 * time.Second):
		t.Fatal("handshake never reached the bus")
	}
}

// TestOutboundReachesWorker tests host -> worker delivery through the bridge
func TestOutboundReachesWorker(t *testing.T) {
	bus := eventbus.New(16)
	client := dialBridge(t, bus)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.EventStream(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_StartStream{
			StartStream: &pb.StartStream{WorkerId: "w1"},
		},
	}))

	// The bridge subscribes asynchronously; wait for it to attach
	require.Eventually(t, func() bool {
		return bus.SubscriberCount("w1", eventbus.Outbound) == 1
	}, 2*time.Second, 10*time.Millisecond)

	bus.Publish("w1", eventbus.Outbound, &pb.StreamingMessage{
		Content: &pb.StreamingMessage_WorkerInitRequest{
			WorkerInitRequest: &pb.WorkerInitRequest{HostVersion: "4.0"},
		},
	})

	msg, err := stream.Recv()
	require.NoError(t, err)
	require.NotNil(t, msg.GetWorkerInitRequest())
	assert.Equal(t, "4.0", msg.GetWorkerInitRequest().GetHostVersion())
}

// TestInboundRoundTrip tests a worker reply travelling back to the bus
func TestInboundRoundTrip(t *testing.T) {
	bus := eventbus.New(16)
	inbound := bus.Subscribe("w1", eventbus.Inbound)
	defer inbound.Close()

	client := dialBridge(t, bus)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.EventStream(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_StartStream{
			StartStream: &pb.StartStream{WorkerId: "w1"},
		},
	}))
	<-inbound.C // handshake

	require.NoError(t, stream.Send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_WorkerInitResponse{
			WorkerInitResponse: &pb.WorkerInitResponse{
				Result: &pb.StatusResult{Status: pb.StatusResult_Success},
			},
		},
	}))

	select {
	case msg := <-inbound.C:
		require.NotNil(t, msg.GetWorkerInitResponse())
		assert.Equal(t, pb.StatusResult_Success, msg.GetWorkerInitResponse().GetResult().GetStatus())
	case <-time.After(2 * time.Second):
		t.Fatal("worker reply never reached the bus")
	}
}

// TestStreamWithoutHandshakeRejected tests the InvalidArgument path
func TestStreamWithoutHandshakeRejected(t *testing.T) {
	bus := eventbus.New(16)
	client := dialBridge(t, bus)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.EventStream(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_RpcLog{RpcLog: &pb.RpcLog{Message: "hello"}},
	}))

	_, err = stream.Recv()
	assert.Error(t, err)
}

// TestStreamCloseDetachesSubscription tests bridge cleanup on disconnect
func TestStreamCloseDetachesSubscription(t *testing.T) {
	bus := eventbus.New(16)
	client := dialBridge(t, bus)

	ctx, cancel := context.WithCancel(context.Background())
	stream, err := client.EventStream(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&pb.StreamingMessage{
		Content: &pb.StreamingMessage_StartStream{
			StartStream: &pb.StartStream{WorkerId: "w1"},
		},
	}))

	require.Eventually(t, func() bool {
		return bus.SubscriberCount("w1", eventbus.Outbound) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	require.Eventually(t, func() bool {
		return bus.SubscriberCount("w1", eventbus.Outbound) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
