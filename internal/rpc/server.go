// ============================================================================
// Functions Host RPC Surface - Worker Stream Bridge
// ============================================================================
//
// Package: internal/rpc
// File: server.go
// Purpose: Terminate each worker's bidirectional gRPC stream and bridge it
//          onto the event bus
//
// Flow:
//   A worker dials the host and opens EventStream. Its first message must be
//   StartStream carrying the worker id. From then on the bridge forwards
//   every inbound envelope onto the bus tagged with that id, and drains the
//   bus's outbound slice for the id back down the stream. One stream per
//   worker; the channel owning the worker never touches the stream directly.
//
// ============================================================================

package rpc

import (
	"io"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/davidmrdavid/azure-functions-host/api/proto/v1"
	"github.com/davidmrdavid/azure-functions-host/internal/eventbus"
	"github.com/davidmrdavid/azure-functions-host/pkg/types"
)

var log = slog.Default()

// Server implements the FunctionRpc gRPC service
type Server struct {
	pb.UnimplementedFunctionRpcServer

	bus *eventbus.Bus
}

// NewServer creates the stream bridge over the given bus
func NewServer(bus *eventbus.Bus) *Server {
	return &Server{bus: bus}
}

// EventStream serves one worker's stream for its whole lifetime
func (s *Server) EventStream(stream pb.FunctionRpc_EventStreamServer) error {
	first, err := stream.Recv()
	if err != nil {
		return err
	}
	start := first.GetStartStream()
	if start == nil || start.GetWorkerId() == "" {
		return status.Error(codes.InvalidArgument, "first stream message must be StartStream with a worker id")
	}
	workerID := types.WorkerID(start.GetWorkerId())
	log.Info("Worker stream connected", "workerID", workerID)

	sub := s.bus.Subscribe(workerID, eventbus.Outbound)
	defer sub.Close()

	// Hand the handshake to the owning channel
	s.bus.Publish(workerID, eventbus.Inbound, first)

	errCh := make(chan error, 2)

	// Writer: bus outbound -> stream
	go func() {
		for {
			select {
			case <-stream.Context().Done():
				errCh <- stream.Context().Err()
				return
			case msg := <-sub.C:
				if err := stream.Send(msg); err != nil {
					errCh <- err
					return
				}
			}
		}
	}()

	// Reader: stream -> bus inbound
	go func() {
		for {
			msg, err := stream.Recv()
			if err != nil {
				errCh <- err
				return
			}
			s.bus.Publish(workerID, eventbus.Inbound, msg)
		}
	}()

	err = <-errCh
	log.Info("Worker stream closed", "workerID", workerID, "error", err)
	if err == io.EOF {
		return nil
	}
	return err
}

// Serve registers the bridge on a fresh gRPC server and serves lis
func (s *Server) Serve(lis net.Listener) (*grpc.Server, error) {
	grpcServer := grpc.NewServer()
	pb.RegisterFunctionRpcServer(grpcServer, s)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("gRPC server stopped", "error", err)
		}
	}()
	return grpcServer, nil
}
