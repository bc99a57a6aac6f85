// Package v1 holds the host/worker wire schema. The Go types are generated
// from functionrpc.proto; regenerate after editing the schema.
package v1

//go:generate protoc --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. functionrpc.proto
