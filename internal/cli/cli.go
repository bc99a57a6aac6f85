// ============================================================================
// Functions Host CLI - Command Line Interface
// ============================================================================
//
// Package: internal/cli
// File: cli.go
// Purpose: Cobra command tree for the functions host
//
// Command Structure:
//   functions-host                 # Root command
//   ├── --config, -c               # Config file (persistent, used by run and status)
//   ├── run                        # Start the host
//   ├── status                     # Print the effective configuration
//   ├── --version                  # Display version information
//   └── --help                     # Display help information
//
// run Command:
//   1. Load YAML config
//   2. Build the event bus, shared-memory manager, metrics collector
//   3. Start the gRPC stream bridge and the metrics endpoint
//   4. Create one channel per configured worker and start it
//   5. Wait for SIGINT/SIGTERM, then drain and terminate every channel
//
// ============================================================================

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/davidmrdavid/azure-functions-host/internal/channel"
	"github.com/davidmrdavid/azure-functions-host/internal/config"
	"github.com/davidmrdavid/azure-functions-host/internal/eventbus"
	"github.com/davidmrdavid/azure-functions-host/internal/metrics"
	"github.com/davidmrdavid/azure-functions-host/internal/rpc"
	"github.com/davidmrdavid/azure-functions-host/internal/sharedmem"
)

var log = slog.Default()

var configFile string

// BuildCLI assembles the root command tree
func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "functions-host",
		Short: "Functions host: out-of-process language worker runtime",
		Long: `The functions host launches language workers, negotiates capabilities
over a bidirectional RPC stream, loads user functions into them, and
dispatches invocations with strict lifecycle and cancellation guarantees.`,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "configs/host.yaml", "config file path")

	rootCmd.AddCommand(buildRunCommand())
	rootCmd.AddCommand(buildStatusCommand())

	return rootCmd
}

func buildRunCommand() *cobra.Command {
	var drainTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the functions host",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHost(drainTimeout)
		},
	}

	cmd.Flags().DurationVar(&drainTimeout, "drain-timeout", 30*time.Second, "bound on in-flight work during shutdown")
	return cmd
}

func runHost(drainTimeout time.Duration) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	bus := eventbus.New(cfg.Channel.EventBusBuffer)

	shm, err := sharedmem.NewManager(cfg.SharedMemory.BaseDir)
	if err != nil {
		return fmt.Errorf("failed to create shared memory manager: %w", err)
	}
	cache := sharedmem.NewCache(shm, cfg.SharedMemory.CacheCapacity)
	defer cache.Clear()

	collector := metrics.NewCollector(nil)
	if cfg.Metrics.Enabled {
		go func() {
			log.Info("Metrics endpoint listening", "port", cfg.Metrics.Port)
			if err := metrics.StartServer(cfg.Metrics.Port); err != nil {
				log.Error("Metrics server stopped", "error", err)
			}
		}()
	}

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPC.Address, err)
	}
	grpcServer, err := rpc.NewServer(bus).Serve(lis)
	if err != nil {
		return fmt.Errorf("failed to start rpc server: %w", err)
	}
	defer grpcServer.GracefulStop()
	log.Info("Worker stream endpoint listening", "address", cfg.GRPC.Address)

	channels := make([]*channel.Channel, 0, len(cfg.Workers))
	for _, desc := range cfg.Workers {
		ch := channel.New(channel.Config{
			Description:           desc,
			Timeouts:              cfg.PhaseTimeouts(),
			HostVersion:           cfg.Host.Version,
			ProtocolVersion:       cfg.Host.ProtocolVersion,
			HostCapabilities:      cfg.Host.Capabilities,
			HostInstanceID:        cfg.Host.InstanceID,
			SharedMemoryThreshold: cfg.SharedMemory.Threshold,
			InvocationBufferCap:   cfg.Channel.InvocationBufferCap,
			ProbeInterval:         cfg.ProbeInterval(),
			ProbeHistory:          cfg.Channel.ProbeHistory,
			HostURI:               cfg.GRPC.Address,
			Bus:                   bus,
			SharedMemory:          shm,
			Cache:                 cache,
			Collector:             collector,
		})
		channels = append(channels, ch)

		log.Info("Starting worker", "language", desc.Language, "workerID", ch.WorkerID())
		if err := ch.StartWorkerProcess(context.Background()); err != nil {
			log.Error("Worker failed to start", "language", desc.Language, "error", err)
		}
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down, draining channels", "timeout", drainTimeout)
	deadline := time.Now().Add(drainTimeout)
	for _, ch := range channels {
		select {
		case <-ch.DrainInvocations():
		case <-time.After(time.Until(deadline)):
			log.Warn("Drain timeout expired, terminating with work in flight", "workerID", ch.WorkerID())
		}
		ch.Terminate()
	}
	return nil
}

func buildStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the effective host configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fmt.Printf("Config file:     %s\n", configFile)
			fmt.Printf("Host version:    %s (protocol %s)\n", cfg.Host.Version, cfg.Host.ProtocolVersion)
			fmt.Printf("gRPC endpoint:   %s\n", cfg.GRPC.Address)
			fmt.Printf("Metrics:         enabled=%v port=%d\n", cfg.Metrics.Enabled, cfg.Metrics.Port)
			fmt.Printf("Workers:         %d configured\n", len(cfg.Workers))
			for _, desc := range cfg.Workers {
				fmt.Printf("  - %-10s %s\n", desc.Language, desc.Executable)
			}
			return nil
		},
	}
}
