// ============================================================================
// Functions Host - Main Entry Point
// ============================================================================
//
// File: cmd/host/main.go
// Purpose: Application entry point and CLI initialization
//
// Version Injection:
//   Variables injected at build time via -ldflags:
//   go build -ldflags "-X main.version=4.28.0 -X main.commit=abc123"
//
// Usage:
//   ./functions-host --help               # Show help
//   ./functions-host --version            # Show version
//   ./functions-host run -c host.yaml     # Start the host
//   ./functions-host status               # Print effective configuration
//
// ============================================================================

package main

import (
	"fmt"
	"os"

	"github.com/davidmrdavid/azure-functions-host/internal/cli"
)

// Build-time version injection via ldflags
var (
	version = "4.0.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	rootCmd := cli.BuildCLI()
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
