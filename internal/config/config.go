// ============================================================================
// Functions Host Configuration
// ============================================================================
//
// Package: internal/config
// File: config.go
// Purpose: YAML host configuration, mapped through yaml tags with defaults
//          filled for anything left zero
//
// ============================================================================

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/davidmrdavid/azure-functions-host/pkg/types"
)

// Config represents the complete host configuration structure
type Config struct {
	Host struct {
		Version         string            `yaml:"version"`
		ProtocolVersion string            `yaml:"protocol_version"`
		InstanceID      string            `yaml:"instance_id"`
		Capabilities    map[string]string `yaml:"capabilities"`
	} `yaml:"host"`

	GRPC struct {
		Address string `yaml:"address"`
	} `yaml:"grpc"`

	Metrics struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"metrics"`

	Timeouts struct {
		StartupSeconds      int `yaml:"startup_seconds"`
		InitSeconds         int `yaml:"init_seconds"`
		EnvReloadSeconds    int `yaml:"env_reload_seconds"`
		FunctionLoadSeconds int `yaml:"function_load_seconds"` // 0 = unbounded
		GraceSeconds        int `yaml:"grace_seconds"`
	} `yaml:"timeouts"`

	SharedMemory struct {
		BaseDir       string `yaml:"base_dir"`
		Threshold     int64  `yaml:"threshold"`
		CacheCapacity int64  `yaml:"cache_capacity"`
	} `yaml:"shared_memory"`

	Channel struct {
		EventBusBuffer      int `yaml:"event_bus_buffer"`
		InvocationBufferCap int `yaml:"invocation_buffer_cap"`
		ProbeIntervalMs     int `yaml:"probe_interval_ms"`
		ProbeHistory        int `yaml:"probe_history"`
	} `yaml:"channel"`

	Workers []types.WorkerDescription `yaml:"workers"`
}

// Default returns a configuration with every default filled
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates a YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	for i, desc := range cfg.Workers {
		if desc.Language == "" {
			return nil, fmt.Errorf("worker %d: language is required", i)
		}
		if desc.Executable == "" {
			return nil, fmt.Errorf("worker %q: executable is required", desc.Language)
		}
	}
	return cfg, nil
}

// PhaseTimeouts converts the configured seconds into phase deadlines
func (c *Config) PhaseTimeouts() types.Timeouts {
	return types.Timeouts{
		Startup:      time.Duration(c.Timeouts.StartupSeconds) * time.Second,
		Init:         time.Duration(c.Timeouts.InitSeconds) * time.Second,
		EnvReload:    time.Duration(c.Timeouts.EnvReloadSeconds) * time.Second,
		FunctionLoad: time.Duration(c.Timeouts.FunctionLoadSeconds) * time.Second,
		Grace:        time.Duration(c.Timeouts.GraceSeconds) * time.Second,
	}
}

// ProbeInterval returns the latency probe cadence
func (c *Config) ProbeInterval() time.Duration {
	return time.Duration(c.Channel.ProbeIntervalMs) * time.Millisecond
}

func (c *Config) applyDefaults() {
	if c.Host.Version == "" {
		c.Host.Version = "4.0.0"
	}
	if c.Host.ProtocolVersion == "" {
		c.Host.ProtocolVersion = "v1"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = "127.0.0.1:50051"
	}
	if c.Metrics.Port == 0 {
		c.Metrics.Port = 9090
	}
	if c.Timeouts.StartupSeconds == 0 {
		c.Timeouts.StartupSeconds = 60
	}
	if c.Timeouts.InitSeconds == 0 {
		c.Timeouts.InitSeconds = 10
	}
	if c.Timeouts.EnvReloadSeconds == 0 {
		c.Timeouts.EnvReloadSeconds = 30
	}
	if c.Timeouts.GraceSeconds == 0 {
		c.Timeouts.GraceSeconds = 5
	}
	if c.SharedMemory.Threshold == 0 {
		c.SharedMemory.Threshold = 1 << 20
	}
	if c.SharedMemory.CacheCapacity == 0 {
		c.SharedMemory.CacheCapacity = 64 << 20
	}
	if c.Channel.EventBusBuffer == 0 {
		c.Channel.EventBusBuffer = 256
	}
	if c.Channel.InvocationBufferCap == 0 {
		c.Channel.InvocationBufferCap = 512
	}
	if c.Channel.ProbeIntervalMs == 0 {
		c.Channel.ProbeIntervalMs = 1000
	}
	if c.Channel.ProbeHistory == 0 {
		c.Channel.ProbeHistory = 10
	}
}
