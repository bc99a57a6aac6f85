// ============================================================================
// Functions Host Shared Memory Manager
// ============================================================================
//
// Package: internal/sharedmem
// File: manager.go
// Purpose: Named scratch regions for moving large invocation payloads between
//          the host and worker processes out of band
//
// Region model:
//   A region is a file on tmpfs (/dev/shm when present, the OS temp dir
//   otherwise) named by a generated handle. The host is the single writer for
//   input regions and a reader for output regions the worker created. Regions
//   are reference counted: Acquire/Release bracket every use, and the backing
//   file is removed when the count reaches zero. The function data cache pins
//   output regions by holding an extra reference until eviction.
//
// Concurrency:
//   The manager is shared across channels; the registry is RWMutex-guarded
//   and each region is written exactly once before it becomes visible.
//
// ============================================================================

package sharedmem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Sentinel errors
var (
	ErrRegionNotFound = errors.New("shared memory region not found")
	ErrBadRange       = errors.New("shared memory read out of range")
)

// regionPrefix namespaces host-created region files
const regionPrefix = "fnhost-"

// region is one tracked shared-memory allocation
type region struct {
	name string
	path string
	size int64
	refs int
}

// Manager owns the shared-memory region registry
type Manager struct {
	mu      sync.RWMutex
	baseDir string
	regions map[string]*region
}

// NewManager creates a manager rooted at baseDir. An empty baseDir selects
// /dev/shm when available and the OS temp dir otherwise.
func NewManager(baseDir string) (*Manager, error) {
	if baseDir == "" {
		baseDir = "/dev/shm"
		if info, err := os.Stat(baseDir); err != nil || !info.IsDir() {
			baseDir = os.TempDir()
		}
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create shared memory dir: %w", err)
	}
	return &Manager{
		baseDir: baseDir,
		regions: make(map[string]*region),
	}, nil
}

// BaseDir returns the directory backing region files
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// Put writes data into a fresh region and returns its name. The new region
// starts with one reference held by the caller.
func (m *Manager) Put(data []byte) (string, error) {
	name := regionPrefix + uuid.New().String()
	path := filepath.Join(m.baseDir, name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write shared memory region: %w", err)
	}

	m.mu.Lock()
	m.regions[name] = &region{name: name, path: path, size: int64(len(data)), refs: 1}
	m.mu.Unlock()

	return name, nil
}

// Open registers a worker-created region so the host can read and release it.
// The region starts with one reference held by the caller.
func (m *Manager) Open(name string) (int64, error) {
	path := filepath.Join(m.baseDir, filepath.Base(name))
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrRegionNotFound, name)
	}

	m.mu.Lock()
	if r, ok := m.regions[name]; ok {
		r.refs++
	} else {
		m.regions[name] = &region{name: name, path: path, size: info.Size(), refs: 1}
	}
	m.mu.Unlock()

	return info.Size(), nil
}

// Read copies count bytes starting at offset out of a region
func (m *Manager) Read(name string, offset, count int64) ([]byte, error) {
	m.mu.RLock()
	r, ok := m.regions[name]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRegionNotFound, name)
	}
	if offset < 0 || count < 0 || offset+count > r.size {
		return nil, fmt.Errorf("%w: %s [%d,%d) of %d", ErrBadRange, name, offset, offset+count, r.size)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shared memory region: %w", err)
	}
	defer f.Close()

	buf := make([]byte, count)
	if _, err := f.ReadAt(buf, offset); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read shared memory region: %w", err)
	}
	return buf, nil
}

// Acquire takes an additional reference on a region (cache pinning)
func (m *Manager) Acquire(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.regions[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRegionNotFound, name)
	}
	r.refs++
	return nil
}

// Release drops one reference; the backing file is removed at zero.
// Releasing an unknown region is a no-op so teardown paths stay idempotent.
func (m *Manager) Release(name string) {
	m.mu.Lock()
	r, ok := m.regions[name]
	if ok {
		r.refs--
		if r.refs <= 0 {
			delete(m.regions, name)
		}
	}
	m.mu.Unlock()

	if ok && r.refs <= 0 {
		_ = os.Remove(r.path)
	}
}

// RegionCount returns the number of live regions. For tests and diagnostics.
func (m *Manager) RegionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.regions)
}
