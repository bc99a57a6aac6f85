package sharedmem

// ============================================================================
// Shared Memory Test File
// Purpose: Verify region lifecycle, reference counting, cache pinning
// ============================================================================

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir())
	require.NoError(t, err)
	return m
}

// TestPutRead tests round-tripping a payload through a region
func TestPutRead(t *testing.T) {
	m := newTestManager(t)

	payload := bytes.Repeat([]byte("abc"), 1000)
	name, err := m.Put(payload)
	require.NoError(t, err)
	require.NotEmpty(t, name)

	got, err := m.Read(name, 0, int64(len(payload)))
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Partial read
	got, err = m.Read(name, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

// TestReadOutOfRange tests range validation
func TestReadOutOfRange(t *testing.T) {
	m := newTestManager(t)

	name, err := m.Put([]byte("hello"))
	require.NoError(t, err)

	_, err = m.Read(name, 0, 100)
	assert.ErrorIs(t, err, ErrBadRange)

	_, err = m.Read(name, -1, 2)
	assert.ErrorIs(t, err, ErrBadRange)
}

// TestReadUnknownRegion tests the missing-region error
func TestReadUnknownRegion(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Read("no-such-region", 0, 1)
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

// TestReleaseRemovesFile tests that the last release removes the backing file
func TestReleaseRemovesFile(t *testing.T) {
	m := newTestManager(t)

	name, err := m.Put([]byte("payload"))
	require.NoError(t, err)

	path := filepath.Join(m.BaseDir(), name)
	_, err = os.Stat(path)
	require.NoError(t, err)

	m.Release(name)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 0, m.RegionCount())
}

// TestReferenceCounting tests that pinned regions survive one release
func TestReferenceCounting(t *testing.T) {
	m := newTestManager(t)

	name, err := m.Put([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, m.Acquire(name))

	m.Release(name)
	// Still pinned
	_, err = m.Read(name, 0, 7)
	require.NoError(t, err)

	m.Release(name)
	_, err = m.Read(name, 0, 7)
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

// TestReleaseUnknownIsNoop tests idempotent teardown
func TestReleaseUnknownIsNoop(t *testing.T) {
	m := newTestManager(t)
	assert.NotPanics(t, func() {
		m.Release("never-existed")
		m.Release("never-existed")
	})
}

// TestOpenWorkerRegion tests registering a region the worker wrote
func TestOpenWorkerRegion(t *testing.T) {
	m := newTestManager(t)

	// Simulate a worker writing its own output region
	name := "worker-output-1"
	require.NoError(t, os.WriteFile(filepath.Join(m.BaseDir(), name), []byte("result"), 0o600))

	size, err := m.Open(name)
	require.NoError(t, err)
	assert.Equal(t, int64(6), size)

	got, err := m.Read(name, 0, size)
	require.NoError(t, err)
	assert.Equal(t, []byte("result"), got)

	m.Release(name)
	assert.Equal(t, 0, m.RegionCount())
}

// ============================================================================
// Function Data Cache Tests
// ============================================================================

// TestCachePinDefersRelease tests that a cached region outlives its producer
func TestCachePinDefersRelease(t *testing.T) {
	m := newTestManager(t)
	cache := NewCache(m, 1<<20)

	name, err := m.Put([]byte("output"))
	require.NoError(t, err)

	require.True(t, cache.Put("fn1:out", name, 6))

	// Producer releases; cache still pins the region
	m.Release(name)
	region, ok := cache.Get("fn1:out")
	require.True(t, ok)
	got, err := m.Read(region, 0, 6)
	require.NoError(t, err)
	assert.Equal(t, []byte("output"), got)

	// Eviction drops the last reference
	cache.Remove("fn1:out")
	_, err = m.Read(name, 0, 6)
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

// TestCacheEviction tests LRU eviction under capacity pressure
func TestCacheEviction(t *testing.T) {
	m := newTestManager(t)
	cache := NewCache(m, 10)

	n1, _ := m.Put([]byte("aaaa"))
	n2, _ := m.Put([]byte("bbbb"))
	n3, _ := m.Put([]byte("cccc"))

	require.True(t, cache.Put("k1", n1, 4))
	require.True(t, cache.Put("k2", n2, 4))

	// Touch k1 so k2 is the cold entry
	_, ok := cache.Get("k1")
	require.True(t, ok)

	require.True(t, cache.Put("k3", n3, 4))

	_, ok = cache.Get("k2")
	assert.False(t, ok, "cold entry should have been evicted")
	_, ok = cache.Get("k1")
	assert.True(t, ok)
	_, ok = cache.Get("k3")
	assert.True(t, ok)
	assert.LessOrEqual(t, cache.UsedBytes(), int64(10))
}

// TestCacheOversizeRejected tests that an entry larger than the cache is refused
func TestCacheOversizeRejected(t *testing.T) {
	m := newTestManager(t)
	cache := NewCache(m, 4)

	name, _ := m.Put([]byte("too-large"))
	assert.False(t, cache.Put("k", name, 9))
}

// TestCacheClear tests that Clear releases every pin
func TestCacheClear(t *testing.T) {
	m := newTestManager(t)
	cache := NewCache(m, 1<<20)

	n1, _ := m.Put([]byte("a"))
	n2, _ := m.Put([]byte("b"))
	require.True(t, cache.Put("k1", n1, 1))
	require.True(t, cache.Put("k2", n2, 1))

	m.Release(n1)
	m.Release(n2)
	cache.Clear()

	assert.Equal(t, int64(0), cache.UsedBytes())
	assert.Equal(t, 0, m.RegionCount())
}
