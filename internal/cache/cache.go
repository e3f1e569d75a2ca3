// Package cache provides the short-TTL key/value cache used to memoize
// upstream payloads (standings, hall-of-fame positions). Two backends:
// an in-memory TTL map and Redis.
package cache

import (
	"context"
	"crypto/md5"
	"fmt"
	"sync"
	"time"
)

// TTL constants for the cached payloads.
const (
	TTLStandings      = 1 * time.Hour
	TTLPlayerPosition = 1 * time.Hour
)

// Cache is a shared key/value cache with per-entry TTLs. Concurrent
// writers to the same key race harmlessly: values are idempotent for a
// given key within the TTL window.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Stats(ctx context.Context) map[string]interface{}
}

type entry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is a thread-safe in-memory TTL cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	enabled bool
}

// NewMemory creates an in-memory cache. Pass enabled=false to create a
// no-op cache.
func NewMemory(enabled bool) *Memory {
	c := &Memory{
		entries: make(map[string]entry),
		enabled: enabled,
	}
	if enabled {
		go c.evictLoop()
	}
	return c
}

// Get retrieves a cached value.
func (c *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	if !c.enabled {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, exists := c.entries[key]
	if !exists || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.data, true
}

// Set stores a value with a TTL.
func (c *Memory) Set(_ context.Context, key string, data []byte, ttl time.Duration) {
	if !c.enabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	}
}

// Stats returns cache statistics.
func (c *Memory) Stats(_ context.Context) map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active := 0
	now := time.Now()
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			active++
		}
	}
	return map[string]interface{}{
		"backend":      "memory",
		"enabled":      c.enabled,
		"total_keys":   len(c.entries),
		"active_keys":  active,
		"expired_keys": len(c.entries) - active,
	}
}

// evictLoop periodically removes expired entries.
func (c *Memory) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		c.evict()
	}
}

func (c *Memory) evict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// ComputeETag generates a weak ETag from response data using MD5.
func ComputeETag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

// CheckETagMatch checks if an If-None-Match header matches the current
// ETag.
func CheckETagMatch(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	if ifNoneMatch == "*" {
		return true
	}
	// Simple comparison, handles the common single-etag case
	return ifNoneMatch == etag
}
