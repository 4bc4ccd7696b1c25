package recommend

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemoryCache is the canned Cache used in demo deployments, tests, and as a
// degraded fallback when redis is unreachable at startup. Expiry is checked
// on read; nothing is evicted proactively.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// NewMemoryCacheWithClock creates an in-memory cache on a custom time source
func NewMemoryCacheWithClock(now func() time.Time) *MemoryCache {
	c := NewMemoryCache()
	c.now = now
	return c
}

// GetJSON reads a key into v. Expired or missing keys are a miss.
func (c *MemoryCache) GetJSON(_ context.Context, key string, v interface{}) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(entry.expires) {
		return false, nil
	}

	if err := json.Unmarshal(entry.data, v); err != nil {
		return false, err
	}

	return true, nil
}

// SetJSON stores v under key with the given TTL
func (c *MemoryCache) SetJSON(_ context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{data: data, expires: c.now().Add(ttl)}
	c.mu.Unlock()

	return nil
}
