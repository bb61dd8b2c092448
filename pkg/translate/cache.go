package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache stores translated text keyed by a digest of the source text.
// Implementations must return ErrCacheMiss (possibly wrapped) when a key is
// absent.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Cached decorates a Provider with memoization. Concurrent lookups of the
// same text are collapsed into a single upstream call.
type Cached struct {
	provider Provider
	cache    Cache
	group    singleflight.Group
}

// NewCached wraps the provider with the given cache backend.
func NewCached(provider Provider, cache Cache) *Cached {
	return &Cached{provider: provider, cache: cache}
}

// Translate implements Provider. Cache read and write failures are treated
// as misses so a broken cache degrades to direct provider calls rather
// than failing the translation.
func (c *Cached) Translate(ctx context.Context, text string) (string, error) {
	key := cacheKey(text)

	if cached, err := c.cache.Get(ctx, key); err == nil {
		return cached, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		translated, err := c.provider.Translate(ctx, text)
		if err != nil {
			return "", err
		}
		_ = c.cache.Set(ctx, key, translated)
		return translated, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "localesync:tr:" + hex.EncodeToString(sum[:])
}

// MemoryCache is a process-lifetime in-memory Cache, safe for concurrent
// use. It has no eviction; catalogs are small relative to memory.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

// Get retrieves a cached translation, or ErrCacheMiss.
func (m *MemoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return value, nil
}

// Set stores a translation.
func (m *MemoryCache) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
	return nil
}
