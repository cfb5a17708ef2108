package cache

import (
	"context"
	"sync"
	"time"

	"github.com/mallofcayman/catalog-api/internal/application/ports"
)

var _ ports.SelectionCache = (*MemorySelectionCache)(nil)

type memoryEntry struct {
	ids       []string
	expiresAt time.Time // cero = sin expiración
}

// MemorySelectionCache caché en proceso. Solo conserva la versión de snapshot más reciente:
// escribir con una versión distinta descarta todas las entradas anteriores.
type MemorySelectionCache struct {
	mu      sync.RWMutex
	version string
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemorySelectionCache construye la caché vacía.
func NewMemorySelectionCache() *MemorySelectionCache {
	return &MemorySelectionCache{entries: map[string]memoryEntry{}, now: time.Now}
}

// Get implementa ports.SelectionCache.
func (c *MemorySelectionCache) Get(_ context.Context, version, name string) ([]string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if version != c.version {
		return nil, false, nil
	}
	e, ok := c.entries[name]
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	out := make([]string, len(e.ids))
	copy(out, e.ids)
	return out, true, nil
}

// Set implementa ports.SelectionCache.
func (c *MemorySelectionCache) Set(_ context.Context, version, name string, ids []string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version != c.version {
		c.version = version
		c.entries = map[string]memoryEntry{}
	}
	e := memoryEntry{ids: append([]string(nil), ids...)}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.entries[name] = e
	return nil
}

// Invalidate implementa ports.SelectionCache.
func (c *MemorySelectionCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version = ""
	c.entries = map[string]memoryEntry{}
	return nil
}

// Len cantidad de entradas de la versión vigente.
func (c *MemorySelectionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
