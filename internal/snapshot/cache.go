package snapshot

import (
	"sync"

	"github.com/makerbooks/makerbooks/internal/engine"
	"github.com/makerbooks/makerbooks/internal/model"
)

// Cache memoizes computed metrics by state hash. The engine is pure, so a
// hit is always exactly what a fresh computation would have produced.
//
// Entries are never evicted; a cache lives for one session (a CLI run, a
// request) and is garbage-collected with it.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]engine.CalculatedMetrics
}

// NewCache creates an empty metrics cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]engine.CalculatedMetrics)}
}

// Metrics returns the comprehensive metrics for the state, computing and
// memoizing them on first sight of the state's hash.
//
// If the state cannot be hashed the metrics are computed directly and not
// cached; a hashing failure must never make a computable state
// uncomputable.
func (c *Cache) Metrics(state model.CalculatorState) engine.CalculatedMetrics {
	key, err := StateHash(state)
	if err != nil {
		return engine.CalculateComprehensiveMetrics(state)
	}

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	metrics := engine.CalculateComprehensiveMetrics(state)

	c.mu.Lock()
	c.entries[key] = metrics
	c.mu.Unlock()
	return metrics
}

// Len reports the number of memoized states.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
