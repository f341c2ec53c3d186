package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// CounterMap is a registry of named counters
// Registration takes the lock; increments on a cached pointer do not
type CounterMap struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewCounterMap creates an empty CounterMap
func NewCounterMap() *CounterMap {
	return &CounterMap{items: make(map[string]*atomic.Int64)}
}

// Get returns the counter for key, creating it at zero if absent
func (m *CounterMap) Get(key string) *atomic.Int64 {
	m.mu.RLock()
	if c, ok := m.items[key]; ok {
		m.mu.RUnlock()
		return c
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.items[key]; ok {
		return c
	}
	c := new(atomic.Int64)
	m.items[key] = c
	return c
}

// Value returns the counter for key, 0 when never registered
func (m *CounterMap) Value(key string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.items[key]; ok {
		return c.Load()
	}
	return 0
}

// Keys returns registered keys in sorted order
func (m *CounterMap) Keys() []string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	m.mu.RUnlock()
	sort.Strings(keys)
	return keys
}
