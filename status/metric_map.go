package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap is a keyed set of metric cells of type T
// Lookup takes a lock; callers cache the returned pointer and then read or write it lock-free
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	cell, ok := m.cells[key]
	m.mu.RUnlock()
	if ok {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cell, ok = m.cells[key]; !ok {
		cell = new(T)
		m.cells[key] = cell
	}
	return cell
}

// Range visits cells in key order
func (m *MetricMap[T]) Range(fn func(key string, cell *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.cells)) {
		fn(k, m.cells[k])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}
