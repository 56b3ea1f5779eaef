package decorate

import "sync"

// Memo caches the results of a function by argument. Safe for concurrent
// use. The function runs at most once per distinct key until Clear.
type Memo[K comparable, V any] struct {
	mu    sync.Mutex
	fn    func(K) V
	cache map[K]V
}

// Memoize wraps fn with an unbounded per-argument cache.
func Memoize[K comparable, V any](fn func(K) V) *Memo[K, V] {
	return &Memo[K, V]{
		fn:    fn,
		cache: make(map[K]V),
	}
}

// Call returns the cached result for k, computing it on first use.
func (m *Memo[K, V]) Call(k K) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.cache[k]; ok {
		return v
	}
	v := m.fn(k)
	m.cache[k] = v
	return v
}

// Clear discards all cached results.
func (m *Memo[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[K]V)
}

// Len returns the number of cached entries.
func (m *Memo[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}
