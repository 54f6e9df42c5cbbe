package mcpserver

import "sync"

// registry is an insertion-ordered mapping from identifier to capability.
// Registering an existing key replaces the value in place; the key keeps its
// original position in iteration order. Reads take a copy, so an entry handed
// out to an in-flight dispatch survives later replacement of its key.
type registry[T any] struct {
	mu    sync.RWMutex
	order []string
	byKey map[string]T
}

type entry[T any] struct {
	key string
	val T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{byKey: make(map[string]T)}
}

func (r *registry[T]) put(key string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byKey[key]; !ok {
		r.order = append(r.order, key)
	}
	r.byKey[key] = v
}

func (r *registry[T]) get(key string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byKey[key]
	return v, ok
}

// snapshot returns the entries in registration order.
func (r *registry[T]) snapshot() []entry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entry[T], 0, len(r.order))
	for _, k := range r.order {
		out = append(out, entry[T]{key: k, val: r.byKey[k]})
	}
	return out
}

func (r *registry[T]) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byKey)
}
