package infer

import (
	"strings"
	"sync"

	"mica/internal/ir"
)

// Memo caches the result of an expensive per-key computation and
// coalesces concurrent requests: the first caller for a key runs the
// computation, everyone else asking for the same key blocks until it
// finishes and then shares the result. Errors are cached like values, so
// a failed key fails the same way for every caller.
type Memo[K comparable, V any] struct {
	compute func(K) (V, error)

	mu      sync.Mutex
	entries map[K]*entry[V]
}

type entry[V any] struct {
	done  chan struct{}
	value V
	err   error
}

func NewMemo[K comparable, V any](compute func(K) (V, error)) *Memo[K, V] {
	return &Memo[K, V]{
		compute: compute,
		entries: make(map[K]*entry[V]),
	}
}

// Get returns the cached result for key, computing it on first request.
func (m *Memo[K, V]) Get(key K) (V, error) {
	m.mu.Lock()
	if e, ok := m.entries[key]; ok {
		m.mu.Unlock()
		<-e.done
		return e.value, e.err
	}
	e := &entry[V]{done: make(chan struct{})}
	m.entries[key] = e
	m.mu.Unlock()

	e.value, e.err = m.compute(key)
	close(e.done)
	return e.value, e.err
}

// Len reports how many keys have been requested so far, including keys
// still being computed.
func (m *Memo[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Error is an inference failure attached to the IR nodes it concerns.
type Error struct {
	Message string
	Refs    []ir.Node
}

func (e *Error) Error() string {
	if len(e.Refs) == 0 {
		return e.Message
	}
	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteString(": ")
	for i, ref := range e.Refs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ref.String())
	}
	return b.String()
}
