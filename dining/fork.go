package dining

import (
	"sync"

	"go.uber.org/atomic"
)

// Fork is one shared unit of the ring. Acquire blocks until the fork is
// free; it never fails.
type Fork struct {
	id   int
	mu   sync.Mutex
	held atomic.Int32 // Current holders, for checking exclusion.
}

// NewFork creates fork id.
func NewFork(id int) *Fork {
	return &Fork{id: id}
}

// ID returns the fork id.
func (f *Fork) ID() int { return f.id }

// Acquire takes the fork, blocking while a neighbour holds it.
func (f *Fork) Acquire() {
	f.mu.Lock()
	f.held.Inc()
}

// Release puts the fork down. It must be held by the caller.
func (f *Fork) Release() {
	f.held.Dec()
	f.mu.Unlock()
}

// Holders returns how many philosophers hold the fork right now; anything
// above 1 is an exclusion violation.
func (f *Fork) Holders() int32 { return f.held.Load() }
