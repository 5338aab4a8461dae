package dining

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Registry is the shared table of philosopher states and fork holders read
// by the monitor. One lock covers the whole table so that a Snapshot is
// never torn. The lock is only held for the table writes themselves, never
// across a fork acquisition.
//
// Holder annotations are observability metadata; mutual exclusion is
// provided by the forks.
type Registry struct {
	mu          sync.Mutex
	clock       clock.Clock
	states      []State
	holders     []int
	meals       []uint64
	longestWait []time.Duration
}

// NewRegistry creates a registry for n philosophers, all Thinking, and n
// free forks. Snapshots are stamped with clk, or the wall clock if nil.
func NewRegistry(n int, clk clock.Clock) *Registry {
	if clk == nil {
		clk = clock.New()
	}
	r := &Registry{
		clock:       clk,
		states:      make([]State, n),
		holders:     make([]int, n),
		meals:       make([]uint64, n),
		longestWait: make([]time.Duration, n),
	}
	for i := range r.holders {
		r.holders[i] = Free
	}
	return r
}

// SetState records the state of philosopher id. Terminated is final and
// later writes for a terminated philosopher are dropped.
func (r *Registry) SetState(id int, s State) {
	r.mu.Lock()
	r.setState(id, s)
	r.mu.Unlock()
}

// SetHolder records holder (or Free) as the holder of fork f.
func (r *Registry) SetHolder(f, holder int) {
	r.mu.Lock()
	r.holders[f] = holder
	r.mu.Unlock()
}

func (r *Registry) setState(id int, s State) {
	if r.states[id] == Terminated {
		return
	}
	r.states[id] = s
}

// acquired annotates fork f as held by id. The last fork of a meal also
// moves id to Eating and counts the meal, in the same critical section.
func (r *Registry) acquired(f, id int, last bool, waited time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.holders[f] = id
	if !last {
		return
	}
	r.setState(id, Eating)
	r.meals[id]++
	if waited > r.longestWait[id] {
		r.longestWait[id] = waited
	}
}

// released clears the annotations of forks and moves id to next.
func (r *Registry) released(id int, forks []int, next State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range forks {
		if r.holders[f] == id {
			r.holders[f] = Free
		}
	}
	r.setState(id, next)
}

// Snapshot copies the whole registry under a single lock acquisition.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Taken:       r.clock.Now(),
		States:      append([]State(nil), r.states...),
		Holders:     append([]int(nil), r.holders...),
		Meals:       append([]uint64(nil), r.meals...),
		LongestWait: append([]time.Duration(nil), r.longestWait...),
	}
}
