package dining

import (
	"fmt"
	"time"
)

// State is the state of a philosopher.
type State int

const (
	Thinking State = iota
	Waiting
	Eating
	Terminated
)

var stateNames = [...]string{
	Thinking:   "Thinking",
	Waiting:    "Waiting",
	Eating:     "Eating",
	Terminated: "Terminated",
}

func (s State) String() string {
	if s < Thinking || s > Terminated {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Free is the holder of a fork that nobody holds.
const Free = -1

// Snapshot is a copy of the registry taken in a single critical section.
type Snapshot struct {
	Taken       time.Time
	States      []State         // Indexed by philosopher id.
	Holders     []int           // Indexed by fork id, Free if not held.
	Meals       []uint64        // Meals started, per philosopher.
	LongestWait []time.Duration // Longest Waiting to Eating, per philosopher.
}

// Count returns the number of philosophers in state st.
func (s Snapshot) Count(st State) int {
	n := 0
	for _, state := range s.States {
		if state == st {
			n++
		}
	}
	return n
}

// InUse returns the number of forks with a holder.
func (s Snapshot) InUse() int {
	n := 0
	for _, h := range s.Holders {
		if h != Free {
			n++
		}
	}
	return n
}

// Available returns the number of free forks.
func (s Snapshot) Available() int { return len(s.Holders) - s.InUse() }

// AllTerminated reports whether every philosopher reached Terminated.
func (s Snapshot) AllTerminated() bool { return s.Count(Terminated) == len(s.States) }

// TotalMeals sums the meal counters of all philosophers.
func (s Snapshot) TotalMeals() uint64 {
	var total uint64
	for _, m := range s.Meals {
		total += m
	}
	return total
}
