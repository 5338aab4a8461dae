// Package model builds static protocol models of a dining table.
//
// The same ring can be emitted as a system of communicating finite state
// machines, as a MiGo program, or as a Graphviz graph. Each model can use
// the ordered (lower fork first) acquisition the engine runs, or the naive
// left-then-right acquisition for comparison.
package model // import "github.com/zixu-w/DPP/model"

import (
	"fmt"

	"github.com/zixu-w/DPP/dining"
)

// Order is a fork acquisition order.
type Order int

const (
	// Ordered takes the lower numbered fork first.
	Ordered Order = iota
	// LeftRight takes the left fork then the right fork.
	LeftRight
)

// Forks returns the forks of philosopher id in the order they are taken.
// The second fork is the same as the first when the philosopher uses a
// single fork.
func (o Order) Forks(id, n int) (first, second int) {
	if o == LeftRight {
		return dining.Left(id, n), dining.Right(id, n)
	}
	return dining.Ring{N: n}.Forks(id)
}

// single reports whether the order acquires only one fork for id.
func (o Order) single(id, n int) bool {
	return o == Ordered && dining.Ring{N: n}.Shared(id)
}

func (o Order) String() string {
	switch o {
	case Ordered:
		return "ordered"
	case LeftRight:
		return "left-right"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

func philName(id int) string { return fmt.Sprintf("phil%d", id) }
func forkName(id int) string { return fmt.Sprintf("fork%d", id) }
