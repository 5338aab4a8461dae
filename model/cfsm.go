package model

import (
	"fmt"
	"io"

	"github.com/nickng/cfsm"
)

// Messages exchanged between philosophers and forks.
const (
	MsgAcquire = "acquire"
	MsgGrant   = "grant"
	MsgRelease = "release"
)

// CFSMs captures a CFSM system of a table: one machine per philosopher and
// one per fork.
type CFSMs struct {
	Sys   *cfsm.System
	Phils []*cfsm.CFSM
	Forks []*cfsm.CFSM
	Order Order
}

// NewCFSMs creates the CFSM system of a table of n.
func NewCFSMs(n int, order Order) *CFSMs {
	sys := &CFSMs{
		Sys:   cfsm.NewSystem(),
		Phils: make([]*cfsm.CFSM, n),
		Forks: make([]*cfsm.CFSM, n),
		Order: order,
	}
	for i := 0; i < n; i++ {
		m := sys.Sys.NewMachine()
		m.Comment = philName(i)
		sys.Phils[i] = m
	}
	for f := 0; f < n; f++ {
		m := sys.Sys.NewMachine()
		m.Comment = forkName(f)
		sys.Forks[f] = m
	}
	for i, m := range sys.Phils {
		sys.philToMachine(i, m)
	}
	for f, m := range sys.Forks {
		sys.forkToMachine(f, m)
	}
	return sys
}

// WriteTo implements io.WriterTo interface.
func (sys *CFSMs) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, sys.Sys.String())
	return int64(n), err
}

// PrintSummary shows the machines of the system.
func (sys *CFSMs) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "Total of %d CFSMs (%d are forks, %s acquisition)\n",
		len(sys.Phils)+len(sys.Forks), len(sys.Forks), sys.Order)
	for _, m := range sys.Phils {
		fmt.Fprintf(w, "\t%d\t= %s\n", m.ID, m.Comment)
	}
	for _, m := range sys.Forks {
		fmt.Fprintf(w, "\t%d\t= %s (fork)\n", m.ID, m.Comment)
	}
}

// philToMachine builds the loop
//
//	q0 -!acquire-> -?grant-> [-!acquire-> -?grant->] -!release-> [-!release->] q0
//
// where the bracketed steps exist only when two forks are taken.
func (sys *CFSMs) philToMachine(id int, m *cfsm.CFSM) {
	n := len(sys.Phils)
	first, second := sys.Order.Forks(id, n)
	forks := []*cfsm.CFSM{sys.Forks[first], sys.Forks[second]}
	if sys.Order.single(id, n) {
		forks = forks[:1]
	}

	q0 := m.NewState()
	q := q0
	for _, f := range forks {
		q = step(m, q, cfsm.NewSend(f, MsgAcquire))
		q = step(m, q, cfsm.NewRecv(f, MsgGrant))
	}
	for i := len(forks) - 1; i >= 0; i-- {
		if i == 0 {
			tr := cfsm.NewSend(forks[i], MsgRelease)
			tr.SetNext(q0)
			q.AddTransition(tr)
			break
		}
		q = step(m, q, cfsm.NewSend(forks[i], MsgRelease))
	}
	m.Start = q0
}

// forkToMachine lets either sharer take the fork in turn.
func (sys *CFSMs) forkToMachine(f int, m *cfsm.CFSM) {
	n := len(sys.Forks)
	q0 := m.NewState()
	users := []int{f, (f + 1) % n}
	if users[0] == users[1] {
		users = users[:1]
	}
	for _, id := range users {
		phil := sys.Phils[id]
		q1 := step(m, q0, cfsm.NewRecv(phil, MsgAcquire))
		q2 := step(m, q1, cfsm.NewSend(phil, MsgGrant))
		tr := cfsm.NewRecv(phil, MsgRelease)
		tr.SetNext(q0)
		q2.AddTransition(tr)
	}
	m.Start = q0
}

type transition interface {
	cfsm.Transition
	SetNext(*cfsm.State)
}

// step adds tr from q to a fresh state and returns the new state.
func step(m *cfsm.CFSM, q *cfsm.State, tr transition) *cfsm.State {
	next := m.NewState()
	tr.SetNext(next)
	q.AddTransition(tr)
	return next
}
