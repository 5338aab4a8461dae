package model

import (
	"io"

	"github.com/nickng/migo/v3"
	"github.com/nickng/migo/v3/migoutil"
)

// chanVar is a named channel variable in a MiGo program.
type chanVar string

func (v chanVar) Name() string   { return string(v) }
func (v chanVar) String() string { return string(v) }

// Migo is a MiGo program of a table. Forks are channels of capacity 1
// holding one token while the fork is free: acquire receives the token and
// release sends it back.
type Migo struct {
	Prog  *migo.Program
	Order Order
}

// NewMigo creates the MiGo program of a table of n.
func NewMigo(n int, order Order) *Migo {
	prog := migo.NewProgram()
	mainFn := migo.NewFunction("main.main")
	for f := 0; f < n; f++ {
		fork := forkName(f)
		mainFn.AddStmts(
			&migo.NewChanStatement{Name: chanVar(fork), Chan: fork, Size: 1},
			&migo.SendStatement{Chan: fork},
		)
	}
	var phil, phil1 bool
	for id := 0; id < n; id++ {
		first, second := order.Forks(id, n)
		if order.single(id, n) {
			phil1 = true
			mainFn.AddStmts(&migo.SpawnStatement{Name: "phil1", Params: []*migo.Parameter{
				param(forkName(first), "f"),
			}})
			continue
		}
		phil = true
		mainFn.AddStmts(&migo.SpawnStatement{Name: "phil", Params: []*migo.Parameter{
			param(forkName(first), "first"),
			param(forkName(second), "second"),
		}})
	}
	prog.AddFunction(mainFn)
	if phil {
		prog.AddFunction(philFunc("phil", "first", "second"))
	}
	if phil1 {
		prog.AddFunction(philFunc("phil1", "f"))
	}
	migoutil.SimplifyProgram(prog)
	return &Migo{Prog: prog, Order: order}
}

func param(caller, callee string) *migo.Parameter {
	return &migo.Parameter{Caller: chanVar(caller), Callee: chanVar(callee)}
}

// philFunc is a philosopher taking forks in the order given, releasing them
// in reverse and recursing.
func philFunc(name string, forks ...string) *migo.Function {
	fn := migo.NewFunction(name)
	params := make([]*migo.Parameter, len(forks))
	for i, f := range forks {
		params[i] = param(f, f)
	}
	// Params is set directly since AddParams drops a parameter whose caller
	// already appears.
	fn.Params = params
	for _, f := range forks {
		fn.AddStmts(&migo.RecvStatement{Chan: f})
	}
	for i := len(forks) - 1; i >= 0; i-- {
		fn.AddStmts(&migo.SendStatement{Chan: forks[i]})
	}
	fn.AddStmts(&migo.CallStatement{Name: name, Params: params})
	return fn
}

// WriteTo implements io.WriterTo interface.
func (m *Migo) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.Prog.String())
	return int64(n), err
}
