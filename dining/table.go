// Package dining runs a table of dining philosophers.
//
// N philosophers sit in a ring with one fork between each pair of
// neighbours. Each philosopher runs in its own goroutine, thinking and
// eating until the table stops running. Forks are always picked up lower
// id first, which rules out deadlock. A monitor goroutine samples the
// shared Registry and reports it.
//
//	t, err := dining.New(5, 42, dining.DefaultConfig())
//	t.Start()
//	...
//	t.Terminate()
package dining // import "github.com/zixu-w/DPP/dining"

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/pingcap/errors"
	"go.uber.org/atomic"
)

// Phase is the lifecycle phase of a Table.
type Phase int

const (
	PhaseUninitialised Phase = iota
	PhaseInitialised
	PhaseRunning
	PhaseStopping
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialised:
		return "uninitialised"
	case PhaseInitialised:
		return "initialised"
	case PhaseRunning:
		return "running"
	case PhaseStopping:
		return "stopping"
	case PhaseTerminated:
		return "terminated"
	}
	return "unknown"
}

// Table is the run controller. It owns the running flag (and is its only
// writer), the forks, the registry and every philosopher and monitor
// goroutine.
type Table struct {
	n      int
	seed   int64
	conf   *Config
	logger *log.Logger

	registry *Registry
	forks    []*Fork
	phils    []*Philosopher
	monitor  *Monitor
	barrier  *Barrier
	running  atomic.Bool
	wg       sync.WaitGroup

	mu    sync.Mutex // Guards phase.
	phase Phase
}

// New initialises a table of n philosophers whose sleeps are drawn from
// seed. Every philosopher and the monitor are started and have reached the
// startup barrier when New returns.
func New(n int, seed int64, conf *Config) (*Table, error) {
	if n < 1 {
		return nil, errors.Annotatef(ErrNoPhilosophers, "n=%d", n)
	}
	if conf == nil {
		conf = DefaultConfig()
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	t := &Table{
		n:        n,
		seed:     seed,
		conf:     conf,
		logger:   log.New(conf.Log, "dining: ", conf.LogFlags),
		registry: NewRegistry(n, conf.Clock),
		forks:    make([]*Fork, n),
		phils:    make([]*Philosopher, n),
		barrier:  NewBarrier(n + 1),
	}
	for i := range t.forks {
		t.forks[i] = NewFork(i)
	}
	for i := range t.phils {
		t.phils[i] = newPhilosopher(t, i, seed)
		t.wg.Add(1)
		go t.phils[i].run(i)
	}
	t.monitor = newMonitor(t.registry, conf, t.logger)
	t.wg.Add(1)
	go t.monitor.run(t.barrier, n, &t.wg)

	t.barrier.AwaitReady()
	t.phase = PhaseInitialised
	t.logger.Printf("initialised %d philosophers (seed %d)", n, seed)
	return t, nil
}

// N returns the number of philosophers.
func (t *Table) N() int { return t.n }

// Phase returns the current lifecycle phase.
func (t *Table) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// Running reports the running flag.
func (t *Table) Running() bool { return t.running.Load() }

// Snapshot returns a consistent copy of the registry.
func (t *Table) Snapshot() Snapshot { return t.registry.Snapshot() }

// Start sets the running flag and opens the startup barrier for every
// philosopher and the monitor at once.
func (t *Table) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch t.phase {
	case PhaseInitialised:
	case PhaseUninitialised:
		return ErrNotInitialised
	case PhaseRunning:
		return ErrAlreadyStarted
	default:
		return ErrTerminated
	}
	t.running.Store(true)
	t.barrier.Release()
	t.phase = PhaseRunning
	t.logger.Println("started")
	return nil
}

// Terminate clears the running flag and blocks until every philosopher and
// the monitor have terminated. Philosophers stop at their next checkpoint,
// so this may take up to the longest sleep in flight. A table that was
// never started is released with the flag already cleared; its
// philosophers terminate after their first think.
func (t *Table) Terminate() error {
	t.mu.Lock()
	switch t.phase {
	case PhaseInitialised, PhaseRunning:
	case PhaseUninitialised:
		t.mu.Unlock()
		return ErrNotInitialised
	default:
		t.mu.Unlock()
		return ErrTerminated
	}
	t.phase = PhaseStopping
	t.mu.Unlock()

	start := time.Now()
	t.running.Store(false)
	t.barrier.Release()
	t.wg.Wait()

	t.mu.Lock()
	t.forks, t.phils, t.monitor = nil, nil, nil
	t.phase = PhaseTerminated
	t.mu.Unlock()
	t.logger.Printf("terminated in %v", time.Since(start))
	return nil
}

// RunFor starts the table, lets it run until deadline (or until ctx is
// done) and terminates it.
func (t *Table) RunFor(ctx context.Context, deadline time.Time) error {
	if err := t.Start(); err != nil {
		return err
	}
	select {
	case <-t.conf.Clock.After(deadline.Sub(t.conf.Clock.Now())):
	case <-ctx.Done():
		t.logger.Printf("interrupted: %v", ctx.Err())
	}
	return t.Terminate()
}
