package dining

import (
	"math/rand"
	"time"
)

// Philosopher alternates between thinking and eating until the table stops
// running. It learns about a stop only at its two checkpoints: after the
// think sleep and while releasing its forks.
type Philosopher struct {
	id    int
	lower *Fork // Acquired first.
	upper *Fork // Acquired second; nil when the table has a single fork.
	table *Table
	rng   *rand.Rand
}

func newPhilosopher(t *Table, id int, seed int64) *Philosopher {
	lo, hi := Ring{N: t.n}.Forks(id)
	p := &Philosopher{
		id:    id,
		lower: t.forks[lo],
		table: t,
		rng:   rand.New(rand.NewSource(seed + int64(id))),
	}
	if hi != lo {
		p.upper = t.forks[hi]
	}
	return p
}

func (p *Philosopher) run(slot int) {
	defer p.table.wg.Done()
	p.table.barrier.Arrive(slot)
	for p.think() && p.eat() {
	}
	p.table.logger.Printf("philosopher %d terminated", p.id)
}

// think returns false once the philosopher terminated.
func (p *Philosopher) think() bool {
	reg := p.table.registry
	reg.SetState(p.id, Thinking)
	p.pause()
	if !p.table.running.Load() {
		reg.SetState(p.id, Terminated)
		return false
	}
	return true
}

// eat returns false once the philosopher terminated.
func (p *Philosopher) eat() bool {
	p.table.registry.SetState(p.id, Waiting)
	p.acquire()
	p.pause()
	return p.release()
}

// acquire takes the lower fork, then the upper one. Every philosopher
// follows the same global order, so no cycle of waiters can form.
func (p *Philosopher) acquire() {
	clk, reg := p.table.conf.Clock, p.table.registry
	start := clk.Now()
	p.lower.Acquire()
	if p.upper == nil {
		waited := clk.Since(start)
		reg.acquired(p.lower.ID(), p.id, true, waited)
		p.table.conf.Metrics.observeMeal(p.id, waited)
		return
	}
	reg.acquired(p.lower.ID(), p.id, false, 0)
	p.upper.Acquire()
	waited := clk.Since(start)
	reg.acquired(p.upper.ID(), p.id, true, waited)
	p.table.conf.Metrics.observeMeal(p.id, waited)
}

// release clears the annotations before putting the forks down, so a
// neighbour's annotation is never overwritten.
func (p *Philosopher) release() bool {
	next := Thinking
	if !p.table.running.Load() {
		next = Terminated
	}
	p.table.registry.released(p.id, p.forkIDs(), next)
	if p.upper != nil {
		p.upper.Release()
	}
	p.lower.Release()
	return next != Terminated
}

func (p *Philosopher) forkIDs() []int {
	if p.upper == nil {
		return []int{p.lower.ID()}
	}
	return []int{p.lower.ID(), p.upper.ID()}
}

// pause sleeps uniformly in [MinSleep, MaxSleep].
func (p *Philosopher) pause() {
	conf := p.table.conf
	span := int64(conf.MaxSleep - conf.MinSleep)
	conf.Clock.Sleep(conf.MinSleep + time.Duration(p.rng.Int63n(span+1)))
}
