package dining

import "sync"

// Barrier is the startup gate. Every party signals readiness once and then
// blocks on its own gate; the controller waits for all parties and opens
// every gate at once so no philosopher gets a head start.
type Barrier struct {
	ready   sync.WaitGroup
	gates   []chan struct{}
	release sync.Once
}

// NewBarrier creates a barrier with one gate per party.
func NewBarrier(parties int) *Barrier {
	b := &Barrier{gates: make([]chan struct{}, parties)}
	for i := range b.gates {
		b.gates[i] = make(chan struct{})
	}
	b.ready.Add(parties)
	return b
}

// Parties returns the number of gates.
func (b *Barrier) Parties() int { return len(b.gates) }

// Arrive signals that the party at slot is ready, then blocks until the
// gates open. Each slot must arrive exactly once.
func (b *Barrier) Arrive(slot int) {
	b.ready.Done()
	<-b.gates[slot]
}

// AwaitReady blocks until every party has arrived.
func (b *Barrier) AwaitReady() { b.ready.Wait() }

// Release opens all gates. Calling it again has no effect.
func (b *Barrier) Release() {
	b.release.Do(func() {
		for _, g := range b.gates {
			close(g)
		}
	})
}
