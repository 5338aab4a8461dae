package dining

import (
	"log"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Reporter receives monitor snapshots.
type Reporter interface {
	Report(Snapshot) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Snapshot) error

// Report calls f(s).
func (f ReporterFunc) Report(s Snapshot) error { return f(s) }

// Monitor periodically snapshots a registry and hands the snapshot to a
// Reporter. It never writes to the registry, and stops by itself after
// reporting a snapshot in which every philosopher is Terminated.
//
// The view is sampled: states change faster than the monitor polls.
type Monitor struct {
	registry *Registry
	reporter Reporter
	metrics  *Metrics
	clock    clock.Clock
	interval time.Duration
	logger   *log.Logger
}

func newMonitor(reg *Registry, conf *Config, logger *log.Logger) *Monitor {
	return &Monitor{
		registry: reg,
		reporter: conf.Reporter,
		metrics:  conf.Metrics,
		clock:    conf.Clock,
		interval: conf.Interval,
		logger:   logger,
	}
}

func (m *Monitor) run(b *Barrier, slot int, wg *sync.WaitGroup) {
	defer wg.Done()
	b.Arrive(slot)
	m.watch()
	m.logger.Println("monitor terminated")
}

func (m *Monitor) watch() {
	for {
		snap := m.registry.Snapshot()
		m.metrics.observeSnapshot(snap)
		if m.reporter != nil {
			if err := m.reporter.Report(snap); err != nil {
				m.logger.Printf("report: %v", err)
			}
		}
		if snap.AllTerminated() {
			return
		}
		m.clock.Sleep(m.interval)
	}
}
