package dining

import (
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// waitReport advances the mock clock until a report satisfying ok arrives.
func waitReport(t *testing.T, mock *clock.Mock, reports <-chan Snapshot, step time.Duration, ok func(Snapshot) bool) Snapshot {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-reports:
			if ok(s) {
				return s
			}
		case <-deadline:
			t.Fatal("no matching report")
		case <-time.After(10 * time.Millisecond):
			mock.Add(step)
		}
	}
}

func TestMonitorPollsUntilAllTerminated(t *testing.T) {
	mock := clock.NewMock()
	reg := NewRegistry(2, mock)
	reports := make(chan Snapshot, 16)

	conf := DefaultConfig()
	conf.Clock = mock
	conf.Interval = time.Second
	conf.Metrics = NewMetrics()
	conf.Reporter = ReporterFunc(func(s Snapshot) error {
		reports <- s
		return nil
	})
	m := newMonitor(reg, conf, log.New(io.Discard, "", 0))

	b := NewBarrier(1)
	var wg sync.WaitGroup
	wg.Add(1)
	go m.run(b, 0, &wg)
	b.AwaitReady()

	select {
	case <-reports:
		t.Fatal("monitor reported before release")
	case <-time.After(20 * time.Millisecond):
	}
	b.Release()

	first := waitReport(t, mock, reports, conf.Interval, func(Snapshot) bool { return true })
	require.Equal(t, []State{Thinking, Thinking}, first.States)

	reg.SetState(0, Terminated)
	waitReport(t, mock, reports, conf.Interval, func(s Snapshot) bool { return s.States[0] == Terminated })

	reg.SetState(1, Terminated)
	last := waitReport(t, mock, reports, conf.Interval, Snapshot.AllTerminated)
	require.Equal(t, []State{Terminated, Terminated}, last.States)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not stop after all philosophers terminated")
	}
	require.Equal(t, 2.0, testutil.ToFloat64(conf.Metrics.states.WithLabelValues("Terminated")))
	require.Equal(t, 0.0, testutil.ToFloat64(conf.Metrics.forksInUse))
}

// A failing reporter is logged and the monitor keeps polling.
func TestMonitorReporterError(t *testing.T) {
	reg := NewRegistry(1, nil)
	reg.SetState(0, Terminated)
	var calls int
	conf := DefaultConfig()
	conf.Reporter = ReporterFunc(func(Snapshot) error {
		calls++
		return io.ErrClosedPipe
	})
	var buf syncBuffer
	m := newMonitor(reg, conf, log.New(&buf, "", 0))
	m.watch()
	require.Equal(t, 1, calls)
	require.Contains(t, buf.String(), "report: io: read/write on closed pipe")
}
