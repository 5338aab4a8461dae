package dining

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects run metrics in a private prometheus registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	meals      *prometheus.CounterVec
	wait       prometheus.Histogram
	states     *prometheus.GaugeVec
	forksInUse prometheus.Gauge
}

// NewMetrics creates and registers the run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		meals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dpp",
			Name:      "meals_total",
			Help:      "Meals started, by philosopher.",
		}, []string{"philosopher"}),
		wait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dpp",
			Name:      "fork_wait_seconds",
			Help:      "Time spent Waiting before both forks were held.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}),
		states: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dpp",
			Name:      "philosophers",
			Help:      "Philosophers per state at the last monitor poll.",
		}, []string{"state"}),
		forksInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dpp",
			Name:      "forks_in_use",
			Help:      "Forks with a holder at the last monitor poll.",
		}),
	}
	m.Registry.MustRegister(m.meals, m.wait, m.states, m.forksInUse)
	return m
}

func (m *Metrics) observeMeal(id int, waited time.Duration) {
	if m == nil {
		return
	}
	m.meals.WithLabelValues(strconv.Itoa(id)).Inc()
	m.wait.Observe(waited.Seconds())
}

func (m *Metrics) observeSnapshot(s Snapshot) {
	if m == nil {
		return
	}
	for st := Thinking; st <= Terminated; st++ {
		m.states.WithLabelValues(st.String()).Set(float64(s.Count(st)))
	}
	m.forksInUse.Set(float64(s.InUse()))
}

// WriteToTextfile dumps the metrics in the text exposition format.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
