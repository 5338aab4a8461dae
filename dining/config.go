package dining

import (
	"io"
	"log"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pingcap/errors"
)

// Default timings of a run.
const (
	DefaultMinSleep = time.Microsecond
	DefaultMaxSleep = 10 * time.Second
	DefaultInterval = 500 * time.Millisecond
)

// Config holds the configuration of a table.
type Config struct {
	MinSleep time.Duration // Shortest think or eat segment.
	MaxSleep time.Duration // Longest think or eat segment.
	Interval time.Duration // Monitor polling interval.

	Reporter Reporter    // Receives every monitor snapshot (nil to discard).
	Metrics  *Metrics    // Run metrics (nil to disable).
	Clock    clock.Clock // Source of sleeps and time.
	Log      io.Writer   // Lifecycle log.
	LogFlags int         // Flags for the lifecycle log.
}

// DefaultConfig creates a new default table configuration.
func DefaultConfig() *Config {
	return &Config{
		MinSleep: DefaultMinSleep,
		MaxSleep: DefaultMaxSleep,
		Interval: DefaultInterval,
		Clock:    clock.New(),
		Log:      io.Discard,
		LogFlags: log.LstdFlags,
	}
}

func (conf *Config) validate() error {
	if conf.MinSleep <= 0 || conf.MaxSleep < conf.MinSleep {
		return errors.Annotatef(ErrSleepBounds, "min=%v max=%v", conf.MinSleep, conf.MaxSleep)
	}
	if conf.Interval <= 0 {
		return errors.Annotatef(ErrInterval, "interval=%v", conf.Interval)
	}
	if conf.Clock == nil {
		conf.Clock = clock.New()
	}
	if conf.Log == nil {
		conf.Log = io.Discard
	}
	return nil
}
