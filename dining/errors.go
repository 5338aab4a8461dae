package dining

// Predefined errors

import "github.com/pingcap/errors"

var (
	ErrNoPhilosophers = errors.New("a table needs at least one philosopher")
	ErrSleepBounds    = errors.New("sleep bounds must satisfy 0 < min <= max")
	ErrInterval       = errors.New("monitor interval must be positive")
	ErrNotInitialised = errors.New("table is not initialised")
	ErrAlreadyStarted = errors.New("table already started")
	ErrTerminated     = errors.New("table already terminated")
)
