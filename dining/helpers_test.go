package dining

import (
	"bytes"
	"sync"
	"time"
)

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// testConfig keeps sleeps short so runs finish quickly.
func testConfig() *Config {
	conf := DefaultConfig()
	conf.MinSleep = time.Microsecond
	conf.MaxSleep = 2 * time.Millisecond
	conf.Interval = 5 * time.Millisecond
	conf.LogFlags = 0
	return conf
}
