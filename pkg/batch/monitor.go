package batch

import (
	"time"

	"github.com/johnklee/aegis.utils/pkg/logger"
	"github.com/johnklee/aegis.utils/pkg/progress"
)

// DefaultSampleInterval is how often the monitor samples the queue size.
const DefaultSampleInterval = 100 * time.Millisecond

// Sizer reports the remaining size of a work queue.
type Sizer interface {
	Len() int
}

// Liveness reports whether a pool still has live workers.
type Liveness interface {
	Alive() bool
}

// Monitor observes queue drain progress while the pool is alive and
// reports consumed-count deltas to a progress bar. It never mutates the
// queue or blocks the workers; a missed sample only skews individual
// deltas, since the final flush always brings the bar to the total.
type Monitor struct {
	queue    Sizer
	pool     Liveness
	bar      progress.Bar
	interval time.Duration
	log      logger.Logger
}

// NewMonitor creates a monitor sampling the queue at the given interval.
// A non-positive interval falls back to DefaultSampleInterval.
func NewMonitor(queue Sizer, pool Liveness, bar progress.Bar, interval time.Duration, log logger.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	return &Monitor{
		queue:    queue,
		pool:     pool,
		bar:      bar,
		interval: interval,
		log:      log,
	}
}

// Run samples the queue until the pool is no longer alive, then flushes
// the remaining delta and closes the bar. It blocks the caller for the
// lifetime of the pool and is meaningful only for a started pool with
// queued work.
func (m *Monitor) Run() {
	total := m.queue.Len()
	if total == 0 && !m.pool.Alive() {
		return
	}

	m.log.WithFields(logger.Fields{
		"total":    total,
		"interval": m.interval,
	}).Debug("Progress monitor started")

	m.bar.Start(total)
	remaining := total

	for m.pool.Alive() {
		time.Sleep(m.interval)

		current := m.queue.Len()
		if consumed := remaining - current; consumed > 0 {
			m.bar.Advance(consumed)
		}
		remaining = current
	}

	// Final flush: whatever the sampling loop missed is reported here so
	// the bar always reaches the total.
	if remaining > 0 {
		m.bar.Advance(remaining)
	}
	m.bar.Close()

	m.log.Debug("Progress monitor finished")
}
