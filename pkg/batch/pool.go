package batch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/johnklee/aegis.utils/pkg/logger"
	"golang.org/x/time/rate"
)

// Pool owns a fixed number of workers bound to the same queue, sink and
// client. The worker count is fixed at creation. The pool has no explicit
// stop signal: it is done once every worker has observed an empty queue
// and exited.
type Pool struct {
	config  Config
	queue   *Queue
	sink    *Sink
	client  Client
	limiter *rate.Limiter
	log     logger.Logger

	wg      sync.WaitGroup
	alive   atomic.Int32
	started bool
	mu      sync.Mutex
}

// NewPool creates a worker pool with the given configuration.
func NewPool(config Config, queue *Queue, sink *Sink, client Client, log logger.Logger) (*Pool, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), 1)
	}

	return &Pool{
		config:  config,
		queue:   queue,
		sink:    sink,
		client:  client,
		limiter: limiter,
		log:     log,
	}, nil
}

func validateConfig(config Config) error {
	if config.Workers <= 0 {
		return fmt.Errorf("number of workers must be positive")
	}
	if config.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}
	return nil
}

// Start launches all workers concurrently. It returns an error when
// called more than once.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("pool already started")
	}
	p.started = true

	p.log.WithFields(logger.Fields{
		"workers": p.config.Workers,
	}).Debug("Starting worker pool")

	for i := 0; i < p.config.Workers; i++ {
		w := &worker{
			queue:   p.queue,
			sink:    p.sink,
			client:  p.client,
			limiter: p.limiter,
			log: p.log.WithFields(logger.Fields{
				"worker": i + 1,
			}),
		}

		p.wg.Add(1)
		p.alive.Add(1)
		go func() {
			defer p.wg.Done()
			defer p.alive.Add(-1)
			w.run(ctx)
		}()
	}

	return nil
}

// Alive reports whether at least one worker has not yet terminated.
func (p *Pool) Alive() bool {
	return p.alive.Load() > 0
}

// Wait blocks until every worker has exited, meaning the queue is empty
// and each worker's last pop found it so.
func (p *Pool) Wait() {
	p.wg.Wait()
}
