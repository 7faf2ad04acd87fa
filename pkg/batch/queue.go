/*
Package batch implements the concurrent work-distribution engine for batch
status lookups: a shared FIFO queue of identifiers drained by a fixed-size
pool of workers, two append-only result sinks receiving success and failure
records, and an optional monitor that observes queue drain progress while
the workers run.

Basic usage:

	queue := batch.NewQueue(ids)
	sink := batch.NewSink()

	pool, err := batch.NewPool(batch.Config{Workers: 8}, queue, sink, client, log)
	if err != nil {
	    return err
	}

	pool.Start(ctx)
	pool.Wait()

	successes, failures := sink.Successes(), sink.Failures()
*/
package batch

import "sync"

// Queue is a mutex-guarded FIFO of identifiers still to be processed.
// It is loaded once before the pool starts and never refilled; workers
// treat an empty queue as the end of the batch. Each pushed identifier
// is popped by exactly one caller under concurrent access.
type Queue struct {
	mu    sync.Mutex
	items []string
}

// NewQueue creates a queue preloaded with the given identifiers,
// preserving their order.
func NewQueue(ids []string) *Queue {
	items := make([]string, len(ids))
	copy(items, ids)
	return &Queue{items: items}
}

// Push appends an identifier to the tail of the queue.
func (q *Queue) Push(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, id)
}

// Pop removes and returns the identifier at the head of the queue.
// The second return value is false when the queue is empty; a true
// return is the caller's exclusive claim on the identifier.
func (q *Queue) Pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return "", false
	}

	id := q.items[0]
	q.items = q.items[1:]
	return id, true
}

// Len returns the current number of queued identifiers. Under concurrent
// pops the value is a best-effort snapshot, used only for progress
// estimation.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
