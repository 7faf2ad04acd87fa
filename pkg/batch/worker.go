package batch

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/johnklee/aegis.utils/pkg/logger"
	"golang.org/x/time/rate"
)

// worker is one concurrent unit of execution. It repeatedly claims an
// identifier from the shared queue, performs one lookup, and routes the
// outcome into the shared sink until the queue is empty.
type worker struct {
	queue   *Queue
	sink    *Sink
	client  Client
	limiter *rate.Limiter
	log     logger.Logger
}

// run drains the queue. A per-identifier failure of any kind produces
// exactly one failure record and the loop continues; only queue
// exhaustion ends the worker.
func (w *worker) run(ctx context.Context) {
	for {
		raw, ok := w.queue.Pop()
		if !ok {
			w.log.Debug("Queue drained, worker exiting")
			return
		}

		rec, err := w.lookup(ctx, raw)
		if err != nil {
			w.log.WithFields(logger.Fields{
				"easy_id": raw,
				"error":   err.Error(),
			}).Debug("Lookup failed")
			w.sink.Failure(failureRecord(raw, err))
			continue
		}

		w.sink.Success(rec)
	}
}

// lookup performs a single lookup for the raw identifier and returns either
// a complete success record or the failure cause. Identifier parsing,
// rate limiting, and the network call all surface here as error values.
func (w *worker) lookup(ctx context.Context, raw string) (Record, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		w.log.WithFields(logger.Fields{
			"easy_id": raw,
			"error":   err.Error(),
		}).Error("Something wrong: identifier did not parse")
		return nil, fmt.Errorf("malformed identifier %q: %w", raw, err)
	}

	if w.limiter != nil {
		if err := w.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	fields, err := w.client.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := Record{"easy_id": id}
	for k, v := range fields {
		rec[k] = v
	}
	return rec, nil
}

// failureRecord builds the failure record for a claimed identifier.
// The identifier is recorded as an integer when it parses, otherwise
// as the raw text that was dequeued.
func failureRecord(raw string, err error) Record {
	rec := Record{"error": err.Error()}
	if id, perr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); perr == nil {
		rec["easy_id"] = id
	} else {
		rec["easy_id"] = raw
	}
	return rec
}
