package batch

import "context"

// Record holds the outcome of a single lookup as field name to value pairs.
// Every record carries the original identifier under "easy_id"; failure
// records additionally carry the failure cause under "error".
type Record map[string]interface{}

// Client performs a single status lookup against the remote endpoint.
// Implementations must be safe for concurrent use by multiple workers.
type Client interface {
	// Lookup posts the identifier to the status endpoint and returns the
	// decoded response fields on HTTP 200. Non-200 responses and transport
	// failures are returned as errors whose text becomes the failure record.
	Lookup(ctx context.Context, id int64) (map[string]interface{}, error)
}

// Config holds the configuration for the worker pool.
type Config struct {
	// Workers is the number of concurrent workers draining the queue
	Workers int

	// RateLimit is the maximum number of lookups per second across all
	// workers (0 for unlimited)
	RateLimit int
}
