/*
Package client provides the HTTP client for the account status endpoint.
It posts one identifier per request as a JSON body and decodes the JSON
object response, classifying non-200 responses as StatusError.

Basic usage:

	cli := client.New(client.Config{
		URL: "http://localhost:8080/status",
	}, log)

	fields, err := cli.Lookup(ctx, 42)
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/johnklee/aegis.utils/pkg/logger"
)

// Config holds the configuration for the status client.
type Config struct {
	// URL is the full status endpoint URL to POST to.
	URL string

	// Timeout is the per-request timeout (0 = none). Requests without a
	// timeout that never return stall their worker for the whole batch.
	Timeout time.Duration
}

// Stats holds request counters accumulated over the client's lifetime.
type Stats struct {
	Total     int64
	Successes int64
	Failures  int64
}

// HTTP is a status client backed by a single shared http.Client.
// It is safe for concurrent use by multiple workers.
type HTTP struct {
	config     Config
	httpClient *http.Client
	log        logger.Logger

	totalRequests   atomic.Int64
	successRequests atomic.Int64
	failedRequests  atomic.Int64
}

// New creates a status client for the given endpoint.
func New(config Config, log logger.Logger) *HTTP {
	log.WithFields(logger.Fields{
		"url":     config.URL,
		"timeout": config.Timeout.String(),
	}).Debug("Status client created")

	return &HTTP{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		log: log,
	}
}

// Lookup posts {"easy_id": id} to the endpoint. On HTTP 200 it returns the
// decoded response object. A non-200 response yields a *StatusError; any
// transport failure is returned as-is. One call is one attempt; the client
// never retries.
func (c *HTTP) Lookup(ctx context.Context, id int64) (map[string]interface{}, error) {
	c.totalRequests.Add(1)

	body, err := json.Marshal(map[string]int64{"easy_id": id})
	if err != nil {
		c.failedRequests.Add(1)
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		c.failedRequests.Add(1)
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.failedRequests.Add(1)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.failedRequests.Add(1)
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var fields map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&fields); err != nil {
		c.failedRequests.Add(1)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.successRequests.Add(1)
	return fields, nil
}

// Stats returns a snapshot of the request counters.
func (c *HTTP) Stats() Stats {
	return Stats{
		Total:     c.totalRequests.Load(),
		Successes: c.successRequests.Load(),
		Failures:  c.failedRequests.Load(),
	}
}
