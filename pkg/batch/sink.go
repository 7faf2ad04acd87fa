package batch

import "sync"

// Sink collects lookup outcomes into two append-only sequences, one for
// successes and one for failures. Appends are safe for concurrent use by
// multiple workers; ordering across workers is arbitrary.
type Sink struct {
	mu        sync.Mutex
	successes []Record
	failures  []Record
}

// NewSink creates an empty result sink.
func NewSink() *Sink {
	return &Sink{}
}

// Success appends a record to the successes sequence.
func (s *Sink) Success(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successes = append(s.successes, r)
}

// Failure appends a record to the failures sequence.
func (s *Sink) Failure(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, r)
}

// Successes returns a snapshot of the successes sequence.
func (s *Sink) Successes() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.successes))
	copy(out, s.successes)
	return out
}

// Failures returns a snapshot of the failures sequence.
func (s *Sink) Failures() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.failures))
	copy(out, s.failures)
	return out
}

// Counts returns the current number of success and failure records.
func (s *Sink) Counts() (successes, failures int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.successes), len(s.failures)
}
