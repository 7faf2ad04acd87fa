package batch

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue([]string{"1", "2", "3"})
	assert.Equal(t, 3, q.Len())

	for _, want := range []string{"1", "2", "3"} {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestQueuePush(t *testing.T) {
	q := NewQueue(nil)
	q.Push("a")
	q.Push("b")

	got, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", got)
	assert.Equal(t, 1, q.Len())
}

func TestQueueConcurrentPopExactlyOnce(t *testing.T) {
	const n = 1000
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}
	q := NewQueue(ids)

	var mu sync.Mutex
	seen := make(map[string]int, n)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				id, ok := q.Pop()
				if !ok {
					return
				}
				mu.Lock()
				seen[id]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, n, "every identifier must be consumed")
	for id, count := range seen {
		assert.Equalf(t, 1, count, "identifier %s consumed more than once", id)
	}
	assert.Equal(t, 0, q.Len())
}

func TestSinkConcurrentAppends(t *testing.T) {
	s := NewSink()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				s.Success(Record{"easy_id": i})
			} else {
				s.Failure(Record{"easy_id": i, "error": "boom"})
			}
		}()
	}
	wg.Wait()

	successes, failures := s.Counts()
	assert.Equal(t, 50, successes)
	assert.Equal(t, 50, failures)
	assert.Len(t, s.Successes(), 50)
	assert.Len(t, s.Failures(), 50)
}

func TestSinkSnapshotsAreCopies(t *testing.T) {
	s := NewSink()
	s.Success(Record{"easy_id": 1})

	snap := s.Successes()
	snap[0] = Record{"easy_id": 99}

	assert.Equal(t, Record{"easy_id": 1}, s.Successes()[0])
}
