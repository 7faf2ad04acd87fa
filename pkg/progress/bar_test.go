package progress

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/johnklee/aegis.utils/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testWriter struct {
	mu     sync.Mutex
	buffer bytes.Buffer
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buffer.Write(p)
}

func (w *testWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buffer.String()
}

func newTestLogger() logger.Logger {
	return logger.NewLogger(logger.Config{Output: io.Discard})
}

func TestBarRendersCountsAndPercent(t *testing.T) {
	w := &testWriter{}
	bar := New(Config{Writer: w, Width: 60, NoColor: true}, newTestLogger())

	bar.Start(10)
	bar.Advance(5)

	out := w.String()
	assert.Contains(t, out, "(5/10)")
	assert.Contains(t, out, "50%")
}

func TestBarReachesTotalOnFlush(t *testing.T) {
	w := &testWriter{}
	bar := New(Config{Writer: w, Width: 60, NoColor: true}, newTestLogger())

	bar.Start(10)
	bar.Advance(3)
	bar.Advance(4)
	bar.Advance(3)
	bar.Close()

	out := w.String()
	assert.Contains(t, out, "(10/10)")
	assert.Contains(t, out, "100%")
	assert.True(t, strings.HasSuffix(out, "\n"), "Close should terminate the line")
}

func TestBarClampsPastTotal(t *testing.T) {
	w := &testWriter{}
	bar := New(Config{Writer: w, Width: 60, NoColor: true}, newTestLogger())

	bar.Start(5)
	bar.Advance(9)
	bar.Close()

	assert.Contains(t, w.String(), "(5/5)")
}

func TestBarZeroTotal(t *testing.T) {
	w := &testWriter{}
	bar := New(Config{Writer: w, Width: 60, NoColor: true}, newTestLogger())

	bar.Start(0)
	bar.Close()

	out := w.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "(0/0)")
	assert.Contains(t, out, "100%")
}

func TestBarIgnoresUpdatesBeforeStart(t *testing.T) {
	w := &testWriter{}
	bar := New(Config{Writer: w, Width: 60, NoColor: true}, newTestLogger())

	bar.Advance(3)
	bar.Close()

	assert.Empty(t, w.String())
}
