/*
Package progress provides a terminal progress bar for batch operations.
The bar is driven externally: a caller fixes the total with Start and
reports consumed deltas with Advance, so it fits drain-rate sampling
where updates arrive in bursts.

Basic usage:

	bar := progress.New(progress.Config{}, log)
	bar.Start(100)
	bar.Advance(10)
	...
	bar.Close()
*/
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/johnklee/aegis.utils/pkg/logger"
	"golang.org/x/term"
)

type bar struct {
	config Config
	log    logger.Logger
	writer io.Writer

	mu      sync.Mutex
	total   int
	current int
	start   time.Time
	started bool
	width   int

	fill *color.Color
}

// New creates a new progress bar instance.
func New(config Config, log logger.Logger) Bar {
	b := &bar{
		config: config,
		log:    log,
		writer: config.Writer,
		fill:   color.New(color.FgGreen),
	}

	if b.writer == nil {
		b.writer = os.Stderr
	}

	if config.Width > 0 {
		b.width = config.Width
	} else {
		b.width = b.terminalWidth()
	}

	if config.NoColor {
		b.fill.DisableColor()
	}

	return b
}

func (b *bar) Start(total int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.log.WithFields(logger.Fields{
		"total": total,
	}).Debug("Starting progress bar")

	b.total = total
	b.current = 0
	b.start = time.Now()
	b.started = true
	b.render()
}

func (b *bar) Advance(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.started || n <= 0 {
		return
	}

	b.current += n
	if b.current > b.total {
		b.current = b.total
	}
	b.render()
}

func (b *bar) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.started {
		return
	}

	b.render()
	fmt.Fprintln(b.writer)
	b.started = false
}

func (b *bar) render() {
	var percent float64
	if b.total > 0 {
		percent = float64(b.current) / float64(b.total)
	} else {
		percent = 1
	}

	elapsed := time.Since(b.start).Seconds()
	var speed float64
	if elapsed > 0 {
		speed = float64(b.current) / elapsed
	}

	counts := fmt.Sprintf(" %3.0f%% (%d/%d) %.1f it/s", percent*100, b.current, b.total, speed)

	barWidth := b.width - len(counts) - 2
	if barWidth < 10 {
		barWidth = 10
	}

	filled := int(float64(barWidth) * percent)
	if filled > barWidth {
		filled = barWidth
	}

	var line strings.Builder
	line.WriteString("[")
	line.WriteString(b.fill.Sprint(strings.Repeat("=", filled)))
	if filled < barWidth {
		line.WriteString(">")
		line.WriteString(strings.Repeat(" ", barWidth-filled-1))
	}
	line.WriteString("]")
	line.WriteString(counts)

	b.clearLine()
	fmt.Fprint(b.writer, line.String())
}

func (b *bar) clearLine() {
	if b.isTerminal() {
		fmt.Fprint(b.writer, "\r\033[K")
	} else {
		fmt.Fprint(b.writer, "\r")
	}
}

func (b *bar) isTerminal() bool {
	if f, ok := b.writer.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func (b *bar) terminalWidth() int {
	if f, ok := b.writer.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			return w
		}
	}

	return 80
}
