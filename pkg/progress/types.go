package progress

import "io"

// Config holds the configuration for the progress bar.
type Config struct {
	// Writer is where the bar is rendered. If nil, defaults to os.Stderr
	// so report output on stdout stays clean.
	Writer io.Writer

	// Width is the total render width in columns (0 = auto-detect from
	// the terminal, falling back to 80).
	Width int

	// NoColor disables colored output.
	NoColor bool
}

// Bar is a consumed-count progress indicator. Start fixes the total,
// Advance reports consumed deltas, and Close renders the final state
// and releases the line.
type Bar interface {
	// Start begins the bar with the given fixed total.
	Start(total int)

	// Advance moves the bar forward by n units. Values advancing past
	// the total are clamped.
	Advance(n int)

	// Close renders the final state and terminates the bar line.
	Close()
}
