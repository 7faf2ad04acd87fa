/*
Package app signal handling provides cleanup on interruption. The first
SIGINT or SIGTERM cancels the run context so in-flight lookups fail fast
and drain as failure records; a second signal forces an immediate exit.
*/
package app

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/johnklee/aegis.utils/pkg/logger"
)

// setupSignalHandling initializes signal handling for interruption cleanup
func (a *App) setupSignalHandling() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go a.handleSignals(sigChan)
}

// handleSignals processes incoming system signals
func (a *App) handleSignals(sigChan chan os.Signal) {
	var interrupted atomic.Bool

	for sig := range sigChan {
		a.log.WithFields(logger.Fields{
			"signal": sig.String(),
		}).Warn("Received system signal")

		if interrupted.Load() {
			a.log.Warn("Second interrupt, forcing shutdown")
			os.Exit(1)
		}
		interrupted.Store(true)

		// Cancel in-flight lookups; the pool then drains the remaining
		// queue with fast failures and the run finishes normally.
		a.cancel()
	}
}
