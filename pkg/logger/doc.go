/*
Package logger provides a structured logging solution for the statusq
application. It wraps the uber-go/zap logger behind a small interface with
verbosity levels and structured fields.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0,  // Default level (INFO)
	})

	log.Info("Batch started")
	log.Debug("Identifier dequeued") // Only shown with verbosity >= 1

Verbosity Levels:

	0: Info, Warn, Error (default)
	1+: Debug + Level 0

Structured Logging:

	log.WithFields(logger.Fields{
	    "component": "worker",
	    "easy_id":   42,
	}).Info("Lookup completed")

Output Example (JSON):

	{
	    "level": "info",
	    "ts": "2024-01-20T15:04:05.000Z",
	    "message": "Lookup completed",
	    "component": "worker",
	    "easy_id": 42
	}

Thread Safety:

The logger is safe for concurrent use by multiple goroutines. All logging
methods can be called concurrently.
*/
package logger
