/*
Package app provides the main application container and orchestration for the
statusq application. It wires the components of one batch run together:
identifier loading, the worker pool draining the shared queue, the optional
progress monitor, and the report writers.

Usage:

	application := app.New(cfg)
	defer application.Shutdown()

	if err := application.Run(); err != nil {
	    log.Fatal(err)
	}
*/
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/johnklee/aegis.utils/internal/config"
	"github.com/johnklee/aegis.utils/pkg/batch"
	"github.com/johnklee/aegis.utils/pkg/client"
	"github.com/johnklee/aegis.utils/pkg/input"
	"github.com/johnklee/aegis.utils/pkg/logger"
	"github.com/johnklee/aegis.utils/pkg/output"
	"github.com/johnklee/aegis.utils/pkg/progress"
	"github.com/spf13/afero"
)

// App represents the main application container
type App struct {
	config *config.Config
	log    logger.Logger

	loader *input.Loader
	client *client.HTTP
	writer output.Writer
	bar    progress.Bar

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

// New creates a new application instance
func New(cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		config: cfg,
		ctx:    ctx,
		cancel: cancel,
	}

	a.initLogger()
	a.initComponents()
	a.setupSignalHandling()

	a.log.WithFields(logger.Fields{
		"workers": cfg.Workers,
		"url":     cfg.URL(),
	}).Debug("Application initialized")

	return a
}

// Run executes one batch: load identifiers, drain them through the worker
// pool, and write the success and failure reports.
func (a *App) Run() error {
	start := time.Now()

	ids, err := a.loader.Load(a.config.Input)
	if err != nil {
		a.log.WithFields(logger.Fields{
			"path":  a.config.Input,
			"error": err.Error(),
		}).Error("Failed to load identifiers")
		return err
	}

	a.log.WithFields(logger.Fields{
		"url":   a.config.URL(),
		"count": len(ids),
	}).Info("Identifiers loaded, starting batch")

	queue := batch.NewQueue(ids)
	sink := batch.NewSink()

	pool, err := batch.NewPool(batch.Config{
		Workers:   a.config.Workers,
		RateLimit: a.config.RateLimit,
	}, queue, sink, a.client, a.log)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}

	if err := pool.Start(a.ctx); err != nil {
		return fmt.Errorf("start worker pool: %w", err)
	}

	if a.config.Progress {
		monitor := batch.NewMonitor(queue, pool, a.bar, batch.DefaultSampleInterval, a.log)
		monitor.Run()
	}
	pool.Wait()

	stats := a.client.Stats()
	successCount, failureCount := sink.Counts()
	a.log.WithFields(logger.Fields{
		"requests":  stats.Total,
		"successes": successCount,
		"failures":  failureCount,
	}).Info("Batch drained")

	if err := a.writer.Write("successes", sink.Successes(), a.config.Output); err != nil {
		return err
	}
	if failures := sink.Failures(); len(failures) > 0 {
		if err := a.writer.Write("failures", failures, a.config.ErrorOutput); err != nil {
			return err
		}
	}

	a.log.WithFields(logger.Fields{
		"duration": time.Since(start).String(),
	}).Info("Batch completed")

	return nil
}

// Shutdown cancels any in-flight work and releases resources.
func (a *App) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancel()
	a.log.Debug("Shutdown complete")
}

// initLogger initializes the application logger with a per-run identifier.
func (a *App) initLogger() {
	a.log = logger.NewLogger(logger.Config{
		Verbosity: a.config.Verbose,
	}).WithFields(logger.Fields{
		"run_id": uuid.NewString(),
	})
}

// initComponents initializes all application components
func (a *App) initComponents() {
	fs := afero.NewOsFs()

	a.loader = input.NewLoader(fs, a.log)

	a.client = client.New(client.Config{
		URL:     a.config.URL(),
		Timeout: a.config.Timeout,
	}, a.log)

	a.writer = output.NewWriter(output.Config{
		Format: output.Format(a.config.Format),
	}, fs, a.log)

	a.bar = progress.New(progress.Config{
		NoColor: a.config.NoColor,
	}, a.log)
}
