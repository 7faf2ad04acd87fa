/*
Package output serializes batch result records as indented JSON or YAML
and writes them to a file, or logs them when no destination is configured.

Basic usage:

	writer := output.NewWriter(output.Config{
		Format: output.FormatJSON,
	}, afero.NewOsFs(), log)

	err := writer.Write("result", records, "out.json")
*/
package output

import (
	"fmt"

	"github.com/johnklee/aegis.utils/pkg/batch"
	"github.com/johnklee/aegis.utils/pkg/logger"
	"github.com/spf13/afero"
)

// Format represents the report format type.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Config holds writer configuration.
type Config struct {
	Format Format
}

// Writer defines the interface for report writing.
type Writer interface {
	// Write serializes the records and writes them to path. With an empty
	// path the serialized form is logged instead. The label names the
	// record collection in log output.
	Write(label string, records []batch.Record, path string) error
}

type writer struct {
	config Config
	fs     afero.Fs
	log    logger.Logger
}

// NewWriter creates a new report writer instance.
func NewWriter(config Config, fs afero.Fs, log logger.Logger) Writer {
	return &writer{
		config: config,
		fs:     fs,
		log:    log,
	}
}

func (w *writer) Write(label string, records []batch.Record, path string) error {
	// A nil slice must still serialize as an empty array, not null.
	if records == nil {
		records = []batch.Record{}
	}

	data, err := w.marshal(records)
	if err != nil {
		w.log.WithFields(logger.Fields{
			"label": label,
			"error": err,
		}).Error("Failed to serialize records")
		return err
	}

	if path == "" {
		w.log.WithFields(logger.Fields{
			"label": label,
			"count": len(records),
		}).Info("Collected records:\n" + string(data))
		return nil
	}

	if err := afero.WriteFile(w.fs, path, data, 0644); err != nil {
		w.log.WithFields(logger.Fields{
			"label": label,
			"path":  path,
			"error": err,
		}).Error("Failed to write report file")
		return fmt.Errorf("write report file: %w", err)
	}

	w.log.WithFields(logger.Fields{
		"label": label,
		"path":  path,
		"count": len(records),
	}).Info("Report written")

	return nil
}

func (w *writer) marshal(records []batch.Record) ([]byte, error) {
	switch w.config.Format {
	case FormatJSON, "":
		return marshalJSON(records)
	case FormatYAML:
		return marshalYAML(records)
	default:
		return nil, fmt.Errorf("unsupported format: %s", w.config.Format)
	}
}
