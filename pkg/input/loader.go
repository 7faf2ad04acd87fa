/*
Package input loads identifiers for a batch run from a text file, one
identifier per line. Lines starting with the comment marker and blank
lines are discarded; remaining lines are trimmed and kept in file order.

Basic usage:

	loader := input.NewLoader(afero.NewOsFs(), log)
	ids, err := loader.Load("ids.txt")
	if errors.Is(err, input.ErrNotFound) {
	    // fatal: nothing was loaded, abort before any network activity
	}
*/
package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/johnklee/aegis.utils/pkg/logger"
	"github.com/spf13/afero"
)

// CommentMarker prefixes lines that are skipped during loading.
const CommentMarker = "#"

// ErrNotFound reports that the input file does not exist. It is the only
// loader failure that aborts the whole run.
var ErrNotFound = errors.New("input file not found")

// Loader reads identifier files through an afero filesystem, which keeps
// it testable against an in-memory fs.
type Loader struct {
	fs  afero.Fs
	log logger.Logger
}

// NewLoader creates a loader over the given filesystem.
func NewLoader(fs afero.Fs, log logger.Logger) *Loader {
	return &Loader{fs: fs, log: log}
}

// Load reads the file at path and returns its identifiers in order.
func (l *Loader) Load(path string) ([]string, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentMarker) {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	l.log.WithFields(logger.Fields{
		"path":  path,
		"count": len(ids),
	}).Debug("Identifiers loaded")

	return ids, nil
}
