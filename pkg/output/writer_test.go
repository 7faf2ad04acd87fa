package output

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/johnklee/aegis.utils/pkg/batch"
	"github.com/johnklee/aegis.utils/pkg/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestLogger(buf *bytes.Buffer) logger.Logger {
	var out io.Writer = io.Discard
	if buf != nil {
		out = buf
	}
	return logger.NewLogger(logger.Config{Output: out})
}

func TestWriteEmptyRecordsIsEmptyArray(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(Config{Format: FormatJSON}, fs, newTestLogger(nil))

	require.NoError(t, w.Write("successes", nil, "out.json"))

	data, err := afero.ReadFile(fs, "out.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	var parsed []batch.Record
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Empty(t, parsed)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(Config{Format: FormatJSON}, fs, newTestLogger(nil))

	records := []batch.Record{
		{"easy_id": float64(1), "status": "active"},
		{"easy_id": float64(2), "error": "status code=404"},
	}
	require.NoError(t, w.Write("successes", records, "out.json"))

	data, err := afero.ReadFile(fs, "out.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "    ") // indented output

	var parsed []batch.Record
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, records, parsed)
}

func TestWriteYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(Config{Format: FormatYAML}, fs, newTestLogger(nil))

	records := []batch.Record{
		{"easy_id": 1, "status": "active"},
	}
	require.NoError(t, w.Write("successes", records, "out.yaml"))

	data, err := afero.ReadFile(fs, "out.yaml")
	require.NoError(t, err)

	var parsed []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "active", parsed[0]["status"])
}

func TestWriteWithoutPathLogsRecords(t *testing.T) {
	var buf bytes.Buffer
	fs := afero.NewMemMapFs()
	w := NewWriter(Config{Format: FormatJSON}, fs, newTestLogger(&buf))

	records := []batch.Record{{"easy_id": 7}}
	require.NoError(t, w.Write("failures", records, ""))

	logged := buf.String()
	assert.Contains(t, logged, "easy_id")
	assert.Contains(t, logged, "failures")

	// Nothing should have been written to the filesystem.
	empty, err := afero.IsEmpty(fs, "/")
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestWriteUnsupportedFormat(t *testing.T) {
	w := NewWriter(Config{Format: "xml"}, afero.NewMemMapFs(), newTestLogger(nil))

	err := w.Write("successes", []batch.Record{{"easy_id": 1}}, "out.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
