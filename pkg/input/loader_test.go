package input

import (
	"io"
	"testing"

	"github.com/johnklee/aegis.utils/pkg/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() logger.Logger {
	return logger.NewLogger(logger.Config{Output: io.Discard})
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "plain identifiers",
			content:  "1\n2\n3\n",
			expected: []string{"1", "2", "3"},
		},
		{
			name:     "comments and whitespace filtered",
			content:  "#skip\n42\n  7  \n",
			expected: []string{"42", "7"},
		},
		{
			name:     "blank lines skipped",
			content:  "\n1\n\n\n2\n",
			expected: []string{"1", "2"},
		},
		{
			name:     "order preserved",
			content:  "9\n# comment\n3\n5\n",
			expected: []string{"9", "3", "5"},
		},
		{
			name:     "comment-only file yields empty batch",
			content:  "# a\n# b\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "ids.txt", []byte(tt.content), 0644))

			loader := NewLoader(fs, newTestLogger())
			ids, err := loader.Load("ids.txt")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(afero.NewMemMapFs(), newTestLogger())

	_, err := loader.Load("nope.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
