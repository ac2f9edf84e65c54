package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal text",
			input:    "Normal Text",
			expected: "Normal Text",
		},
		{
			name:     "text with colon",
			input:    "Portal 2: Peer Review",
			expected: "Portal 2 - Peer Review",
		},
		{
			name:     "text with slash",
			input:    "Half-Life/Blue Shift",
			expected: "Half-Life-Blue Shift",
		},
		{
			name:     "text with backslash",
			input:    "Title\\Subtitle",
			expected: "Title-Subtitle",
		},
		{
			name:     "reserved characters",
			input:    `Who? "Me" <3 | *`,
			expected: "Who Me 3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeFilename(tc.input))
		})
	}
}

func TestOutputPath(t *testing.T) {
	testCases := []struct {
		name     string
		appID    int
		appName  string
		ext      string
		expected string
	}{
		{name: "named", appID: 440, appName: "Team Fortress 2", ext: "md", expected: filepath.Join("out", "440 - Team Fortress 2.md")},
		{name: "dotted ext", appID: 10, appName: "Counter-Strike", ext: ".json", expected: filepath.Join("out", "10 - Counter-Strike.json")},
		{name: "empty name", appID: 7, appName: "  ", ext: "yaml", expected: filepath.Join("out", "7.yaml")},
		{name: "sanitized", appID: 620, appName: "Portal 2: Co-op", ext: "txt", expected: filepath.Join("out", "620 - Portal 2 - Co-op.txt")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, OutputPath("out", tc.appID, tc.appName, tc.ext))
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.txt")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestWriteFileWithOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "440.md")

	written, err := WriteFileWithOverwrite(path, []byte("first"), 0644, false)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = WriteFileWithOverwrite(path, []byte("second"), 0644, false)
	require.NoError(t, err)
	assert.False(t, written, "existing file must be kept without overwrite")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))

	written, err = WriteFileWithOverwrite(path, []byte("third"), 0644, true)
	require.NoError(t, err)
	assert.True(t, written)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "third", string(content))
}
