package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOpenBuffer_ExistingFile verifies an existing file loads into a buffer
func TestOpenBuffer_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld"), 0644))

	buf, exists, err := openBuffer(path)

	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, "hello\nworld", buf.String())
}

// TestOpenBuffer_MissingFile verifies a missing file opens as an empty
// buffer without touching the disk
func TestOpenBuffer_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	buf, exists, err := openBuffer(path)

	require.NoError(t, err)
	require.False(t, exists)
	require.Equal(t, "", buf.String())
	require.Equal(t, 1, buf.LineCount())

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "file must not be created")
}

// TestOpenBuffer_Directory verifies opening a directory fails
func TestOpenBuffer_Directory(t *testing.T) {
	dir := t.TempDir()

	_, _, err := openBuffer(dir)

	require.Error(t, err)
}
