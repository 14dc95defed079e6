package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLevel_String verifies the level labels
func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
}

// TestLogging_BeforeInitIsSafe verifies logging without Init is a no-op
func TestLogging_BeforeInitIsSafe(t *testing.T) {
	require.NotPanics(t, func() {
		Debug(CatEditor, "no logger yet", "k", "v")
		ErrorErr(CatEditor, "still fine", nil)
	})
}

// TestInit_WritesStructuredLines exercises the whole logger lifecycle in
// one test; Init is once-only for the process.
func TestInit_WritesStructuredLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rouge.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	defer cleanup()

	Info(CatEditor, "editor ready", "lines", 3, "width", 80)
	Warn(CatWrap, "odd width", "width", 1)

	SetMinLevel(LevelError)
	Debug(CatCursor, "filtered out")
	SetMinLevel(LevelDebug)

	SetEnabled(false)
	Info(CatEditor, "suppressed")
	SetEnabled(true)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	require.Contains(t, out, "[INFO] [editor] editor ready lines=3 width=80")
	require.Contains(t, out, "[WARN] [wrap] odd width width=1")
	require.NotContains(t, out, "filtered out")
	require.NotContains(t, out, "suppressed")
}
