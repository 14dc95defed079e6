package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMode_String verifies the status-line labels
func TestMode_String(t *testing.T) {
	require.Equal(t, "NORMAL", ModeNormal.String())
	require.Equal(t, "INSERT", ModeInsert.String())
	require.Equal(t, "QUITTING", ModeQuit.String())
	require.Equal(t, "UNKNOWN", Mode(42).String())
}
