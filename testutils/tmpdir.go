package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTmpDir creates a temporary directory and makes it the working
// directory, so session files written by commands land somewhere disposable.
// The path is returned for cleanup.
func SetupTmpDir(t *testing.T) string {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "test")
	require.NoError(t, err)

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	return tempDir
}
