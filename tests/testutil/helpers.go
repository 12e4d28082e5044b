// Package testutil provides shared helpers for the integration and
// e2e test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the repository root by walking up from the test's
// working directory. It fails the test if the working directory cannot
// be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}
