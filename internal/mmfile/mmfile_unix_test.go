//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap_MatchesReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob")
	payload := []byte("adler agrees across processes\x00\x01\x02")
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, payload, data)

	require.NoError(t, cleanup())
	// Cleanup is idempotent.
	require.NoError(t, cleanup())
}

func TestMap_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NoError(t, cleanup())
}

func TestMap_MissingFile(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
