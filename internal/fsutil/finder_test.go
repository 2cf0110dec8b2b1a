package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	for _, f := range []string{"Token.sol", "lib/Math.sol", "lib/README.md", "a/b/Deep.sol"} {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o600))
	}

	// --- Act ---
	files, err := FindFilesByExtension(context.Background(), root, ".sol")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"Token.sol", "a/b/Deep.sol", "lib/Math.sol"}, files)
}

func TestFindFilesByExtension_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindFilesByExtension(ctx, t.TempDir(), ".sol")
	require.ErrorIs(t, err, context.Canceled)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { _, _ = FindFilesByExtension(context.Background(), ".", "") })
}

func TestCheckReadableDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	require.NoError(t, CheckReadableDir(root))
	require.ErrorContains(t, CheckReadableDir(filepath.Join(root, "missing")), "does not exist")
	require.ErrorContains(t, CheckReadableDir(file), "is not a directory")
}
