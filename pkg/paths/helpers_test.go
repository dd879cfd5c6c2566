package paths

import (
	"testing"

	"github.com/arthur-debert/phint/pkg/config"
	"github.com/arthur-debert/phint/pkg/filesystem"
	"github.com/stretchr/testify/require"
)

const testHome = "/home/test"

// newMemoryHelper returns a helper on an empty in-memory filesystem
func newMemoryHelper(t *testing.T, opts ...Option) (*Helper, filesystem.FS) {
	t.Helper()
	fsys := filesystem.NewMemory()
	base := []Option{
		WithFS(fsys),
		WithConfig(config.Default()),
		WithHome(testHome),
	}
	return New(append(base, opts...)...), fsys
}

// newOSHelper returns a helper on the real filesystem, homed in a temp dir
func newOSHelper(t *testing.T) (*Helper, string) {
	t.Helper()
	home := t.TempDir()
	h := New(
		WithFS(filesystem.NewOS()),
		WithConfig(config.Default()),
		WithHome(home),
	)
	return h, home
}

func writeFiles(t *testing.T, h *Helper, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, h.WriteFile(path, content))
	}
}
