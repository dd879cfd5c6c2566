package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/phint/pkg/config"
	"github.com/arthur-debert/phint/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataPath(t *testing.T) {
	h, fsys := newMemoryHelper(t)

	assert.Equal(t, testHome+"/.phint", h.DataPath())
	assert.True(t, filesystem.IsDir(fsys, testHome+"/.phint"))

	assert.Equal(t, testHome+"/.phint/help", h.DataPath("help"))
	assert.Equal(t, testHome+"/.phint/help", h.DataPath("/help"))
	assert.Equal(t, testHome+"/.phint/a/b", h.DataPath("a", "b"))
	assert.Equal(t, testHome+"/.phint", h.DataPath(""))
}

func TestDataPathIsResolvedOnce(t *testing.T) {
	h, fsys := newMemoryHelper(t)

	first := h.DataPath()
	require.NoError(t, fsys.Remove(first))

	assert.Equal(t, first, h.DataPath())
	assert.False(t, filesystem.IsDir(fsys, first), "not recreated after the first call")
}

func TestDataPathCustomDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = ".custom"
	h, _ := newMemoryHelper(t, WithConfig(cfg))

	assert.Equal(t, testHome+"/.custom", h.DataPath())
}

func TestDataPathRootHome(t *testing.T) {
	h, _ := newMemoryHelper(t, WithHome("/"))

	assert.Equal(t, "/.phint", h.DataPath())
}

func TestDataPathUnavailable(t *testing.T) {
	t.Run("no home", func(t *testing.T) {
		h, _ := newMemoryHelper(t, WithHome(""))

		assert.Empty(t, h.DataPath())
		assert.Empty(t, h.DataPath("help"))
	})

	t.Run("cannot create", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "home")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))
		h := New(
			WithFS(filesystem.NewOS()),
			WithConfig(config.Default()),
			WithHome(blocker),
		)

		assert.Empty(t, h.DataPath())

		// stays empty even once creation would succeed
		require.NoError(t, os.Remove(blocker))
		assert.Empty(t, h.DataPath("help"))
	})
}

func TestDataLocation(t *testing.T) {
	h, fsys := newMemoryHelper(t)

	assert.Equal(t, testHome+"/.phint/help", h.DataLocation("help"))
	assert.Equal(t, testHome+"/.phint", h.DataLocation())
	assert.False(t, filesystem.IsDir(fsys, testHome+"/.phint"), "nothing created")

	assert.Equal(t, h.DataLocation("help"), h.DataPath("help"))

	noHome, _ := newMemoryHelper(t, WithHome(""))
	assert.Empty(t, noHome.DataLocation("help"))
}
