package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/phint/pkg/config"
	"github.com/arthur-debert/phint/pkg/filesystem"
	"github.com/arthur-debert/phint/pkg/paths"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// MemoryHome is the home directory of memory environments
const MemoryHome = "/virtual/home"

// TestEnvironment ties a home directory, a filesystem and a paths helper
// together for one test
type TestEnvironment struct {
	HomeDir    string
	ConfigHome string

	FS     filesystem.FS
	Helper *paths.Helper

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. Both types point HOME
// and the XDG variables at the environment and clear PHINT_* overrides.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
	}

	switch envType {
	case EnvMemoryOnly:
		env.HomeDir = MemoryHome
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.HomeDir = t.TempDir()
		env.FS = filesystem.NewOS()
	default:
		t.Fatalf("unknown environment type %d", envType)
	}
	env.ConfigHome = filepath.Join(env.HomeDir, ".config")

	isolateEnv(t, env.HomeDir)

	if err := env.FS.MkdirAll(env.HomeDir, 0755); err != nil {
		t.Fatalf("Failed to create home directory: %v", err)
	}

	env.Helper = paths.New(
		paths.WithFS(env.FS),
		paths.WithConfig(config.Default()),
		paths.WithHome(env.HomeDir),
	)

	return env
}

// isolateEnv points HOME and the XDG directories under home and unsets
// every PHINT_* variable for the duration of the test
func isolateEnv(t *testing.T, home string) {
	t.Helper()

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, ".etc"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, config.EnvPrefix) {
			continue
		}
		name := strings.SplitN(kv, "=", 2)[0]
		// Setenv registers the restore; the variable must be absent, not empty
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}

	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

// Path joins elem onto the home directory
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.HomeDir}, elem...)...)
}

// WithFileTree creates tree under the home directory
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.HomeDir, tree)
}

// WithFiles writes flat path -> content pairs under the home directory,
// creating parent directories
func (env *TestEnvironment) WithFiles(files map[string]string) {
	env.t.Helper()
	for name, content := range files {
		path := env.Path(name)
		if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
			env.t.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
			env.t.Fatalf("Failed to write file %s: %v", name, err)
		}
	}
}

// ReadFile returns the content of a file under the home directory
func (env *TestEnvironment) ReadFile(elem ...string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(env.Path(elem...))
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", filepath.Join(elem...), err)
	}
	return string(data)
}

// FileTree represents a directory structure for testing. Values are file
// contents (string) or nested trees.
type FileTree map[string]interface{}

// CreateFileTree recursively creates tree under basePath
func CreateFileTree(t *testing.T, fsys filesystem.FS, basePath string, tree FileTree) {
	t.Helper()

	if err := fsys.MkdirAll(basePath, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", basePath, err)
	}

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fsys.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			CreateFileTree(t, fsys, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
