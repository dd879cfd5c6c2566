package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/phint/internal/version"
	"github.com/arthur-debert/phint/pkg/symbols"
	"github.com/arthur-debert/phint/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	code   int
}

// run executes phint with args, feeding stdin
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	a := &app{}
	rootCmd := newRootCmd(a)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	code := execute(a, rootCmd)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func TestPathCommands(t *testing.T) {
	home := testutil.NewTestEnvironment(t, testutil.EnvIsolated).HomeDir

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"abs true", []string{"abs", "/usr/bin"}, "true\n"},
		{"abs false", []string{"abs", "usr/bin"}, "false\n"},
		{"rel", []string{"rel", "/srv/app/src/A.php", "/opt/", "/srv/app/"}, "src/A.php\n"},
		{"rel no match", []string{"rel", "/srv/a", "/opt"}, "/srv/a\n"},
		{"ext", []string{"ext", "archive.tar.gz"}, "gz\n"},
		{"ext none", []string{"ext", "Makefile"}, "\n"},
		{"join", []string{"join", "a/", "/b/", "c"}, "a/b/c\n"},
		{"expand tilde", []string{"expand", "~/src"}, home + "/src\n"},
		{"expand dot", []string{"expand", ".", "--from", "/srv/app"}, "/srv/app\n"},
		{"expand relative", []string{"expand", "src", "--from", "/srv/app/"}, "/srv/app/src\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestArgumentValidation(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	for _, args := range [][]string{
		{"abs"},
		{"rel", "/only"},
		{"join"},
		{"write", "file"},
		{"bins", "/base"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			res := run(t, "", args...)
			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stderr, "Error:")
		})
	}
}

func TestNoCommand(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	res := run(t, "")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "PATHS:")
	assert.Contains(t, res.stderr, MsgNoCommand)
}

func TestWriteAndRead(t *testing.T) {
	home := testutil.NewTestEnvironment(t, testutil.EnvIsolated).HomeDir
	dir := filepath.Join(home, "work")

	t.Run("text", func(t *testing.T) {
		file := filepath.Join(dir, "a", "notes.txt")
		res := run(t, "", "write", file, "hello")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Empty(t, res.stdout)

		res = run(t, "", "write", "--append", file, " world")
		require.Equal(t, 0, res.code, res.stderr)

		res = run(t, "", "read", file)
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "hello world", res.stdout)
	})

	t.Run("json from stdin", func(t *testing.T) {
		file := filepath.Join(dir, "composer.json")
		stdin := `{
  // package name
  "name": "acme/app",
  "require": {"php": ">=8.1"},
}`
		res := run(t, stdin, "write", "--json", file, "-")
		require.Equal(t, 0, res.code, res.stderr)

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Equal(t, "{\n    \"name\": \"acme/app\",\n    \"require\": {\n        \"php\": \">=8.1\"\n    }\n}", string(data))

		res = run(t, "", "read", "--json", "--format", "json", file)
		require.Equal(t, 0, res.code, res.stderr)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
		assert.Equal(t, "acme/app", got["name"])
	})

	t.Run("invalid json", func(t *testing.T) {
		res := run(t, "", "write", "--json", filepath.Join(dir, "bad.json"), "{nope")
		assert.Equal(t, 1, res.code)
		assert.NoFileExists(t, filepath.Join(dir, "bad.json"))
	})

	t.Run("read missing", func(t *testing.T) {
		res := run(t, "", "--format", "json", "read", filepath.Join(dir, "missing"))
		assert.Equal(t, 1, res.code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(res.stderr), &got))
		assert.Equal(t, "FILE_NOT_FOUND", got["code"])
	})

	t.Run("read json of missing file is null", func(t *testing.T) {
		res := run(t, "", "--format", "json", "read", "--json", filepath.Join(dir, "missing.json"))
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "null\n", res.stdout)
	})
}

func TestMkdir(t *testing.T) {
	home := testutil.NewTestEnvironment(t, testutil.EnvIsolated).HomeDir
	dirs := []string{filepath.Join(home, "x", "y"), filepath.Join(home, "z")}

	res := run(t, "", append([]string{"mkdir", "--mode", "0750"}, dirs...)...)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, strings.Join(dirs, "\n")+"\n", res.stdout)
	for _, dir := range dirs {
		assert.DirExists(t, dir)
	}

	res = run(t, "", "mkdir", "--mode", "999", filepath.Join(home, "bad"))
	assert.Equal(t, 1, res.code)
	assert.NoDirExists(t, filepath.Join(home, "bad"))
}

func TestDataDir(t *testing.T) {
	home := testutil.NewTestEnvironment(t, testutil.EnvIsolated).HomeDir

	res := run(t, "", "datadir")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, home+"/.phint\n", res.stdout)
	assert.DirExists(t, filepath.Join(home, ".phint"))

	res = run(t, "", "datadir", "/cache")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, home+"/.phint/cache\n", res.stdout)
}

func TestDataDirWithoutHome(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	t.Setenv("HOME", "")

	res := run(t, "", "datadir")
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
}

func TestDataDirFromEnvironment(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	custom := t.TempDir()
	t.Setenv("PHINT_HOME", custom)
	t.Setenv("PHINT_PATHS__DATA_DIR", "phint-data")

	res := run(t, "", "datadir")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, custom+"/phint-data\n", res.stdout)
}

func TestBins(t *testing.T) {
	home := testutil.NewTestEnvironment(t, testutil.EnvIsolated).HomeDir
	base := filepath.Join(home, "bin")

	res := run(t, "", "bins", base, "console", "worker")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, base+"/console\n"+base+"/worker\n", res.stdout)

	data, err := os.ReadFile(filepath.Join(base, "console"))
	require.NoError(t, err)
	assert.Equal(t, "#!/usr/bin/env php\n<?php\n", string(data))
}

func TestFind(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	home := env.HomeDir
	root := filepath.Join(home, "proj")
	env.WithFileTree(testutil.FileTree{
		"proj": testutil.FileTree{
			"a.php":    "",
			"b.md":     "",
			"Makefile": "",
			".env":     "",
			"src":      testutil.FileTree{"c.php": ""},
			".git":     testutil.FileTree{"config": ""},
			"vendor":   testutil.FileTree{"d.php": ""},
		},
	})

	res := run(t, "", "find", root, "--ext", "php")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, strings.Join([]string{
		root + "/a.php",
		root + "/src/c.php",
		root + "/vendor/d.php",
	}, "\n")+"\n", res.stdout)

	res = run(t, "", "find", root, "--dotfiles", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)
	var files []string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &files))
	assert.Contains(t, files, root+"/.env")
	assert.Contains(t, files, root+"/Makefile")
	assert.NotContains(t, files, root+"/.git/config")

	res = run(t, "", "find", root)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, strings.Join([]string{
		root + "/Makefile",
		root + "/a.php",
		root + "/b.md",
		root + "/src/c.php",
		root + "/vendor/d.php",
	}, "\n")+"\n", res.stdout)

	res = run(t, "", "find", root, "--ext", "md")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, root+"/b.md\n", res.stdout)

	res = run(t, "", "find", filepath.Join(home, "missing"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "does not exist")
}

func TestFindEmptyIsList(t *testing.T) {
	home := testutil.NewTestEnvironment(t, testutil.EnvIsolated).HomeDir
	require.NoError(t, os.Mkdir(filepath.Join(home, "empty"), 0755))

	res := run(t, "", "--format", "json", "find", filepath.Join(home, "empty"))
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "[]\n", res.stdout)
}

func TestTypes(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	home := env.HomeDir
	symbols.Default().Reset()
	t.Cleanup(symbols.Default().Reset)
	root := filepath.Join(home, "src")
	env.WithFiles(map[string]string{
		"src/Models/Invoice.php": "<?php\nnamespace Billing\\Models;\n\nclass Invoice {}\n",
		"src/Contracts.php":      "<?php\nnamespace Billing\\Contracts;\n\ninterface Payable {}\ntrait Refunds {}\n",
		"src/legacy.inc":         "<?php\nclass Legacy {}\n",
	})

	res := run(t, "", "types", root)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Billing\\Contracts\\Payable\nBilling\\Contracts\\Refunds\nBilling\\Models\\Invoice\n", res.stdout)

	res = run(t, "", "types", root, "--ns", "Billing\\Models")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Billing\\Models\\Invoice\n", res.stdout)

	res = run(t, "", "types", root, "--ext", "inc", "--ns", "Legacy")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Legacy\n", res.stdout)
}

func TestConfigCommand(t *testing.T) {
	home := testutil.NewTestEnvironment(t, testutil.EnvIsolated).HomeDir

	t.Run("toml", func(t *testing.T) {
		res := run(t, "", "config")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "[paths]")
		assert.Contains(t, res.stdout, home)
		assert.Contains(t, res.stdout, "0755")
	})

	t.Run("json", func(t *testing.T) {
		res := run(t, "", "config", "--format", "json")
		require.Equal(t, 0, res.code, res.stderr)

		var got map[string]map[string]string
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
		assert.Equal(t, ".phint", got["paths"]["data_dir"])
		assert.Equal(t, "0644", got["modes"]["file"])
	})

	t.Run("defaults", func(t *testing.T) {
		res := run(t, "", "config", "--defaults")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "# data_dir")
	})

	t.Run("init", func(t *testing.T) {
		path := filepath.Join(home, ".config", "phint", "config.toml")

		res := run(t, "", "config", "--init")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, path)
		assert.FileExists(t, path)

		res = run(t, "", "config", "--init")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "already exists")
	})

	t.Run("explicit file", func(t *testing.T) {
		file := filepath.Join(home, "custom.yaml")
		require.NoError(t, os.WriteFile(file, []byte("stub:\n  runtime: php8.3\n"), 0644))

		res := run(t, "", "--config", file, "config", "--format", "yaml")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "runtime: php8.3")
	})

	t.Run("broken file", func(t *testing.T) {
		res := run(t, "", "--config", filepath.Join(home, "nope.toml"), "config")
		assert.Equal(t, 1, res.code)
	})
}

func TestVersion(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	res := run(t, "", "version")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "phint version "+version.Version)

	res = run(t, "", "version", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)
	var got version.Info
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, version.Get(), got)
}

func TestInvalidFormat(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	res := run(t, "", "--format", "xml", "abs", "/x")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown format")
}

func TestHelpTopics(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WithFiles(map[string]string{
		".phint/help/paths.txt":        "HOW PATHS WORK\n",
		".phint/help/option-format.md": "# Output formats\n\nUse **json** for scripts.\n",
	})

	res := run(t, "", "help", "paths")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "HOW PATHS WORK\n", res.stdout)

	res = run(t, "", "help", "topics")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "paths")
	assert.Contains(t, res.stdout, "--format")

	res = run(t, "", "help", "format")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Output")
	assert.Contains(t, res.stdout, "json")
	assert.NotContains(t, res.stdout, "\x1b[")

	res = run(t, "", "help", "format", "--format", "text")
	require.Equal(t, 0, res.code, res.stderr)
	assert.NotContains(t, res.stdout, "\x1b[")
}

func TestHelpLeavesDataDirAlone(t *testing.T) {
	home := testutil.NewTestEnvironment(t, testutil.EnvIsolated).HomeDir

	for _, args := range [][]string{
		{"abs", "/x"},
		{"--help"},
		{"help", "topics"},
		{"completion", "bash"},
	} {
		res := run(t, "", args...)
		require.Equal(t, 0, res.code, "%v: %s", args, res.stderr)
		assert.NoDirExists(t, filepath.Join(home, ".phint"), "%v", args)
	}
}

func TestCompletion(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	res := run(t, "", "completion", "bash")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "phint")

	res = run(t, "", "completion", "tcsh")
	assert.Equal(t, 1, res.code)
}
