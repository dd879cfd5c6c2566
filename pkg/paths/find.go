package paths

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/phint/pkg/errors"
	"github.com/arthur-debert/phint/pkg/filesystem"
	"github.com/arthur-debert/phint/pkg/logging"
)

// AnyExtension disables the extension filter of FindFiles
const AnyExtension = "*"

// vcsDirs are never descended into
var vcsDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	".bzr":         true,
	"CVS":          true,
	"_darcs":       true,
	".arch-params": true,
	".monotone":    true,
}

// FindFiles walks each directory of inPaths and returns the files whose name
// ends with "."+ext, or every file when ext is AnyExtension. Hidden files and
// directories are skipped unless dotfiles is set; version control
// directories always are. Results are grouped by input path, each group in
// lexical walk order.
func (h *Helper) FindFiles(inPaths []string, ext string, dotfiles bool) ([]string, error) {
	done := logging.LogOperationStart(h.logger, "find_files")
	defer done()

	suffix := ""
	if ext != AnyExtension {
		suffix = "." + strings.TrimLeft(ext, ".")
	}

	var files []string
	for _, root := range inPaths {
		if !filesystem.IsDir(h.fs, root) {
			return nil, errors.Newf(errors.ErrFileNotFound, "directory %q does not exist", root).
				WithDetail("path", root)
		}

		err := h.fs.Walk(root, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if path == root {
				return nil
			}

			name := info.Name()
			if info.IsDir() {
				if vcsDirs[name] || (!dotfiles && isHidden(name)) {
					return filepath.SkipDir
				}
				return nil
			}
			if !dotfiles && isHidden(name) {
				return nil
			}
			if info.Mode()&fs.ModeSymlink != 0 && !filesystem.IsRegular(h.fs, path) {
				return nil
			}
			if suffix != "" && !strings.HasSuffix(name, suffix) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot walk %s", root).
				WithDetail("path", root)
		}
	}

	h.logger.Debug().
		Strs("paths", inPaths).
		Str("ext", ext).
		Int("count", len(files)).
		Msg("Found files")
	return files, nil
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}

// LoadTypes loads every source file under inPaths into the symbol loader and
// returns the sorted names of all known types starting with one of
// namespaces, or all of them when none is given. An empty ext means the
// configured source extension.
//
// Loaded declarations stay registered after the call; later calls see the
// types of earlier ones.
func (h *Helper) LoadTypes(inPaths, namespaces []string, ext string) ([]string, error) {
	if ext == "" {
		ext = h.cfg.Paths.SourceExt
	}

	files, err := h.FindFiles(inPaths, ext, false)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		if err := h.loader.Load(file); err != nil {
			return nil, err
		}
	}

	names := h.loader.Match(namespaces...)
	h.logger.Debug().
		Int("files", len(files)).
		Int("types", len(names)).
		Msg("Loaded types")
	return names, nil
}
