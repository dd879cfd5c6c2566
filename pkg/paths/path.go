package paths

import (
	"path/filepath"
	"strings"
)

// IsAbsolute reports whether path is absolute. On platforms using a
// backslash separator a drive letter ("C:") is required; elsewhere a leading
// slash.
func IsAbsolute(path string) bool {
	return isAbsolute(path, filepath.Separator)
}

func isAbsolute(path string, separator rune) bool {
	if separator == '\\' {
		return len(path) > 1 && path[1] == ':'
	}
	return strings.HasPrefix(path, "/")
}

// RelativePath strips the first base path that prefixes fullPath. The match
// is a plain string prefix, so "/a/b" is relative to "/a/" as "b" and to
// "/a" as "/b". Without a match fullPath is returned unchanged.
func RelativePath(fullPath string, basePaths ...string) string {
	for _, base := range basePaths {
		if strings.HasPrefix(fullPath, base) {
			return fullPath[len(base):]
		}
	}
	return fullPath
}

// Extension returns the extension of filePath without its dot, "" if none.
// A leading dot counts: ".bashrc" has extension "bashrc".
func Extension(filePath string) string {
	return strings.TrimPrefix(filepath.Ext(filePath), ".")
}

// Join concatenates segments with "/". Trailing separators are trimmed from
// the first segment, leading and trailing ones from the others. Empty
// segments are kept, so Join("a", "", "b") is "a//b".
func Join(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}

	parts := make([]string, len(segments))
	parts[0] = strings.TrimRight(segments[0], `/\`)
	for i, seg := range segments[1:] {
		parts[i+1] = strings.Trim(seg, `/\`)
	}
	return strings.Join(parts, "/")
}

// Expand resolves path for use from the directory from.
//
// "." (or "") yields from. A leading "~" is replaced by the home directory,
// only its first occurrence. A relative path is joined onto from when from
// is set. Anything else is returned as is.
func (h *Helper) Expand(path, from string) string {
	if path == "." || path == "" {
		return from
	}
	if path[0] == '~' {
		return strings.Replace(path, "~", h.Home(), 1)
	}
	if from != "" && !IsAbsolute(path) {
		return Join(from, path)
	}
	return path
}
