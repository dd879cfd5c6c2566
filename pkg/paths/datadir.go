package paths

import "strings"

// DataPath returns phint's data directory, <home>/<data_dir>, or a path
// inside it when subpath is given. The directory is created on first use.
// When home is unknown or the directory cannot be created the result is ""
// for the lifetime of the helper.
func (h *Helper) DataPath(subpath ...string) string {
	h.dataDirOnce.Do(h.resolveDataDir)
	return withSubpath(h.dataDir, subpath)
}

// DataLocation is where DataPath points, without creating anything. It is
// "" only when home is unknown.
func (h *Helper) DataLocation(subpath ...string) string {
	return withSubpath(h.dataLocation(), subpath)
}

func (h *Helper) dataLocation() string {
	home := h.Home()
	if home == "" {
		return ""
	}
	return strings.TrimRight(home, "/") + "/" + h.cfg.Paths.DataDir
}

func (h *Helper) resolveDataDir() {
	dir := h.dataLocation()
	if dir == "" {
		h.logger.Warn().Msg("Home directory unknown, data directory disabled")
		return
	}

	if err := h.EnsureDir(dir); err != nil {
		h.logger.Warn().Err(err).Str("path", dir).Msg("Data directory unavailable")
		return
	}
	h.dataDir = dir
}

func withSubpath(base string, subpath []string) string {
	sub := strings.TrimLeft(strings.Join(subpath, "/"), "/")
	if base == "" || sub == "" {
		return base
	}
	return base + "/" + sub
}
