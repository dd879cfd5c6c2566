package paths

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Stub returns the content written for each binary by CreateBinaries
func (h *Helper) Stub() string {
	return fmt.Sprintf("#!/usr/bin/env %s\n%s\n", h.cfg.Stub.Runtime, h.cfg.Stub.OpenTag)
}

// CreateBinaries writes an executable stub named after each entry of bins
// into basePath. A failed write does not stop the others; all failures are
// returned together. Marking a stub executable is best effort.
func (h *Helper) CreateBinaries(bins []string, basePath string) error {
	var result *multierror.Error
	stub := h.Stub()
	mode := h.cfg.Modes.Bin.Perm()

	for _, bin := range bins {
		path := Join(basePath, bin)
		if err := h.WriteFile(path, stub); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if err := h.fs.Chmod(path, mode); err != nil {
			h.logger.Debug().Err(err).Str("path", path).Msg("Could not mark binary executable")
			continue
		}
		h.logger.Debug().Str("path", path).Msg("Created binary")
	}

	return result.ErrorOrNil()
}
