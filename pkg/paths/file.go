package paths

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/phint/pkg/errors"
	"github.com/arthur-debert/phint/pkg/filesystem"
	"github.com/arthur-debert/phint/pkg/jsonc"
)

// EnsureDir creates dir and its parents with the configured directory mode
// unless it already exists
func (h *Helper) EnsureDir(dir string) error {
	return h.EnsureDirMode(dir, h.cfg.Modes.Dir.Perm())
}

// EnsureDirMode is EnsureDir with an explicit mode
func (h *Helper) EnsureDirMode(dir string, mode fs.FileMode) error {
	if filesystem.IsDir(h.fs, dir) {
		return nil
	}
	if err := h.fs.MkdirAll(dir, mode); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir).
			WithDetail("path", dir)
	}
	h.logger.Trace().Str("path", dir).Msg("Created directory")
	return nil
}

// Read returns the contents of filePath. ok is false when filePath is not a
// regular file or cannot be read.
func (h *Helper) Read(filePath string) (content string, ok bool) {
	if !filesystem.IsRegular(h.fs, filePath) {
		return "", false
	}
	data, err := h.fs.ReadFile(filePath)
	if err != nil {
		h.logger.Debug().Err(err).Str("path", filePath).Msg("Read failed")
		return "", false
	}
	return string(data), true
}

// ReadJSON decodes filePath into generic values: objects become
// map[string]any, arrays []any. Comments and trailing commas are accepted.
// A missing file decodes as null.
func (h *Helper) ReadJSON(filePath string) (any, error) {
	var v any
	if err := h.ReadJSONInto(filePath, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ReadJSONInto is ReadJSON decoding into v
func (h *Helper) ReadJSONInto(filePath string, v any) error {
	content, ok := h.Read(filePath)
	if !ok {
		content = "null"
	}
	if err := jsonc.Decode([]byte(content), v); err != nil {
		return errors.Wrapf(err, errors.ErrJSONDecode, "cannot decode %s", filePath).
			WithDetail("path", filePath)
	}
	return nil
}

// WriteOption tunes WriteFile
type WriteOption func(*writeOptions)

type writeOptions struct {
	append bool
	perm   fs.FileMode
}

// WithAppend appends to the file instead of truncating it
func WithAppend() WriteOption {
	return func(o *writeOptions) {
		o.append = true
	}
}

// WithPerm sets the mode of a newly created file
func WithPerm(perm fs.FileMode) WriteOption {
	return func(o *writeOptions) {
		o.perm = perm
	}
}

// WriteFile writes content to file, creating its parent directory first.
// Strings and byte slices are written as they are; any other value is
// written as indented JSON.
func (h *Helper) WriteFile(file string, content any, opts ...WriteOption) error {
	o := writeOptions{perm: h.cfg.Modes.File.Perm()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := h.EnsureDir(filepath.Dir(file)); err != nil {
		return err
	}

	data, err := encodeContent(content)
	if err != nil {
		return err
	}

	write := h.fs.WriteFile
	if o.append {
		write = h.fs.AppendFile
	}
	if err := write(file, data, o.perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", file).
			WithDetail("path", file)
	}

	h.logger.Trace().
		Str("path", file).
		Int("bytes", len(data)).
		Bool("append", o.append).
		Msg("Wrote file")
	return nil
}

func encodeContent(content any) ([]byte, error) {
	switch c := content.(type) {
	case string:
		return []byte(c), nil
	case []byte:
		return c, nil
	}
	return jsonc.Encode(content)
}
