package symbols

import (
	"path/filepath"
	"sync"

	"github.com/arthur-debert/phint/pkg/errors"
	"github.com/arthur-debert/phint/pkg/filesystem"
	"github.com/arthur-debert/phint/pkg/logging"
	"github.com/arthur-debert/phint/pkg/registry"
	"github.com/rs/zerolog"
)

// Loader registers the declarations of source files, each file once
type Loader struct {
	mu        sync.Mutex
	fs        filesystem.FS
	extractor Extractor
	decls     registry.Registry[Declaration]
	loaded    map[string]struct{}
	logger    zerolog.Logger
}

// NewLoader creates an empty loader reading through fsys
func NewLoader(fsys filesystem.FS, extractor Extractor) *Loader {
	return &Loader{
		fs:        fsys,
		extractor: extractor,
		decls:     registry.New[Declaration](),
		loaded:    make(map[string]struct{}),
		logger:    logging.GetLogger("symbols"),
	}
}

var (
	defaultOnce   sync.Once
	defaultLoader *Loader
)

// Default returns the process-wide loader, reading the OS filesystem and
// extracting PHP declarations.
func Default() *Loader {
	defaultOnce.Do(func() {
		defaultLoader = NewLoader(filesystem.NewOS(), NewPHPExtractor())
	})
	return defaultLoader
}

// Load reads path and registers its declarations. A path that was already
// loaded is skipped. Declarations of one file are registered all or
// nothing: a name that is already known fails the whole file.
func (l *Loader) Load(path string) error {
	key := loadKey(path)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, done := l.loaded[key]; done {
		l.logger.Trace().Str("path", path).Msg("Already loaded")
		return nil
	}

	src, err := l.fs.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).WithDetail("path", path)
	}

	decls, err := l.extractor.Extract(path, src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTypeLoad, "cannot load %s", path).WithDetail("path", path)
	}

	seen := make(map[string]bool, len(decls))
	for _, decl := range decls {
		if existing, err := l.decls.Get(decl.Name); err == nil {
			return errors.Newf(errors.ErrAlreadyExists, "cannot redeclare %s in %s, already declared in %s",
				decl.Name, path, existing.File).WithDetail("name", decl.Name)
		}
		if seen[decl.Name] {
			return errors.Newf(errors.ErrAlreadyExists, "cannot redeclare %s in %s", decl.Name, path).
				WithDetail("name", decl.Name)
		}
		seen[decl.Name] = true
	}

	for _, decl := range decls {
		if err := l.decls.Register(decl.Name, decl); err != nil {
			return err
		}
	}
	l.loaded[key] = struct{}{}

	l.logger.Debug().Str("path", path).Int("declarations", len(decls)).Msg("Loaded source file")
	return nil
}

// Loaded reports whether path has been loaded
func (l *Loader) Loaded(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, done := l.loaded[loadKey(path)]
	return done
}

// Match returns the sorted names starting with any of the prefixes; no
// prefixes returns every known name.
func (l *Loader) Match(prefixes ...string) []string {
	return l.decls.WithPrefix(prefixes...)
}

// Get returns the declaration registered under name
func (l *Loader) Get(name string) (Declaration, error) {
	return l.decls.Get(name)
}

// Declarations returns every known declaration sorted by name
func (l *Loader) Declarations() []Declaration {
	names := l.decls.List()
	decls := make([]Declaration, 0, len(names))
	for _, name := range names {
		if decl, err := l.decls.Get(name); err == nil {
			decls = append(decls, decl)
		}
	}
	return decls
}

// Reset forgets every declaration and loaded path
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.decls.Clear()
	l.loaded = make(map[string]struct{})
}

func loadKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
