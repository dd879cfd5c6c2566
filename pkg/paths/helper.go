package paths

import (
	"sync"

	"github.com/arthur-debert/phint/pkg/config"
	"github.com/arthur-debert/phint/pkg/filesystem"
	"github.com/arthur-debert/phint/pkg/logging"
	"github.com/arthur-debert/phint/pkg/symbols"
	"github.com/rs/zerolog"
)

// Helper carries the state the file operations need: the filesystem, the
// configuration and the symbol loader. The zero value is not usable; call New.
type Helper struct {
	fs     filesystem.FS
	cfg    *config.Config
	loader *symbols.Loader
	logger zerolog.Logger

	home      *string
	customFS  bool
	hasLogger bool

	// dataDir is resolved once per Helper, "" when unavailable
	dataDirOnce sync.Once
	dataDir     string
}

// Option configures a Helper
type Option func(*Helper)

// WithFS makes the helper read and write through fsys
func WithFS(fsys filesystem.FS) Option {
	return func(h *Helper) {
		h.fs = fsys
		h.customFS = true
	}
}

// WithConfig uses cfg instead of loading the configuration
func WithConfig(cfg *config.Config) Option {
	return func(h *Helper) {
		h.cfg = cfg
	}
}

// WithHome overrides the configured home directory
func WithHome(home string) Option {
	return func(h *Helper) {
		h.home = &home
	}
}

// WithLoader sets the symbol loader used by LoadTypes
func WithLoader(loader *symbols.Loader) Option {
	return func(h *Helper) {
		h.loader = loader
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Helper) {
		h.logger = logger
		h.hasLogger = true
	}
}

// New creates a Helper. Without options it uses the OS filesystem, the
// configuration from config.Load and the process-wide symbol loader.
func New(opts ...Option) *Helper {
	h := &Helper{}
	for _, opt := range opts {
		opt(h)
	}

	if !h.hasLogger {
		h.logger = logging.GetLogger("paths")
	}

	if h.fs == nil {
		h.fs = filesystem.NewOS()
	}

	if h.cfg == nil {
		cfg, err := config.Load("")
		if err != nil {
			h.logger.Warn().Err(err).Msg("Falling back to default configuration")
			cfg = config.Default()
		}
		h.cfg = cfg
	}

	if h.home != nil {
		cfg := *h.cfg
		cfg.Paths.Home = *h.home
		h.cfg = &cfg
	}

	if h.loader == nil {
		if h.customFS {
			h.loader = symbols.NewLoader(h.fs, symbols.NewPHPExtractor())
		} else {
			h.loader = symbols.Default()
		}
	}

	return h
}

// Config returns the configuration the helper runs with
func (h *Helper) Config() *config.Config {
	return h.cfg
}

// Home returns the home directory, "" when unknown
func (h *Helper) Home() string {
	return h.cfg.Paths.Home
}

// Loader returns the symbol loader used by LoadTypes
func (h *Helper) Loader() *symbols.Loader {
	return h.loader
}
