package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/phint/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/go-homedir"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "PHINT_"

	// AppDirName is the directory name used under XDG base directories
	AppDirName = "phint"
)

// configFileNames are searched, in order, under the XDG config directories
var configFileNames = []string{"config.toml", "config.yaml", "config.yml"}

func init() {
	// HOME can change under tests; never serve a stale value
	homedir.DisableCache = true
}

// Load builds the configuration from defaults, the user config file and
// the environment. An empty configFile searches the XDG config directories.
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if configFile == "" {
		configFile = FindUserConfig()
	}
	if configFile != "" {
		parser, err := parserFor(configFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	return unmarshal(k)
}

// Default returns the embedded defaults with the home directory resolved.
// It reads no config file and no PHINT_* variables.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// FindUserConfig returns the first existing user config file, or ""
func FindUserConfig() string {
	xdg.Reload()
	for _, name := range configFileNames {
		if path, err := xdg.SearchConfigFile(filepath.Join(AppDirName, name)); err == nil {
			return path
		}
	}
	return ""
}

// UserConfigPath is where a new user config file is created
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, configFileNames[0])
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Paths.Home == "" {
		cfg.Paths.Home = ResolveHome()
	} else {
		cfg.Paths.Home = expandTilde(cfg.Paths.Home)
	}
	cfg.Paths.SourceExt = strings.TrimLeft(cfg.Paths.SourceExt, ".")

	return &cfg, nil
}

// ResolveHome returns the current user's home directory, or "" when it
// cannot be determined. On Unix an empty HOME means no home: the passwd
// entry is not consulted.
func ResolveHome() string {
	if runtime.GOOS != "windows" && os.Getenv("HOME") == "" {
		return ""
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return home
}

func expandTilde(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// envKey maps PHINT_STUB__OPEN_TAG to stub.open_tag
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if key == "home" {
		return "paths.home"
	}
	return strings.ReplaceAll(key, "__", ".")
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", path).WithDetail("path", path)
	}
	return nil, errors.Newf(errors.ErrConfigParse, "unsupported config format %q", filepath.Ext(path)).
		WithDetail("path", path)
}
