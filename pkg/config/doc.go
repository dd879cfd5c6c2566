// Package config handles configuration management for phint.
//
// Configuration is layered, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file: --config, or $XDG_CONFIG_HOME/phint/config.toml
//     (config.yaml and config.yml are also accepted)
//  3. PHINT_* environment variables, where a double underscore separates
//     sections: PHINT_STUB__RUNTIME=php8.3 sets stub.runtime.
//     PHINT_HOME is a shorthand for paths.home.
package config
