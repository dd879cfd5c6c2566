package config

import (
	"fmt"
	"io/fs"
	"strconv"
)

// Config is the resolved phint configuration
type Config struct {
	Paths Paths `koanf:"paths" toml:"paths" json:"paths" yaml:"paths"`
	Stub  Stub  `koanf:"stub" toml:"stub" json:"stub" yaml:"stub"`
	Modes Modes `koanf:"modes" toml:"modes" json:"modes" yaml:"modes"`
}

// Paths configures where phint looks and writes
type Paths struct {
	Home      string `koanf:"home" toml:"home" json:"home" yaml:"home"`
	DataDir   string `koanf:"data_dir" toml:"data_dir" json:"data_dir" yaml:"data_dir"`
	SourceExt string `koanf:"source_ext" toml:"source_ext" json:"source_ext" yaml:"source_ext"`
}

// Stub configures generated executable stubs
type Stub struct {
	Runtime string `koanf:"runtime" toml:"runtime" json:"runtime" yaml:"runtime"`
	OpenTag string `koanf:"open_tag" toml:"open_tag" json:"open_tag" yaml:"open_tag"`
}

// Modes holds permission bits; they are subject to the process umask
type Modes struct {
	Dir  Mode `koanf:"dir" toml:"dir" json:"dir" yaml:"dir"`
	File Mode `koanf:"file" toml:"file" json:"file" yaml:"file"`
	Bin  Mode `koanf:"bin" toml:"bin" json:"bin" yaml:"bin"`
}

// Mode is a permission value written in octal in config files ("0755")
type Mode fs.FileMode

// Perm returns the mode as fs.FileMode
func (m Mode) Perm() fs.FileMode {
	return fs.FileMode(m).Perm()
}

// MarshalText renders the mode as a zero-prefixed octal string
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%04o", uint32(m.Perm()))), nil
}

// UnmarshalText parses an octal mode such as "0755" or "755"
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 8, 32)
	if err != nil {
		return fmt.Errorf("invalid mode %q: %w", text, err)
	}
	if v > 0777 {
		return fmt.Errorf("invalid mode %q: only permission bits are allowed", text)
	}
	*m = Mode(v)
	return nil
}
