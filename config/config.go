// Package config handles pydis.toml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/pydis/opcode"
)

// FileName is the configuration file looked up by Load and FindAndLoad.
const FileName = "pydis.toml"

// Config represents a pydis.toml file.
type Config struct {
	Disasm Disasm `toml:"disasm"`
	Log    Log    `toml:"log"`
	Index  Index  `toml:"index"`

	// Dir is the directory containing the pydis.toml file (set at load time).
	Dir string `toml:"-"`
}

// Disasm configures listings.
type Disasm struct {
	Version string `toml:"version"`
	Indent  int    `toml:"indent"`
	Recurse bool   `toml:"recurse"`
	Header  bool   `toml:"header"`
}

// Log configures logging.
type Log struct {
	Verbosity int `toml:"verbosity"`
}

// Index configures the instruction index.
type Index struct {
	Path string `toml:"path"`
}

// Default returns the configuration used when no pydis.toml exists.
func Default() *Config {
	return &Config{
		Disasm: Disasm{Recurse: true, Header: true},
		Index:  Index{Path: "pydis.db"},
	}
}

// Load parses a pydis.toml file from the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses the configuration file at path. Dir is set to the file's
// directory.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %s in %s", undecoded[0], path)
	}

	c.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find a pydis.toml file,
// then loads and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Validate checks values the decoder cannot.
func (c *Config) Validate() error {
	if c.Disasm.Version != "" {
		if _, err := opcode.ParseVersion(c.Disasm.Version); err != nil {
			return fmt.Errorf("disasm.version: %w", err)
		}
	}
	if c.Disasm.Indent < 0 {
		return fmt.Errorf("disasm.indent must not be negative, got %d", c.Disasm.Indent)
	}
	return nil
}

// Version returns the configured default runtime version. ok is false when
// none is set.
func (c *Config) Version() (v opcode.Version, ok bool) {
	if c.Disasm.Version == "" {
		return opcode.Version{}, false
	}
	v, err := opcode.ParseVersion(c.Disasm.Version)
	return v, err == nil
}

// IndexPath returns the index database path. Relative paths are resolved
// against the directory of the configuration file.
func (c *Config) IndexPath() string {
	if c.Index.Path == "" || filepath.IsAbs(c.Index.Path) || c.Dir == "" {
		return c.Index.Path
	}
	return filepath.Join(c.Dir, c.Index.Path)
}
