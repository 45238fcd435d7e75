// Package config loads mjc settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"mjc/pkg/compiler"
)

// Format is the encoding of a configuration file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all settings of the mjc driver.
type Config struct {
	Compiler Compiler `toml:"compiler" yaml:"compiler"`
	Log      Log      `toml:"log" yaml:"log"`
	Output   Output   `toml:"output" yaml:"output"`
}

// Compiler tunes the parser.
type Compiler struct {
	EntryPoint       string `toml:"entry_point" yaml:"entry_point"`
	Recovery         string `toml:"recovery" yaml:"recovery"` // "none" or "sync"
	DuplicateCheck   bool   `toml:"duplicate_check" yaml:"duplicate_check"`
	MinErrorDistance int    `toml:"min_error_distance" yaml:"min_error_distance"`
}

// Log selects the level and handler of the driver's logger.
type Log struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn or error
	Format string `toml:"format" yaml:"format"` // text or json
}

// Output controls how diagnostics are written.
type Output struct {
	Color  bool   `toml:"color" yaml:"color"`
	Format string `toml:"format" yaml:"format"` // text or yaml
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Compiler: Compiler{
			EntryPoint:       "main",
			Recovery:         "none",
			DuplicateCheck:   true,
			MinErrorDistance: 3,
		},
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
		Output: Output{
			Color:  true,
			Format: "text",
		},
	}
}

// Load reads path on top of the defaults. The format is taken from the file
// extension; anything but .yaml and .yml is read as TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of the defaults and validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DetectFormat determines the configuration format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if c.Compiler.EntryPoint == "" {
		return fmt.Errorf("%w: compiler.entry_point must not be empty", ErrInvalid)
	}
	if _, err := compiler.ParseRecovery(c.Compiler.Recovery); err != nil {
		return fmt.Errorf("%w: compiler.recovery: %v", ErrInvalid, err)
	}
	if c.Compiler.MinErrorDistance < 1 {
		return fmt.Errorf("%w: compiler.min_error_distance must be at least 1, got %d",
			ErrInvalid, c.Compiler.MinErrorDistance)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: unknown log.format %q", ErrInvalid, c.Log.Format)
	}
	if c.Output.Format != "text" && c.Output.Format != "yaml" {
		return fmt.Errorf("%w: unknown output.format %q", ErrInvalid, c.Output.Format)
	}
	return nil
}

// ParserOptions converts the compiler section into parser options. The
// configuration must be valid.
func (c *Config) ParserOptions() compiler.Options {
	rec, _ := compiler.ParseRecovery(c.Compiler.Recovery)
	return compiler.Options{
		EntryPoint:       c.Compiler.EntryPoint,
		Recovery:         rec,
		DuplicateCheck:   c.Compiler.DuplicateCheck,
		MinErrorDistance: c.Compiler.MinErrorDistance,
	}
}
