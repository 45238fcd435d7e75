package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mjc/pkg/compiler"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration is invalid: %v", err)
	}
	opts := cfg.ParserOptions()
	if opts != compiler.DefaultOptions() {
		t.Errorf("expected %+v, got %+v", compiler.DefaultOptions(), opts)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"mjc.toml", FormatTOML},
		{"mjc.yaml", FormatYAML},
		{"conf/MJC.YML", FormatYAML},
		{"mjc.conf", FormatTOML},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.path, tt.want, got)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "TOML",
			file: "mjc.toml",
			content: `
[compiler]
entry_point = "start"
recovery = "sync"
duplicate_check = false
min_error_distance = 5

[log]
level = "debug"
format = "json"

[output]
color = false
format = "yaml"
`,
		},
		{
			name: "YAML",
			file: "mjc.yaml",
			content: `
compiler:
  entry_point: start
  recovery: sync
  duplicate_check: false
  min_error_distance: 5
log:
  level: debug
  format: json
output:
  color: false
  format: yaml
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			want := compiler.Options{
				EntryPoint:       "start",
				Recovery:         compiler.RecoverySync,
				DuplicateCheck:   false,
				MinErrorDistance: 5,
			}
			if got := cfg.ParserOptions(); got != want {
				t.Errorf("expected %+v, got %+v", want, got)
			}
			if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
				t.Errorf("unexpected log section %+v", cfg.Log)
			}
			if cfg.Output.Color || cfg.Output.Format != "yaml" {
				t.Errorf("unexpected output section %+v", cfg.Output)
			}
		})
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("[log]\nlevel = \"info\"\n"), FormatTOML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected level info, got %q", cfg.Log.Level)
	}
	if cfg.Compiler.EntryPoint != "main" || !cfg.Compiler.DuplicateCheck {
		t.Errorf("expected compiler defaults, got %+v", cfg.Compiler)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := Parse([]byte("compiler: [unclosed"), FormatYAML); err == nil {
		t.Error("expected a YAML parse error")
	}
	if _, err := Parse([]byte("[compiler\n"), FormatTOML); err == nil {
		t.Error("expected a TOML parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"Empty entry point", func(c *Config) { c.Compiler.EntryPoint = "" }},
		{"Unknown recovery", func(c *Config) { c.Compiler.Recovery = "panic" }},
		{"Zero distance", func(c *Config) { c.Compiler.MinErrorDistance = 0 }},
		{"Unknown level", func(c *Config) { c.Log.Level = "trace" }},
		{"Unknown log format", func(c *Config) { c.Log.Format = "xml" }},
		{"Unknown output format", func(c *Config) { c.Output.Format = "json" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
