package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Layout.Engine != "dot" {
		t.Errorf("engine = %q", cfg.Layout.Engine)
	}
	if cfg.Layout.TargetRatio != 1.0 {
		t.Errorf("target_ratio = %v", cfg.Layout.TargetRatio)
	}
	if cfg.Layout.Border != 30 {
		t.Errorf("border = %v", cfg.Layout.Border)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("cache backend = %q", cfg.Cache.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.Engine != "dot" {
		t.Errorf("engine = %q, want default", cfg.Layout.Engine)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	doc := `
[layout]
engine = "neato"
target_ratio = 2.5

[cache]
backend = "redis"
redis_addr = "localhost:6379"
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.Engine != "neato" {
		t.Errorf("engine = %q", cfg.Layout.Engine)
	}
	if cfg.Layout.TargetRatio != 2.5 {
		t.Errorf("target_ratio = %v", cfg.Layout.TargetRatio)
	}
	// Untouched sections keep their defaults.
	if cfg.Layout.Border != 30 {
		t.Errorf("border = %v, want default 30", cfg.Layout.Border)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("redis_addr = %q", cfg.Cache.RedisAddr)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"negative ratio", "[layout]\ntarget_ratio = -1.0\n"},
		{"negative border", "[layout]\nborder = -5.0\n"},
		{"unknown backend", "[cache]\nbackend = \"carrier-pigeon\"\n"},
		{"unknown format", "[render]\nformats = [\"gif\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.toml")
			if err := os.WriteFile(path, []byte(tt.doc), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, err := Load(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	if err := os.WriteFile(path, []byte("[layout\nengine="), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
