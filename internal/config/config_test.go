package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Seeding.Particles != DefaultParticles {
		t.Errorf("expected %d particles, got %d", DefaultParticles, cfg.Seeding.Particles)
	}
	if cfg.Run.WestWallLon != -5.8 {
		t.Errorf("expected west wall at -5.8, got %f", cfg.Run.WestWallLon)
	}
	if cfg.Capture.Box.LonMin >= cfg.Capture.Box.LonMax {
		t.Error("default capture box is degenerate")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDerivedSteps(t *testing.T) {
	cfg := DefaultConfig()

	// 30 min steps, output every 12 h
	if got := cfg.OutputEverySteps(); got != 24 {
		t.Errorf("expected cadence of 24 steps, got %d", got)
	}
	if got := cfg.DtDays(); got != 30.0/1440.0 {
		t.Errorf("expected dt of 30 minutes in days, got %f", got)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no field path", func(c *Config) { c.Field.Path = "" }},
		{"zero particles", func(c *Config) { c.Seeding.Particles = 0 }},
		{"zero dilation", func(c *Config) { c.Seeding.Dilation = 0 }},
		{"negative dt", func(c *Config) { c.Run.DtMinutes = -1 }},
		{"zero duration", func(c *Config) { c.Run.DurationDays = 0 }},
		{"output finer than dt", func(c *Config) { c.Run.OutputHours = 0.1 }},
		{"inverted box", func(c *Config) { c.Capture.Box.LonMin = 9; c.Capture.Box.LonMax = 4 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Seeding.Particles = 500
	cfg.Seeding.Seed = 42
	cfg.Field.Path = "test.nc"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Seeding.Particles != 500 {
		t.Errorf("expected 500 particles, got %d", loaded.Seeding.Particles)
	}
	if loaded.Seeding.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seeding.Seed)
	}
	if loaded.Field.Path != "test.nc" {
		t.Errorf("expected path test.nc, got %s", loaded.Field.Path)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("field:\n  path: only.nc\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// a partial file overrides what it names and leaves the rest at defaults
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Field.Path != "only.nc" {
		t.Errorf("expected only.nc, got %s", loaded.Field.Path)
	}
	if loaded.Seeding.Particles != DefaultParticles {
		t.Errorf("expected default particle count, got %d", loaded.Seeding.Particles)
	}
}
