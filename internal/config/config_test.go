package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Samples != 5000 {
		t.Errorf("expected 5000 samples, got %d", cfg.Samples)
	}
	if cfg.Steps != 19 {
		t.Errorf("expected 19 steps, got %d", cfg.Steps)
	}
	if cfg.Steps%2 == 0 {
		t.Error("default steps must be odd")
	}
	if cfg.TickMs != 500 {
		t.Errorf("expected 500ms tick, got %d", cfg.TickMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walklab.yaml")

	cfg := DefaultConfig()
	cfg.Samples = 1234
	cfg.Chart = "line"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Samples != 1234 {
		t.Errorf("expected 1234 samples, got %d", loaded.Samples)
	}
	if loaded.Chart != "line" {
		t.Errorf("expected line chart, got %s", loaded.Chart)
	}
}

func TestLoadPartialFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("samples: 777\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Samples != 777 {
		t.Errorf("expected 777 samples, got %d", cfg.Samples)
	}
	if cfg.Steps != DefaultSteps {
		t.Errorf("expected default steps %d, got %d", DefaultSteps, cfg.Steps)
	}
	if cfg.TickMs != DefaultTickMs {
		t.Errorf("expected default tick %d, got %d", DefaultTickMs, cfg.TickMs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"even steps accepted", func(c *Config) { c.Steps = 2 }, false},
		{"zero samples", func(c *Config) { c.Samples = 0 }, true},
		{"zero tick", func(c *Config) { c.TickMs = 0 }, true},
		{"bad chart", func(c *Config) { c.Chart = "pie" }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quick")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Samples != 1000 {
		t.Errorf("expected 1000 samples, got %d", cfg.Samples)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}

	// Returned preset is a copy.
	cfg.Samples = 1
	if Presets["quick"].Samples == 1 {
		t.Error("GetPreset returned shared state")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Error("presets not sorted")
		}
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
