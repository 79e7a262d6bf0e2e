package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/collatz/internal/playback"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Start != 27 {
		t.Errorf("expected start 27, got %d", cfg.Start)
	}
	if cfg.Cap != 10000 {
		t.Errorf("expected cap 10000, got %d", cfg.Cap)
	}
	if cfg.IntervalMs <= 0 {
		t.Error("interval should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if cfg.ScaleMode() != playback.Logarithmic {
		t.Errorf("expected log scale, got %v", cfg.ScaleMode())
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collatz.yaml")
	if err := os.WriteFile(path, []byte("start: 97\nscale: linear\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Start != 97 {
		t.Errorf("expected start 97, got %d", cfg.Start)
	}
	if cfg.ScaleMode() != playback.Linear {
		t.Errorf("expected linear, got %v", cfg.ScaleMode())
	}
	if cfg.Cap != 10000 {
		t.Errorf("cap should keep its default, got %d", cfg.Cap)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collatz.yaml")
	cfg := DefaultConfig()
	cfg.Start = 871
	cfg.IntervalMs = 100

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", got, cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero start", "start: 0\n"},
		{"negative cap", "cap: -1\n"},
		{"zero interval", "interval_ms: 0\n"},
		{"bad scale", "scale: cubic\n"},
		{"not yaml", "start: [\n"},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "collatz.yaml")
		if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestClampInterval(t *testing.T) {
	tests := []struct {
		in, out int
	}{
		{1, MinIntervalMs},
		{250, 250},
		{5000, MaxIntervalMs},
	}
	for _, tt := range tests {
		if got := ClampInterval(tt.in); got != tt.out {
			t.Errorf("ClampInterval(%d): expected %d, got %d", tt.in, tt.out, got)
		}
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("classic")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Start != 27 {
		t.Errorf("expected 27, got %d", p.Start)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if Presets[names[i-1]].Start > Presets[names[i]].Start {
			t.Errorf("presets not ordered: %s before %s", names[i-1], names[i])
		}
	}
}
