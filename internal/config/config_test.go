package config

import (
	"path/filepath"
	"testing"

	"github.com/eigenwell/eigenwell/internal/solver"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Potential != "harmonic" {
		t.Errorf("expected potential harmonic, got %s", cfg.Potential)
	}
	if cfg.Points < 2 {
		t.Error("points should allow a valid grid")
	}
	if cfg.Tolerance <= 0 {
		t.Error("tolerance should be positive")
	}
	if cfg.EMax <= cfg.EMin {
		t.Error("default window should not be inverted")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("harmonic", "first3")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.States != 3 {
		t.Errorf("expected 3 states, got %d", cfg.States)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("harmonic", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "ground") != nil {
		t.Error("expected nil for nonexistent potential")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("harmonic")) == 0 {
		t.Error("expected presets for harmonic")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent potential")
	}
}

func TestToOptionsFillsDefaults(t *testing.T) {
	cfg := GetPreset("harmonic", "ground")
	opts := cfg.ToOptions()

	if opts.Method != solver.MethodShooting {
		t.Errorf("unexpected method %s", opts.Method)
	}
	if opts.States != 1 {
		t.Errorf("expected 1 state, got %d", opts.States)
	}
	// Unset preset fields fall back to solver defaults.
	if opts.Points != solver.DefaultOptions().Points {
		t.Errorf("expected default points, got %d", opts.Points)
	}
	if opts.Tolerance != solver.DefaultOptions().Tolerance {
		t.Errorf("expected default tolerance, got %g", opts.Tolerance)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Potential = "morse"
	cfg.Method = "fem"
	cfg.Points = 555
	cfg.Domain = DomainConfig{Min: -2, Max: 9}

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Potential != "morse" || loaded.Method != "fem" || loaded.Points != 555 {
		t.Errorf("round trip mangled config: %+v", loaded)
	}
	if loaded.Domain.Min != -2 || loaded.Domain.Max != 9 {
		t.Errorf("round trip mangled domain: %+v", loaded.Domain)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
