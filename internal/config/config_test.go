package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Network.Hidden1 <= 0 || cfg.Network.Hidden2 <= 0 {
		t.Error("hidden sizes should be positive")
	}
	if cfg.Training.Epochs <= 0 {
		t.Error("epochs should be positive")
	}
	if cfg.Training.LearningRate <= 0 {
		t.Error("learning rate should be positive")
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		t.Error("window dimensions should be positive")
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("training:\n  epochs: 20\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Training.Epochs != 20 {
		t.Errorf("epochs = %d, want 20", cfg.Training.Epochs)
	}
	if cfg.Network.Hidden1 != DefaultHidden1 {
		t.Errorf("hidden1 = %d, want default %d", cfg.Network.Hidden1, DefaultHidden1)
	}
	if cfg.Window.Width != DefaultWidth {
		t.Errorf("width = %d, want default %d", cfg.Window.Width, DefaultWidth)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.Network.Hidden1 = 64
	cfg.ModelDir = "/tmp/models"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Network.Hidden1 != 64 || got.ModelDir != "/tmp/models" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quick")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Training.Limit != 5000 {
		t.Errorf("quick preset limit = %d, want 5000", cfg.Training.Limit)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("got %d names, want %d", len(names), len(Presets))
	}
}
