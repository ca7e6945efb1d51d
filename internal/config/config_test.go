package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/bytelens/internal/scheme"
	"github.com/san-kum/bytelens/internal/view"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.View.Width != 804 {
		t.Errorf("expected width 804, got %d", cfg.View.Width)
	}
	if cfg.View.Scheme != "colorful" {
		t.Errorf("expected scheme colorful, got %s", cfg.View.Scheme)
	}
	if cfg.Canvas.Width != 1024 || cfg.Canvas.Height != 1024 {
		t.Errorf("expected 1024x1024 canvas, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_PartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bytelens.yaml")
	data := []byte("view:\n  zoom: 3\n  scheme: viridis\ncanvas:\n  width: 640\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.View.Zoom != 3 {
		t.Errorf("expected zoom 3, got %d", cfg.View.Zoom)
	}
	if cfg.View.Width != 804 {
		t.Errorf("expected default width to survive, got %d", cfg.View.Width)
	}
	if cfg.Canvas.Width != 640 || cfg.Canvas.Height != 1024 {
		t.Errorf("unexpected canvas %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}

	s, err := cfg.Settings(100)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if s.Scheme != scheme.Viridis || s.Zoom != 3 || s.BufferLength != 100 || s.CanvasWidth != 640 {
		t.Errorf("unexpected settings %+v", s)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("view: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.View.Stride = 4
	cfg.Workers = 8
	cfg.Theme = "ocean"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *back != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, cfg)
	}
}

func TestSettings_Errors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.View.Scheme = "sepia"
	if _, err := cfg.Settings(0); !errors.Is(err, scheme.ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.View.Stride = 0
	if _, err := cfg.Settings(0); !errors.Is(err, view.ErrInvalidStride) {
		t.Errorf("expected ErrInvalidStride, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Canvas.Height = 0
	if err := cfg.Validate(); !errors.Is(err, view.ErrCanvasSize) {
		t.Errorf("expected ErrCanvasSize, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("text")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Width != 80 {
		t.Errorf("expected width 80, got %d", p.Width)
	}

	p.Width = 1
	if Presets["text"].Width != 80 {
		t.Error("GetPreset returned a shared pointer")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		if _, err := GetPreset(name).Settings(0, 1024); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("dwords"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.View.Stride != 4 {
		t.Errorf("expected stride 4, got %d", cfg.View.Stride)
	}
	if err := cfg.ApplyPreset("nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestMerge_KeepsPresetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("view:\n  stride: 3\nworkers: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("text"); err != nil {
		t.Fatal(err)
	}
	if err := Merge(path, cfg); err != nil {
		t.Fatalf("Merge() error: %v", err)
	}

	if cfg.View.Zoom != 4 || cfg.View.Width != 80 || cfg.View.Scheme != "category" {
		t.Errorf("preset fields lost: %+v", cfg.View)
	}
	if cfg.View.Stride != 3 || cfg.Workers != 2 {
		t.Errorf("file fields not applied: stride %d workers %d", cfg.View.Stride, cfg.Workers)
	}
}
