package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/ohoy/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults drifted from Default():\n got %+v\nwant %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("expected the embedded defaults when no file exists")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".ohoy", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("islands:\n  count: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Islands.Count != 6 {
		t.Errorf("islands.count = %d, expected 6 from the user config", cfg.Islands.Count)
	}
}

func TestLoadCustomPathKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lagoon.yaml")
	data := []byte(`
world:
  width: 150
  height: 50
fog:
  enabled: false
colors:
  ocean: DarkCyan
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.World != (Size{Width: 150, Height: 50}) {
		t.Errorf("world = %+v, expected 150x50", cfg.World)
	}
	if cfg.Fog.Enabled {
		t.Error("fog should be disabled")
	}
	if cfg.Fog.RevealRadius != 11 {
		t.Errorf("unset reveal_radius should keep its default, got %d", cfg.Fog.RevealRadius)
	}
	if cfg.Viewport != Default().Viewport {
		t.Errorf("unset viewport should keep its default, got %+v", cfg.Viewport)
	}
	ocean, _, _ := cfg.Palette()
	if ocean != core.ColorDarkCyan {
		t.Errorf("ocean = %s, expected DarkCyan", ocean)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero world width", func(c *Config) { c.World.Width = 0 }, false},
		{"negative viewport", func(c *Config) { c.Viewport.Height = -5 }, false},
		{"no islands", func(c *Config) { c.Islands.Count = 0 }, false},
		{"negative port radius", func(c *Config) { c.Interaction.PortRadius = -1 }, false},
		{"zero reveal radius", func(c *Config) { c.Fog.RevealRadius = 0 }, true},
		{"unknown color", func(c *Config) { c.Colors.Ocean = "Teal" }, false},
		{"lowercase color", func(c *Config) { c.Colors.Fog = "black" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Error("expected a validation error")
				} else if !errors.Is(err, ErrInvalid) {
					t.Errorf("error should wrap ErrInvalid: %v", err)
				}
			}
		})
	}
}

func TestPaletteFallback(t *testing.T) {
	cfg := Default()
	cfg.Colors = ColorsConfig{Ocean: "nope", Fog: "White", Foreground: ""}
	ocean, fog, fg := cfg.Palette()
	if ocean != core.ColorDarkBlue || fog != core.ColorWhite || fg != core.ColorGray {
		t.Errorf("Palette() = %s, %s, %s", ocean, fog, fg)
	}
}
