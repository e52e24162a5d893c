// Package config provides YAML-based configuration loading for the ASCII sea:
// world and viewport sizes, island generation, fog, interaction radii,
// colors and journal pacing.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/ohoy/internal/core"
)

// Config contains all tunable parameters of a voyage.
type Config struct {
	World       Size              `yaml:"world"`
	Viewport    Size              `yaml:"viewport"`
	Islands     IslandsConfig     `yaml:"islands"`
	Ship        ShipConfig        `yaml:"ship"`
	Fog         FogConfig         `yaml:"fog"`
	Interaction InteractionConfig `yaml:"interaction"`
	Colors      ColorsConfig      `yaml:"colors"`
	Journal     JournalConfig     `yaml:"journal"`
}

// Size is a width×height pair in character cells.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// IslandsConfig defines how islands are generated.
type IslandsConfig struct {
	Count           int `yaml:"count"`
	PlacementRadius int `yaml:"placement_radius"` // no other land this close to a new island
	LandmarkRepeats int `yaml:"landmark_repeats"`
	MaxAttempts     int `yaml:"max_attempts"` // placement tries per island
}

// ShipConfig defines the ship's logical center within its sprites.
type ShipConfig struct {
	Anchor Offset `yaml:"anchor"`
}

// Offset is a cell offset.
type Offset struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// FogConfig defines fog of war.
type FogConfig struct {
	Enabled      bool `yaml:"enabled"`
	RevealRadius int  `yaml:"reveal_radius"`
}

// InteractionConfig defines the radii used for overlap queries.
type InteractionConfig struct {
	MoveRadius int `yaml:"move_radius"` // land this close to the ship's center blocks a move
	PortRadius int `yaml:"port_radius"` // islands this close can be ported at
}

// ColorsConfig names palette colors, e.g. "DarkBlue".
type ColorsConfig struct {
	Ocean      string `yaml:"ocean"`
	Fog        string `yaml:"fog"`
	Foreground string `yaml:"foreground"`
}

// JournalConfig defines how fast new clues are typed out.
type JournalConfig struct {
	PaceMS int `yaml:"pace_ms"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks sizes, radii and color names.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalid, name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)
	positive("islands.count", c.Islands.Count)
	positive("islands.placement_radius", c.Islands.PlacementRadius)
	positive("islands.landmark_repeats", c.Islands.LandmarkRepeats)
	positive("islands.max_attempts", c.Islands.MaxAttempts)
	nonNegative("ship.anchor.x", c.Ship.Anchor.X)
	nonNegative("ship.anchor.y", c.Ship.Anchor.Y)
	nonNegative("fog.reveal_radius", c.Fog.RevealRadius)
	nonNegative("interaction.move_radius", c.Interaction.MoveRadius)
	nonNegative("interaction.port_radius", c.Interaction.PortRadius)
	nonNegative("journal.pace_ms", c.Journal.PaceMS)

	for name, value := range map[string]string{
		"colors.ocean":      c.Colors.Ocean,
		"colors.fog":        c.Colors.Fog,
		"colors.foreground": c.Colors.Foreground,
	} {
		if _, ok := core.ParseColor(value); !ok {
			errs = append(errs, fmt.Errorf("%w: %s: unknown color %q", ErrInvalid, name, value))
		}
	}

	return errors.Join(errs...)
}

// Palette resolves the configured color names. Unknown names fall back to
// the default palette; Validate reports them.
func (c Config) Palette() (ocean, fog, foreground core.Color) {
	resolve := func(name string, fallback core.Color) core.Color {
		if col, ok := core.ParseColor(name); ok {
			return col
		}
		return fallback
	}
	return resolve(c.Colors.Ocean, core.ColorDarkBlue),
		resolve(c.Colors.Fog, core.ColorBlack),
		resolve(c.Colors.Foreground, core.ColorGray)
}
