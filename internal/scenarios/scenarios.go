// Package scenarios registers the built-in voyages.
package scenarios

import (
	"github.com/vovakirdan/ohoy/internal/config"
	"github.com/vovakirdan/ohoy/internal/registry"
)

func init() {
	registry.Register(AsciiSea{}.ID(), func() registry.Scenario { return AsciiSea{} })
	registry.Register(Lagoon{}.ID(), func() registry.Scenario { return Lagoon{} })
}

// AsciiSea is the full voyage: a large fogged sea seen through a scrolling
// viewport. It uses the configuration as loaded.
type AsciiSea struct{}

func (AsciiSea) ID() string    { return "ascii-sea" }
func (AsciiSea) Title() string { return "The ASCII Sea" }
func (AsciiSea) Description() string {
	return "Chart a fogged sea far larger than the screen"
}
func (AsciiSea) Configure(cfg config.Config) config.Config { return cfg }

// Lagoon is a small, fully charted sea the size of the viewport. There is no
// fog, and the camera only scrolls when the terminal is smaller than the
// lagoon's minimum size.
type Lagoon struct{}

// Lagoon tuning: a handful of islands packed closer than on the open sea.
// Four islands at this radius do not reliably fit below 100x30.
const (
	lagoonIslands         = 4
	lagoonPlacementRadius = 14
	lagoonMinWidth        = 100
	lagoonMinHeight       = 30
)

func (Lagoon) ID() string    { return "lagoon" }
func (Lagoon) Title() string { return "The Lagoon" }
func (Lagoon) Description() string {
	return "A charted lagoon on a single screen, no fog"
}

func (Lagoon) Configure(cfg config.Config) config.Config {
	cfg.World = config.Size{
		Width:  max(cfg.Viewport.Width, lagoonMinWidth),
		Height: max(cfg.Viewport.Height, lagoonMinHeight),
	}
	cfg.Fog.Enabled = false
	cfg.Islands.Count = lagoonIslands
	cfg.Islands.PlacementRadius = lagoonPlacementRadius
	return cfg
}
