package config

import (
	_ "embed"
)

//go:embed defaults/ohoy.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration of the full ASCII sea: a
// 500×250 world seen through a 150×50 viewport with fog of war.
func Default() Config {
	return Config{
		World:    Size{Width: 500, Height: 250},
		Viewport: Size{Width: 150, Height: 50},
		Islands: IslandsConfig{
			Count:           24,
			PlacementRadius: 20,
			LandmarkRepeats: 4,
			MaxAttempts:     10000,
		},
		Ship: ShipConfig{
			Anchor: Offset{X: 4, Y: 2},
		},
		Fog: FogConfig{
			Enabled:      true,
			RevealRadius: 11,
		},
		Interaction: InteractionConfig{
			MoveRadius: 1,
			PortRadius: 4,
		},
		Colors: ColorsConfig{
			Ocean:      "DarkBlue",
			Fog:        "Black",
			Foreground: "Gray",
		},
		Journal: JournalConfig{
			PaceMS: 40,
		},
	}
}
