package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as a last
// resort if the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Gameplay: Gameplay{
			Lives:          4,
			BlockScore:     100,
			SpeedGrowthPct: 2,
		},
		Physics: Physics{
			PlatformSpeed: 600,
			BallSpeed:     180,
		},
		Layout: Layout{
			Columns: 10,
			Rows:    5,
		},
		Display: Display{
			Background: "black",
		},
	}
}
