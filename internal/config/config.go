// Package config provides YAML-based gameplay configuration with embedded
// defaults.
package config

// Config contains all tunable parameters for an arkanoid session.
type Config struct {
	Gameplay Gameplay `yaml:"gameplay"`
	Physics  Physics  `yaml:"physics"`
	Layout   Layout   `yaml:"layout"`
	Display  Display  `yaml:"display"`
}

// Gameplay defines scoring and life rules.
type Gameplay struct {
	Lives          int `yaml:"lives"`            // Starting lives (hardcore mode forces 1)
	BlockScore     int `yaml:"block_score"`      // Points per destroyed block
	SpeedGrowthPct int `yaml:"speed_growth_pct"` // Ball acceleration per destroyed block, in percent
}

// Physics defines movement speeds in fixed-point units per tick
// (1 cell = 1000 units).
type Physics struct {
	PlatformSpeed int `yaml:"platform_speed"`
	BallSpeed     int `yaml:"ball_speed"` // Per-axis release speed magnitude
}

// Layout defines the block grid.
type Layout struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// Display defines visual settings.
type Display struct {
	// Background names the theme; accepted values are black, white and
	// darkcyan. Text and lines use the complement of the background.
	Background string `yaml:"background"`
}
