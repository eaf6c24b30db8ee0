package game

import (
	"github.com/arcade-tui/arkanoid/internal/core"
	"github.com/arcade-tui/arkanoid/internal/entity"
)

// Glyphs used by the level objects.
const (
	blockGlyph    = '█'
	platformGlyph = '▀'
	ballGlyph     = '●'
)

// topOffset is the number of screen rows reserved for the HUD above the
// playable area.
const topOffset = 3

// rainbowColors is the per-row block palette, cycled from the top row down.
var rainbowColors = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorViolet,
}

// LevelParams are the knobs the level builder needs beyond the screen size.
// Speeds are in fixed-point units per tick.
type LevelParams struct {
	Columns        int
	Rows           int
	Lives          int
	BlockScore     int
	SpeedGrowthPct int
	PlatformSpeed  entity.Unit
	BallSpeed      entity.Unit
}

// BuildLevel lays out a fresh level for the given screen size: a grid of
// Columns x Rows blocks under the HUD, the platform at three quarters of the
// screen height, and the ball docked on it.
func BuildLevel(screenW, screenH int, p LevelParams) *Level {
	width := entity.FromCells(screenW)
	height := entity.FromCells(screenH)
	cell := entity.Unit(entity.Scale)

	edges := entity.NewRect(0, entity.FromCells(topOffset), width, height-entity.FromCells(topOffset))

	platform := entity.NewPlatform(
		platformGlyph,
		core.ColorDefault,
		entity.NewRect(width/2, height*75/100, width*92/1000, cell),
		p.PlatformSpeed,
	)

	ball := entity.NewBall(
		ballGlyph,
		core.ColorDefault,
		entity.NewRect(0, 0, cell, cell),
	)

	// Blocks fill the width with a gap of 3% of the screen between and
	// around them. Rows are spaced by 7% of the height, at least two cells
	// so short terminals do not fuse the rows together.
	hGap := width * 3 / 100
	blockW := (width - hGap*entity.Unit(p.Columns+1)) / entity.Unit(p.Columns)
	vGap := height * 7 / 100
	if vGap < 2*cell {
		vGap = 2 * cell
	}

	y := edges.Y + cell*22/10
	blocks := make([]*entity.Block, 0, p.Columns*p.Rows)
	for row := 0; row < p.Rows; row++ {
		color := rainbowColors[row%len(rainbowColors)]
		x := hGap
		for col := 0; col < p.Columns; col++ {
			blocks = append(blocks, entity.NewBlock(
				blockGlyph,
				color,
				entity.NewRect(x, y, blockW, cell),
			))
			x += blockW + hGap
		}
		y += vGap
	}

	releaseSpeed := entity.Vec{X: p.BallSpeed, Y: -p.BallSpeed}

	return NewLevel(blocks, platform, ball, edges, releaseSpeed,
		p.Lives, p.BlockScore, p.SpeedGrowthPct)
}
