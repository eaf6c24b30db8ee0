// Package game implements the arkanoid simulation: the level state machine,
// axis-separated ball physics, scoring, and rendering into a screen buffer.
package game

import (
	"fmt"

	"github.com/arcade-tui/arkanoid/internal/config"
	"github.com/arcade-tui/arkanoid/internal/core"
	"github.com/arcade-tui/arkanoid/internal/entity"
)

// Game drives a sequence of levels for one player session. It owns the
// current level, rebuilds it on reset or resize, and turns the level state
// into a screen buffer each frame.
type Game struct {
	cfg      config.Config
	rt       core.RuntimeConfig
	level    *Level
	hardcore bool
}

// New creates a game from the loaded configuration and the runtime screen
// parameters, with the first level built and waiting to be started.
func New(cfg config.Config, rt core.RuntimeConfig) *Game {
	g := &Game{cfg: cfg, rt: rt}
	g.rebuild()
	return g
}

func (g *Game) rebuild() {
	lives := g.cfg.Gameplay.Lives
	if g.hardcore {
		lives = 1
	}

	g.level = BuildLevel(g.rt.ScreenW, g.rt.ScreenH, LevelParams{
		Columns:        g.cfg.Layout.Columns,
		Rows:           g.cfg.Layout.Rows,
		Lives:          lives,
		BlockScore:     g.cfg.Gameplay.BlockScore,
		SpeedGrowthPct: g.cfg.Gameplay.SpeedGrowthPct,
		PlatformSpeed:  entity.Unit(g.cfg.Physics.PlatformSpeed),
		BallSpeed:      entity.Unit(g.cfg.Physics.BallSpeed),
	})
}

// Reset discards the current level and builds a fresh one. Score, lives and
// block states all start over.
func (g *Game) Reset() {
	g.rebuild()
}

// Resize adapts the game to a new terminal size. The level geometry depends
// on the screen dimensions, so the round starts over.
func (g *Game) Resize(width, height int) {
	if width == g.rt.ScreenW && height == g.rt.ScreenH {
		return
	}
	g.rt.ScreenW = width
	g.rt.ScreenH = height
	g.rebuild()
}

// Hardcore reports whether one-life mode is on.
func (g *Game) Hardcore() bool { return g.hardcore }

// SetHardcore switches one-life mode and rebuilds the level if it changed.
func (g *Game) SetHardcore(on bool) {
	if g.hardcore == on {
		return
	}
	g.hardcore = on
	g.rebuild()
}

// Level exposes the current level, mainly for tests.
func (g *Game) Level() *Level { return g.level }

// Step consumes one frame of input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult

	if in.Has(core.ActionReset) {
		g.rebuild()
	}
	if in.Has(core.ActionHardcore) {
		g.hardcore = !g.hardcore
		g.rebuild()
	}
	if in.Has(core.ActionMusic) {
		res.MusicToggled = true
	}
	if in.Has(core.ActionStartPause) {
		g.level.TogglePause()
	}

	g.level.Update(in)

	res.State = g.State()
	return res
}

// State reports the session state for the platform layer.
func (g *Game) State() core.GameState {
	st := g.level.State()
	return core.GameState{
		Score:    g.level.Score(),
		Lives:    g.level.Lives(),
		GameOver: st == StateWon || st == StateLost,
		Won:      st == StateWon,
		Paused:   st == StatePaused || st == StateNotStarted,
	}
}

// Render draws the whole frame: HUD, separator, level objects, and the
// overlay matching the current state.
func (g *Game) Render(s *core.Screen) {
	s.Clear()

	g.renderHUD(s)
	g.renderLevel(s)

	switch g.level.State() {
	case StateNotStarted:
		g.renderMenu(s, "ARKANOID")
	case StatePaused:
		g.renderMenu(s, "PAUSED")
	case StateWon:
		g.renderEnd(s, "YOU WIN!")
	case StateLost:
		g.renderEnd(s, "GAME OVER")
	}
}

func (g *Game) renderHUD(s *core.Screen) {
	s.DrawText(1, 1, fmt.Sprintf("Score: %d", g.level.Score()))

	lives := fmt.Sprintf("Lives: %d", g.level.Lives())
	s.DrawText(s.Width()-len(lives)-1, 1, lives)

	if g.hardcore {
		s.DrawTextCentered(1, "HARDCORE")
	}

	s.DrawHLine(0, topOffset-1, s.Width(), '─')
}

func (g *Game) renderLevel(s *core.Screen) {
	for _, b := range g.level.Blocks() {
		if b.Destroyed() {
			continue
		}
		s.DrawRect(cellRect(b.Rect), b.Glyph, b.Color)
	}

	p := g.level.Platform()
	s.DrawRect(cellRect(p.Rect), p.Glyph, p.Color)

	ball := g.level.Ball()
	s.SetColored(ball.Rect.CenterX().Cells(), ball.Rect.Y.Cells(), ball.Glyph, ball.Color)
}

func (g *Game) renderMenu(s *core.Screen, title string) {
	y := s.Height()/2 - 4
	s.DrawTextCentered(y, title)
	s.DrawTextCentered(y+2, "space - start / pause")
	s.DrawTextCentered(y+3, "enter - release ball")
	s.DrawTextCentered(y+4, "a / d - move platform")
	s.DrawTextCentered(y+5, "h - hardcore   m - music")
	s.DrawTextCentered(y+6, "r - reset      q - quit")
}

func (g *Game) renderEnd(s *core.Screen, title string) {
	y := s.Height()/2 - 2
	s.DrawTextCentered(y, title)
	s.DrawTextCentered(y+2, fmt.Sprintf("Final score: %d", g.level.Score()))
	s.DrawTextCentered(y+4, "r - play again   q - quit")
}

// cellRect converts a fixed-point rectangle to whole screen cells. Entities
// always cover at least one cell so nothing vanishes from rounding.
func cellRect(r entity.Rect) core.Rect {
	x := r.X.Cells()
	y := r.Y.Cells()
	w := core.Max(1, r.Right().Cells()-x)
	h := core.Max(1, r.Bottom().Cells()-y)
	return core.NewRect(x, y, w, h)
}
