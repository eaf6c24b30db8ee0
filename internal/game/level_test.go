package game

import (
	"testing"

	"github.com/arcade-tui/arkanoid/internal/core"
	"github.com/arcade-tui/arkanoid/internal/entity"
)

// testEdges matches a 40x20 screen with the HUD rows carved off the top.
var testEdges = entity.NewRect(0, 3000, 40000, 17000)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// newTestLevel builds a level with explicit geometry so assertions can be
// exact: platform 4 cells wide at mid-bottom, ball 1 cell, release (200,-200).
func newTestLevel(blocks []*entity.Block, lives int) *Level {
	platform := entity.NewPlatform('▀', core.ColorDefault,
		entity.NewRect(18000, 15000, 4000, 1000), 500)
	ball := entity.NewBall('●', core.ColorDefault,
		entity.NewRect(0, 0, 1000, 1000))
	return NewLevel(blocks, platform, ball, testEdges,
		entity.Vec{X: 200, Y: -200}, lives, 100, 2)
}

func TestNewLevelDocksBall(t *testing.T) {
	l := newTestLevel(nil, 4)

	if l.State() != StateNotStarted {
		t.Fatalf("state = %v, expected NotStarted", l.State())
	}
	if l.BallReleased() {
		t.Error("ball should start docked")
	}

	ball := l.Ball()
	if got := ball.Rect.Bottom(); got != l.Platform().Rect.Y {
		t.Errorf("ball bottom = %d, expected platform top %d", got, l.Platform().Rect.Y)
	}
	if got := ball.Rect.CenterX(); got != l.Platform().Rect.CenterX() {
		t.Errorf("ball centerX = %d, expected platform centerX %d", got, l.Platform().Rect.CenterX())
	}
	if ball.Speed != (entity.Vec{}) {
		t.Errorf("docked ball speed = %+v, expected zero", ball.Speed)
	}
}

func TestStateTransitions(t *testing.T) {
	l := newTestLevel(nil, 4)

	l.TogglePause()
	if l.State() != StateRunning {
		t.Fatalf("after first toggle state = %v, expected Running", l.State())
	}
	l.TogglePause()
	if l.State() != StatePaused {
		t.Fatalf("state = %v, expected Paused", l.State())
	}
	l.TogglePause()
	if l.State() != StateRunning {
		t.Fatalf("state = %v, expected Running again", l.State())
	}
}

func TestUpdateNoOpUnlessRunning(t *testing.T) {
	l := newTestLevel(nil, 4)
	before := l.Platform().Rect

	l.Update(frame(core.ActionRight))
	if l.Platform().Rect != before {
		t.Error("platform moved while the level was not started")
	}

	l.Start()
	l.TogglePause()
	l.Update(frame(core.ActionRight))
	if l.Platform().Rect != before {
		t.Error("platform moved while the level was paused")
	}
}

func TestReleaseBall(t *testing.T) {
	l := newTestLevel(nil, 4)

	l.ReleaseBall()
	if l.BallReleased() {
		t.Fatal("release before start should be a no-op")
	}

	l.Start()
	l.ReleaseBall()
	if !l.BallReleased() {
		t.Fatal("release while running should launch the ball")
	}
	if got := l.Ball().Speed; got != (entity.Vec{X: 200, Y: -200}) {
		t.Errorf("release speed = %+v, expected {200 -200}", got)
	}

	// A second release must not reset the flying ball's velocity.
	l.Ball().Speed = entity.Vec{X: 300, Y: 100}
	l.ReleaseBall()
	if got := l.Ball().Speed; got != (entity.Vec{X: 300, Y: 100}) {
		t.Errorf("release in flight changed speed to %+v", got)
	}
}

func TestDockedBallFollowsPlatform(t *testing.T) {
	l := newTestLevel(nil, 4)
	l.Start()

	l.Update(frame(core.ActionRight))

	if got := l.Ball().Rect.CenterX(); got != l.Platform().Rect.CenterX() {
		t.Errorf("ball centerX = %d, expected to follow platform center %d",
			got, l.Platform().Rect.CenterX())
	}
}

func TestBallBouncesOffWalls(t *testing.T) {
	tests := []struct {
		name      string
		pos       entity.Vec
		speed     entity.Vec
		wantPos   entity.Vec
		wantSpeed entity.Vec
	}{
		{
			name:      "right wall",
			pos:       entity.Vec{X: 38500, Y: 10000},
			speed:     entity.Vec{X: 1000, Y: 0},
			wantPos:   entity.Vec{X: 39000, Y: 10000},
			wantSpeed: entity.Vec{X: -1000, Y: 0},
		},
		{
			name:      "left wall",
			pos:       entity.Vec{X: 500, Y: 10000},
			speed:     entity.Vec{X: -1000, Y: 0},
			wantPos:   entity.Vec{X: 0, Y: 10000},
			wantSpeed: entity.Vec{X: 1000, Y: 0},
		},
		{
			name:      "top wall",
			pos:       entity.Vec{X: 10000, Y: 3200},
			speed:     entity.Vec{X: 0, Y: -500},
			wantPos:   entity.Vec{X: 10000, Y: 3000},
			wantSpeed: entity.Vec{X: 0, Y: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLevel(nil, 4)
			l.Start()
			l.ReleaseBall()
			l.Ball().Rect.X, l.Ball().Rect.Y = tt.pos.X, tt.pos.Y
			l.Ball().Speed = tt.speed

			l.Update(frame())

			if got := (entity.Vec{X: l.Ball().Rect.X, Y: l.Ball().Rect.Y}); got != tt.wantPos {
				t.Errorf("ball position = %+v, expected %+v", got, tt.wantPos)
			}
			if got := l.Ball().Speed; got != tt.wantSpeed {
				t.Errorf("ball speed = %+v, expected %+v", got, tt.wantSpeed)
			}
		})
	}
}

func TestBlockHitFromBelow(t *testing.T) {
	blocks := []*entity.Block{
		entity.NewBlock('█', core.ColorRed, entity.NewRect(10000, 8000, 3000, 1000)),
		entity.NewBlock('█', core.ColorRed, entity.NewRect(14000, 8000, 3000, 1000)),
	}
	l := newTestLevel(blocks, 4)
	l.Start()
	l.ReleaseBall()
	l.Ball().Rect.X, l.Ball().Rect.Y = 11000, 9200
	l.Ball().Speed = entity.Vec{X: 0, Y: -300}

	l.Update(frame())

	if !blocks[0].Destroyed() {
		t.Fatal("hit block should be destroyed")
	}
	if blocks[1].Destroyed() {
		t.Error("untouched block should survive")
	}
	if len(l.Blocks()) != 2 {
		t.Errorf("blocks slice has %d entries, destroyed blocks must stay", len(l.Blocks()))
	}
	if l.Score() != 100 {
		t.Errorf("score = %d, expected 100", l.Score())
	}
	if got := l.Ball().Speed.Y; got != 306 {
		t.Errorf("speed.Y = %d, expected inverted and grown to 306", got)
	}
	if l.State() != StateRunning {
		t.Errorf("state = %v, one block left so the round goes on", l.State())
	}
}

func TestBlockHitFromSide(t *testing.T) {
	blocks := []*entity.Block{
		entity.NewBlock('█', core.ColorRed, entity.NewRect(10000, 8000, 3000, 1000)),
	}
	l := newTestLevel(blocks, 4)
	l.Start()
	l.ReleaseBall()
	l.Ball().Rect.X, l.Ball().Rect.Y = 8500, 8000
	l.Ball().Speed = entity.Vec{X: 600, Y: 0}

	l.Update(frame())

	if !blocks[0].Destroyed() {
		t.Fatal("hit block should be destroyed")
	}
	if got := l.Ball().Rect.Right(); got != 10000 {
		t.Errorf("ball right = %d, expected flush against the block at 10000", got)
	}
	if got := l.Ball().Speed.X; got > 0 {
		t.Errorf("speed.X = %d, expected inverted", got)
	}
}

func TestLastBlockWins(t *testing.T) {
	blocks := []*entity.Block{
		entity.NewBlock('█', core.ColorRed, entity.NewRect(10000, 8000, 3000, 1000)),
	}
	l := newTestLevel(blocks, 4)
	l.Start()
	l.ReleaseBall()
	l.Ball().Rect.X, l.Ball().Rect.Y = 11000, 9200
	l.Ball().Speed = entity.Vec{X: 0, Y: -300}

	l.Update(frame())

	if l.State() != StateWon {
		t.Fatalf("state = %v, expected Won after the last block", l.State())
	}

	// Terminal state freezes the level.
	pos := l.Ball().Rect
	l.Update(frame(core.ActionLeft))
	if l.Ball().Rect != pos {
		t.Error("won level should not simulate further")
	}
}

func TestBottomEdgeCostsLifeAndDocks(t *testing.T) {
	l := newTestLevel(nil, 2)
	l.Start()
	l.ReleaseBall()
	l.Ball().Rect.X, l.Ball().Rect.Y = 10000, 19500
	l.Ball().Speed = entity.Vec{X: 0, Y: 1000}

	l.Update(frame())

	if l.Lives() != 1 {
		t.Fatalf("lives = %d, expected 1", l.Lives())
	}
	if l.BallReleased() {
		t.Error("ball should be docked after a lost life")
	}
	if l.State() != StateRunning {
		t.Fatalf("state = %v, a life remains so the round goes on", l.State())
	}

	l.ReleaseBall()
	l.Ball().Rect.X, l.Ball().Rect.Y = 10000, 19500
	l.Ball().Speed = entity.Vec{X: 0, Y: 1000}
	l.Update(frame())

	if l.Lives() != 0 {
		t.Fatalf("lives = %d, expected 0", l.Lives())
	}
	if l.State() != StateLost {
		t.Errorf("state = %v, expected Lost", l.State())
	}
}

func TestPlatformClampedAtEdges(t *testing.T) {
	l := newTestLevel(nil, 4)
	l.Start()
	l.Platform().Rect.X = 200

	l.Update(frame(core.ActionLeft))
	if got := l.Platform().Rect.X; got != 0 {
		t.Fatalf("platform X = %d, expected clamped to 0", got)
	}

	// Clamping corrects position only; the next move must still work.
	l.Update(frame(core.ActionRight))
	if got := l.Platform().Rect.X; got != 500 {
		t.Errorf("platform X = %d, expected 500 after moving right", got)
	}
}

func TestStraightReleaseDestroysBlock(t *testing.T) {
	l := BuildLevel(40, 24, LevelParams{
		Columns:        3,
		Rows:           5,
		Lives:          4,
		BlockScore:     100,
		SpeedGrowthPct: 2,
		PlatformSpeed:  600,
		BallSpeed:      300,
	})
	l.Start()
	l.ReleaseBall()
	// Straight up: the ball must reach the bottom block row unobstructed.
	l.Ball().Speed = entity.Vec{X: 0, Y: -300}

	for i := 0; i < 60 && l.Score() == 0; i++ {
		l.Update(frame())
	}

	if l.Score() != 100 {
		t.Fatalf("score = %d, expected 100 after the first block", l.Score())
	}

	destroyed := 0
	for _, b := range l.Blocks() {
		if b.Destroyed() {
			destroyed++
		}
	}
	if destroyed != 1 {
		t.Errorf("destroyed blocks = %d, expected exactly 1", destroyed)
	}

	if l.Ball().Speed.Y <= 0 {
		t.Errorf("speed.Y = %d, expected the ball heading back down", l.Ball().Speed.Y)
	}
}

func TestSqueezedBallDropsBelowPlatform(t *testing.T) {
	l := newTestLevel(nil, 4)
	l.Platform().Rect = entity.NewRect(35500, 15000, 4000, 1000)
	l.Start()
	l.ReleaseBall()
	l.Ball().Rect.X, l.Ball().Rect.Y = 39050, 15200
	l.Ball().Speed = entity.Vec{X: -100, Y: 0}

	l.Update(frame())

	if got := l.Ball().Rect.Y; got != l.Platform().Rect.Bottom() {
		t.Errorf("ball Y = %d, expected pushed below the platform at %d",
			got, l.Platform().Rect.Bottom())
	}
}
