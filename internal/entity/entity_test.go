package entity

import (
	"testing"

	"github.com/arcade-tui/arkanoid/internal/core"
)

func TestEntityCollidesWith(t *testing.T) {
	a := NewEntity('●', core.ColorDefault, NewRect(0, 0, 1000, 1000))
	b := NewEntity('█', core.ColorRed, NewRect(500, 500, 1000, 1000))
	c := NewEntity('█', core.ColorRed, NewRect(5000, 5000, 1000, 1000))

	if !a.CollidesWith(&b) {
		t.Error("overlapping entities should collide")
	}
	if a.CollidesWith(&c) {
		t.Error("distant entities should not collide")
	}
}

func TestMovableEntityMove(t *testing.T) {
	m := NewMovableEntity('●', core.ColorDefault, NewRect(1000, 1000, 1000, 1000), Vec{X: 120, Y: -180})

	m.Move()
	m.Move()

	if m.Rect.X != 1240 || m.Rect.Y != 640 {
		t.Errorf("position after two moves = (%d, %d), expected (1240, 640)", m.Rect.X, m.Rect.Y)
	}
	// Move performs no bounds checking; velocity is untouched
	if m.Speed != (Vec{X: 120, Y: -180}) {
		t.Errorf("Move should not modify velocity, got %+v", m.Speed)
	}
}

func TestBlockDestroyedMonotonic(t *testing.T) {
	b := NewBlock('█', core.ColorGreen, NewRect(0, 0, 5000, 1000))

	if b.Destroyed() {
		t.Error("new block should not be destroyed")
	}

	b.MarkDestroyed()
	if !b.Destroyed() {
		t.Error("block should be destroyed after MarkDestroyed")
	}

	// Idempotent: a second call is a no-op, the flag never reverts
	b.MarkDestroyed()
	if !b.Destroyed() {
		t.Error("destroyed flag must be monotonic")
	}
}

func TestPlatformMovesHorizontallyOnly(t *testing.T) {
	p := NewPlatform('=', core.ColorDefault, NewRect(10000, 20000, 7000, 1000), 600)

	p.Move(1)
	if p.Rect.X != 10600 {
		t.Errorf("Move(1): X = %d, expected 10600", p.Rect.X)
	}
	if p.Rect.Y != 20000 {
		t.Errorf("platform must not move vertically, Y = %d", p.Rect.Y)
	}

	p.Move(-1)
	p.Move(-1)
	if p.Rect.X != 9400 {
		t.Errorf("after left moves: X = %d, expected 9400", p.Rect.X)
	}

	p.Move(0)
	if p.Rect.X != 9400 {
		t.Error("Move(0) should leave the position unchanged")
	}
	if p.Speed.Y != 0 {
		t.Error("platform vertical speed must stay zero")
	}
}

func TestPlatformSpeedMagnitude(t *testing.T) {
	// A negative configured speed still moves in the requested direction
	p := NewPlatform('=', core.ColorDefault, NewRect(0, 0, 7000, 1000), -500)

	p.Move(1)
	if p.Rect.X != 500 {
		t.Errorf("Move(1) with negative configured speed: X = %d, expected 500", p.Rect.X)
	}
}

func TestBallStartsDocked(t *testing.T) {
	b := NewBall('●', core.ColorDefault, NewRect(0, 0, 1000, 1000))

	if b.Speed != (Vec{}) {
		t.Errorf("new ball should have zero velocity, got %+v", b.Speed)
	}
}
