package game

import (
	"github.com/arcade-tui/arkanoid/internal/core"
	"github.com/arcade-tui/arkanoid/internal/entity"
)

// State is the lifecycle state of a level.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Level owns the objects of one arkanoid round and runs its simulation:
// platform movement, the ball's axis-separated collision passes, scoring and
// the win/lose transitions. A level is built once and replaced wholesale on
// reset; destroyed blocks are flagged, never removed.
type Level struct {
	blocks   []*entity.Block
	platform *entity.Platform
	ball     *entity.Ball

	// edges is the playable area. Its top sits below the HUD rows.
	edges entity.Rect

	// releaseSpeed is the velocity the ball gets on every release. Speed
	// growth from destroyed blocks applies to the flying ball only, so a
	// lost life also resets the pace.
	releaseSpeed entity.Vec

	state        State
	ballReleased bool

	score          int
	lives          int
	blockScore     int
	speedGrowthPct int

	// scored counts blocks already credited, so a destroyed flag is only
	// ever worth points once.
	scored int
}

// NewLevel assembles a level from pre-built objects. The ball starts docked
// on the platform regardless of its initial position.
func NewLevel(blocks []*entity.Block, platform *entity.Platform, ball *entity.Ball,
	edges entity.Rect, releaseSpeed entity.Vec, lives, blockScore, speedGrowthPct int) *Level {

	l := &Level{
		blocks:         blocks,
		platform:       platform,
		ball:           ball,
		edges:          edges,
		releaseSpeed:   releaseSpeed,
		state:          StateNotStarted,
		lives:          lives,
		blockScore:     blockScore,
		speedGrowthPct: speedGrowthPct,
	}
	l.dockBall()
	return l
}

// State returns the current lifecycle state.
func (l *Level) State() State { return l.state }

// Score returns the accumulated score.
func (l *Level) Score() int { return l.score }

// Lives returns the remaining lives.
func (l *Level) Lives() int { return l.lives }

// BallReleased reports whether the ball is in flight.
func (l *Level) BallReleased() bool { return l.ballReleased }

// Blocks returns the level's blocks, destroyed ones included.
func (l *Level) Blocks() []*entity.Block { return l.blocks }

// Platform returns the player platform.
func (l *Level) Platform() *entity.Platform { return l.platform }

// Ball returns the ball.
func (l *Level) Ball() *entity.Ball { return l.ball }

// Edges returns the playable area rectangle.
func (l *Level) Edges() entity.Rect { return l.edges }

// Start moves a fresh level into the running state. It has no effect once
// the level has left NotStarted.
func (l *Level) Start() {
	if l.state == StateNotStarted {
		l.state = StateRunning
	}
}

// TogglePause starts a fresh level, or flips between running and paused.
// Terminal states are unaffected.
func (l *Level) TogglePause() {
	switch l.state {
	case StateNotStarted:
		l.state = StateRunning
	case StateRunning:
		l.state = StatePaused
	case StatePaused:
		l.state = StateRunning
	}
}

// ReleaseBall launches the docked ball up and to the right. While the ball
// is already in flight, or the level is not running, it does nothing.
func (l *Level) ReleaseBall() {
	if l.state != StateRunning || l.ballReleased {
		return
	}
	l.ballReleased = true
	l.ball.Speed = l.releaseSpeed
}

// dockBall glues the ball to the platform's top center with zero velocity.
func (l *Level) dockBall() {
	l.ball.Rect.SetBottom(l.platform.Rect.Y)
	l.ball.Rect.SetCenterX(l.platform.Rect.CenterX())
	l.ball.Speed = entity.Vec{}
	l.ballReleased = false
}

// Update advances the simulation by one tick. Outside the running state it
// is a no-op, so pausing freezes every object in place.
func (l *Level) Update(in core.InputFrame) {
	if l.state != StateRunning {
		return
	}

	if in.Has(core.ActionRelease) {
		l.ReleaseBall()
	}

	dir := 0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	l.platform.Move(dir)

	l.processCollisions()
	l.reapDestroyed()

	if l.lives < 1 {
		l.state = StateLost
	} else if len(l.blocks) > 0 && l.scored == len(l.blocks) {
		l.state = StateWon
	}
}

// processCollisions moves the ball one axis at a time and resolves what it
// hit. Splitting the movement per axis tells apart side hits from top and
// bottom hits without inspecting angles: an overlap after the X step can
// only have come through a vertical face, and likewise for Y.
func (l *Level) processCollisions() {
	if l.ballReleased {
		l.stepBallX()
	}
	if l.ballReleased {
		l.stepBallY()
	}
	if l.ballReleased {
		// The platform can squeeze the ball into a side wall. Drop the
		// ball below the platform instead of letting it tunnel.
		squeezedOnY := l.ball.Rect.Bottom() < l.platform.Rect.Y ||
			l.ball.Rect.Y < l.platform.Rect.Bottom()
		squeezedOnX := l.ball.Rect.Right() > l.edges.Right() ||
			l.ball.Rect.X < l.edges.X
		if squeezedOnY && squeezedOnX {
			l.ball.Rect.SetTop(l.platform.Rect.Bottom())
		}
	}

	// The platform never leaves the playable area; its position is
	// corrected directly and its speed left alone.
	if l.platform.Rect.Right() > l.edges.Right() {
		l.platform.Rect.SetRight(l.edges.Right())
	} else if l.platform.Rect.X < l.edges.X {
		l.platform.Rect.SetLeft(l.edges.X)
	}

	if !l.ballReleased {
		l.dockBall()
	}
}

func (l *Level) stepBallX() {
	l.ball.Rect.X += l.ball.Speed.X

	switch {
	case l.ball.CollidesWith(&l.platform.Entity):
		adjustOnXCollision(&l.ball.MovableEntity, l.platform.Rect)
	case l.ball.Rect.Right() > l.edges.Right():
		l.ball.Rect.SetRight(l.edges.Right())
		l.ball.Speed.X = -l.ball.Speed.X
	case l.ball.Rect.X < l.edges.X:
		l.ball.Rect.SetLeft(l.edges.X)
		l.ball.Speed.X = -l.ball.Speed.X
	default:
		for _, b := range l.blocks {
			if b.Destroyed() {
				continue
			}
			if l.ball.CollidesWith(&b.Entity) {
				adjustOnXCollision(&l.ball.MovableEntity, b.Rect)
				b.MarkDestroyed()
			}
		}
	}
}

func (l *Level) stepBallY() {
	l.ball.Rect.Y += l.ball.Speed.Y

	switch {
	case l.ball.CollidesWith(&l.platform.Entity):
		adjustOnYCollision(&l.ball.MovableEntity)
	case l.ball.Rect.Bottom() > l.edges.Bottom():
		// Missed the platform. One life gone, ball back on the paddle.
		l.lives--
		l.dockBall()
	case l.ball.Rect.Y < l.edges.Y:
		l.ball.Rect.SetTop(l.edges.Y)
		l.ball.Speed.Y = -l.ball.Speed.Y
	default:
		for _, b := range l.blocks {
			if b.Destroyed() {
				continue
			}
			if l.ball.CollidesWith(&b.Entity) {
				adjustOnYCollision(&l.ball.MovableEntity)
				b.MarkDestroyed()
			}
		}
	}
}

// reapDestroyed credits every newly destroyed block: fixed points per block,
// and the flying ball speeds up by a percentage per block.
func (l *Level) reapDestroyed() {
	destroyed := 0
	for _, b := range l.blocks {
		if b.Destroyed() {
			destroyed++
		}
	}

	for i := l.scored; i < destroyed; i++ {
		l.score += l.blockScore
		l.growBallSpeed()
	}
	l.scored = destroyed
}

func (l *Level) growBallSpeed() {
	factor := entity.Unit(100 + l.speedGrowthPct)
	l.ball.Speed.X = l.ball.Speed.X * factor / 100
	l.ball.Speed.Y = l.ball.Speed.Y * factor / 100
}
