package entity

import "github.com/arcade-tui/arkanoid/internal/core"

// Entity is the base game object: a visual handle (glyph plus color, opaque
// to the game logic) and an axis-aligned bounding rectangle.
type Entity struct {
	Glyph rune
	Color core.Color
	Rect  Rect
}

// NewEntity creates an entity with the given visual and bounds.
func NewEntity(glyph rune, color core.Color, rect Rect) Entity {
	return Entity{Glyph: glyph, Color: color, Rect: rect}
}

// CollidesWith reports whether this entity's rectangle overlaps another's.
func (e *Entity) CollidesWith(other *Entity) bool {
	return e.Rect.Intersects(other.Rect)
}

// MovableEntity is an entity with a velocity vector, repositioned each tick.
type MovableEntity struct {
	Entity
	Speed Vec
}

// NewMovableEntity creates a movable entity with the given velocity.
func NewMovableEntity(glyph rune, color core.Color, rect Rect, speed Vec) MovableEntity {
	return MovableEntity{Entity: NewEntity(glyph, color, rect), Speed: speed}
}

// Move applies the velocity vector to the position once per simulation tick.
// No bounds checking happens here; the caller resolves collisions afterwards.
func (m *MovableEntity) Move() {
	m.Rect.MoveBy(m.Speed)
}

// Block is a static destructible entity.
type Block struct {
	Entity
	destroyed bool
}

// NewBlock creates a live block.
func NewBlock(glyph rune, color core.Color, rect Rect) *Block {
	return &Block{Entity: NewEntity(glyph, color, rect)}
}

// Destroyed reports whether the block has been destroyed.
func (b *Block) Destroyed() bool {
	return b.destroyed
}

// MarkDestroyed flips the block to destroyed. Calling it again is a no-op;
// the flag never goes back to false. Destroyed blocks are excluded from
// rendering and collision testing by the level.
func (b *Block) MarkDestroyed() {
	b.destroyed = true
}

// Platform is the player-controlled paddle. It only ever moves horizontally;
// the vertical velocity component stays zero.
type Platform struct {
	MovableEntity
	maxSpeed Unit
}

// NewPlatform creates a platform with the given horizontal speed magnitude.
func NewPlatform(glyph rune, color core.Color, rect Rect, speed Unit) *Platform {
	return &Platform{
		MovableEntity: NewMovableEntity(glyph, color, rect, Vec{}),
		maxSpeed:      speed.Abs(),
	}
}

// Move sets the horizontal velocity from the input direction (-1 left,
// 0 idle, +1 right) and applies it. Clamping against the play-area edges is
// the level's job, done by direct position correction after the move.
func (p *Platform) Move(direction int) {
	switch {
	case direction < 0:
		p.Speed.X = -p.maxSpeed
	case direction > 0:
		p.Speed.X = p.maxSpeed
	default:
		p.Speed.X = 0
	}
	p.Speed.Y = 0
	p.MovableEntity.Move()
}

// Ball is the bouncing projectile. While docked its velocity is zero and the
// level keeps it glued to the platform's top center.
type Ball struct {
	MovableEntity
}

// NewBall creates a ball with zero velocity.
func NewBall(glyph rune, color core.Color, rect Rect) *Ball {
	return &Ball{MovableEntity: NewMovableEntity(glyph, color, rect, Vec{})}
}
