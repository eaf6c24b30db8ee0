package game

import "github.com/arcade-tui/arkanoid/internal/entity"

// adjustOnXCollision resolves a horizontal overlap between a moving entity
// and an obstacle. The mover is snapped flush against the obstacle edge it
// came through and its horizontal velocity is inverted.
func adjustOnXCollision(m *entity.MovableEntity, obstacle entity.Rect) {
	// Right side of the mover inside the obstacle means it hit the
	// obstacle's left face; otherwise it came from the right.
	if m.Rect.Right() > obstacle.X && m.Rect.Right() < obstacle.Right() {
		m.Rect.SetRight(obstacle.X)
	} else {
		m.Rect.SetLeft(obstacle.Right())
	}
	m.Speed.X = -m.Speed.X
}

// adjustOnYCollision resolves a vertical overlap by undoing the vertical
// step that caused it and inverting the vertical velocity.
func adjustOnYCollision(m *entity.MovableEntity) {
	m.Rect.Y -= m.Speed.Y
	m.Speed.Y = -m.Speed.Y
}
