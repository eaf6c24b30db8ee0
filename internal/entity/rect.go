package entity

// Vec is a 2D velocity vector in fixed-point units per tick.
type Vec struct {
	X, Y Unit
}

// Rect is an axis-aligned bounding rectangle in fixed-point units.
type Rect struct {
	X, Y Unit // Top-left corner
	W, H Unit // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h Unit) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() Unit {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() Unit {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the horizontal center.
func (r Rect) CenterX() Unit {
	return r.X + r.W/2
}

// SetLeft moves the rectangle so its left edge sits at x.
func (r *Rect) SetLeft(x Unit) {
	r.X = x
}

// SetRight moves the rectangle so its right edge sits at x.
func (r *Rect) SetRight(x Unit) {
	r.X = x - r.W
}

// SetTop moves the rectangle so its top edge sits at y.
func (r *Rect) SetTop(y Unit) {
	r.Y = y
}

// SetBottom moves the rectangle so its bottom edge sits at y.
func (r *Rect) SetBottom(y Unit) {
	r.Y = y - r.H
}

// SetCenterX moves the rectangle so its horizontal center sits at x.
func (r *Rect) SetCenterX(x Unit) {
	r.X = x - r.W/2
}

// MoveBy translates the rectangle by the given vector.
func (r *Rect) MoveBy(v Vec) {
	r.X += v.X
	r.Y += v.Y
}

// Intersects reports whether this rectangle overlaps another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}
