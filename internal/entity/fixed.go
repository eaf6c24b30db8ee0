// Package entity defines the game objects of the arkanoid level: the base
// Entity, the movable variants, destructible blocks, the platform, and the
// ball. Geometry uses fixed-point units so that speeds below one terminal
// cell per tick stay deterministic.
package entity

// Scale is the fixed-point factor: 1 screen cell = 1000 units.
const Scale = 1000

// Unit is a fixed-point coordinate or distance (scaled by Scale).
type Unit int

// FromCells converts a cell count to fixed-point units.
func FromCells(cells int) Unit {
	return Unit(cells * Scale)
}

// Cells converts fixed-point units to whole cells (truncated).
func (u Unit) Cells() int {
	return int(u) / Scale
}

// Abs returns the absolute value.
func (u Unit) Abs() Unit {
	if u < 0 {
		return -u
	}
	return u
}

// ClampUnit restricts a value to [minVal, maxVal].
func ClampUnit(val, minVal, maxVal Unit) Unit {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
