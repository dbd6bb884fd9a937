// Package core provides fundamental types and utilities for Road Rush.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "cmp"

// Vec is a point in playfield pixel space.
type Vec struct {
	X, Y float64
}

// Box is an axis-aligned bounding box centered on a point.
// Sprites in the playfield are positioned by their center.
type Box struct {
	Center Vec
	HalfW  float64
	HalfH  float64
}

// NewBox creates a box centered at (x, y) with the given full width and height.
func NewBox(x, y, w, h float64) Box {
	return Box{Center: Vec{X: x, Y: y}, HalfW: w / 2, HalfH: h / 2}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Center.X - b.HalfW }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Center.X + b.HalfW }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Center.Y - b.HalfH }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Center.Y + b.HalfH }

// Intersects returns true if this box overlaps with another.
// Touching edges do not count as overlap.
func (b Box) Intersects(other Box) bool {
	if b.Left() >= other.Right() || other.Left() >= b.Right() {
		return false
	}
	if b.Top() >= other.Bottom() || other.Top() >= b.Bottom() {
		return false
	}
	return true
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
