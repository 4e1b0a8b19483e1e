// Package core provides fundamental types and utilities for the snake arcade.
// It contains no external dependencies (especially no Bubble Tea or raylib) to
// keep game logic pure and testable.
package core

// Point is an integer coordinate. The snake works in pixels, so every point it
// produces is a multiple of the grid square.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns p with both coordinates multiplied by k.
func (p Point) Mul(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the overlapping part of r and other.
// The result is empty when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
