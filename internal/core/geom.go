// Package core provides the screen buffer and geometry the course previewer
// draws with. It has no terminal or Bubble Tea dependencies.
package core

import "math"

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

// Viewport maps a window of world space onto a screen area.
// World X grows right and world Y grows down, same as the screen.
type Viewport struct {
	Left    float64 // World X shown in screen column 0
	Top     float64 // World Y shown in screen row 0
	XScale  float64 // World units per column
	YScale  float64 // World units per row
	Columns int
	Rows    int
}

// NewViewport fits the world band [top, bottom] into rows and shows
// columns*xScale world units horizontally from left.
func NewViewport(left, top, bottom, xScale float64, columns, rows int) Viewport {
	rows = max(rows, 1)
	return Viewport{
		Left:    left,
		Top:     top,
		XScale:  xScale,
		YScale:  (bottom - top) / float64(rows),
		Columns: columns,
		Rows:    rows,
	}
}

// Column returns the screen column of world x.
func (v Viewport) Column(x float64) int {
	return int(math.Floor((x - v.Left) / v.XScale))
}

// Row returns the screen row of world y.
func (v Viewport) Row(y float64) int {
	return int(math.Floor((y - v.Top) / v.YScale))
}

// Project maps a world rectangle to cells. Anything with positive extent
// covers at least one cell.
func (v Viewport) Project(x, y, w, h float64) Rect {
	col := v.Column(x)
	row := v.Row(y)
	return Rect{
		X: col,
		Y: row,
		W: max(1, v.Column(x+w)-col),
		H: max(1, v.Row(y+h)-row),
	}
}

// Visible reports whether world x is on screen.
func (v Viewport) Visible(x float64) bool {
	c := v.Column(x)
	return c >= 0 && c < v.Columns
}

// Width returns the world width the viewport shows.
func (v Viewport) Width() float64 {
	return float64(v.Columns) * v.XScale
}
