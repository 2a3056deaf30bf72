// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based generator.
package world

import (
	"image"
)

// Grid is a dense 2D container addressed by (col, row) points.
// Storage is a single flat slice owned by the grid.
type Grid[T any] struct {
	cells []T
	cols  int
	rows  int
}

// NewGrid creates a new grid with the given dimensions, every cell holding
// the zero value of T.
func NewGrid[T any](cols, rows int) *Grid[T] {
	g := &Grid[T]{}
	g.Build(cols, rows)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid[T]) Build(cols, rows int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.cols = cols
	g.rows = rows
	g.cells = make([]T, cols*rows)
}

// Rows returns the number of rows in the grid
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid[T]) Cols() int {
	return g.cols
}

// Bounds returns the rectangle covered by the grid.
func (g *Grid[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.cols, g.rows)
}

// IsValidPosition checks if a point is within grid bounds
func (g *Grid[T]) IsValidPosition(p image.Point) bool {
	return p.Y >= 0 && p.Y < g.rows && p.X >= 0 && p.X < g.cols
}

// IsOnPerimeter checks if a point is on the edge of the grid
func (g *Grid[T]) IsOnPerimeter(p image.Point) bool {
	return g.IsValidPosition(p) &&
		(p.X == 0 || p.Y == 0 || p.X == g.cols-1 || p.Y == g.rows-1)
}

// At returns the value at p, or the zero value if p is out of bounds.
func (g *Grid[T]) At(p image.Point) T {
	if !g.IsValidPosition(p) {
		var zero T
		return zero
	}
	return g.cells[p.Y*g.cols+p.X]
}

// Set stores v at p. Returns false if p is out of bounds.
func (g *Grid[T]) Set(p image.Point, v T) bool {
	if !g.IsValidPosition(p) {
		return false
	}
	g.cells[p.Y*g.cols+p.X] = v
	return true
}

// Fill stores v in every cell of r that lies inside the grid.
func (g *Grid[T]) Fill(r image.Rectangle, v T) {
	r = r.Intersect(g.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			g.cells[y*g.cols+x] = v
		}
	}
}

// ForEachCell iterates over all cells in row-major order, calling the provided function for each
func (g *Grid[T]) ForEachCell(fn func(p image.Point, v T)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(image.Pt(col, row), g.cells[row*g.cols+col])
		}
	}
}

// Crop returns a copy of the top-left cols×rows corner of the grid.
// Dimensions larger than the grid are clamped.
func (g *Grid[T]) Crop(cols, rows int) *Grid[T] {
	cols = min(cols, g.cols)
	rows = min(rows, g.rows)

	out := NewGrid[T](cols, rows)
	for row := 0; row < rows; row++ {
		copy(out.cells[row*cols:(row+1)*cols], g.cells[row*g.cols:row*g.cols+cols])
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return g.Crop(g.cols, g.rows)
}
