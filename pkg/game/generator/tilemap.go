package generator

import (
	"image"
	"strings"

	"arrocha/pkg/engine/world"
)

// TileMap is a read-only view of a finished level's tiles.
type TileMap struct {
	grid *world.Grid[Tile]
}

// NewTileMap copies grid into a TileMap. Tests and tools use it to hand
// hand-built layouts to the same consumers as generated ones.
func NewTileMap(grid *world.Grid[Tile]) TileMap {
	return TileMap{grid: grid.Clone()}
}

// ParseTileMap builds a TileMap from rows of Tile.Rune symbols.
// Unknown symbols read as Empty.
func ParseTileMap(rows ...string) TileMap {
	cols := 0
	for _, r := range rows {
		cols = max(cols, len([]rune(r)))
	}
	grid := world.NewGrid[Tile](max(cols, 1), max(len(rows), 1))
	for y, r := range rows {
		for x, ch := range []rune(r) {
			for _, t := range AllTiles() {
				if t.Rune() == ch {
					grid.Set(image.Pt(x, y), t)
					break
				}
			}
		}
	}
	return TileMap{grid: grid}
}

// Cols returns the width in tiles.
func (m TileMap) Cols() int {
	return m.grid.Cols()
}

// Rows returns the height in tiles.
func (m TileMap) Rows() int {
	return m.grid.Rows()
}

// Bounds returns the rectangle covered by the map.
func (m TileMap) Bounds() image.Rectangle {
	return m.grid.Bounds()
}

// At returns the tile at p; out of bounds reads as Empty.
func (m TileMap) At(p image.Point) Tile {
	return m.grid.At(p)
}

// Solid reports whether p is a wall tile.
func (m TileMap) Solid(p image.Point) bool {
	return m.grid.IsValidPosition(p) && m.grid.At(p) == Wall
}

// ForEachTile iterates in row-major order.
func (m TileMap) ForEachTile(fn func(p image.Point, t Tile)) {
	m.grid.ForEachCell(fn)
}

// Count returns how many tiles hold kind.
func (m TileMap) Count(kind Tile) int {
	n := 0
	m.grid.ForEachCell(func(_ image.Point, t Tile) {
		if t == kind {
			n++
		}
	})
	return n
}

// Equal reports whether both maps have the same size and tiles.
func (m TileMap) Equal(other TileMap) bool {
	if m.Cols() != other.Cols() || m.Rows() != other.Rows() {
		return false
	}
	equal := true
	m.grid.ForEachCell(func(p image.Point, t Tile) {
		if other.At(p) != t {
			equal = false
		}
	})
	return equal
}

// String renders the map one row per line using Tile.Rune.
func (m TileMap) String() string {
	var sb strings.Builder
	sb.Grow((m.Cols() + 1) * m.Rows())
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			sb.WriteRune(m.At(image.Pt(x, y)).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
