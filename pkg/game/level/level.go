// Package level bundles a generated tile map with the collision loops traced
// from it, ready for a physics world and for the debug dumps.
package level

import (
	"errors"
	"fmt"
	"image"

	"arrocha/pkg/engine/rng"
	"arrocha/pkg/game/circuit"
	"arrocha/pkg/game/generator"
)

var (
	// ErrOpenLoop is returned by Validate when a loop fails to close.
	ErrOpenLoop = errors.New("collision loop not closed")
	// ErrUncovered is returned by Validate when a wall side has no loop on it.
	ErrUncovered = errors.New("wall edge not covered by any loop")
)

// Level is one finished level.
type Level struct {
	Seed  int64
	Cols  int
	Rows  int
	Rooms image.Point

	Tiles  generator.TileMap
	Loops  []circuit.Loop
	Movers []generator.Mover
}

// Generate runs gen with a source seeded from seed and traces the result.
func Generate(gen generator.GridGenerator, cols, rows int, seed int64) (*Level, error) {
	bp, err := gen.Generate(cols, rows, rng.New(seed))
	if err != nil {
		return nil, fmt.Errorf("%s %dx%d: %w", gen.Name(), cols, rows, err)
	}

	l := FromTiles(bp.Tiles())
	l.Seed = seed
	l.Rooms = bp.Rooms()
	l.Movers = bp.Movers()
	return l, nil
}

// FromTiles wraps a hand-built or loaded tile map and traces its loops.
func FromTiles(tiles generator.TileMap) *Level {
	return &Level{
		Cols:  tiles.Cols(),
		Rows:  tiles.Rows(),
		Tiles: tiles,
		Loops: circuit.Trace(tiles),
	}
}

// MoverCount returns the number of placed movers.
func (l *Level) MoverCount() int {
	return len(l.Movers)
}

// ToCoord maps a tile-space point to physics space, where y grows upward.
func ToCoord(p circuit.Point) circuit.Point {
	return circuit.Point{X: p.X, Y: -p.Y}
}

// Chains returns each loop as an open vertex list in physics space, one per
// chain shape.
func (l *Level) Chains() [][]circuit.Point {
	out := make([][]circuit.Point, 0, len(l.Loops))
	for _, loop := range l.Loops {
		chain := loop.Chain()
		for i := range chain {
			chain[i] = ToCoord(chain[i])
		}
		out = append(out, chain)
	}
	return out
}
