package generator

import (
	"fmt"
	"image"
	"io"
	"log"
	"math"

	"arrocha/pkg/engine/rng"
	"arrocha/pkg/engine/world"
)

// Blueprint is one generated level: the room graph, the tile grid and the
// movers placed on it. The grid is padded by one room on the far edges so
// carving never runs off it; only the cols×rows corner is ever exposed.
type Blueprint struct {
	cfg  Config
	dice *rng.Dice
	log  *log.Logger

	dim   image.Point // in tiles
	rooms image.Point // in rooms

	graph  *RoomGraph
	tiles  *world.Grid[Tile]
	movers []Mover
}

// New generates a blueprint of cols×rows tiles, drawing every random
// decision from src.
func New(cols, rows int, src rng.Source, cfg Config) (*Blueprint, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := newBlueprint(cols, rows, src, cfg)
	b.generate()
	return b, nil
}

// newBlueprint sets up an empty blueprint with a perimeter-only room graph.
func newBlueprint(cols, rows int, src rng.Source, cfg Config) *Blueprint {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	b := &Blueprint{
		cfg:  cfg,
		dice: rng.NewDice(src),
		log:  logger,
		dim:  image.Pt(cols, rows),
		rooms: image.Pt(
			int(math.Ceil(float64(cols)/RoomWidth)),
			int(math.Ceil(float64(rows)/RoomHeight)),
		),
	}

	b.log.Printf("size in rooms: %dx%d, in tiles: %dx%d", b.rooms.X, b.rooms.Y, cols, rows)

	b.graph = newRoomGraph(b.rooms)
	b.tiles = world.NewGrid[Tile](cols+RoomWidth, rows+RoomHeight)
	return b
}

// generate runs the phases in order; each reads the grid the previous one left.
func (b *Blueprint) generate() {
	closed := b.graph.fillRandom(b.dice, b.cfg.StrandPercent, b.cfg.StrandLength)
	b.graph.computeMiddles(b.dice, b.cfg.MaxObject)
	b.log.Printf("room graph: %d border segments closed", closed)

	b.implementRooms()

	target, placed := b.addMovers()
	b.log.Printf("movers: %d of %d placed", placed, target)

	walls := b.extraWalls()
	b.log.Printf("extra walls: %d tiles", walls)
}

// Dim returns the level size in tiles.
func (b *Blueprint) Dim() image.Point {
	return b.dim
}

// Rooms returns the level size in rooms.
func (b *Blueprint) Rooms() image.Point {
	return b.rooms
}

// Graph returns the room graph the tiles were carved from.
func (b *Blueprint) Graph() *RoomGraph {
	return b.graph
}

// Tiles returns a read-only copy of the visible cols×rows tiles.
func (b *Blueprint) Tiles() TileMap {
	return TileMap{grid: b.tiles.Crop(b.dim.X, b.dim.Y)}
}

// MoverCount returns how many movers were placed.
func (b *Blueprint) MoverCount() int {
	return len(b.movers)
}

// Movers returns the placed movers in placement order.
func (b *Blueprint) Movers() []Mover {
	out := make([]Mover, len(b.movers))
	copy(out, b.movers)
	return out
}

// inside reports whether p lies in the visible cols×rows area.
func (b *Blueprint) inside(p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.dim.X && p.Y < b.dim.Y
}

// invariant panics when the grid reached a state the placement code
// cannot reason about.
func invariant(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("invariant: "+format, args...))
	}
}

// inclusiveRect returns the rectangle spanning a and b, both included,
// in whichever order they are given.
func inclusiveRect(a, b image.Point) image.Rectangle {
	r := image.Rectangle{Min: a, Max: b}.Canon()
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}
