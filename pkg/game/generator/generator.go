package generator

import (
	"image"

	"arrocha/pkg/engine/rng"
)

// GridGenerator is an interface for level generation algorithms
type GridGenerator interface {
	Generate(cols, rows int, src rng.Source) (*Blueprint, error)
	Name() string
}

// RoomMazeGenerator builds room mazes with ladders, movers and extra walls.
type RoomMazeGenerator struct {
	// Config is used as given. A Config with no MaxObject takes the
	// DefaultConfig tunables and keeps its Logger.
	Config Config
}

// Name returns the name of this generator
func (g *RoomMazeGenerator) Name() string {
	return "Room Maze"
}

// Generate creates a new blueprint of cols×rows tiles
func (g *RoomMazeGenerator) Generate(cols, rows int, src rng.Source) (*Blueprint, error) {
	cfg := g.Config
	if cfg.MaxObject == (image.Point{}) {
		logger := cfg.Logger
		cfg = DefaultConfig()
		cfg.Logger = logger
	}
	return New(cols, rows, src, cfg)
}

// Available generators
var (
	RoomMaze = &RoomMazeGenerator{}
)

// DefaultGenerator is the default level generator
var DefaultGenerator GridGenerator = RoomMaze
