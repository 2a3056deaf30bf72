package generator

import (
	"errors"
	"fmt"
	"image"
	"log"
)

// Room size in tiles. Every room of the room graph covers exactly this block.
const (
	RoomWidth  = 26
	RoomHeight = 16
)

// maxWalkSteps caps every probabilistic walk. Walks are geometric and end
// long before this on any sane grid.
const maxWalkSteps = 1 << 16

var (
	// ErrInvalidDimensions is returned for non-positive grid sizes.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid generator config")
)

// Config holds the tunables of one generation run.
type Config struct {
	// MaxObject is the size in tiles of the biggest object in the level.
	// Shafts, doorways and clearance windows are sized from it.
	MaxObject image.Point

	StrandPercent float64 // strands per room in the room graph
	StrandLength  int     // a strand stops with chance 1/StrandLength per step

	MoversPercent float64 // upper bound of movers per room
	MoverTries    int     // placement attempts per mover
	MinTrack      int     // minimum horizontal track length, in object widths
	TrackLength   int     // a horizontal track stops with chance 1/TrackLength per tile

	WallsPercent     float64 // extra wall strands per tile
	MeanWallLength   int     // an extra wall stops with chance 1/MeanWallLength per tile
	WallsHorizChance int     // an extra wall is vertical with chance 1/WallsHorizChance
	LadderChance     int     // a horizontal wall tile becomes a ladder with chance 1/LadderChance
	UpDownChance     int     // a horizontal wall jogs a row with chance 1/UpDownChance

	// Logger receives the size report and phase counts. Nil discards.
	Logger *log.Logger
}

// DefaultConfig returns the tuning the level layout was designed around.
func DefaultConfig() Config {
	return Config{
		MaxObject:        image.Pt(2, 2),
		StrandPercent:    0.5,
		StrandLength:     8,
		MoversPercent:    0.4,
		MoverTries:       6,
		MinTrack:         6,
		TrackLength:      25,
		WallsPercent:     0.01,
		MeanWallLength:   30,
		WallsHorizChance: 4,
		LadderChance:     10,
		UpDownChance:     4,
	}
}

// Validate checks the config for values the generator cannot work with.
func (c Config) Validate() error {
	// Room offsets are drawn from [1, extent - 2*(size+1)].
	if c.MaxObject.X < 2 || RoomWidth-2*(c.MaxObject.X+1) < 1 {
		return fmt.Errorf("%w: max object width %d", ErrInvalidConfig, c.MaxObject.X)
	}
	if c.MaxObject.Y < 1 || RoomHeight-2*(c.MaxObject.Y+1) < 1 {
		return fmt.Errorf("%w: max object height %d", ErrInvalidConfig, c.MaxObject.Y)
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"strand percent", c.StrandPercent},
		{"movers percent", c.MoversPercent},
		{"walls percent", c.WallsPercent},
	} {
		if f.v < 0 {
			return fmt.Errorf("%w: %s %v", ErrInvalidConfig, f.name, f.v)
		}
	}

	for _, f := range []struct {
		name string
		v    int
	}{
		{"strand length", c.StrandLength},
		{"mover tries", c.MoverTries},
		{"min track", c.MinTrack},
		{"track length", c.TrackLength},
		{"mean wall length", c.MeanWallLength},
		{"walls horiz chance", c.WallsHorizChance},
		{"ladder chance", c.LadderChance},
		{"up down chance", c.UpDownChance},
	} {
		if f.v < 1 {
			return fmt.Errorf("%w: %s %d", ErrInvalidConfig, f.name, f.v)
		}
	}

	return nil
}
