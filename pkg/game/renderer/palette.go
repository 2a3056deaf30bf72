package renderer

import (
	"image/color"

	"arrocha/pkg/game/generator"
)

// tileColors is the dump palette, indexed by tile kind.
var tileColors = [...]color.RGBA{
	generator.Empty:      {255, 255, 255, 255},
	generator.Wall:       {0, 0, 0, 255},
	generator.Ladder:     {0, 0, 255, 255},
	generator.LiftTrack:  {255, 0, 0, 255},
	generator.MoverTrack: {255, 255, 0, 255},
}

// LoopColor is drawn over tiles to show collision loops.
var LoopColor = color.RGBA{0, 200, 80, 255}

// TileColor returns the colour a tile is drawn with. Unknown kinds are magenta.
func TileColor(t generator.Tile) color.RGBA {
	if !t.IsValid() {
		return color.RGBA{255, 0, 255, 255}
	}
	return tileColors[t]
}
