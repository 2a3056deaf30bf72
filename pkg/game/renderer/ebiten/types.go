// Package ebiten provides an Ebiten-based debug viewer for generated levels.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"arrocha/pkg/game/level"
)

// tr looks up translated messages; keys are not format strings to vet.
var tr = gotext.Get

// Viewer colours on top of the shared tile palette.
var (
	colorBackground = color.RGBA{26, 26, 46, 255}
	colorMoverTrack = color.RGBA{255, 150, 0, 255}
	colorStatusBg   = color.RGBA{30, 30, 50, 220}
)

// Viewer implements ebiten.Game and shows one level with optional overlays.
type Viewer struct {
	level *level.Level

	windowWidth  int
	windowHeight int
	tileSize     int

	// Pan offset in pixels.
	offsetX float64
	offsetY float64

	showTiles  bool
	showLoops  bool
	showMovers bool

	// tileLayer caches the rasterised tiles at tileSize.
	tileLayer *ebiten.Image

	windowOpenedLogged bool
}
