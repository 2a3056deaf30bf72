package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// panSpeed is how far the arrow keys scroll per tick, in pixels.
const panSpeed = 8

// Update handles input (Ebiten interface)
func (v *Viewer) Update() error {
	if !v.windowOpenedLogged {
		v.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Viewer window opened (%dx%d)", w, h)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		v.showLoops = !v.showLoops
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		v.showTiles = !v.showTiles
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		v.showMovers = !v.showMovers
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		v.offsetX, v.offsetY = 0, 0
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.offsetX += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.offsetX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.offsetY += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.offsetY -= panSpeed
	}

	return nil
}

// Layout returns the logical screen size (Ebiten interface)
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
