package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arrocha/pkg/game/circuit"
	"arrocha/pkg/game/renderer"
)

// Draw renders the level (Ebiten interface)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if v.level == nil {
		return
	}

	if v.showTiles {
		if v.tileLayer == nil {
			v.tileLayer = ebiten.NewImageFromImage(renderer.Rasterize(v.level.Tiles, v.tileSize))
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(v.offsetX, v.offsetY)
		screen.DrawImage(v.tileLayer, op)
	}

	if v.showMovers {
		v.drawMovers(screen)
	}
	if v.showLoops {
		v.drawLoops(screen)
	}

	v.drawStatus(screen)
}

// toScreen maps a loop vertex to pixels. Tile (x, y) spans
// [x*ts, (x+1)*ts) so a corner at x-0.5 lands on the tile's left edge.
func (v *Viewer) toScreen(p circuit.Point) (float32, float32) {
	ts := float64(v.tileSize)
	return float32((p.X+0.5)*ts + v.offsetX), float32((p.Y+0.5)*ts + v.offsetY)
}

func (v *Viewer) drawLoops(screen *ebiten.Image) {
	width := float32(max(1, v.tileSize/6))
	for _, loop := range v.level.Loops {
		for i := 1; i < len(loop); i++ {
			x0, y0 := v.toScreen(loop[i-1])
			x1, y1 := v.toScreen(loop[i])
			vector.StrokeLine(screen, x0, y0, x1, y1, width, renderer.LoopColor, true)
		}
	}
}

func (v *Viewer) drawMovers(screen *ebiten.Image) {
	ts := float32(v.tileSize)
	for _, m := range v.level.Movers {
		x := float32(m.Track.Min.X)*ts + float32(v.offsetX)
		y := float32(m.Track.Min.Y)*ts + float32(v.offsetY)
		vector.StrokeRect(screen, x, y, float32(m.Track.Dx())*ts, float32(m.Track.Dy())*ts, 2, colorMoverTrack, false)
	}
}

func (v *Viewer) drawStatus(screen *ebiten.Image) {
	msg := tr("VIEWER_STATUS", v.level.Seed, v.level.Cols, v.level.Rows, len(v.level.Loops), v.level.MoverCount())
	vector.DrawFilledRect(screen, 0, 0, float32(len(msg)*6+8), 20, colorStatusBg, false)
	ebitenutil.DebugPrintAt(screen, msg, 4, 2)
}
