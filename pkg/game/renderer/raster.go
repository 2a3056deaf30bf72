package renderer

import (
	"image"

	"arrocha/pkg/game/generator"
)

// Rasterize paints each tile as a scale×scale block of its palette colour.
func Rasterize(tiles generator.TileMap, scale int) *image.RGBA {
	scale = max(scale, 1)
	img := image.NewRGBA(image.Rect(0, 0, tiles.Cols()*scale, tiles.Rows()*scale))
	tiles.ForEachTile(func(p image.Point, t generator.Tile) {
		c := TileColor(t)
		for y := p.Y * scale; y < (p.Y+1)*scale; y++ {
			for x := p.X * scale; x < (p.X+1)*scale; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	})
	return img
}

// FitTileSize returns the largest square tile size, at least 1, that fits
// cols×rows tiles into maxWidth×maxHeight pixels.
func FitTileSize(cols, rows, maxWidth, maxHeight int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	return max(1, min(maxWidth/cols, maxHeight/rows))
}
