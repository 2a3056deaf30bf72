package generator

import (
	"image"

	"arrocha/pkg/engine/world"
)

// implementRooms stamps every room's four borders into the tile grid:
// solid borders become walls, open top/bottom borders become ladder shafts
// and open left/right borders become single-row doorways.
// Each room writes only inside its own block, so room order is irrelevant.
func (b *Blueprint) implementRooms() {
	for across := 0; across < b.rooms.X; across++ {
		for down := 0; down < b.rooms.Y; down++ {
			ri := RoomIndex{Across: across, Down: down}
			origin := image.Pt(across*RoomWidth, down*RoomHeight)

			if b.graph.Closed(ri, world.Up) {
				b.hasTop(origin)
			} else {
				b.missingTop(ri, origin)
			}
			if b.graph.Closed(ri, world.Down) {
				b.hasBottom(origin)
			} else {
				b.missingBottom(ri, origin)
			}
			if b.graph.Closed(ri, world.Left) {
				b.hasLeft(origin)
			} else {
				b.missingLeft(ri, origin)
			}
			if b.graph.Closed(ri, world.Right) {
				b.hasRight(origin)
			} else {
				b.missingRight(ri, origin)
			}
		}
	}
}

func (b *Blueprint) hasTop(origin image.Point) {
	b.tiles.Fill(image.Rect(origin.X, origin.Y, origin.X+RoomWidth, origin.Y+1), Wall)
}

// missingTop runs a ladder shaft from the top border down to just above
// the bottom border row.
func (b *Blueprint) missingTop(ri RoomIndex, origin image.Point) {
	mid := b.graph.Middle(ri)
	b.tiles.Fill(image.Rect(
		origin.X+mid.X, origin.Y,
		origin.X+mid.X+b.cfg.MaxObject.X, origin.Y+RoomHeight-1,
	), Ladder)
}

func (b *Blueprint) hasBottom(origin image.Point) {
	b.tiles.Fill(image.Rect(origin.X, origin.Y+RoomHeight-1, origin.X+RoomWidth, origin.Y+RoomHeight), Wall)
}

// missingBottom runs a ladder shaft from just above the doorway row down
// through the bottom border.
func (b *Blueprint) missingBottom(ri RoomIndex, origin image.Point) {
	mid := b.graph.Middle(ri)
	b.tiles.Fill(image.Rect(
		origin.X+mid.X, origin.Y+mid.Y-b.cfg.MaxObject.Y,
		origin.X+mid.X+b.cfg.MaxObject.X, origin.Y+RoomHeight,
	), Ladder)
}

func (b *Blueprint) hasLeft(origin image.Point) {
	b.tiles.Fill(image.Rect(origin.X, origin.Y, origin.X+1, origin.Y+RoomHeight), Wall)
}

// missingLeft lays floor on the doorway row from the left edge up to the shaft.
func (b *Blueprint) missingLeft(ri RoomIndex, origin image.Point) {
	mid := b.graph.Middle(ri)
	b.tiles.Fill(image.Rect(origin.X, origin.Y+mid.Y, origin.X+mid.X, origin.Y+mid.Y+1), Wall)
}

func (b *Blueprint) hasRight(origin image.Point) {
	b.tiles.Fill(image.Rect(origin.X+RoomWidth-1, origin.Y, origin.X+RoomWidth, origin.Y+RoomHeight), Wall)
}

// missingRight lays floor on the doorway row from past the shaft to the right edge.
func (b *Blueprint) missingRight(ri RoomIndex, origin image.Point) {
	mid := b.graph.Middle(ri)
	b.tiles.Fill(image.Rect(
		origin.X+mid.X+b.cfg.MaxObject.X, origin.Y+mid.Y,
		origin.X+RoomWidth, origin.Y+mid.Y+1,
	), Wall)
}
