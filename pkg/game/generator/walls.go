package generator

import (
	"image"
	"math"
)

// extraWalls scatters wall strands, with the odd ladder, into open floor.
// It returns the number of tiles stamped as Wall.
func (b *Blueprint) extraWalls() int {
	w, h := b.cfg.MaxObject.X, b.cfg.MaxObject.Y
	strands := int(math.Round(float64(b.dim.X*b.dim.Y) * b.cfg.WallsPercent))
	stamped := 0

	for n := 0; n < strands; n++ {
		var loc image.Point
		loc.Y = b.dice.Range(0, b.dim.Y-1)
		loc.X = b.dice.Range(0, b.dim.X-1)
		delta := b.dice.Sign()
		horizontal := !b.dice.OneIn(b.cfg.WallsHorizChance)

		ok := b.isRegionOpen(image.Rect(loc.X-w, loc.Y-h, loc.X+w+1, loc.Y+h+1), OpenSolid)

		if horizontal {
			stamped += b.horizontalWall(loc, delta, ok)
		} else {
			stamped += b.verticalWall(loc, delta, ok)
		}
	}

	return stamped
}

// horizontalWall grows a wall sideways from loc, jogging up or down a row
// now and then and occasionally dropping a ladder instead of a wall tile.
func (b *Blueprint) horizontalWall(loc image.Point, delta int, ok bool) int {
	w, h := b.cfg.MaxObject.X, b.cfg.MaxObject.Y
	stamped := 0

	for steps := 0; ok && steps < maxWalkSteps && !b.dice.OneIn(b.cfg.MeanWallLength); steps++ {
		ahead := inclusiveRect(
			image.Pt(loc.X, loc.Y-h),
			image.Pt(loc.X+delta*w, loc.Y+h),
		)
		if !b.isRegionOpen(ahead, OpenSolid) {
			break
		}

		if b.dice.OneIn(b.cfg.LadderChance) {
			b.ladder(loc)
		} else {
			b.tiles.Set(loc, Wall)
			stamped++
		}

		loc.X += delta

		if b.dice.OneIn(b.cfg.UpDownChance) {
			loc.Y += b.dice.Sign()
		}
	}

	return stamped
}

// verticalWall grows a wall straight up or down from loc.
func (b *Blueprint) verticalWall(loc image.Point, delta int, ok bool) int {
	w, h := b.cfg.MaxObject.X, b.cfg.MaxObject.Y
	stamped := 0

	for steps := 0; ok && steps < maxWalkSteps && !b.dice.OneIn(b.cfg.MeanWallLength); steps++ {
		ahead := inclusiveRect(
			image.Pt(loc.X-w, loc.Y),
			image.Pt(loc.X+w, loc.Y+delta*h),
		)
		if !b.isRegionOpen(ahead, OpenSolid) {
			break
		}

		b.tiles.Set(loc, Wall)
		stamped++
		loc.Y += delta
	}

	return stamped
}

// ladder grows a ladder up and down from origin until it runs into
// something or a wall appears beside it. At the top it keeps going a few
// more rows so an object fits under the cap.
func (b *Blueprint) ladder(origin image.Point) {
	h := b.cfg.MaxObject.Y
	left, right := image.Pt(-1, 0), image.Pt(1, 0)

	for _, delta := range []int{-1, 1} {
		loc := origin
		// Don't hit origin twice.
		if delta == 1 {
			loc.Y++
		}

		for steps := 0; steps < maxWalkSteps && b.IsTileOpen(loc, OpenSolid); steps++ {
			b.tiles.Set(loc, Ladder)

			if !b.IsTileOpen(loc.Add(left), OpenDefault) || !b.IsTileOpen(loc.Add(right), OpenDefault) {
				if delta == -1 {
					for extra := 1; extra <= h; extra++ {
						p := image.Pt(loc.X, loc.Y-extra)
						if !b.IsTileOpen(p, OpenSolid) {
							break
						}
						b.tiles.Set(p, Ladder)
					}
				}
				break
			}

			loc.Y += delta
		}
	}
}
