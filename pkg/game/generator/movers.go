package generator

import (
	"image"
	"math"
)

// MoverKind tells which way a moving platform travels.
type MoverKind int

const (
	// HorizontalMover runs along a MoverTrack row.
	HorizontalMover MoverKind = iota
	// VerticalMover runs up and down a former ladder shaft.
	VerticalMover
)

// String returns the name of the mover kind
func (k MoverKind) String() string {
	switch k {
	case HorizontalMover:
		return "horizontal"
	case VerticalMover:
		return "vertical"
	default:
		return "unknown"
	}
}

// Mover is one placed moving platform and the tiles its track covers.
// Vertical tracks are cleared to Empty in the grid, so Track is the only
// record of where a lift runs.
type Mover struct {
	Kind  MoverKind
	Track image.Rectangle
}

// addMovers places a random number of movers, trying each a bounded number
// of times before giving up on it.
func (b *Blueprint) addMovers() (target, placed int) {
	upper := int(math.Round(float64(b.rooms.X*b.rooms.Y) * b.cfg.MoversPercent))
	target = b.dice.Range(0, upper)

	for n := 0; n < target; n++ {
		vertical := b.dice.Coin()
		ok := false
		for tries := 0; !ok && tries < b.cfg.MoverTries; tries++ {
			if vertical {
				ok = b.addVerticalMover()
			} else {
				ok = b.addHorizontalMover()
			}
		}
		if ok {
			placed++
		}
	}
	return target, placed
}

// addHorizontalMover lays a MoverTrack run from a random anchor. It fails
// only when the anchor lacks room for a minimum-length track.
func (b *Blueprint) addHorizontalMover() bool {
	w, h := b.cfg.MaxObject.X, b.cfg.MaxObject.Y

	// loc walks right or left, filling in track.
	var loc image.Point
	loc.Y = b.dice.Range(0, b.dim.Y-1)
	loc.X = b.dice.Range(0, b.dim.X-1)
	delta := b.dice.Sign()

	// Room for the minimum track plus blank space around it.
	behind, ahead := 1, 2
	if delta == 1 {
		ahead = b.cfg.MinTrack + 1
	} else {
		behind = b.cfg.MinTrack
	}
	clearance := image.Rect(loc.X-behind*w, loc.Y-h, loc.X+ahead*w, loc.Y+h+1)
	if !b.isRegionOpen(clearance, OpenMover) {
		return false
	}

	// Going left, start from the right edge of the mover.
	if delta == -1 {
		loc.X += w - 1
	}

	left, right := loc.X, loc.X
	mandatory := b.cfg.MinTrack * w

	for n := 0; n < maxWalkSteps; n++ {
		if n > mandatory && b.dice.OneIn(b.cfg.TrackLength) {
			break
		}

		window := inclusiveRect(
			image.Pt(loc.X, loc.Y-h),
			image.Pt(loc.X+delta*(w-1), loc.Y+h),
		)
		if !b.isRegionOpen(window, OpenMover) {
			invariant(n >= mandatory, "horizontal mover blocked after %d of %d tiles at %v", n, mandatory, loc)
			break
		}

		b.tiles.Set(loc, MoverTrack)
		left = min(left, loc.X)
		right = max(right, loc.X)
		loc.X += delta
	}

	invariant(right-left+1 >= mandatory, "horizontal track %d..%d shorter than %d", left, right, mandatory)

	b.movers = append(b.movers, Mover{
		Kind:  HorizontalMover,
		Track: image.Rect(left, loc.Y, right+1, loc.Y+1),
	})
	return true
}

// shaftState is what probeShaft found on one row of a shaft.
type shaftState int

const (
	shaftBlocked shaftState = iota
	// shaftLadders: the whole span is ladder.
	shaftLadders
	// shaftStickingFloor: the span is wall directly under track, so the
	// track may sink one tile into the floor.
	shaftStickingFloor
)

// probeShaft classifies the object-wide span starting at loc while
// scanning in direction delta.
func (b *Blueprint) probeShaft(loc image.Point, delta int) shaftState {
	w := b.cfg.MaxObject.X
	span := image.Rect(loc.X, loc.Y, loc.X+w, loc.Y+1)
	above := span.Sub(image.Pt(0, 1))

	if !b.spanInside(span) {
		return shaftBlocked
	}
	if b.spanIs(span, Ladder) {
		return shaftLadders
	}
	if delta == 1 && b.spanIs(span, Wall) && b.spanInside(above) &&
		(b.spanIs(above, MoverTrack) || b.spanIs(above, LiftTrack)) {
		return shaftStickingFloor
	}
	return shaftBlocked
}

// addVerticalMover turns the ladder shaft through a random room's doorway
// into a lift track. It fails when there is no shaft at that doorway.
func (b *Blueprint) addVerticalMover() bool {
	w, h := b.cfg.MaxObject.X, b.cfg.MaxObject.Y

	var init image.Point
	across := b.dice.Range(0, b.rooms.X-1)
	init.X = across*RoomWidth + b.graph.middleCols[across]
	down := b.dice.Range(0, b.rooms.Y-1)
	init.Y = down*RoomHeight + b.graph.middleRows[down]

	// The padded grid carves doorways past the visible edge too.
	doorway := image.Rect(init.X, init.Y, init.X+w, init.Y+1)
	if !b.spanInside(doorway) || !b.spanIs(doorway, Ladder) {
		return false
	}

	// Rows in [top, bottom) become track.
	top, bottom := init.Y, init.Y

	// Scan up, then down.
	for _, delta := range []int{-1, 1} {
		loc := init
		// Don't convert init twice.
		if delta == 1 {
			loc.Y++
		}

		for steps := 0; steps < maxWalkSteps; steps++ {
			if b.probeShaft(loc, delta) == shaftBlocked {
				break
			}

			b.liftRow(image.Rect(init.X, loc.Y, init.X+w, loc.Y+1))
			top = min(top, loc.Y)
			bottom = max(bottom, loc.Y+1)

			// Remove the stub of ladder left sticking up above the lift.
			if delta == -1 && b.tiles.At(image.Pt(init.X, loc.Y-h-1)) != Ladder {
				b.tiles.Fill(image.Rect(init.X, loc.Y-h, init.X+w, loc.Y), Empty)
				break
			}

			loc.Y += delta
		}
	}

	invariant(top < bottom, "vertical mover at %v converted no rows", init)

	track := image.Rect(init.X, top, init.X+w, bottom)
	b.clearLiftMarks(track)
	b.movers = append(b.movers, Mover{
		Kind:  VerticalMover,
		Track: track,
	})
	return true
}

// liftRow lays one row of a vertical track. Ladder cells become LiftTrack
// until the scan finishes; wall cells stay Wall and overlap the track.
func (b *Blueprint) liftRow(span image.Rectangle) {
	for x := span.Min.X; x < span.Max.X; x++ {
		p := image.Pt(x, span.Min.Y)
		prev := b.tiles.At(p)
		invariant(prev == Ladder || prev == Wall, "lift track over %v at %v", prev, p)

		if prev != Wall {
			b.tiles.Set(p, LiftTrack)
		}
	}
}

// clearLiftMarks demotes the LiftTrack cells of a finished track to Empty.
// The Mover record keeps the extent.
func (b *Blueprint) clearLiftMarks(track image.Rectangle) {
	for y := track.Min.Y; y < track.Max.Y; y++ {
		for x := track.Min.X; x < track.Max.X; x++ {
			if p := image.Pt(x, y); b.tiles.At(p) == LiftTrack {
				b.tiles.Set(p, Empty)
			}
		}
	}
}

// spanInside reports whether every tile of span is in the visible area.
func (b *Blueprint) spanInside(span image.Rectangle) bool {
	return b.inside(span.Min) && b.inside(span.Max.Sub(image.Pt(1, 1)))
}

// spanIs reports whether every tile of span holds kind.
func (b *Blueprint) spanIs(span image.Rectangle, kind Tile) bool {
	for y := span.Min.Y; y < span.Max.Y; y++ {
		for x := span.Min.X; x < span.Max.X; x++ {
			if b.tiles.At(image.Pt(x, y)) != kind {
				return false
			}
		}
	}
	return true
}
