package level

import (
	"fmt"
	"image"
	"math"

	"github.com/zyedidia/generic/mapset"

	"arrocha/pkg/engine/world"
	"arrocha/pkg/game/circuit"
)

// tileSide names one side of one tile.
type tileSide struct {
	tile image.Point
	side world.Direction
}

// Validate checks that every loop closes and that every wall side facing
// open space lies on some loop.
func (l *Level) Validate() error {
	for i, loop := range l.Loops {
		if !loop.Closed() || len(loop.Chain()) < 3 {
			return fmt.Errorf("%w: loop %d has %d points", ErrOpenLoop, i, len(loop))
		}
	}

	covered := mapset.New[tileSide]()
	for i, loop := range l.Loops {
		if err := collectSides(loop, covered); err != nil {
			return fmt.Errorf("loop %d: %w", i, err)
		}
	}
	return l.checkCoverage(covered)
}

func (l *Level) checkCoverage(covered mapset.Set[tileSide]) error {
	b := l.Tiles.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := image.Pt(x, y)
			if !l.Tiles.Solid(p) {
				continue
			}
			for _, side := range world.AllDirections() {
				if l.Tiles.Solid(p.Add(side.Delta())) {
					continue
				}
				if !covered.Has(tileSide{p, side}) {
					return fmt.Errorf("%w: tile %v side %v", ErrUncovered, p, side)
				}
			}
		}
	}
	return nil
}

// collectSides adds to set every unit tile side along the loop. Loops keep
// solid on the right of the walk, so each unit step names the wall tile on
// its right and the side of that tile facing the step.
func collectSides(loop circuit.Loop, set mapset.Set[tileSide]) error {
	for i := 1; i < len(loop); i++ {
		a, b := loop[i-1], loop[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		if dx != 0 && dy != 0 {
			return fmt.Errorf("%w: diagonal segment %v to %v", ErrOpenLoop, a, b)
		}

		steps := int(math.Round(math.Abs(dx) + math.Abs(dy)))
		ux, uy := sign(dx), sign(dy)
		// Right of heading (ux, uy) on a y-down raster.
		rx, ry := -uy, ux
		side := directionOf(image.Pt(-int(rx), -int(ry)))

		for k := 0; k < steps; k++ {
			mx := a.X + ux*(float64(k)+0.5)
			my := a.Y + uy*(float64(k)+0.5)
			tile := image.Pt(int(math.Round(mx+rx*0.5)), int(math.Round(my+ry*0.5)))
			set.Put(tileSide{tile, side})
		}
	}
	return nil
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func directionOf(d image.Point) world.Direction {
	for _, dir := range world.AllDirections() {
		if dir.Delta() == d {
			return dir
		}
	}
	return world.Down
}
