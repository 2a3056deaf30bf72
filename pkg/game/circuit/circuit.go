// Package circuit traces the silhouettes of solid tile regions into closed
// polygon loops suitable for physics chain shapes.
//
// The walk is a discrete boundary follower over unit tiles. A tracer
// carries a facing (the side of the current tile that borders open space)
// and walks along that side, one quarter turn clockwise from the facing,
// until the side ends. There it emits the tile corner and either turns
// around the same tile (convex corner) or steps onto the diagonal tile
// (concave corner). Solid lies on the right of the walk, so outer
// silhouettes and holes come out with opposite winding.
package circuit

import (
	"fmt"
	"image"
	"math"

	"arrocha/pkg/engine/world"
)

// closeEpsilon is how near, in tiles, a vertex must come to the first one
// to close the loop.
const closeEpsilon = 0.5

// Point is a loop vertex in tile units. Tile (x, y) has its centre at
// (x, y) and its corners at half-tile offsets.
type Point struct {
	X, Y float64
}

// Loop is a closed polygon. The last point repeats the first.
type Loop []Point

// Raster is the read-only tile map a Tracer walks.
type Raster interface {
	Bounds() image.Rectangle
	Solid(p image.Point) bool
}

// Tracer walks every silhouette of a raster once. Its owner grid records,
// per solid tile, which trace claimed it first. A tile on two silhouettes,
// such as any tile of a one-tile-thick ring, is walked by two traces, so
// Owner is first-claim ownership rather than unique visitation.
type Tracer struct {
	raster Raster
	bounds image.Rectangle

	owner  *world.Grid[int]   // 0 until a trace claims the tile
	traced *world.Grid[uint8] // bit per facing already walked

	invocations int
}

// NewTracer prepares a tracer over r.
func NewTracer(r Raster) *Tracer {
	b := r.Bounds()
	return &Tracer{
		raster: r,
		bounds: b,
		owner:  world.NewGrid[int](max(b.Dx(), 1), max(b.Dy(), 1)),
		traced: world.NewGrid[uint8](max(b.Dx(), 1), max(b.Dy(), 1)),
	}
}

// Trace returns every loop of r in row-major discovery order.
func Trace(r Raster) []Loop {
	return NewTracer(r).All()
}

// All runs the driver loop: a fresh trace starts at every solid tile that
// is still unclaimed or still has a side nobody walked.
func (t *Tracer) All() []Loop {
	var loops []Loop
	for y := t.bounds.Min.Y; y < t.bounds.Max.Y; y++ {
		for x := t.bounds.Min.X; x < t.bounds.Max.X; x++ {
			p := image.Pt(x, y)
			if !t.raster.Solid(p) {
				continue
			}
			for t.Owner(p) == 0 || t.hasUntracedEdge(p) {
				if loop := t.trace(p); loop != nil {
					loops = append(loops, loop)
				}
			}
		}
	}
	return loops
}

// Owner returns the 1-based number of the trace that first claimed p,
// or 0 if none has. Later traces walking p do not change it.
func (t *Tracer) Owner(p image.Point) int {
	return t.owner.At(p.Sub(t.bounds.Min))
}

// Invocations returns how many traces have run.
func (t *Tracer) Invocations() int {
	return t.invocations
}

// trace follows the boundary through start. It returns nil when start has
// no open side left to walk.
func (t *Tracer) trace(start image.Point) Loop {
	t.invocations++
	id := t.invocations
	t.claim(start, id)

	facing, ok := t.firstUntracedEdge(start)
	if !ok {
		return nil
	}

	var (
		loop        Loop
		firstTile   image.Point
		firstFacing world.Direction
	)
	p := start
	limit := 4*t.bounds.Dx()*t.bounds.Dy() + 4

	for corners := 0; ; corners++ {
		if corners > limit {
			panic(fmt.Sprintf("invariant: loop from %v did not close after %d corners", start, corners))
		}

		t.markEdge(p, facing)

		// Walk along the open side while the next tile carries it too.
		walk := facing.Clockwise().Delta()
		for {
			next := p.Add(walk)
			if !t.raster.Solid(next) || !t.hasEdge(next, facing) {
				break
			}
			p = next
			t.claim(p, id)
			t.markEdge(p, facing)
		}

		v := vertex(p, facing)
		if len(loop) > 0 && near(v, loop[0]) && p == firstTile && facing == firstFacing {
			return append(loop, v)
		}
		if len(loop) == 0 {
			firstTile, firstFacing = p, facing
		}
		loop = append(loop, v)

		// Convex: the boundary wraps around this tile.
		if turned := facing.Clockwise(); t.hasEdge(p, turned) {
			facing = turned
			continue
		}

		// Concave: the boundary carries on along the diagonal tile.
		diag := p.Add(facing.Delta()).Add(facing.Clockwise().Delta())
		if !t.raster.Solid(diag) {
			panic(fmt.Sprintf("invariant: concave corner at %v facing %v has no solid diagonal", p, facing))
		}
		p = diag
		t.claim(p, id)
		facing = facing.CounterClockwise()
		if !t.hasEdge(p, facing) {
			panic(fmt.Sprintf("invariant: no %v edge after concave corner at %v", facing, p))
		}
	}
}

// hasEdge reports whether side f of tile p borders open space. Outside the
// raster counts as open, so regions touching the border still close.
func (t *Tracer) hasEdge(p image.Point, f world.Direction) bool {
	return !t.raster.Solid(p.Add(f.Delta()))
}

func (t *Tracer) firstUntracedEdge(p image.Point) (world.Direction, bool) {
	for _, f := range world.AllDirections() {
		if t.hasEdge(p, f) && !t.isTraced(p, f) {
			return f, true
		}
	}
	return 0, false
}

func (t *Tracer) hasUntracedEdge(p image.Point) bool {
	_, ok := t.firstUntracedEdge(p)
	return ok
}

func (t *Tracer) claim(p image.Point, id int) {
	local := p.Sub(t.bounds.Min)
	if t.owner.At(local) == 0 {
		t.owner.Set(local, id)
	}
}

func (t *Tracer) isTraced(p image.Point, f world.Direction) bool {
	return t.traced.At(p.Sub(t.bounds.Min))&(1<<f) != 0
}

func (t *Tracer) markEdge(p image.Point, f world.Direction) {
	local := p.Sub(t.bounds.Min)
	t.traced.Set(local, t.traced.At(local)|1<<f)
}

// vertex returns the corner of p where a walk along side f ends.
func vertex(p image.Point, f world.Direction) Point {
	c := f.Delta().Add(f.Clockwise().Delta())
	return Point{
		X: float64(p.X) + 0.5*float64(c.X),
		Y: float64(p.Y) + 0.5*float64(c.Y),
	}
}

func near(a, b Point) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= closeEpsilon
}
