package generator

import (
	"image"
	"math"

	"github.com/zyedidia/generic/mapset"

	"arrocha/pkg/engine/rng"
	"arrocha/pkg/engine/world"
)

// RoomIndex addresses a room, or a lattice corner between rooms, by
// column (Across) and row (Down) in room units.
type RoomIndex struct {
	Across int
	Down   int
}

// RoomGraph records which borders between rooms are solid and where each
// room row/column puts its doorway.
type RoomGraph struct {
	size image.Point // in rooms

	// horiz[down][across] is the top border of room (across, down);
	// it has one more row than the room grid.
	horiz *world.Grid[bool]
	// vert[down][across] is the left border of room (across, down);
	// it has one more column than the room grid.
	vert *world.Grid[bool]

	middleCols []int
	middleRows []int
}

// newRoomGraph returns a graph with every border open except the world's
// outer perimeter.
func newRoomGraph(size image.Point) *RoomGraph {
	rg := &RoomGraph{
		size:  size,
		horiz: world.NewGrid[bool](size.X, size.Y+1),
		vert:  world.NewGrid[bool](size.X+1, size.Y),
	}

	rg.horiz.Fill(image.Rect(0, 0, size.X, 1), true)
	rg.horiz.Fill(image.Rect(0, size.Y, size.X, size.Y+1), true)
	rg.vert.Fill(image.Rect(0, 0, 1, size.Y), true)
	rg.vert.Fill(image.Rect(size.X, 0, size.X+1, size.Y), true)

	return rg
}

// Size returns the room grid dimensions.
func (rg *RoomGraph) Size() image.Point {
	return rg.size
}

// Contains reports whether ri is a room of the grid.
func (rg *RoomGraph) Contains(ri RoomIndex) bool {
	return ri.Across >= 0 && ri.Across < rg.size.X && ri.Down >= 0 && ri.Down < rg.size.Y
}

// Closed reports whether the given border of a room is solid.
func (rg *RoomGraph) Closed(ri RoomIndex, side world.Direction) bool {
	switch side {
	case world.Up:
		return rg.horiz.At(image.Pt(ri.Across, ri.Down))
	case world.Down:
		return rg.horiz.At(image.Pt(ri.Across, ri.Down+1))
	case world.Left:
		return rg.vert.At(image.Pt(ri.Across, ri.Down))
	case world.Right:
		return rg.vert.At(image.Pt(ri.Across+1, ri.Down))
	default:
		return true
	}
}

// Middle returns the doorway offset, in tiles from the room's origin, used
// by every room in ri's column (X) and row (Y).
func (rg *RoomGraph) Middle(ri RoomIndex) image.Point {
	return image.Pt(rg.middleCols[ri.Across], rg.middleRows[ri.Down])
}

// Reachable returns the rooms connected to from through open borders.
func (rg *RoomGraph) Reachable(from RoomIndex) mapset.Set[RoomIndex] {
	visited := mapset.New[RoomIndex]()
	if !rg.Contains(from) {
		return visited
	}

	queue := []RoomIndex{from}
	visited.Put(from)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, side := range world.AllDirections() {
			if rg.Closed(current, side) {
				continue
			}
			d := side.Delta()
			next := RoomIndex{Across: current.Across + d.X, Down: current.Down + d.Y}
			if rg.Contains(next) && !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// isRoomOpen reports whether no border segment meets at the lattice corner
// ri. Corners run over [0, size.X] × [0, size.Y].
func (rg *RoomGraph) isRoomOpen(ri RoomIndex) bool {
	return !((ri.Across > 0 && rg.horiz.At(image.Pt(ri.Across-1, ri.Down))) ||
		(ri.Across < rg.size.X && rg.horiz.At(image.Pt(ri.Across, ri.Down))) ||
		(ri.Down > 0 && rg.vert.At(image.Pt(ri.Across, ri.Down-1))) ||
		(ri.Down < rg.size.Y && rg.vert.At(image.Pt(ri.Across, ri.Down))))
}

// fillRandom draws strands of solid border from untouched corners of the
// lattice. Perimeter corners are never open, so strands cannot reach the
// outer wall. It returns the number of border segments closed.
func (rg *RoomGraph) fillRandom(d *rng.Dice, strandPercent float64, strandLength int) int {
	if rg.size.X < 2 || rg.size.Y < 2 {
		return 0
	}

	strands := int(math.Round(float64(rg.size.X*rg.size.Y) * strandPercent))
	closed := 0

	for n := 0; n < strands; n++ {
		ri := RoomIndex{
			Across: d.Range(1, rg.size.X),
			Down:   d.Range(1, rg.size.Y),
		}

		ok := rg.isRoomOpen(ri)
		for steps := 0; steps < maxWalkSteps && !d.OneIn(strandLength) && ok; steps++ {
			if d.Coin() {
				// Along the row line.
				if d.Coin() {
					rg.horiz.Set(image.Pt(ri.Across, ri.Down), true)
					ri.Across++
				} else {
					rg.horiz.Set(image.Pt(ri.Across-1, ri.Down), true)
					ri.Across--
				}
			} else {
				// Along the column line.
				if d.Coin() {
					rg.vert.Set(image.Pt(ri.Across, ri.Down), true)
					ri.Down++
				} else {
					rg.vert.Set(image.Pt(ri.Across, ri.Down-1), true)
					ri.Down--
				}
			}
			closed++
			ok = rg.isRoomOpen(ri)
		}
	}

	return closed
}

// computeMiddles picks, per room column and row, where the doorway and
// ladder shaft sit inside the room.
func (rg *RoomGraph) computeMiddles(d *rng.Dice, maxObj image.Point) {
	rg.middleRows = make([]int, 0, rg.size.Y)
	for r := 0; r < rg.size.Y; r++ {
		rg.middleRows = append(rg.middleRows, maxObj.Y+d.Range(1, RoomHeight-2*(maxObj.Y+1)))
	}

	rg.middleCols = make([]int, 0, rg.size.X)
	for c := 0; c < rg.size.X; c++ {
		rg.middleCols = append(rg.middleCols, maxObj.X+d.Range(1, RoomWidth-2*(maxObj.X+1)))
	}
}
