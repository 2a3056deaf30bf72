package generator

import "image"

// OpenRule selects which tiles count as blocking for IsTileOpen.
type OpenRule struct {
	LaddersClosed bool // ladders and both track kinds block
	PostersClosed bool // reserved for poster overlays; no effect
	DoorsClosed   bool // reserved for door overlays; no effect
	OutsideClosed bool // tiles outside cols×rows block
}

// Rules used by the placement phases.
var (
	// OpenDefault blocks only walls and the outside.
	OpenDefault = OpenRule{OutsideClosed: true}
	// OpenSolid also blocks ladders and tracks.
	OpenSolid = OpenRule{LaddersClosed: true, OutsideClosed: true}
	// OpenMover blocks everything a mover's clearance cares about.
	OpenMover = OpenRule{LaddersClosed: true, PostersClosed: true, DoorsClosed: true, OutsideClosed: true}
)

// IsTileOpen reports whether p is free under rule.
func (b *Blueprint) IsTileOpen(p image.Point, rule OpenRule) bool {
	if !b.inside(p) {
		return !rule.OutsideClosed
	}

	switch b.tiles.At(p) {
	case Empty:
		return true
	case Ladder, LiftTrack, MoverTrack:
		return !rule.LaddersClosed
	default:
		return false
	}
}

// isRegionOpen reports whether every tile of r is open under rule.
func (b *Blueprint) isRegionOpen(r image.Rectangle, rule OpenRule) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !b.IsTileOpen(image.Pt(x, y), rule) {
				return false
			}
		}
	}
	return true
}
