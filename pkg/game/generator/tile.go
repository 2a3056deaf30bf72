package generator

// Tile is the kind of a single grid cell.
type Tile uint8

// Tile kinds. Empty is the zero value so a fresh grid is all Empty.
const (
	Empty Tile = iota
	Wall
	Ladder
	LiftTrack
	MoverTrack
)

// tileCount is the number of tile kinds.
const tileCount = 5

// AllTiles returns every tile kind in declaration order.
func AllTiles() []Tile {
	return []Tile{Empty, Wall, Ladder, LiftTrack, MoverTrack}
}

// IsValid reports whether t is one of the five tile kinds.
func (t Tile) IsValid() bool {
	return t < tileCount
}

// IsTrack reports whether t carries a moving platform.
func (t Tile) IsTrack() bool {
	return t == LiftTrack || t == MoverTrack
}

// String returns the name of the tile kind
func (t Tile) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Ladder:
		return "Ladder"
	case LiftTrack:
		return "LiftTrack"
	case MoverTrack:
		return "MoverTrack"
	default:
		return "Unknown"
	}
}

// Rune returns the single-character symbol used by text dumps.
func (t Tile) Rune() rune {
	switch t {
	case Empty:
		return '.'
	case Wall:
		return '#'
	case Ladder:
		return 'H'
	case LiftTrack:
		return '|'
	case MoverTrack:
		return '='
	default:
		return '?'
	}
}
