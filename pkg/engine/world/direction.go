package world

import "image"

// Direction represents a cardinal direction on a y-down raster.
// The constants are in clockwise order, so rotating is index arithmetic.
type Direction int

// Direction constants
const (
	Down Direction = iota
	Left
	Up
	Right
)

const directionCount = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Down, Left, Up, Right}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= Down && d <= Right
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	return (d + 2) % directionCount
}

// Clockwise returns the direction one quarter turn clockwise.
func (d Direction) Clockwise() Direction {
	return (d + 1) % directionCount
}

// CounterClockwise returns the direction one quarter turn counter-clockwise.
func (d Direction) CounterClockwise() Direction {
	return (d + directionCount - 1) % directionCount
}

// Delta returns the column and row offsets for this direction
func (d Direction) Delta() image.Point {
	switch d {
	case Down:
		return image.Pt(0, 1)
	case Left:
		return image.Pt(-1, 0)
	case Up:
		return image.Pt(0, -1)
	case Right:
		return image.Pt(1, 0)
	default:
		return image.Point{}
	}
}
