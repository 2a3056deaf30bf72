package circuit

import "math"

// Closed reports whether the loop has at least three corners and its last
// point comes back to within half a tile of the first.
func (l Loop) Closed() bool {
	return len(l) >= 4 && near(l[len(l)-1], l[0])
}

// Chain returns the corners without the repeated closing point, the form
// chain-shape builders expect.
func (l Loop) Chain() []Point {
	if l.Closed() {
		return append([]Point(nil), l[:len(l)-1]...)
	}
	return append([]Point(nil), l...)
}

// Area returns the signed shoelace area in tile units. On the y-down
// raster outer silhouettes are positive and holes negative.
func (l Loop) Area() float64 {
	pts := l.Chain()
	sum := 0.0
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// IsHole reports whether the loop bounds open space enclosed by solid.
func (l Loop) IsHole() bool {
	return l.Area() < 0
}

// Perimeter returns the length of the loop in tiles.
func (l Loop) Perimeter() float64 {
	total := 0.0
	for i := 1; i < len(l); i++ {
		total += math.Hypot(l[i].X-l[i-1].X, l[i].Y-l[i-1].Y)
	}
	return total
}
