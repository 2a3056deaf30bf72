package devtools

import (
	"arrocha/pkg/game/generator"
	"arrocha/pkg/game/level"
)

// devMapRows is a hand-built layout with every tile kind and the contour
// shapes the tracer has to get right: a border frame, a room with a hole,
// concave corners, diagonal touches and a pinched hole.
var devMapRows = []string{
	"##############################",
	"#............................#",
	"#.#####......##.....#.#......#",
	"#.#...#......#......##.......#",
	"#.#.#.#.....###......#.#.....#",
	"#.#...#.............#.#......#",
	"#.#####....#####.............#",
	"#..........#.###......H......#",
	"#....====..##.##......H......#",
	"#..........#####......H......#",
	"#.............|.......H......#",
	"#.............|..#############",
	"#............................#",
	"##############################",
}

// DevMap returns the developer testing level. Its seed is 0.
func DevMap() *level.Level {
	return level.FromTiles(generator.ParseTileMap(devMapRows...))
}
