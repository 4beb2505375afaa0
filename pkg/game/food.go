package game

import "math/rand"

// PlaceFood returns a uniformly random interior cell not occupied by the
// snake. Cells on the border ring are never candidates, so food always
// lands at x in [1, width-2] and y in [1, height-2].
//
// The sampling loop has no iteration cap. As the snake approaches board
// interior capacity the expected number of retries grows without bound;
// on any playable board the interior vastly exceeds reachable snake
// lengths, so this stays a documented limitation rather than a reason to
// enumerate free cells.
func PlaceFood(rng *rand.Rand, width, height int, occupied []Point) Point {
	for {
		p := Point{
			X: rng.Intn(width-2) + 1,
			Y: rng.Intn(height-2) + 1,
		}
		if !containsPoint(occupied, p) {
			return p
		}
	}
}

func containsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
