package game

import "math/rand"

// Pilot picks the next direction for a snake in autopilot mode. The
// returned bool is false when no safe move exists.
type Pilot interface {
	NextDirection(g *Game) (Direction, bool)
}

// GreedyPilot heads for the food along the shortest Manhattan path,
// discarding moves that would hit the border ring, the body, or reverse
// the snake on the spot. Candidate order is shuffled so equal-distance
// choices don't always break the same way.
type GreedyPilot struct {
	rng *rand.Rand
}

// NewGreedyPilot creates a greedy pilot with its own rng, separate from
// the game's food rng so autopilot runs stay reproducible per seed.
func NewGreedyPilot(seed int64) *GreedyPilot {
	return &GreedyPilot{rng: rand.New(rand.NewSource(seed))}
}

// NextDirection returns the safe move that brings the head closest to
// the food, or false when the snake is boxed in.
func (p *GreedyPilot) NextDirection(g *Game) (Direction, bool) {
	head := g.snake.Head()
	current := g.snake.Direction()

	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	p.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	var best Direction
	bestDist := 0
	found := false
	for _, d := range dirs {
		if d == current.Opposite() {
			continue
		}
		dx, dy := d.Delta()
		next := Point{X: head.X + dx, Y: head.Y + dy}
		if !g.isSafe(next) {
			continue
		}
		dist := abs(next.X-g.food.X) + abs(next.Y-g.food.Y)
		if !found || dist < bestDist {
			best = d
			bestDist = dist
			found = true
		}
	}
	return best, found
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
