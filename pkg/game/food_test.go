package game

import (
	"math/rand"
	"testing"
)

func TestPlaceFoodStaysInsideInterior(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		p := PlaceFood(rng, 20, 15, nil)
		if p.X < 1 || p.X > 18 || p.Y < 1 || p.Y > 13 {
			t.Fatalf("Food %v outside the interior of a 20x15 board", p)
		}
	}
}

func TestPlaceFoodAvoidsOccupiedCells(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	occupied := []Point{
		{X: 10, Y: 7}, {X: 11, Y: 7}, {X: 12, Y: 7}, {X: 12, Y: 8}, {X: 12, Y: 9},
	}

	for i := 0; i < 1000; i++ {
		p := PlaceFood(rng, 20, 15, occupied)
		if containsPoint(occupied, p) {
			t.Fatalf("Food %v landed on the snake body", p)
		}
	}
}

func TestPlaceFoodFindsTheLastFreeCell(t *testing.T) {
	// Minimum-size interior test: block all interior cells but one and
	// rejection sampling must still land on it every time.
	rng := rand.New(rand.NewSource(7))

	width, height := 4, 4 // interior is x,y in [1,2]
	occupied := []Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}}
	want := Point{X: 2, Y: 2}

	for i := 0; i < 100; i++ {
		if p := PlaceFood(rng, width, height, occupied); p != want {
			t.Fatalf("Expected the only free cell %v, got %v", want, p)
		}
	}
}
