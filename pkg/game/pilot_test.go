package game

import "testing"

func TestGreedyPilotOnlySuggestsSafeMoves(t *testing.T) {
	g := NewGameSeeded(20, 15, 3)
	pilot := NewGreedyPilot(3)

	for i := 0; i < 500; i++ {
		d, ok := pilot.NextDirection(g)
		if !ok {
			t.Logf("Pilot boxed in after %d ticks at length %d", i, g.snake.Len())
			break
		}
		if d == g.snake.Direction().Opposite() {
			t.Fatalf("Tick %d: pilot suggested a reversal (%v while moving %v)", i, d, g.snake.Direction())
		}
		g.RequestDirection(d)
		g.Step()
		if g.Over() {
			t.Fatalf("Tick %d: a move reported safe ended the game at %v", i, g.snake.Head())
		}
	}
}

func TestGreedyPilotReachesFood(t *testing.T) {
	g := NewGameSeeded(32, 20, 9)
	pilot := NewGreedyPilot(9)

	for i := 0; i < 300; i++ {
		d, ok := pilot.NextDirection(g)
		if !ok {
			t.Fatalf("Pilot boxed in before eating, tick %d", i)
		}
		g.RequestDirection(d)
		g.Step()
		if g.Score() >= 1 {
			t.Logf("First food eaten after %d ticks", i+1)
			return
		}
	}
	t.Fatal("Pilot failed to reach the first food within 300 ticks")
}

func TestGreedyPilotRefusesWhenBoxedIn(t *testing.T) {
	g := NewGameSeeded(20, 15, 3)
	// Head fully enclosed by its own body; every neighbor is blocked.
	g.snake = &Snake{
		body: []Point{
			{X: 5, Y: 5},
			{X: 5, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 5}, {X: 6, Y: 6},
			{X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}, {X: 4, Y: 4},
		},
		direction: DirUp,
	}
	pilot := NewGreedyPilot(3)

	if d, ok := pilot.NextDirection(g); ok {
		t.Errorf("Expected no safe move for an enclosed head, got %v", d)
	}
}
