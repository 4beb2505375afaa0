package game

import (
	"math/rand"
	"time"

	"github.com/playbits/termsnake/pkg/config"
)

// Game ties the snake, the food and the board bounds into a per-tick
// state machine. It has exactly two states: running and game over. There
// is no way out of game over except Reset, which starts a fresh run on
// the same board.
//
// Game is not safe for concurrent use; a single loop owns it and
// collaborators only ever see value copies via Snapshot.
type Game struct {
	width  int
	height int
	snake  *Snake
	food   Point
	score  int
	over   bool
	rng    *rand.Rand
}

// NewGame creates a game on a width x height board, clamped to the
// minimum playable size. The rng is seeded from the wall clock; use
// NewGameSeeded for deterministic runs.
func NewGame(width, height int) *Game {
	return NewGameSeeded(width, height, time.Now().UnixNano())
}

// NewGameSeeded is NewGame with an explicit rng seed, for reproducible
// food sequences in tests and demos.
func NewGameSeeded(width, height int, seed int64) *Game {
	if width < config.MinWidth {
		width = config.MinWidth
	}
	if height < config.MinHeight {
		height = config.MinHeight
	}
	g := &Game{
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.init()
	return g
}

func (g *Game) init() {
	g.snake = NewSnake(Point{X: g.width / 2, Y: g.height / 2}, DirRight)
	g.food = PlaceFood(g.rng, g.width, g.height, g.snake.Body())
	g.score = 0
	g.over = false
}

// Reset discards the current snake, food and score and reinitializes the
// game on the same board. Nothing carries over.
func (g *Game) Reset() {
	g.init()
}

// Step advances the simulation by one tick. Callers gate it on the tick
// scheduler; it is a no-op once the game is over.
//
// The order matters: food is checked against the pre-advance head, and
// when eaten it is relocated against the post-growth body, so the new
// food can never land on the segment the growth just added.
func (g *Game) Step() {
	if g.over {
		return
	}

	ate := g.snake.Head() == g.food
	g.snake.Advance(ate)

	if ate {
		g.score++
		g.food = PlaceFood(g.rng, g.width, g.height, g.snake.Body())
	}

	head := g.snake.Head()
	if head.X == 0 || head.X == g.width-1 || head.Y == 0 || head.Y == g.height-1 ||
		g.snake.HasSelfCollision() {
		g.over = true
	}
}

// RequestDirection forwards a direction change request to the snake.
// Illegal reversals are dropped silently.
func (g *Game) RequestDirection(d Direction) {
	g.snake.RequestDirection(d)
}

// Over reports whether the game has reached its terminal state.
func (g *Game) Over() bool {
	return g.over
}

// Score returns the number of food items eaten this run.
func (g *Game) Score() int {
	return g.score
}

// Width returns the board width in cells.
func (g *Game) Width() int {
	return g.width
}

// Height returns the board height in cells.
func (g *Game) Height() int {
	return g.height
}

// isSafe reports whether a cell is inside the playable interior and off
// the snake body. Conservative about the tail: the cell it occupies now
// counts as blocked even though it moves away next tick.
func (g *Game) isSafe(p Point) bool {
	if p.X <= 0 || p.X >= g.width-1 || p.Y <= 0 || p.Y >= g.height-1 {
		return false
	}
	return !containsPoint(g.snake.Body(), p)
}

// Snapshot is a read-only copy of the game state handed to the render
// and transport collaborators. The body slice is freshly allocated, so a
// snapshot stays valid after further ticks.
type Snapshot struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Body     []Point `json:"body"` // head first
	Food     Point   `json:"food"`
	Score    int     `json:"score"`
	GameOver bool    `json:"gameOver"`
}

// Snapshot returns a value copy of the current state for one draw or
// transport call.
func (g *Game) Snapshot() Snapshot {
	body := make([]Point, len(g.snake.body))
	copy(body, g.snake.body)
	return Snapshot{
		Width:    g.width,
		Height:   g.height,
		Body:     body,
		Food:     g.food,
		Score:    g.score,
		GameOver: g.over,
	}
}
