package renderer

import (
	"fmt"
	"strings"

	"github.com/playbits/termsnake/pkg/config"
	"github.com/playbits/termsnake/pkg/game"
)

// TerminalRenderer draws game snapshots as full frames of emoji cells,
// buffered through a strings.Builder so each frame is a single write.
type TerminalRenderer struct {
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellFood
	cellCrash
)

// NewTerminalRenderer creates a renderer for a fixed board size. The
// cell grid is pre-allocated once to keep per-frame garbage low.
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	board := make([][]int, height)
	for i := range board {
		board[i] = make([]int, width)
	}
	return &TerminalRenderer{board: board}
}

// clearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	fmt.Print("\033[H\033[2J\033[3J")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Print("\033[?25l")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Print("\033[?25h")
}

// Render draws one snapshot to the terminal.
func (r *TerminalRenderer) Render(snap game.Snapshot, paused, autopilot bool) {
	r.clearScreen()
	fmt.Print(r.Frame(snap, paused, autopilot))
}

// Frame builds the full frame for a snapshot as a string. Split out from
// Render so tests can assert on frames without capturing stdout.
func (r *TerminalRenderer) Frame(snap game.Snapshot, paused, autopilot bool) string {
	r.buffer.Reset()

	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	// Border ring
	for x := 0; x < snap.Width; x++ {
		r.board[0][x] = cellWall
		r.board[snap.Height-1][x] = cellWall
	}
	for y := 0; y < snap.Height; y++ {
		r.board[y][0] = cellWall
		r.board[y][snap.Width-1] = cellWall
	}

	r.board[snap.Food.Y][snap.Food.X] = cellFood

	for i, p := range snap.Body {
		if i == 0 {
			r.board[p.Y][p.X] = cellHead
		} else {
			r.board[p.Y][p.X] = cellBody
		}
	}

	// The head is the crash site: the game goes terminal the moment it
	// lands on the wall ring or its own body.
	if snap.GameOver && len(snap.Body) > 0 {
		head := snap.Body[0]
		r.board[head.Y][head.X] = cellCrash
	}

	r.buffer.WriteString("\n  🐍 SNAKE\n")

	modeStr := ""
	if autopilot {
		modeStr = "  |  🤖 AUTOPILOT"
	}
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Length: %d%s\n\n", snap.Score, len(snap.Body), modeStr))

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellWall:
				r.buffer.WriteString(config.CharWall)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			}
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  WASD or arrow keys to move, O for autopilot\n")
	r.buffer.WriteString("  P to pause, Q to quit\n")

	if paused {
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	}
	if snap.GameOver {
		r.buffer.WriteString("\n  💀 GAME OVER! Press R to restart or Q to quit\n")
	}

	return r.buffer.String()
}
