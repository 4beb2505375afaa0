package renderer

import (
	"strings"
	"testing"

	"github.com/playbits/termsnake/pkg/config"
	"github.com/playbits/termsnake/pkg/game"
)

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		Width:  20,
		Height: 10,
		Body:   []game.Point{{X: 10, Y: 5}, {X: 9, Y: 5}, {X: 8, Y: 5}},
		Food:   game.Point{X: 4, Y: 4},
		Score:  2,
	}
}

func TestFrameDrawsEveryElementOnce(t *testing.T) {
	r := NewTerminalRenderer(20, 10)
	frame := r.Frame(testSnapshot(), false, false)

	if got := strings.Count(frame, config.CharHead); got != 1 {
		t.Errorf("Expected exactly one head glyph, got %d", got)
	}
	if got := strings.Count(frame, config.CharBody); got != 2 {
		t.Errorf("Expected two body glyphs, got %d", got)
	}
	if got := strings.Count(frame, config.CharFood); got != 1 {
		t.Errorf("Expected exactly one food glyph, got %d", got)
	}
	// Border ring of a 20x10 board: 2*20 + 2*8 cells.
	if got := strings.Count(frame, config.CharWall); got != 56 {
		t.Errorf("Expected 56 wall glyphs, got %d", got)
	}
	if !strings.Contains(frame, "Score: 2") {
		t.Error("Frame should include the score line")
	}
}

func TestFrameMarksCrashSiteOnGameOver(t *testing.T) {
	snap := testSnapshot()
	snap.GameOver = true
	r := NewTerminalRenderer(20, 10)

	frame := r.Frame(snap, false, false)

	if !strings.Contains(frame, config.CharCrash) {
		t.Error("Game-over frame should mark the crash site")
	}
	if strings.Contains(frame, config.CharHead) {
		t.Error("Crash glyph should replace the head glyph")
	}
	if !strings.Contains(frame, "GAME OVER") {
		t.Error("Game-over frame should include the restart banner")
	}
}

func TestFrameBanners(t *testing.T) {
	r := NewTerminalRenderer(20, 10)

	paused := r.Frame(testSnapshot(), true, false)
	if !strings.Contains(paused, "PAUSED") {
		t.Error("Paused frame should include the pause banner")
	}

	auto := r.Frame(testSnapshot(), false, true)
	if !strings.Contains(auto, "AUTOPILOT") {
		t.Error("Autopilot frame should include the autopilot tag")
	}

	plain := r.Frame(testSnapshot(), false, false)
	if strings.Contains(plain, "PAUSED") || strings.Contains(plain, "AUTOPILOT") {
		t.Error("Plain frame should carry no banners")
	}
}

func TestFrameRowCountMatchesBoard(t *testing.T) {
	r := NewTerminalRenderer(20, 10)
	frame := r.Frame(testSnapshot(), false, false)

	boardRows := 0
	for _, line := range strings.Split(frame, "\n") {
		if strings.Contains(line, config.CharWall) {
			boardRows++
		}
	}
	if boardRows != 10 {
		t.Errorf("Expected 10 board rows, got %d", boardRows)
	}
}
