package input

import (
	"testing"

	"github.com/eiannone/keyboard"

	"github.com/playbits/termsnake/pkg/game"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name string
		char rune
		key  keyboard.Key
		want Intent
	}{
		{"arrow up", 0, keyboard.KeyArrowUp, IntentUp},
		{"arrow down", 0, keyboard.KeyArrowDown, IntentDown},
		{"arrow left", 0, keyboard.KeyArrowLeft, IntentLeft},
		{"arrow right", 0, keyboard.KeyArrowRight, IntentRight},
		{"w", 'w', 0, IntentUp},
		{"capital S", 'S', 0, IntentDown},
		{"a", 'a', 0, IntentLeft},
		{"d", 'd', 0, IntentRight},
		{"q quits", 'q', 0, IntentQuit},
		{"escape quits", 0, keyboard.KeyEsc, IntentQuit},
		{"r restarts", 'r', 0, IntentRestart},
		{"p pauses", 'p', 0, IntentPause},
		{"space pauses", 0, keyboard.KeySpace, IntentPause},
		{"o toggles autopilot", 'o', 0, IntentAutopilot},
		{"unmapped key", 'x', 0, IntentNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseIntent(tc.char, tc.key); got != tc.want {
				t.Errorf("ParseIntent(%q, %v) = %v, want %v", tc.char, tc.key, got, tc.want)
			}
		})
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		intent Intent
		dir    game.Direction
		ok     bool
	}{
		{IntentUp, game.DirUp, true},
		{IntentDown, game.DirDown, true},
		{IntentLeft, game.DirLeft, true},
		{IntentRight, game.DirRight, true},
		{IntentQuit, 0, false},
		{IntentPause, 0, false},
		{IntentNone, 0, false},
	}

	for _, tc := range tests {
		dir, ok := DirectionFor(tc.intent)
		if ok != tc.ok {
			t.Errorf("DirectionFor(%v) ok = %v, want %v", tc.intent, ok, tc.ok)
			continue
		}
		if ok && dir != tc.dir {
			t.Errorf("DirectionFor(%v) = %v, want %v", tc.intent, dir, tc.dir)
		}
	}
}
