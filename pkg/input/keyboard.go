package input

import (
	"github.com/eiannone/keyboard"

	"github.com/playbits/termsnake/pkg/game"
)

// Intent is one decoded player input event.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentQuit
	IntentRestart
	IntentPause
	IntentAutopilot
)

// KeyboardHandler reads raw key events on a goroutine and decodes them
// into intents on a buffered channel, so the game loop can drain them
// non-blocking between ticks.
type KeyboardHandler struct {
	intents chan Intent
}

// NewKeyboardHandler creates a new keyboard input handler.
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		intents: make(chan Intent, 32),
	}
}

// Start opens the keyboard in raw mode and begins decoding events.
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			intent := ParseIntent(char, key)
			if intent == IntentNone {
				continue
			}
			select {
			case h.intents <- intent:
			default:
				// Queue full; drop rather than stall the key reader.
			}
		}
	}()

	return nil
}

// Stop closes the keyboard and restores the terminal input mode.
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// Intents returns the channel of decoded intents.
func (h *KeyboardHandler) Intents() <-chan Intent {
	return h.intents
}

// ParseIntent maps a raw key event to an intent. Unknown keys map to
// IntentNone.
func ParseIntent(char rune, key keyboard.Key) Intent {
	switch key {
	case keyboard.KeyArrowUp:
		return IntentUp
	case keyboard.KeyArrowDown:
		return IntentDown
	case keyboard.KeyArrowLeft:
		return IntentLeft
	case keyboard.KeyArrowRight:
		return IntentRight
	case keyboard.KeyEsc:
		return IntentQuit
	case keyboard.KeySpace:
		return IntentPause
	}

	switch char {
	case 'w', 'W':
		return IntentUp
	case 's', 'S':
		return IntentDown
	case 'a', 'A':
		return IntentLeft
	case 'd', 'D':
		return IntentRight
	case 'q', 'Q':
		return IntentQuit
	case 'r', 'R':
		return IntentRestart
	case 'p', 'P', ' ':
		return IntentPause
	case 'o', 'O':
		return IntentAutopilot
	}

	return IntentNone
}

// DirectionFor returns the board direction for a movement intent.
func DirectionFor(i Intent) (game.Direction, bool) {
	switch i {
	case IntentUp:
		return game.DirUp, true
	case IntentDown:
		return game.DirDown, true
	case IntentLeft:
		return game.DirLeft, true
	case IntentRight:
		return game.DirRight, true
	}
	return 0, false
}
