package config

import "time"

// Game board dimensions
const (
	// Minimum playable size; smaller requests are clamped up.
	MinWidth  = 20
	MinHeight = 10

	DefaultWidth  = 32
	DefaultHeight = 20
)

// Timing
const (
	// TickInterval is the fixed simulation step interval.
	TickInterval = 150 * time.Millisecond
	// PollInterval caps CPU usage between loop passes; it only affects
	// input latency, never simulation speed.
	PollInterval = 10 * time.Millisecond
)

// Autopilot policy model
const (
	DefaultModelPath = "ml/checkpoints/snake_policy.onnx"
)

// Emoji characters for rendering. Each board cell is two terminal
// columns wide to match emoji width.
const (
	CharEmpty = "  "
	CharWall  = "⬜"
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🍎"
	CharCrash = "💥"
)
