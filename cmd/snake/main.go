package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/playbits/termsnake/pkg/config"
	"github.com/playbits/termsnake/pkg/game"
	"github.com/playbits/termsnake/pkg/input"
	"github.com/playbits/termsnake/pkg/renderer"
)

func main() {
	width := flag.Int("width", config.DefaultWidth, "board width in cells")
	height := flag.Int("height", config.DefaultHeight, "board height in cells")
	seed := flag.Int64("seed", 0, "food rng seed, 0 seeds from the clock")
	auto := flag.Bool("auto", false, "start in autopilot mode")
	model := flag.String("model", config.DefaultModelPath, "autopilot policy model path")
	flag.Parse()

	handler := input.NewKeyboardHandler()
	if err := handler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer handler.Stop()

	var g *game.Game
	if *seed != 0 {
		g = game.NewGameSeeded(*width, *height, *seed)
	} else {
		g = game.NewGame(*width, *height)
	}

	render := renderer.NewTerminalRenderer(g.Width(), g.Height())
	render.HideCursor()
	defer render.ShowCursor()

	pilot := game.NewNeuralPilot(*model, time.Now().UnixNano())

	clock := game.SystemClock{}
	sched := game.NewScheduler(config.TickInterval, clock.Now())

	autopilot := *auto
	paused := false

	render.Render(g.Snapshot(), paused, autopilot)

	for {
		// Phase 1: drain everything queued since the last pass.
	drain:
		for {
			select {
			case intent := <-handler.Intents():
				switch intent {
				case input.IntentQuit:
					fmt.Println("\n  Thanks for playing! 👋")
					return
				case input.IntentRestart:
					if g.Over() {
						g.Reset()
						paused = false
						render.Render(g.Snapshot(), paused, autopilot)
					}
				case input.IntentPause:
					if !g.Over() {
						paused = !paused
						render.Render(g.Snapshot(), paused, autopilot)
					}
				case input.IntentAutopilot:
					autopilot = !autopilot
					render.Render(g.Snapshot(), paused, autopilot)
				default:
					if d, ok := input.DirectionFor(intent); ok && !autopilot {
						g.RequestDirection(d)
					}
				}
			default:
				break drain
			}
		}

		// Phase 2: at most one simulation step per pass, gated on the
		// scheduler; phase 3: redraw only when a step happened.
		if !paused && sched.ShouldStep(clock.Now()) {
			if !g.Over() {
				if autopilot {
					if d, ok := pilot.NextDirection(g); ok {
						g.RequestDirection(d)
					}
				}
				g.Step()
			}
			render.Render(g.Snapshot(), paused, autopilot)
		}

		time.Sleep(config.PollInterval)
	}
}
