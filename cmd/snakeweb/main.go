package main

import (
	"flag"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/playbits/termsnake/pkg/config"
	"github.com/playbits/termsnake/pkg/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// GameSession owns one connection's game. All game access goes through
// mu: the read goroutine applies client actions while the tick loop
// steps the simulation.
type GameSession struct {
	mu    sync.Mutex
	game  *game.Game
	sched *game.Scheduler
	clock game.Clock
	pilot game.Pilot

	paused    bool
	autopilot bool
}

// BoardConfig is sent once on connect so the client can size its canvas.
type BoardConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	TickMs int `json:"tickMs"`
}

// SessionState is the per-frame state pushed to the client: the engine
// snapshot plus the session-level flags the engine doesn't own.
type SessionState struct {
	game.Snapshot
	Paused    bool `json:"paused"`
	Autopilot bool `json:"autopilot"`
}

type ServerMessage struct {
	Type   string        `json:"type"`
	Config *BoardConfig  `json:"config,omitempty"`
	State  *SessionState `json:"state,omitempty"`
}

type ClientMessage struct {
	Action string `json:"action"`
}

func newGameSession(modelPath string) *GameSession {
	clock := game.SystemClock{}
	return &GameSession{
		game:  game.NewGame(config.DefaultWidth, config.DefaultHeight),
		sched: game.NewScheduler(config.TickInterval, clock.Now()),
		clock: clock,
		pilot: game.NewNeuralPilot(modelPath, time.Now().UnixNano()),
	}
}

func (s *GameSession) handleAction(action string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var dir game.Direction
	isDirection := false
	switch action {
	case "up":
		dir, isDirection = game.DirUp, true
	case "down":
		dir, isDirection = game.DirDown, true
	case "left":
		dir, isDirection = game.DirLeft, true
	case "right":
		dir, isDirection = game.DirRight, true
	case "pause":
		if !s.game.Over() {
			s.paused = !s.paused
		}
	case "restart":
		if s.game.Over() {
			s.game.Reset()
			s.paused = false
		}
	case "auto":
		s.autopilot = !s.autopilot
	}

	if isDirection && !s.autopilot {
		s.game.RequestDirection(dir)
	}
}

// tick performs at most one simulation step and reports whether the
// state changed and should be pushed to the client.
func (s *GameSession) tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused || s.game.Over() {
		return false
	}
	if !s.sched.ShouldStep(s.clock.Now()) {
		return false
	}
	if s.autopilot {
		if d, ok := s.pilot.NextDirection(s.game); ok {
			s.game.RequestDirection(d)
		}
	}
	s.game.Step()
	return true
}

func (s *GameSession) state() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionState{
		Snapshot:  s.game.Snapshot(),
		Paused:    s.paused,
		Autopilot: s.autopilot,
	}
}

func handleWebSocket(modelPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Upgrade error:", err)
			return
		}
		defer conn.Close()

		log.Println("New WebSocket connection from:", r.RemoteAddr)

		s := newGameSession(modelPath)

		// The reader goroutine and the tick loop both write to the
		// connection; gorilla allows only one concurrent writer.
		var writeMu sync.Mutex
		safeWriteJSON := func(v interface{}) error {
			writeMu.Lock()
			defer writeMu.Unlock()
			return conn.WriteJSON(v)
		}

		safeWriteJSON(ServerMessage{
			Type: "config",
			Config: &BoardConfig{
				Width:  config.DefaultWidth,
				Height: config.DefaultHeight,
				TickMs: int(config.TickInterval.Milliseconds()),
			},
		})
		initial := s.state()
		safeWriteJSON(ServerMessage{Type: "state", State: &initial})

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				var msg ClientMessage
				if err := conn.ReadJSON(&msg); err != nil {
					return
				}
				s.handleAction(msg.Action)
				// Push immediately so pauses and restarts feel instant.
				state := s.state()
				safeWriteJSON(ServerMessage{Type: "state", State: &state})
			}
		}()

		ticker := time.NewTicker(config.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				log.Println("Connection closed:", r.RemoteAddr)
				return
			case <-ticker.C:
				if !s.tick() {
					continue
				}
				state := s.state()
				if err := safeWriteJSON(ServerMessage{Type: "state", State: &state}); err != nil {
					log.Println("Write error:", err)
					return
				}
			}
		}
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	static := flag.String("static", "web/static", "static assets directory")
	model := flag.String("model", config.DefaultModelPath, "autopilot policy model path")
	flag.Parse()

	http.Handle("/", http.FileServer(http.Dir(*static)))
	http.HandleFunc("/ws", handleWebSocket(*model))

	log.Printf("🐍 snake web server listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
