package game

// Snake is the ordered body of the snake, head first, together with its
// movement state. A direction change requested between ticks is buffered
// and takes effect at the start of the next Advance; requests arriving
// faster than the tick rate overwrite each other, so only the most
// recent one survives.
type Snake struct {
	body       []Point
	direction  Direction
	pending    Direction
	hasPending bool
}

// NewSnake creates a length-1 snake at the given position.
func NewSnake(start Point, dir Direction) *Snake {
	return &Snake{
		body:      []Point{start},
		direction: dir,
	}
}

// RequestDirection buffers a direction change for the next Advance.
// A request for the exact opposite of the direction currently in effect
// is dropped silently: without this check a fast key sequence inside one
// tick could reverse the snake onto its own neck. Validation is against
// the direction in effect now, not against a still-pending change.
func (s *Snake) RequestDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.pending = d
	s.hasPending = true
}

// Advance moves the snake one cell. Any buffered direction change is
// applied first and the buffer cleared. The new head is pushed to the
// front; unless food was eaten the tail is popped, keeping the length
// unchanged. Coordinates saturate at zero instead of going negative,
// so a move into the left or top wall lands exactly on the border ring
// where the collision check fires.
func (s *Snake) Advance(ateFood bool) {
	if s.hasPending {
		s.direction = s.pending
		s.hasPending = false
	}

	head := s.body[0]
	dx, dy := s.direction.Delta()
	newHead := Point{X: head.X + dx, Y: head.Y + dy}
	if newHead.X < 0 {
		newHead.X = 0
	}
	if newHead.Y < 0 {
		newHead.Y = 0
	}

	s.body = append([]Point{newHead}, s.body...)
	if !ateFood {
		s.body = s.body[:len(s.body)-1]
	}
}

// HasSelfCollision reports whether the head overlaps any other body
// segment. A linear scan is plenty: the body length is bounded by the
// board interior.
func (s *Snake) HasSelfCollision() bool {
	head := s.body[0]
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Head returns the current head position.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Len returns the body length in segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the direction currently in effect, ignoring any
// buffered change.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Body returns the snake's segments, head first. The slice is owned by
// the snake and only valid until the next Advance; callers that need to
// keep it must copy (Game.Snapshot does).
func (s *Snake) Body() []Point {
	return s.body
}
