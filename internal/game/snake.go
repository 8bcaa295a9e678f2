package game

// Outcome is the result of a single snake step. Every value other than
// OutcomeNone ends the round; these are expected terminal conditions, not
// errors.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWall
	OutcomeSelf
	OutcomeObstacle
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Snake is the player body: an ordered list of cells with the head at index
// 0, pairwise-unique at every committed state. Direction input is buffered
// and applied at the start of the next step, so at most one direction change
// is honored per step and an instant reversal can never fold the head into
// the neck.
type Snake struct {
	body          []Point
	dir           Direction
	nextDir       Direction
	pendingGrowth int
	alive         bool
}

// NewSnake creates a snake of the given length with its head at the given
// cell and the body trailing opposite the movement direction.
func NewSnake(head Point, length int, dir Direction) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]Point, length)
	back := dir.Opposite().Delta()
	for i := range body {
		body[i] = Point{X: head.X + back.X*i, Y: head.Y + back.Y*i}
	}
	return &Snake{
		body:    body,
		dir:     dir,
		nextDir: dir,
		alive:   true,
	}
}

// SetDirection buffers a direction change for the next step. A request for
// the exact opposite of the current direction is ignored while the body is
// longer than one cell.
func (s *Snake) SetDirection(d Direction) {
	if len(s.body) > 1 && d == s.dir.Opposite() {
		return
	}
	s.nextDir = d
}

// Step advances the snake one cell. With wrap or ghost active the new head
// is normalized modulo the grid and a boundary can never fail; otherwise a
// head outside the grid is OutcomeWall. Unless ghost is active, a head on a
// body cell is OutcomeSelf and a head on an obstacle is OutcomeObstacle. The
// tail cell is excluded from the self check only when it vacates this step,
// i.e. when no growth is pending.
func (s *Snake) Step(g Grid, wrap, ghost bool, obstacles map[Point]struct{}) Outcome {
	s.dir = s.nextDir

	head := s.body[0].Add(s.dir.Delta())
	if wrap || ghost {
		head = g.Wrap(head)
	} else if !g.Contains(head) {
		s.alive = false
		return OutcomeWall
	}

	if !ghost {
		checkLen := len(s.body)
		if s.pendingGrowth == 0 {
			checkLen-- // tail moves away this step
		}
		for _, seg := range s.body[:checkLen] {
			if seg == head {
				s.alive = false
				return OutcomeSelf
			}
		}
		if _, hit := obstacles[head]; hit {
			s.alive = false
			return OutcomeObstacle
		}
	}

	s.body = append([]Point{head}, s.body...)
	if s.pendingGrowth > 0 {
		s.pendingGrowth--
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	return OutcomeNone
}

// Grow schedules n future steps in which the tail is retained.
func (s *Snake) Grow(n int) {
	s.pendingGrowth += n
}

// Shrink removes up to n tail cells, never reducing the body below minLen.
// It returns the removed cells so the caller can release them from the
// occupancy set.
func (s *Snake) Shrink(n, minLen int) []Point {
	var removed []Point
	for range n {
		if len(s.body) <= minLen {
			break
		}
		tail := s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		removed = append(removed, tail)
	}
	return removed
}

// Head returns the cell at the front of the body.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Len returns the current body length, not counting pending growth.
func (s *Snake) Len() int {
	return len(s.body)
}

// Dir returns the direction applied on the most recent step.
func (s *Snake) Dir() Direction {
	return s.dir
}

// PendingGrowth returns the number of queued tail retentions.
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

// Alive reports whether the snake has survived every step so far.
func (s *Snake) Alive() bool {
	return s.alive
}

// Occupies reports whether any body cell is at the given point.
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
