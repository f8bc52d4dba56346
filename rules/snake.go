package rules

import "github.com/pkg/errors"

// ErrInvalidAdvance is returned when a snake is asked to move to a cell that
// would break its body invariants.
var ErrInvalidAdvance = errors.New("rules: invalid snake advance")

// Snake is the ordered chain of cells the player occupies, head first.
//
// The body lives in a ring buffer sized to the board, so moving is a push at
// the front and a pop at the back. occupied mirrors the body for constant
// time lookups.
type Snake struct {
	grid     Grid
	cells    []Point
	head     int
	length   int
	occupied []bool
}

// NewSnake creates a snake of length 1 at start.
func NewSnake(grid Grid, start Point) (*Snake, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if !grid.Contains(start) {
		return nil, errors.Wrapf(ErrInvalidAdvance, "start %s is off the board", start)
	}
	s := &Snake{
		grid:     grid,
		cells:    make([]Point, grid.Area()),
		length:   1,
		occupied: make([]bool, grid.Area()),
	}
	s.cells[0] = start
	s.occupied[grid.index(start)] = true
	return s, nil
}

func (s *Snake) at(i int) Point {
	return s.cells[(s.head+i)%len(s.cells)]
}

// Head returns the first point in the body.
func (s *Snake) Head() Point {
	return s.at(0)
}

// Tail returns the last point in the body.
func (s *Snake) Tail() Point {
	return s.at(s.length - 1)
}

// Len is the number of segments.
func (s *Snake) Len() int {
	return s.length
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Point {
	body := make([]Point, s.length)
	for i := range body {
		body[i] = s.at(i)
	}
	return body
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p Point) bool {
	return s.grid.Contains(p) && s.occupied[s.grid.index(p)]
}

// Advance moves the head onto newHead. Unless grow is set the tail is
// released first, which is what makes following your own tail legal. On error
// the body is left untouched.
func (s *Snake) Advance(newHead Point, grow bool) error {
	if !s.grid.Contains(newHead) {
		return errors.Wrapf(ErrInvalidAdvance, "%s is off the board", newHead)
	}
	if !newHead.Adjacent(s.Head()) {
		return errors.Wrapf(ErrInvalidAdvance, "%s is not next to head %s", newHead, s.Head())
	}
	tail := s.Tail()
	if s.Occupies(newHead) && (grow || newHead != tail) {
		return errors.Wrapf(ErrInvalidAdvance, "%s is occupied", newHead)
	}

	if !grow {
		s.occupied[s.grid.index(tail)] = false
		s.length--
	}
	s.head = (s.head - 1 + len(s.cells)) % len(s.cells)
	s.cells[s.head] = newHead
	s.occupied[s.grid.index(newHead)] = true
	s.length++
	return nil
}
