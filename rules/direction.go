package rules

// Direction is a heading on the board. The zero value means no direction was
// given.
type Direction int

// Directions a snake can travel in.
const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists every valid direction in a fixed order.
var Directions = []Direction{Up, Right, Down, Left}

// Opposite returns the reverse heading. NoDirection is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return NoDirection
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
