package rules

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidGrid is returned when a game is configured with a non-positive
// width or height, or with more than MaxArea cells.
var ErrInvalidGrid = errors.New("rules: invalid grid dimensions")

// MaxArea is the largest board a game can be played on. The snake keeps a
// buffer of this many cells.
const MaxArea = 1 << 20

// Point is a single cell on the board.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Adjacent reports whether q is exactly one step away from p, horizontally
// or vertically.
func (p Point) Adjacent(q Point) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

// Distance is the manhattan distance between two points.
func (p Point) Distance(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Grid describes the fixed board dimensions.
type Grid struct {
	Width  int
	Height int
}

// Validate returns ErrInvalidGrid if either dimension is not positive or the
// board is larger than MaxArea.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return errors.Wrapf(ErrInvalidGrid, "width=%d height=%d", g.Width, g.Height)
	}
	// Checked by division so huge dimensions can't overflow the product.
	if g.Width > MaxArea/g.Height {
		return errors.Wrapf(ErrInvalidGrid, "width=%d height=%d exceeds %d cells", g.Width, g.Height, MaxArea)
	}
	return nil
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Neighbor returns the cell next to p in direction d. The result is not
// clamped or wrapped, so it may fall outside the grid.
func (g Grid) Neighbor(p Point, d Direction) Point {
	switch d {
	case Up:
		return Point{X: p.X, Y: p.Y - 1}
	case Down:
		return Point{X: p.X, Y: p.Y + 1}
	case Left:
		return Point{X: p.X - 1, Y: p.Y}
	case Right:
		return Point{X: p.X + 1, Y: p.Y}
	}
	return p
}

// Area is the number of cells on the board.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center is where a fresh snake is placed.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// index maps a point inside the grid to a row-major offset.
func (g Grid) index(p Point) int {
	return p.Y*g.Width + p.X
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
