package rules

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// setupGame builds a running game on a width x height board with the snake
// and food placed by hand.
func setupGame(t *testing.T, width, height int, body []Point, heading Direction, food *Point) *Game {
	g, err := New(Config{Width: width, Height: height, Seed: 1})
	require.NoError(t, err)
	snake, err := snakeFromBody(g.grid, body)
	require.NoError(t, err)
	g.snake = snake
	g.heading = heading
	g.food = food
	return g
}

// requireValidBody checks that every segment is on the board, distinct and
// next to the one before it.
func requireValidBody(t *testing.T, grid Grid, body []Point) {
	require.NotEmpty(t, body)
	seen := map[Point]bool{}
	for i, p := range body {
		require.True(t, grid.Contains(p), "segment %d %s off the board", i, p)
		require.False(t, seen[p], "segment %d %s repeated", i, p)
		seen[p] = true
		if i > 0 {
			require.True(t, body[i-1].Adjacent(p), "segments %d and %d not adjacent", i-1, i)
		}
	}
}

func pt(x, y int) *Point {
	return &Point{X: x, Y: y}
}

// snakeFromBody builds a snake from an explicit body, head first. The
// cells must be on the board, distinct and consecutively adjacent.
func snakeFromBody(grid Grid, body []Point) (*Snake, error) {
	if len(body) == 0 {
		return nil, errors.Wrap(ErrInvalidAdvance, "empty body")
	}
	tail := len(body) - 1
	s, err := NewSnake(grid, body[tail])
	if err != nil {
		return nil, err
	}
	for i := tail - 1; i >= 0; i-- {
		if err := s.Advance(body[i], true); err != nil {
			return nil, err
		}
	}
	return s, nil
}
