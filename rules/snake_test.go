package rules

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var board = Grid{Width: 10, Height: 10}

func TestNewSnake(t *testing.T) {
	s, err := NewSnake(board, Point{X: 5, Y: 5})
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	require.Equal(t, Point{X: 5, Y: 5}, s.Head())
	require.Equal(t, Point{X: 5, Y: 5}, s.Tail())
	require.True(t, s.Occupies(Point{X: 5, Y: 5}))
	require.False(t, s.Occupies(Point{X: 5, Y: 6}))
	require.False(t, s.Occupies(Point{X: -1, Y: 5}))
}

func TestNewSnakeOffBoard(t *testing.T) {
	_, err := NewSnake(board, Point{X: 10, Y: 5})
	require.Equal(t, ErrInvalidAdvance, errors.Cause(err))

	_, err = NewSnake(Grid{Width: 0, Height: 4}, Point{})
	require.Equal(t, ErrInvalidGrid, errors.Cause(err))
}

func TestSnakeFromBody(t *testing.T) {
	body := []Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}}
	s, err := snakeFromBody(board, body)
	require.NoError(t, err)
	require.Equal(t, body, s.Body())

	_, err = snakeFromBody(board, []Point{{X: 1, Y: 1}, {X: 3, Y: 3}})
	require.Equal(t, ErrInvalidAdvance, errors.Cause(err))

	_, err = snakeFromBody(board, []Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 1}})
	require.Equal(t, ErrInvalidAdvance, errors.Cause(err))

	_, err = snakeFromBody(board, nil)
	require.Equal(t, ErrInvalidAdvance, errors.Cause(err))
}

func TestSnakeAdvanceWithoutGrowing(t *testing.T) {
	s, err := snakeFromBody(board, []Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}})
	require.NoError(t, err)

	require.NoError(t, s.Advance(Point{X: 1, Y: 0}, false))
	require.Equal(t, 3, s.Len())
	require.Equal(t, []Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}, s.Body())
	require.False(t, s.Occupies(Point{X: 1, Y: 3}), "tail cell should be released")
	require.True(t, s.Occupies(Point{X: 1, Y: 0}))
}

func TestSnakeAdvanceGrowing(t *testing.T) {
	s, err := snakeFromBody(board, []Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}})
	require.NoError(t, err)

	require.NoError(t, s.Advance(Point{X: 2, Y: 1}, true))
	require.Equal(t, 4, s.Len())
	require.Equal(t, Point{X: 2, Y: 1}, s.Head())
	require.Equal(t, Point{X: 1, Y: 3}, s.Tail())
}

func TestSnakeAdvanceOntoTail(t *testing.T) {
	body := []Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}

	s, err := snakeFromBody(board, body)
	require.NoError(t, err)
	require.NoError(t, s.Advance(Point{X: 1, Y: 2}, false), "following the tail is legal")
	require.Equal(t, []Point{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}, s.Body())
	require.True(t, s.Occupies(Point{X: 1, Y: 2}))

	s, err = snakeFromBody(board, body)
	require.NoError(t, err)
	err = s.Advance(Point{X: 1, Y: 2}, true)
	require.Equal(t, ErrInvalidAdvance, errors.Cause(err), "growing keeps the tail in place")
	require.Equal(t, body, s.Body())
}

func TestSnakeAdvanceRejectsBrokenMoves(t *testing.T) {
	body := []Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	tests := []struct {
		Name string
		Next Point
	}{
		{Name: "off board", Next: Point{X: -1, Y: 1}},
		{Name: "not adjacent", Next: Point{X: 0, Y: 3}},
		{Name: "onto neck", Next: Point{X: 1, Y: 1}},
		{Name: "onto head", Next: Point{X: 0, Y: 1}},
	}

	for _, test := range tests {
		s, err := snakeFromBody(board, body)
		require.NoError(t, err)
		err = s.Advance(test.Next, false)
		require.Equal(t, ErrInvalidAdvance, errors.Cause(err), test.Name)
		require.Equal(t, body, s.Body(), test.Name)
	}
}

func TestSnakeLengthAfterAdvances(t *testing.T) {
	s, err := NewSnake(board, Point{X: 0, Y: 0})
	require.NoError(t, err)

	path := []Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 2, Y: 1}}
	grow := []bool{true, false, true, false, true}
	expected := []int{2, 2, 3, 3, 4}
	for i, p := range path {
		require.NoError(t, s.Advance(p, grow[i]))
		require.Equal(t, expected[i], s.Len())
		requireValidBody(t, board, s.Body())
	}
}

func TestSnakeRingBufferWraps(t *testing.T) {
	grid := Grid{Width: 2, Height: 2}
	s, err := snakeFromBody(grid, []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)

	// Circle the 2x2 board several times so the head index wraps around.
	loop := []Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	for i := 0; i < 3; i++ {
		for _, p := range loop {
			require.NoError(t, s.Advance(p, false))
			require.Equal(t, 3, s.Len())
			require.Equal(t, p, s.Head())
			requireValidBody(t, grid, s.Body())
		}
	}
}
