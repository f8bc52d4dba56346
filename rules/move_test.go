package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	grid := Grid{Width: 10, Height: 10}
	tests := []struct {
		Name      string
		Body      []Point
		Food      *Point
		Direction Direction
		Outcome   Outcome
		Expected  []Point
	}{
		{
			Name:      "plain move",
			Body:      []Point{{X: 5, Y: 5}, {X: 4, Y: 5}},
			Direction: Right,
			Outcome:   OutcomeMoved,
			Expected:  []Point{{X: 6, Y: 5}, {X: 5, Y: 5}},
		},
		{
			Name:      "food elsewhere",
			Body:      []Point{{X: 5, Y: 5}, {X: 4, Y: 5}},
			Food:      pt(0, 0),
			Direction: Up,
			Outcome:   OutcomeMoved,
			Expected:  []Point{{X: 5, Y: 4}, {X: 5, Y: 5}},
		},
		{
			Name:      "eat",
			Body:      []Point{{X: 5, Y: 5}, {X: 4, Y: 5}},
			Food:      pt(5, 6),
			Direction: Down,
			Outcome:   OutcomeAte,
			Expected:  []Point{{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 4, Y: 5}},
		},
		{
			Name:      "wall",
			Body:      []Point{{X: 0, Y: 5}, {X: 1, Y: 5}},
			Direction: Left,
			Outcome:   OutcomeWallCollision,
			Expected:  []Point{{X: 0, Y: 5}, {X: 1, Y: 5}},
		},
		{
			Name:      "wall while food is adjacent",
			Body:      []Point{{X: 9, Y: 9}},
			Food:      pt(8, 9),
			Direction: Down,
			Outcome:   OutcomeWallCollision,
			Expected:  []Point{{X: 9, Y: 9}},
		},
		{
			Name:      "into neck",
			Body:      []Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}},
			Direction: Right,
			Outcome:   OutcomeSelfCollision,
			Expected:  []Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}},
		},
		{
			Name:      "into body",
			Body:      []Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}},
			Direction: Down,
			Outcome:   OutcomeSelfCollision,
			Expected:  []Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}},
		},
		{
			Name:      "follow tail",
			Body:      []Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}},
			Direction: Down,
			Outcome:   OutcomeMoved,
			Expected:  []Point{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}},
		},
		{
			Name:      "follow tail while eating",
			Body:      []Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}},
			Food:      pt(1, 2),
			Direction: Down,
			Outcome:   OutcomeSelfCollision,
			Expected:  []Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}},
		},
	}

	for _, test := range tests {
		snake, err := snakeFromBody(grid, test.Body)
		require.NoError(t, err, test.Name)

		outcome, err := Move(grid, snake, test.Food, test.Direction)
		require.NoError(t, err, test.Name)
		require.Equal(t, test.Outcome, outcome, test.Name)
		require.Equal(t, test.Expected, snake.Body(), test.Name)
	}
}

func TestOutcomeFatal(t *testing.T) {
	require.False(t, OutcomeMoved.Fatal())
	require.False(t, OutcomeAte.Fatal())
	require.True(t, OutcomeWallCollision.Fatal())
	require.True(t, OutcomeSelfCollision.Fatal())
	require.Equal(t, DeathCauseWallCollision, OutcomeWallCollision.String())
	require.Equal(t, DeathCauseSnakeSelfCollision, OutcomeSelfCollision.String())
}
