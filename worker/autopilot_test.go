package worker

import (
	"testing"

	"github.com/battlesnakeio/snake/rules"
	"github.com/stretchr/testify/require"
)

func TestAutopilot(t *testing.T) {
	food := func(x, y int) *rules.Point { return &rules.Point{X: x, Y: y} }

	tests := []struct {
		name string
		snap rules.Snapshot
		want rules.Direction
	}{
		{
			name: "heads for food",
			snap: rules.Snapshot{
				Width: 5, Height: 5,
				Body:    []rules.Point{{X: 2, Y: 2}},
				Food:    food(2, 4),
				Heading: rules.Right,
			},
			want: rules.Down,
		},
		{
			name: "never reverses",
			snap: rules.Snapshot{
				Width: 5, Height: 5,
				Body:    []rules.Point{{X: 2, Y: 2}},
				Food:    food(0, 2),
				Heading: rules.Right,
			},
			want: rules.Up,
		},
		{
			name: "stays on the board",
			snap: rules.Snapshot{
				Width: 5, Height: 5,
				Body:    []rules.Point{{X: 4, Y: 0}, {X: 3, Y: 0}},
				Food:    food(4, 4),
				Heading: rules.Right,
			},
			want: rules.Down,
		},
		{
			name: "avoids the body",
			snap: rules.Snapshot{
				Width: 5, Height: 5,
				Body: []rules.Point{
					{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0},
				},
				Food:    food(4, 1),
				Heading: rules.Up,
			},
			want: rules.Up,
		},
		{
			name: "follows the tail",
			snap: rules.Snapshot{
				Width: 2, Height: 2,
				Body: []rules.Point{
					{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
				},
				Heading: rules.Right,
			},
			want: rules.Down,
		},
		{
			name: "keeps heading when trapped",
			snap: rules.Snapshot{
				Width: 3, Height: 1,
				Body:    []rules.Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}},
				Heading: rules.Right,
			},
			want: rules.Right,
		},
		{
			name: "no body",
			snap: rules.Snapshot{Width: 3, Height: 3, Heading: rules.Left},
			want: rules.Left,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, Autopilot(test.snap))
		})
	}
}
