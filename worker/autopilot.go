package worker

import "github.com/battlesnakeio/snake/rules"

// Autopilot picks a move for headless games. It never reverses and never
// steps off the board or into the body when it can help it, and otherwise
// heads for the food. Ties go to the first direction in rules.Directions. If
// every move is fatal it keeps the current heading.
func Autopilot(s rules.Snapshot) rules.Direction {
	if len(s.Body) == 0 {
		return s.Heading
	}
	grid := rules.Grid{Width: s.Width, Height: s.Height}
	head := s.Head()
	tail := s.Body[len(s.Body)-1]

	occupied := make(map[rules.Point]bool, len(s.Body))
	for _, b := range s.Body {
		occupied[b] = true
	}

	best, bestDist := rules.NoDirection, 0
	for _, d := range rules.Directions {
		if d == s.Heading.Opposite() {
			continue
		}
		next := grid.Neighbor(head, d)
		if !grid.Contains(next) {
			continue
		}
		eating := s.Food != nil && *s.Food == next
		if occupied[next] && (eating || next != tail) {
			continue
		}

		dist := 0
		if s.Food != nil {
			dist = next.Distance(*s.Food)
		}
		if best == rules.NoDirection || dist < bestDist {
			best, bestDist = d, dist
		}
	}

	if best == rules.NoDirection {
		return s.Heading
	}
	return best
}
