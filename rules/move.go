package rules

// Outcome is the result of moving the snake one cell.
type Outcome int

const (
	// OutcomeMoved means the snake moved without eating.
	OutcomeMoved Outcome = iota
	// OutcomeAte means the head landed on the food and the snake grew.
	OutcomeAte
	// OutcomeWallCollision means the move would leave the board. The snake
	// was not moved.
	OutcomeWallCollision
	// OutcomeSelfCollision means the move would run into the body. The
	// snake was not moved.
	OutcomeSelfCollision
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeWallCollision:
		return DeathCauseWallCollision
	case OutcomeSelfCollision:
		return DeathCauseSnakeSelfCollision
	}
	return "unknown"
}

// Fatal reports whether the outcome ends the game.
func (o Outcome) Fatal() bool {
	return o == OutcomeWallCollision || o == OutcomeSelfCollision
}

// Move advances snake one cell in direction d. food may be nil when there is
// nothing on the board. Collisions leave the snake as it was so the final
// position can still be drawn. The direction must already have been checked
// against the current heading.
func Move(grid Grid, snake *Snake, food *Point, d Direction) (Outcome, error) {
	next := grid.Neighbor(snake.Head(), d)
	eating := food != nil && *food == next

	switch checkForDeath(grid, snake, next, eating) {
	case DeathCauseWallCollision:
		return OutcomeWallCollision, nil
	case DeathCauseSnakeSelfCollision:
		return OutcomeSelfCollision, nil
	}

	if err := snake.Advance(next, eating); err != nil {
		return OutcomeMoved, err
	}
	if eating {
		return OutcomeAte, nil
	}
	return OutcomeMoved, nil
}
