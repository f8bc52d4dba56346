package rules

// checkForDeath decides whether moving the head onto next kills the snake.
// It returns the death cause, or "" if the move is safe. The tail cell only
// counts as free when the snake is not about to grow, since growing keeps the
// tail where it is.
func checkForDeath(grid Grid, snake *Snake, next Point, eating bool) string {
	if deathByOutOfBounds(grid, next) {
		return DeathCauseWallCollision
	}
	if deathBySelfCollision(snake, next, eating) {
		return DeathCauseSnakeSelfCollision
	}
	return ""
}

func deathByOutOfBounds(grid Grid, head Point) bool {
	return !grid.Contains(head)
}

func deathBySelfCollision(snake *Snake, head Point, eating bool) bool {
	if !snake.Occupies(head) {
		return false
	}
	if eating {
		return true
	}
	return head != snake.Tail()
}
