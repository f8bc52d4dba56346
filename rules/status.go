package rules

// GameStatus is where a game is in its lifecycle.
type GameStatus string

const (
	// GameStatusRunning represents a game that is still being played
	GameStatusRunning GameStatus = "running"
	// GameStatusWon represents a game where the snake filled the board
	GameStatusWon GameStatus = "won"
	// GameStatusLost represents a game that ended in a collision
	GameStatusLost GameStatus = "lost"
)

// Over reports whether the status is terminal. Only a restart leaves a
// terminal status.
func (s GameStatus) Over() bool {
	return s == GameStatusWon || s == GameStatusLost
}
