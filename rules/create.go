package rules

import log "github.com/sirupsen/logrus"

// InitialHeading is the direction a fresh snake travels in.
const InitialHeading = Right

// New creates a running game from cfg. It fails with ErrInvalidGrid if either
// dimension is not positive.
func New(cfg Config) (*Game, error) {
	g := &Game{}
	if err := g.Restart(cfg.Width, cfg.Height, cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Restart throws away the current game and starts a new one: a single
// segment snake in the middle of the board, score zero and fresh food. If the
// dimensions are invalid the game is left as it was.
func (g *Game) Restart(width, height int, seed int64) error {
	grid := Grid{Width: width, Height: height}
	snake, err := NewSnake(grid, grid.Center())
	if err != nil {
		return err
	}

	*g = Game{
		grid:    grid,
		seed:    seed,
		snake:   snake,
		spawner: NewSeededFoodSpawner(seed),
		heading: InitialHeading,
		status:  GameStatusRunning,
	}
	g.placeFood()

	log.WithFields(log.Fields{
		"Width":  width,
		"Height": height,
		"Seed":   seed,
		"Food":   g.food,
	}).Info("game started")
	return nil
}
