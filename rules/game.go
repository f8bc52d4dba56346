package rules

// Config is what a game is created with.
type Config struct {
	Width  int
	Height int
	// Seed drives food placement. Games with equal seeds and inputs play out
	// identically.
	Seed int64
}

// Game is a single player snake game. It owns the snake, the food and the
// score and only changes them inside Tick and Restart. A Game is not safe for
// concurrent use.
type Game struct {
	grid    Grid
	seed    int64
	snake   *Snake
	food    *Point
	spawner *FoodSpawner

	heading Direction
	pending Direction

	turn   int
	score  int
	status GameStatus
	cause  string
}

// Snapshot is a read-only copy of the game used for rendering and recording.
type Snapshot struct {
	Width   int
	Height  int
	Turn    int
	Body    []Point
	Food    *Point
	Score   int
	Status  GameStatus
	Heading Direction
	Cause   string
}

// Head returns the first point in the body.
func (s Snapshot) Head() Point {
	return s.Body[0]
}

// Grid returns the board dimensions.
func (g *Game) Grid() Grid { return g.grid }

// Seed returns the seed the current game was started with.
func (g *Game) Seed() int64 { return g.seed }

// Status returns the current status.
func (g *Game) Status() GameStatus { return g.status }

// Score returns the amount of food eaten since the last restart.
func (g *Game) Score() int { return g.score }

// Steer buffers an intent for the next tick. Only the latest intent is kept.
func (g *Game) Steer(d Direction) {
	if d.Valid() {
		g.pending = d
	}
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:   g.grid.Width,
		Height:  g.grid.Height,
		Turn:    g.turn,
		Body:    g.snake.Body(),
		Score:   g.score,
		Status:  g.status,
		Heading: g.heading,
		Cause:   g.cause,
	}
	if g.food != nil {
		food := *g.food
		s.Food = &food
	}
	return s
}

func (g *Game) placeFood() {
	p, ok := g.spawner.Spawn(g.grid, g.snake)
	if !ok {
		g.food = nil
		return
	}
	g.food = &p
}
