package rules

import "math/rand"

// Rand is the source of randomness used to place food. *rand.Rand satisfies
// it.
type Rand interface {
	Intn(n int) int
}

// FoodSpawner places food on free cells.
type FoodSpawner struct {
	rng Rand
}

// NewFoodSpawner returns a spawner drawing from rng.
func NewFoodSpawner(rng Rand) *FoodSpawner {
	return &FoodSpawner{rng: rng}
}

// NewSeededFoodSpawner returns a spawner with its own deterministic source.
func NewSeededFoodSpawner(seed int64) *FoodSpawner {
	return NewFoodSpawner(rand.New(rand.NewSource(seed)))
}

// Spawn picks a cell the snake does not occupy, uniformly at random. It
// returns false when the snake covers the whole board.
func (f *FoodSpawner) Spawn(grid Grid, snake *Snake) (Point, bool) {
	openPoints := unoccupiedPoints(grid, snake)
	if len(openPoints) == 0 {
		return Point{}, false
	}
	return openPoints[f.rng.Intn(len(openPoints))], true
}

// unoccupiedPoints lists every free cell, column by column.
func unoccupiedPoints(grid Grid, snake *Snake) []Point {
	points := make([]Point, 0, grid.Area()-snake.Len())
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			p := Point{X: x, Y: y}
			if !snake.Occupies(p) {
				points = append(points, p)
			}
		}
	}
	return points
}
