// Package worker runs games. A Runner owns one game and ticks it on a fixed
// cadence, feeding it buffered player input; a Worker plays many autopilot
// games in parallel.
package worker

import (
	"context"
	"sync"

	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidGames is returned when a negative number of games is requested.
var ErrInvalidGames = errors.New("worker: invalid game count")

// Worker plays autopilot games without any delay between turns. Every game
// has its own Runner, so each game is still only touched by one goroutine.
type Worker struct {
	Store    controller.Store
	Threads  int
	Width    int
	Height   int
	Seed     int64
	MaxTurns int
}

// Result is how a single game ended.
type Result struct {
	GameID string
	Seed   int64
	Status rules.GameStatus
	Score  int
	Turns  int
	Cause  string
}

// Run plays games games. Game i uses seed Seed+i, so a run is repeatable.
// Results are returned in game order. The first error stops the remaining
// games.
func (w *Worker) Run(parent context.Context, games int) ([]Result, error) {
	if games < 0 {
		return nil, errors.Wrapf(ErrInvalidGames, "games=%d", games)
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	threads := w.Threads
	if threads < 1 {
		threads = 1
	}

	jobs := make(chan int)
	results := make([]Result, games)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	wg.Add(threads)
	for i := 0; i < threads; i++ {
		go func(workerID int) {
			defer wg.Done()
			for n := range jobs {
				res, err := w.play(ctx, w.Seed+int64(n))
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancel()
					})
					log.WithError(err).
						WithField("worker", workerID).
						Error("game failed")
					continue
				}
				results[n] = res
			}
		}(i)
	}

feed:
	for n := 0; n < games; n++ {
		select {
		case jobs <- n:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (w *Worker) play(ctx context.Context, seed int64) (Result, error) {
	game, err := rules.New(rules.Config{Width: w.Width, Height: w.Height, Seed: seed})
	if err != nil {
		return Result{}, err
	}
	r := NewRunner(game, w.Store, 0)
	r.Pilot = Autopilot
	r.ExitOnEnd = true
	r.MaxTurns = w.MaxTurns
	if err := r.Run(ctx); err != nil {
		return Result{}, err
	}

	s := game.Snapshot()
	return Result{
		GameID: r.GameID(),
		Seed:   seed,
		Status: s.Status,
		Score:  s.Score,
		Turns:  s.Turn,
		Cause:  s.Cause,
	}, nil
}
