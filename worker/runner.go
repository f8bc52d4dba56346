package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/rules"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Runner drives a single game: it waits for the next tick, hands the latest
// input to the game and records the resulting frame. Run is the only place
// the game is touched; Steer, TogglePause and Restart are safe to call from
// other goroutines.
type Runner struct {
	Game    *rules.Game
	Store   controller.Store
	Limiter *rate.Limiter

	// Pilot, when set, picks the intent every turn in place of the buffered
	// input.
	Pilot func(rules.Snapshot) rules.Direction
	// OnFrame is called from Run with every recorded frame.
	OnFrame func(gameID string, f *controller.Frame)
	// ExitOnEnd makes Run return once the game is won or lost instead of
	// waiting for a restart.
	ExitOnEnd bool
	// MaxTurns stops Run after that many turns of a game. Zero means no
	// limit.
	MaxTurns int

	controls controls
}

// NewRunner returns a runner ticking game once per interval and recording
// into store.
func NewRunner(game *rules.Game, store controller.Store, interval time.Duration) *Runner {
	return &Runner{
		Game:    game,
		Store:   store,
		Limiter: config.NewTickLimiter(interval),
	}
}

// Steer buffers a direction for the next tick. Only the latest is applied.
func (r *Runner) Steer(d rules.Direction) { r.controls.steer(d) }

// TogglePause pauses or resumes a running game and reports whether it is now
// paused. Finished games can't be paused.
func (r *Runner) TogglePause() bool { return r.controls.togglePause() }

// Paused reports whether ticks are currently skipped.
func (r *Runner) Paused() bool {
	r.controls.Lock()
	defer r.controls.Unlock()
	return r.controls.paused
}

// Restart asks for a fresh game at the next tick boundary.
func (r *Runner) Restart() { r.controls.requestRestart() }

// GameID is the store id of the game being played.
func (r *Runner) GameID() string {
	r.controls.Lock()
	defer r.controls.Unlock()
	return r.controls.gameID
}

// Status is the status as of the last tick.
func (r *Runner) Status() rules.GameStatus {
	r.controls.Lock()
	defer r.controls.Unlock()
	return r.controls.status
}

// Run plays until ctx is done. With ExitOnEnd or MaxTurns set it also returns
// nil once the game is over or long enough.
func (r *Runner) Run(ctx context.Context) error {
	if r.Limiter == nil {
		r.Limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if err := r.record(ctx); err != nil {
		return err
	}

	for {
		if err := r.Limiter.Wait(ctx); err != nil {
			return err
		}

		intent, restart, paused := r.controls.next()
		if restart {
			if err := r.restart(ctx); err != nil {
				return err
			}
			continue
		}
		if paused {
			continue
		}
		if r.Game.Status().Over() {
			if r.ExitOnEnd {
				return nil
			}
			continue
		}

		frame, err := r.tick(ctx, intent)
		if err != nil {
			return err
		}
		if frame.Status.Over() && r.ExitOnEnd {
			return nil
		}
		if r.MaxTurns > 0 && frame.Turn >= r.MaxTurns {
			log.WithField("game", r.GameID()).
				WithField("turn", frame.Turn).
				Info("turn limit reached")
			return nil
		}
	}
}

func (r *Runner) tick(ctx context.Context, intent rules.Direction) (*controller.Frame, error) {
	id := r.GameID()
	if r.Pilot != nil {
		intent = r.Pilot(r.Game.Snapshot())
	}

	score := r.Game.Score()
	start := time.Now()
	status, err := r.Game.Tick(intent)
	tickDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		// A tick error means the game state is broken, nothing more can be
		// played.
		log.WithError(err).
			WithField("game", id).
			Error("ending game due to fatal error")
		return nil, err
	}
	ticksTotal.Inc()

	frame := controller.FrameFromSnapshot(r.Game.Snapshot())
	if frame.Score > score {
		foodEaten.Inc()
	}
	if err := r.Store.PushGameFrame(ctx, id, frame); err != nil {
		return nil, err
	}

	if status.Over() {
		if err := r.Store.SetGameStatus(ctx, id, status); err != nil {
			return nil, err
		}
		gamesFinished.WithLabelValues(string(status)).Inc()
		log.WithFields(log.Fields{
			"game":  id,
			"turn":  frame.Turn,
			"score": frame.Score,
			"cause": frame.Cause,
		}).Infof("game %s", status)
	}
	r.controls.setStatus(status)
	r.emit(id, frame)
	return frame, nil
}

func (r *Runner) restart(ctx context.Context) error {
	grid := r.Game.Grid()
	if err := r.Game.Restart(grid.Width, grid.Height, r.Game.Seed()+1); err != nil {
		return err
	}
	return r.record(ctx)
}

// record starts a new game record holding the current state as frame zero.
func (r *Runner) record(ctx context.Context) error {
	snap := r.Game.Snapshot()
	game := &controller.Game{
		ID:      uuid.NewV4().String(),
		Width:   snap.Width,
		Height:  snap.Height,
		Seed:    r.Game.Seed(),
		Status:  snap.Status,
		Created: time.Now(),
	}
	frame := controller.FrameFromSnapshot(snap)
	if err := r.Store.CreateGame(ctx, game, []*controller.Frame{frame}); err != nil {
		return err
	}
	r.controls.setGame(game.ID, snap.Status)

	log.WithFields(log.Fields{
		"game":   game.ID,
		"width":  game.Width,
		"height": game.Height,
		"seed":   game.Seed,
	}).Info("recording game")
	r.emit(game.ID, frame)
	return nil
}

func (r *Runner) emit(id string, f *controller.Frame) {
	if r.OnFrame != nil {
		r.OnFrame(id, f)
	}
}
