package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/battlesnakeio/snake/controller"
	termbox "github.com/nsf/termbox-go"
)

const (
	replayInterval = 100 * time.Millisecond
	replayHelp     = "space pause  left/right step  esc/q back"
)

// replayGame plays back the recorded frames of a game until the player
// leaves with esc or q.
func replayGame(ctx context.Context, store controller.Store, id string, events <-chan termbox.Event) error {
	game, err := store.GetGame(ctx, id)
	if err != nil {
		return err
	}
	frames, err := loadFrames(ctx, store, id)
	if err != nil {
		return err
	}
	if frames.count() == 0 {
		return nil
	}

	cycle := time.NewTicker(replayInterval)
	defer cycle.Stop()

	frameIndex := 0
	currentFrame := frames.get(0)
	paused := false
	done := false

	draw := func() error {
		status := fmt.Sprintf("Replay %d/%d", frameIndex, frames.count()-1)
		if paused {
			status += " (paused)"
		}
		return render(screen{
			game:   game,
			frame:  currentFrame,
			title:  fmt.Sprintf("Snake - replay %s", game.ID),
			status: status,
			help:   replayHelp,
		})
	}
	if err := draw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if ev.Type == termbox.EventError {
				return ev.Err
			}
			if ev.Type != termbox.EventKey {
				if err := draw(); err != nil {
					return err
				}
				continue
			}
			switch {
			case ev.Key == termbox.KeyEsc, ev.Ch == 'q', ev.Ch == 'Q':
				return nil
			case ev.Key == termbox.KeySpace:
				paused = !paused
				if !paused && done {
					frameIndex, currentFrame, done = 0, frames.get(0), false
				}
			case ev.Key == termbox.KeyArrowLeft:
				paused = true
				frameIndex, currentFrame = moveFrameBackwards(frameIndex, frames)
				done = false
			case ev.Key == termbox.KeyArrowRight:
				paused = true
				frameIndex, currentFrame, done = moveFrameForwards(frameIndex, frames)
			}
			if err := draw(); err != nil {
				return err
			}
		case <-cycle.C:
			if paused || done {
				continue
			}
			frameIndex, currentFrame, done = moveFrameForwards(frameIndex, frames)
			if done {
				paused = true
			}
			if err := draw(); err != nil {
				return err
			}
		}
	}
}
