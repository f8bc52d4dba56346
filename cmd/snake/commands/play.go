package commands

import (
	"context"
	"io/ioutil"
	"sync"
	"time"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/worker"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	playWidth  = config.Width
	playHeight = config.Height
	playSeed   = config.Seed
	playTick   = config.TickInterval
)

func init() {
	playCmd.Flags().IntVarP(&playWidth, "width", "W", playWidth, "board width")
	playCmd.Flags().IntVarP(&playHeight, "height", "H", playHeight, "board height")
	playCmd.Flags().Int64Var(&playSeed, "seed", playSeed, "food seed, 0 picks one from the clock")
	playCmd.Flags().DurationVarP(&playTick, "tick", "t", playTick, "time between turns")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play snake in the terminal",
	PreRun: func(c *cobra.Command, args []string) {
		// stderr belongs to termbox while the game is up.
		if logFile == "" {
			log.SetOutput(ioutil.Discard)
		}
		prometheus()
	},
	Run: func(*cobra.Command, []string) {
		if err := playGame(); err != nil {
			log.WithError(err).Fatal("game ended with an error")
		}
	},
}

// latestFrame keeps the newest frame the runner produced. The runner never
// waits on the UI: ready only signals that something new is there.
type latestFrame struct {
	sync.Mutex
	id    string
	frame *controller.Frame
	ready chan struct{}
}

func newLatestFrame() *latestFrame {
	return &latestFrame{ready: make(chan struct{}, 1)}
}

func (l *latestFrame) set(id string, f *controller.Frame) {
	l.Lock()
	l.id, l.frame = id, f
	l.Unlock()

	select {
	case l.ready <- struct{}{}:
	default:
	}
}

func (l *latestFrame) get() (string, *controller.Frame) {
	l.Lock()
	defer l.Unlock()
	return l.id, l.frame
}

func playGame() error {
	seed := playSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game, err := rules.New(rules.Config{Width: playWidth, Height: playHeight, Seed: seed})
	if err != nil {
		return err
	}

	store := controller.InstrumentStore(controller.InMemStore())
	runner := worker.NewRunner(game, store, playTick)
	latest := newLatestFrame()
	runner.OnFrame = latest.set

	if err = termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runErr := make(chan error, 1)
	go func() { runErr <- runner.Run(ctx) }()

	var board *controller.Game
	draw := func() error {
		id, frame := latest.get()
		if frame == nil {
			return nil
		}
		if board == nil || board.ID != id {
			if board, err = store.GetGame(ctx, id); err != nil {
				return err
			}
		}
		return render(screen{
			game:   board,
			frame:  frame,
			title:  "Snake",
			status: statusLine(frame, runner.Paused()),
			help:   playHelp,
		})
	}

	events := setupEventQueue()
	for {
		select {
		case err := <-runErr:
			return err
		case <-latest.ready:
			if err := draw(); err != nil {
				return err
			}
		case ev := <-events:
			if ev.Type == termbox.EventError {
				return ev.Err
			}
			act, d := keyAction(ev, runner.Status().Over())
			switch act {
			case actionSteer:
				runner.Steer(d)
			case actionPause:
				runner.TogglePause()
			case actionRestart:
				runner.Restart()
			case actionReplay:
				if err := replay(ctx, runner, store, events); err != nil {
					return err
				}
			case actionQuit:
				cancel()
				<-runErr
				return nil
			}
			if err := draw(); err != nil {
				return err
			}
		}
	}
}

// replay holds the live game while the current game's frames are played
// back.
func replay(ctx context.Context, runner *worker.Runner, store controller.Store, events <-chan termbox.Event) error {
	hold := !runner.Paused() && !runner.Status().Over()
	if hold {
		runner.TogglePause()
	}
	err := replayGame(ctx, store, runner.GameID(), events)
	if hold && runner.Paused() {
		runner.TogglePause()
	}
	return err
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
