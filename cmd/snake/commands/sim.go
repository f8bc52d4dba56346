package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/worker"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	simGames    = 10
	simThreads  = 4
	simWidth    = config.Width
	simHeight   = config.Height
	simSeed     = config.Seed
	simMaxTurns = 10000
	simDump     = false
)

func init() {
	simCmd.Flags().IntVarP(&simGames, "games", "g", simGames, "number of games to play")
	simCmd.Flags().IntVarP(&simThreads, "threads", "t", simThreads, "games played at the same time")
	simCmd.Flags().IntVarP(&simWidth, "width", "W", simWidth, "board width")
	simCmd.Flags().IntVarP(&simHeight, "height", "H", simHeight, "board height")
	simCmd.Flags().Int64Var(&simSeed, "seed", simSeed, "seed of the first game, game n uses seed+n")
	simCmd.Flags().IntVar(&simMaxTurns, "max-turns", simMaxTurns, "stop a game after this many turns, 0 for no limit")
	simCmd.Flags().BoolVar(&simDump, "dump", simDump, "dump the final frame of every game")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "plays autopilot games as fast as possible",
	Args: func(c *cobra.Command, args []string) error {
		if simGames < 0 {
			return errors.Errorf("games must not be negative, got %d", simGames)
		}
		return nil
	},
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(*cobra.Command, []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt)
			<-sig
			log.Warn("interrupted, stopping games")
			cancel()
		}()

		store := controller.InstrumentStore(controller.InMemStore())
		w := &worker.Worker{
			Store:    store,
			Threads:  simThreads,
			Width:    simWidth,
			Height:   simHeight,
			Seed:     simSeed,
			MaxTurns: simMaxTurns,
		}

		results, err := w.Run(ctx, simGames)
		if err != nil {
			log.WithError(err).Fatal("simulation failed")
		}

		for _, res := range results {
			log.WithFields(log.Fields{
				"game":   res.GameID,
				"seed":   res.Seed,
				"status": res.Status,
				"score":  res.Score,
				"turns":  res.Turns,
				"cause":  res.Cause,
			}).Info("game finished")

			if simDump {
				frames, err := store.ListGameFrames(ctx, res.GameID, 1, -1)
				if err != nil {
					log.WithError(err).WithField("game", res.GameID).Error("unable to load final frame")
					continue
				}
				spew.Dump(res, frames)
			}
		}

		s := summarize(results)
		log.WithFields(log.Fields{
			"games":      s.Games,
			"won":        s.Won,
			"lost":       s.Lost,
			"unfinished": s.Unfinished,
			"bestScore":  s.BestScore,
			"meanScore":  s.MeanScore,
		}).Info("simulation done")
	},
}

type summary struct {
	Games      int
	Won        int
	Lost       int
	Unfinished int
	BestScore  int
	MeanScore  float64
}

func summarize(results []worker.Result) summary {
	s := summary{Games: len(results)}
	total := 0
	for _, res := range results {
		switch res.Status {
		case rules.GameStatusWon:
			s.Won++
		case rules.GameStatusLost:
			s.Lost++
		default:
			s.Unfinished++
		}
		if res.Score > s.BestScore {
			s.BestScore = res.Score
		}
		total += res.Score
	}
	if s.Games > 0 {
		s.MeanScore = float64(total) / float64(s.Games)
	}
	return s
}
