package rules

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Tick runs the game one turn and returns the resulting status.
//
// intent, when set, replaces anything buffered with Steer. An intent that
// points straight back along the heading is dropped and the snake keeps
// going. Once the game is won or lost Tick changes nothing.
func (g *Game) Tick(intent Direction) (GameStatus, error) {
	if g.status.Over() {
		return g.status, nil
	}

	if !intent.Valid() {
		intent = g.pending
	}
	g.pending = NoDirection
	if intent.Valid() && intent != g.heading.Opposite() {
		g.heading = intent
	}

	outcome, err := Move(g.grid, g.snake, g.food, g.heading)
	if err != nil {
		return g.status, errors.Wrapf(err, "rules: turn %d", g.turn+1)
	}
	g.turn++

	fields := log.Fields{
		"Turn": g.turn,
		"Move": g.heading,
		"Head": g.snake.Head(),
	}
	switch {
	case outcome.Fatal():
		g.status = GameStatusLost
		g.cause = outcome.String()
		log.WithFields(fields).
			WithField("Cause", g.cause).
			WithField("Score", g.score).
			Info("snake died")
	case outcome == OutcomeAte:
		g.score++
		g.food = nil
		g.placeFood()
		log.WithFields(fields).
			WithField("Score", g.score).
			WithField("Food", g.food).
			Info("snake ate")
		if g.food == nil {
			g.status = GameStatusWon
			log.WithFields(fields).
				WithField("Score", g.score).
				Info("board filled")
		}
	default:
		log.WithFields(fields).Debug("snake moved")
	}
	return g.status, nil
}
