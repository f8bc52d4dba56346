package worker

import (
	"sync"

	"github.com/battlesnakeio/snake/rules"
)

// controls buffers everything the input side can ask for between two ticks.
// The runner drains it at the start of each tick, so nothing reaches the game
// mid-tick.
type controls struct {
	sync.Mutex
	intent  rules.Direction
	paused  bool
	restart bool

	gameID string
	status rules.GameStatus
}

func (c *controls) steer(d rules.Direction) {
	if !d.Valid() {
		return
	}
	c.Lock()
	defer c.Unlock()
	c.intent = d
}

func (c *controls) togglePause() bool {
	c.Lock()
	defer c.Unlock()
	if c.status.Over() {
		return c.paused
	}
	c.paused = !c.paused
	return c.paused
}

func (c *controls) requestRestart() {
	c.Lock()
	defer c.Unlock()
	c.restart = true
}

// next drains the buffer for one tick. A pending restart wins over
// everything else and clears the pause. While paused the intent stays
// buffered for when play resumes.
func (c *controls) next() (intent rules.Direction, restart, paused bool) {
	c.Lock()
	defer c.Unlock()

	if c.restart {
		c.restart = false
		c.paused = false
		c.intent = rules.NoDirection
		return rules.NoDirection, true, false
	}
	if c.paused {
		return rules.NoDirection, false, true
	}
	intent = c.intent
	c.intent = rules.NoDirection
	return intent, false, false
}

func (c *controls) setGame(id string, status rules.GameStatus) {
	c.Lock()
	defer c.Unlock()
	c.gameID = id
	c.status = status
}

func (c *controls) setStatus(status rules.GameStatus) {
	c.Lock()
	defer c.Unlock()
	c.status = status
	if status.Over() {
		c.paused = false
	}
}
