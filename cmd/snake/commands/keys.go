package commands

import (
	"github.com/battlesnakeio/snake/rules"
	termbox "github.com/nsf/termbox-go"
)

type action int

const (
	actionNone action = iota
	actionSteer
	actionPause
	actionRestart
	actionReplay
	actionQuit
)

var arrowKeys = map[termbox.Key]rules.Direction{
	termbox.KeyArrowUp:    rules.Up,
	termbox.KeyArrowDown:  rules.Down,
	termbox.KeyArrowLeft:  rules.Left,
	termbox.KeyArrowRight: rules.Right,
}

var letterKeys = map[rune]rules.Direction{
	'w': rules.Up,
	's': rules.Down,
	'a': rules.Left,
	'd': rules.Right,
	'W': rules.Up,
	'S': rules.Down,
	'A': rules.Left,
	'D': rules.Right,
}

// keyAction maps a key press to what the player asked for. Space pauses a
// running game and restarts a finished one.
func keyAction(ev termbox.Event, over bool) (action, rules.Direction) {
	if ev.Type != termbox.EventKey {
		return actionNone, rules.NoDirection
	}
	if d, ok := arrowKeys[ev.Key]; ok {
		return actionSteer, d
	}
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return actionQuit, rules.NoDirection
	case termbox.KeySpace:
		if over {
			return actionRestart, rules.NoDirection
		}
		return actionPause, rules.NoDirection
	}

	if d, ok := letterKeys[ev.Ch]; ok {
		return actionSteer, d
	}
	switch ev.Ch {
	case 'r', 'R':
		return actionRestart, rules.NoDirection
	case 'p', 'P':
		return actionReplay, rules.NoDirection
	case 'q', 'Q':
		return actionQuit, rules.NoDirection
	}
	return actionNone, rules.NoDirection
}
