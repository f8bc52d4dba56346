package commands

import (
	"errors"
	"fmt"

	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow
	foodColor    = termbox.ColorRed
	foodRune     = '●'

	boardLeft = 2
	boardTop  = 2
)

const playHelp = "arrows/wasd steer  space pause  r restart  p replay  q quit"

// screen is everything drawn for a single frame.
type screen struct {
	game   *controller.Game
	frame  *controller.Frame
	title  string
	status string
	help   string
}

func render(s screen) error {
	if s.frame == nil {
		return errors.New("received nil frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	var (
		left   = boardLeft
		top    = boardTop
		bottom = top + s.game.Height + 1
	)

	renderTitle(left, top, s.title)
	renderBoard(s.game, top, bottom, left)
	renderSnake(left, top, s.frame.Body)
	renderFood(left, top, s.frame.Food)

	side := left + s.game.Width + 3
	tbprint(side, top+1, defaultColor, defaultColor, fmt.Sprintf("Score %d", s.frame.Score))
	tbprint(side, top+2, defaultColor, defaultColor, fmt.Sprintf("Turn  %d", s.frame.Turn))
	if s.status != "" {
		tbprint(side, top+4, termbox.AttrBold, defaultColor, s.status)
	}
	tbprint(left-1, bottom+2, defaultColor, defaultColor, s.help)

	return termbox.Flush()
}

// statusLine describes the frame for the side panel.
func statusLine(f *controller.Frame, paused bool) string {
	switch f.Status {
	case rules.GameStatusLost:
		return fmt.Sprintf("Game over - %s. space to restart", f.Cause)
	case rules.GameStatusWon:
		return "Board filled, you win! space to restart"
	}
	if paused {
		return "Paused"
	}
	return ""
}

func renderSnake(left, top int, body []rules.Point) {
	for i, b := range body {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		termbox.SetCell(left+b.X, top+b.Y+1, ' ', color, color)
	}
}

func renderFood(left, top int, food *rules.Point) {
	if food == nil {
		return
	}
	termbox.SetCell(left+food.X, top+food.Y+1, foodRune, foodColor, bgColor)
}

func renderBoard(game *controller.Game, top, bottom, left int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+game.Width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+game.Width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+game.Width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, game.Width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, game.Width, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top int, title string) {
	tbprint(left-1, top-1, defaultColor, defaultColor, title)
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
