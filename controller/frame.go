package controller

import (
	"time"

	"github.com/battlesnakeio/snake/rules"
)

// Game is the record kept for every game a runner plays.
type Game struct {
	ID      string
	Width   int
	Height  int
	Seed    int64
	Status  rules.GameStatus
	Created time.Time
}

// Frame is the state of a game after a single turn.
type Frame struct {
	Turn   int
	Body   []rules.Point
	Food   *rules.Point
	Score  int
	Status rules.GameStatus
	Cause  string
}

// FrameFromSnapshot records a snapshot as a frame.
func FrameFromSnapshot(s rules.Snapshot) *Frame {
	return &Frame{
		Turn:   s.Turn,
		Body:   s.Body,
		Food:   s.Food,
		Score:  s.Score,
		Status: s.Status,
		Cause:  s.Cause,
	}
}

// Copy returns a frame sharing nothing with f.
func (f *Frame) Copy() *Frame {
	c := *f
	c.Body = append([]rules.Point(nil), f.Body...)
	if f.Food != nil {
		food := *f.Food
		c.Food = &food
	}
	return &c
}

// Head returns the first point in the body, or nil for an empty frame.
func (f *Frame) Head() *rules.Point {
	if len(f.Body) == 0 {
		return nil
	}
	return &f.Body[0]
}
