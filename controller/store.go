// Package controller keeps the record of games played in this process: the
// game metadata and every frame, so a finished game can be replayed.
package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/battlesnakeio/snake/rules"
)

var (
	// ErrNotFound is returned when a game is not found.
	ErrNotFound = errors.New("controller: game not found")
	// ErrAlreadyExists is returned when a game id is reused.
	ErrAlreadyExists = errors.New("controller: game already exists")
	// ErrFrameOrder is returned when a frame does not come after the last
	// frame of the game.
	ErrFrameOrder = errors.New("controller: frame out of order")
)

// Store is the interface to the frame store.
type Store interface {
	// CreateGame will insert a game with the initial frames.
	CreateGame(ctx context.Context, g *Game, frames []*Frame) error
	// PushGameFrame will push a copy of a game frame onto the list of frames.
	PushGameFrame(ctx context.Context, id string, f *Frame) error
	// ListGameFrames will list frames by an offset and limit, it supports
	// negative offset. A limit of zero or less returns every frame after
	// the offset.
	ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*Frame, error)
	// SetGameStatus is used to set a specific game status.
	SetGameStatus(ctx context.Context, id string, status rules.GameStatus) error
	// GetGame will fetch the game.
	GetGame(ctx context.Context, id string) (*Game, error)
	// ListGameIDs returns every game id, oldest first.
	ListGameIDs(ctx context.Context) ([]string, error)
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		games:  map[string]*Game{},
		frames: map[string][]*Frame{},
	}
}

type inmem struct {
	games  map[string]*Game
	frames map[string][]*Frame
	order  []string
	lock   sync.RWMutex
}

func (in *inmem) CreateGame(ctx context.Context, g *Game, frames []*Frame) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[g.ID]; ok {
		return ErrAlreadyExists
	}
	if !ordered(frames) {
		return ErrFrameOrder
	}
	game := *g
	in.games[g.ID] = &game
	in.frames[g.ID] = copyFrames(frames)
	in.order = append(in.order, g.ID)
	return nil
}

// ordered reports whether turns strictly increase.
func ordered(frames []*Frame) bool {
	for i := 1; i < len(frames); i++ {
		if frames[i].Turn <= frames[i-1].Turn {
			return false
		}
	}
	return true
}

func (in *inmem) PushGameFrame(ctx context.Context, id string, f *Frame) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[id]; !ok {
		return ErrNotFound
	}
	frames := in.frames[id]
	if n := len(frames); n > 0 && frames[n-1].Turn >= f.Turn {
		return ErrFrameOrder
	}
	in.frames[id] = append(frames, f.Copy())
	return nil
}

// copyFrames keeps stored frames out of reach of callers.
func copyFrames(frames []*Frame) []*Frame {
	out := make([]*Frame, len(frames))
	for i, f := range frames {
		out[i] = f.Copy()
	}
	return out
}

func (in *inmem) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*Frame, error) {
	in.lock.RLock()
	defer in.lock.RUnlock()

	if _, ok := in.games[id]; !ok {
		return nil, ErrNotFound
	}
	frames := in.frames[id]
	if offset < 0 {
		offset = len(frames) + offset
		if offset < 0 {
			offset = 0
		}
	}
	if offset >= len(frames) {
		return []*Frame{}, nil
	}
	end := len(frames)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return copyFrames(frames[offset:end]), nil
}

func (in *inmem) SetGameStatus(ctx context.Context, id string, status rules.GameStatus) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	g, ok := in.games[id]
	if !ok {
		return ErrNotFound
	}
	g.Status = status
	return nil
}

func (in *inmem) GetGame(ctx context.Context, id string) (*Game, error) {
	in.lock.RLock()
	defer in.lock.RUnlock()

	if g, ok := in.games[id]; ok {
		game := *g
		return &game, nil
	}
	return nil, ErrNotFound
}

func (in *inmem) ListGameIDs(ctx context.Context) ([]string, error) {
	in.lock.RLock()
	defer in.lock.RUnlock()

	return append([]string(nil), in.order...), nil
}
