package testsuite

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/rules"
	"github.com/stretchr/testify/require"
)

func testStoreGames(t *testing.T, s controller.Store) {
	ctx := context.Background()

	// Create and fetch a game.
	err := s.CreateGame(ctx, &controller.Game{ID: "test", Width: 5, Height: 5, Status: rules.GameStatusRunning}, nil)
	require.Nil(t, err)
	g, err := s.GetGame(ctx, "test")
	require.Nil(t, err)
	require.Equal(t, "test", g.ID)
	require.Equal(t, 5, g.Width)

	// Same id again.
	err = s.CreateGame(ctx, &controller.Game{ID: "test"}, nil)
	require.Equal(t, controller.ErrAlreadyExists, err)

	// NotFound error thrown.
	_, err = s.GetGame(ctx, "tes11221t")
	require.Equal(t, controller.ErrNotFound, err)

	// Status updates are visible, returned games are copies.
	g.Status = rules.GameStatusWon
	g, err = s.GetGame(ctx, "test")
	require.Nil(t, err)
	require.Equal(t, rules.GameStatusRunning, g.Status)
	require.Nil(t, s.SetGameStatus(ctx, "test", rules.GameStatusLost))
	g, err = s.GetGame(ctx, "test")
	require.Nil(t, err)
	require.Equal(t, rules.GameStatusLost, g.Status)
	require.Equal(t, controller.ErrNotFound, s.SetGameStatus(ctx, "missing", rules.GameStatusLost))
}

func testStoreGameFrames(t *testing.T, s controller.Store) {
	ctx := context.Background()

	err := s.CreateGame(ctx, &controller.Game{ID: "test", Status: rules.GameStatusRunning}, []*controller.Frame{{Turn: 0}})
	require.Nil(t, err)

	// Read game frames, too high offset.
	frames, err := s.ListGameFrames(ctx, "test", 10, 100)
	require.Nil(t, err)
	require.Equal(t, 0, len(frames))

	// Push some game frames.
	for turn := 1; turn < 5; turn++ {
		err = s.PushGameFrame(ctx, "test", &controller.Frame{Turn: turn})
		require.Nil(t, err)
	}

	// Frames must move forward.
	err = s.PushGameFrame(ctx, "test", &controller.Frame{Turn: 4})
	require.Equal(t, controller.ErrFrameOrder, err)

	// Read the game frames.
	frames, err = s.ListGameFrames(ctx, "test", 2, 1)
	require.Nil(t, err)
	require.Len(t, frames, 2)
	require.Equal(t, 1, frames[0].Turn)
	require.Equal(t, 2, frames[1].Turn)

	// No limit.
	frames, err = s.ListGameFrames(ctx, "test", 0, 0)
	require.Nil(t, err)
	require.Len(t, frames, 5)

	// Negative offset counts from the end.
	frames, err = s.ListGameFrames(ctx, "test", 10, -2)
	require.Nil(t, err)
	require.Len(t, frames, 2)
	require.Equal(t, 3, frames[0].Turn)
	require.Equal(t, 4, frames[1].Turn)

	frames, err = s.ListGameFrames(ctx, "test", 10, -50)
	require.Nil(t, err)
	require.Len(t, frames, 5)

	// Read game frames that don't exist.
	frames, err = s.ListGameFrames(ctx, "test22", 1, 0)
	require.Equal(t, controller.ErrNotFound, err)
	require.Equal(t, 0, len(frames))

	err = s.PushGameFrame(ctx, "test22", &controller.Frame{Turn: 1})
	require.Equal(t, controller.ErrNotFound, err)
}

func testStoreRejectsUnorderedFrames(t *testing.T, s controller.Store) {
	ctx := context.Background()

	err := s.CreateGame(ctx, &controller.Game{ID: "test"}, []*controller.Frame{{Turn: 1}, {Turn: 1}})
	require.Equal(t, controller.ErrFrameOrder, err)
	_, err = s.GetGame(ctx, "test")
	require.Equal(t, controller.ErrNotFound, err)
}

func testStoreListGameIDs(t *testing.T, s controller.Store) {
	ctx := context.Background()

	ids, err := s.ListGameIDs(ctx)
	require.Nil(t, err)
	require.Empty(t, ids)

	for i := 0; i < 3; i++ {
		require.Nil(t, s.CreateGame(ctx, &controller.Game{ID: fmt.Sprintf("game-%d", i)}, nil))
	}
	ids, err = s.ListGameIDs(ctx)
	require.Nil(t, err)
	require.Equal(t, []string{"game-0", "game-1", "game-2"}, ids)
}

func testStoreConcurrentReaders(t *testing.T, s controller.Store) {
	ctx := context.Background()

	err := s.CreateGame(ctx, &controller.Game{ID: "test", Status: rules.GameStatusRunning}, nil)
	require.Nil(t, err)

	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = s.ListGameFrames(ctx, "test", 0, -5)
			}
		}()
	}
	for turn := 1; turn <= 100; turn++ {
		require.Nil(t, s.PushGameFrame(ctx, "test", &controller.Frame{Turn: turn}))
	}
	wg.Wait()

	frames, err := s.ListGameFrames(ctx, "test", 0, 0)
	require.Nil(t, err)
	require.Len(t, frames, 100)
}

func testStoreFramesAreCopies(t *testing.T, s controller.Store) {
	ctx := context.Background()

	first := &controller.Frame{Turn: 0, Body: []rules.Point{{X: 1, Y: 1}}}
	err := s.CreateGame(ctx, &controller.Game{ID: "test"}, []*controller.Frame{first})
	require.Nil(t, err)

	pushed := &controller.Frame{
		Turn: 1,
		Body: []rules.Point{{X: 2, Y: 1}},
		Food: &rules.Point{X: 3, Y: 3},
	}
	require.Nil(t, s.PushGameFrame(ctx, "test", pushed))

	// Changing what was handed in must not reach the store.
	first.Body[0] = rules.Point{X: 4, Y: 4}
	pushed.Turn = 9
	pushed.Body[0] = rules.Point{X: 4, Y: 4}
	pushed.Food.X = 0

	frames, err := s.ListGameFrames(ctx, "test", 0, 0)
	require.Nil(t, err)
	require.Len(t, frames, 2)
	require.Equal(t, []rules.Point{{X: 1, Y: 1}}, frames[0].Body)
	require.Equal(t, 1, frames[1].Turn)
	require.Equal(t, []rules.Point{{X: 2, Y: 1}}, frames[1].Body)
	require.Equal(t, &rules.Point{X: 3, Y: 3}, frames[1].Food)

	// Neither must changing what was handed out.
	frames[1].Body[0] = rules.Point{X: 0, Y: 0}
	frames[1].Food.Y = 0
	frames, err = s.ListGameFrames(ctx, "test", 1, -1)
	require.Nil(t, err)
	require.Equal(t, []rules.Point{{X: 2, Y: 1}}, frames[0].Body)
	require.Equal(t, &rules.Point{X: 3, Y: 3}, frames[0].Food)
}

// Suite will execute the store testsuite. Every case gets a fresh store from
// newStore, wrapped in the instrumented store.
func Suite(t *testing.T, newStore func() controller.Store) {
	run := func(name string, test func(*testing.T, controller.Store)) {
		t.Run(name, func(t *testing.T) { test(t, controller.InstrumentStore(newStore())) })
	}
	run("Games", testStoreGames)
	run("GameFrames", testStoreGameFrames)
	run("UnorderedFrames", testStoreRejectsUnorderedFrames)
	run("ListGameIDs", testStoreListGameIDs)
	run("ConcurrentReaders", testStoreConcurrentReaders)
	run("FramesAreCopies", testStoreFramesAreCopies)
}
