package pkg

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetriterm/pkg/event"
	"github.com/qnkhuat/tetriterm/pkg/gui"
	"github.com/qnkhuat/tetriterm/pkg/tetris"
)

func newTestSession(t *testing.T) *Session {
	s := NewSession("tester", 1, 1)
	t.Cleanup(s.clock.Stop)

	return s
}

func TestNewSession(t *testing.T) {
	s := NewSession("", 0, 42)
	defer s.clock.Stop()

	assert.NotEmpty(t, s.Name)
	assert.Equal(t, 1, s.StartLevel)
	assert.Equal(t, 1, s.Game.Level)

	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)

	other := NewSession("", 1, 42)
	defer other.clock.Stop()
	assert.Equal(t, s.Game, other.Game, "same seed, same pieces")
}

func TestSessionMoves(t *testing.T) {
	s := newTestSession(t)
	s.Game.CurrBlock = tetris.InitBlock(tetris.T)

	assert.True(t, s.Apply(event.ActionMoveLeft))
	assert.Equal(t, tetris.Coord{X: 5, Y: 22}, s.Game.CurrBlock.Origin)

	assert.True(t, s.Apply(event.ActionMoveRight))
	assert.True(t, s.Apply(event.ActionSoftDrop))
	assert.Equal(t, tetris.Coord{X: 6, Y: 21}, s.Game.CurrBlock.Origin)

	assert.True(t, s.Apply(event.ActionRotate))
	assert.False(t, s.Apply(event.ActionUnknown))

	for i := 0; i < tetris.BoardWidth; i++ {
		s.Apply(event.ActionMoveLeft)
	}
	assert.False(t, s.Apply(event.ActionMoveLeft), "blocked by the wall")
}

func TestSessionPause(t *testing.T) {
	s := newTestSession(t)
	before := s.Game

	assert.True(t, s.Apply(event.ActionPause))
	assert.True(t, s.Paused)
	assert.True(t, s.clock.Paused)

	assert.False(t, s.Apply(event.ActionMoveLeft))
	assert.False(t, s.Apply(event.ActionHardDrop))
	assert.False(t, s.Tick())
	assert.Equal(t, before, s.Game)

	assert.True(t, s.Apply(event.ActionPause))
	assert.False(t, s.Paused)
	assert.True(t, s.Apply(event.ActionMoveLeft))
}

func TestSessionHardDrop(t *testing.T) {
	s := newTestSession(t)
	next := s.Game.NextShape
	shape := s.Game.CurrBlock.Shape

	assert.True(t, s.Apply(event.ActionHardDrop))

	assert.Len(t, s.Game.Board, 4)
	for c, placed := range s.Game.Board {
		assert.True(t, tetris.IsInBounds(c), "cell %s", c)
		assert.Equal(t, shape, placed)
	}
	assert.Equal(t, tetris.InitBlock(next), s.Game.CurrBlock)
	assert.False(t, s.Over)
}

func TestSessionTickLocks(t *testing.T) {
	s := newTestSession(t)
	s.Game = s.Game.HardDrop()
	landed := s.Game.CurrBlock

	assert.True(t, s.Tick())
	assert.Len(t, s.Game.Board, 4)
	for _, c := range landed.Coords() {
		assert.Equal(t, landed.Shape, s.Game.Board[c])
	}
}

func TestSessionLinesAndLevel(t *testing.T) {
	s := newTestSession(t)

	board := tetris.Board{}
	for _, x := range []int{1, 2, 3, 4, 9, 10} {
		board[tetris.Coord{X: x, Y: 1}] = tetris.Z
	}
	s.Game.Board = board
	s.Game.CurrBlock = tetris.InitBlock(tetris.I)
	s.Lines = LinesPerLevel - 1

	assert.True(t, s.Apply(event.ActionHardDrop))

	assert.Equal(t, LinesPerLevel, s.Lines)
	assert.Empty(t, s.Game.Board)
	assert.Equal(t, 2, s.Game.Level)
	assert.Equal(t, 2, s.clock.Level)
	assert.Equal(t, 0, s.Game.Score)
}

func TestSessionGameOver(t *testing.T) {
	s := newTestSession(t)

	board := tetris.Board{}
	for y := 1; y <= tetris.BoardHeight; y++ {
		for x := 1; x < tetris.BoardWidth; x++ {
			board[tetris.Coord{X: x, Y: y}] = tetris.O
		}
	}
	s.Game.Board = board
	s.Game.CurrBlock = tetris.InitBlock(tetris.T)

	// The block enters the vanish zone, then lands on the stack above the
	// ceiling and can not be frozen.
	assert.True(t, s.Tick())
	assert.False(t, s.Over)
	assert.True(t, s.Tick())
	assert.True(t, s.Over)
	assert.Len(t, s.Game.Board, len(board))

	assert.False(t, s.Tick())
	assert.False(t, s.Apply(event.ActionMoveLeft))
	assert.False(t, s.Apply(event.ActionPause))
	assert.True(t, s.Frame().Over)
}

func TestSessionRun(t *testing.T) {
	s := NewSession("runner", 1, 7)
	s.Game.CurrBlock = tetris.InitBlock(tetris.O)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	next := func() gui.Frame {
		select {
		case f := <-s.Out:
			return f
		case <-time.After(2 * time.Second):
			t.Fatal("no frame published")
		}
		return gui.Frame{}
	}

	f := next()
	assert.Equal(t, "runner", f.Name)

	s.In <- event.ActionMoveLeft
	for f.Game.CurrBlock.Origin.X != 5 {
		f = next()
	}

	s.In <- event.ActionPause
	for !f.Paused {
		f = next()
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop")
	}
}

func TestPublishKeepsLatest(t *testing.T) {
	s := newTestSession(t)

	s.publish()
	s.Lines = 3
	s.publish()

	require.Len(t, s.Out, 1)
	assert.Equal(t, 3, (<-s.Out).Lines)
}
