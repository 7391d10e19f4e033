package pkg

import (
	"context"
	"log"
	"math/rand"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"github.com/qnkhuat/tetriterm/pkg/event"
	"github.com/qnkhuat/tetriterm/pkg/gui"
	"github.com/qnkhuat/tetriterm/pkg/tetris"
)

const (
	LinesPerLevel = 10
	ConnQueueSize = 10
)

// Session owns the live game. Run is the only goroutine allowed to touch it;
// everyone else talks to it through In and reads frames from Out.
type Session struct {
	ID         string
	Name       string
	Game       tetris.Game
	StartLevel int
	Lines      int
	Paused     bool
	Over       bool

	In  chan event.Action
	Out chan gui.Frame

	rng   *rand.Rand
	clock *Clock
}

func NewSession(name string, level int, seed int64) *Session {
	if name == "" {
		name = petname.Generate(2, "-")
	}
	if level < 1 {
		level = 1
	}

	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		ID:         uuid.NewString(),
		Name:       name,
		Game:       tetris.New(level, rng),
		StartLevel: level,
		In:         make(chan event.Action, ConnQueueSize),
		Out:        make(chan gui.Frame, 1),
		rng:        rng,
		clock:      NewClock(level),
	}

	log.Printf("session %s: %s started at level %d with seed %d", s.ID, s.Name, level, seed)
	return s
}

// Frame returns a snapshot for the renderer. Games are never modified in
// place, so the snapshot stays valid while the session moves on.
func (s *Session) Frame() gui.Frame {
	return gui.Frame{
		Game:   s.Game,
		Name:   s.Name,
		Lines:  s.Lines,
		Paused: s.Paused,
		Over:   s.Over,
	}
}

// Apply runs a single player action and reports whether anything changed.
func (s *Session) Apply(a event.Action) bool {
	if a == event.ActionPause {
		return s.togglePause()
	}

	if s.Paused || s.Over {
		return false
	}

	prev := s.Game.CurrBlock
	switch a {
	case event.ActionMoveLeft:
		s.Game = s.Game.Shift(tetris.Left)
	case event.ActionMoveRight:
		s.Game = s.Game.Shift(tetris.Right)
	case event.ActionRotate:
		s.Game = s.Game.Rotate()
	case event.ActionSoftDrop:
		return s.Tick()
	case event.ActionHardDrop:
		s.Game = s.Game.HardDrop()
		s.lock()
		return true
	default:
		return false
	}

	return !prev.Equal(s.Game.CurrBlock)
}

// Tick applies one step of gravity. A block that can not fall any further is
// locked into the board.
func (s *Session) Tick() bool {
	if s.Paused || s.Over {
		return false
	}

	if s.Game.IsLanded() {
		s.lock()
		return true
	}

	s.Game = s.Game.Gravitate()
	return true
}

func (s *Session) togglePause() bool {
	if s.Over {
		return false
	}

	s.Paused = !s.Paused
	if s.Paused {
		s.clock.Pause()
	} else {
		s.clock.Resume()
	}

	log.Printf("session %s: paused=%t", s.ID, s.Paused)
	return true
}

// lock freezes the falling block, clears full rows and spawns the next block.
// A block that can not be frozen ends the game.
func (s *Session) lock() {
	g, err := s.Game.FreezeBlock()
	if err != nil {
		s.Over = true
		s.clock.Stop()
		log.Printf("session %s: game over at level %d with %d lines: %v", s.ID, s.Game.Level, s.Lines, err)
		return
	}

	cleared := len(tetris.FullRows(g.Board))
	g = g.ClearFullRows()

	if cleared > 0 {
		s.Lines += cleared
		log.Printf("session %s: cleared %d rows, %d total", s.ID, cleared, s.Lines)

		if level := s.StartLevel + s.Lines/LinesPerLevel; level != g.Level {
			g.Level = level
			s.clock.SetLevel(level)
			log.Printf("session %s: %s", s.ID, s.clock)
		}
	}

	s.Game = g.NextBlock(s.rng)
}

// publish hands the latest frame to the reader, replacing a frame it has not
// picked up yet.
func (s *Session) publish() {
	f := s.Frame()

	select {
	case s.Out <- f:
		return
	default:
	}

	select {
	case <-s.Out:
	default:
	}

	select {
	case s.Out <- f:
	default:
	}
}

// Run serializes ticks and actions until ctx is done.
func (s *Session) Run(ctx context.Context) {
	defer s.clock.Stop()

	s.publish()
	for {
		select {
		case <-ctx.Done():
			log.Printf("session %s: stopped", s.ID)
			return
		case <-s.clock.C:
			if s.Tick() {
				s.publish()
			}
		case a := <-s.In:
			if s.Apply(a) {
				s.publish()
			}
		}
	}
}
