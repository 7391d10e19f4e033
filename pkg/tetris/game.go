package tetris

import (
	"errors"
	"fmt"
)

var (
	ErrBlockOverlap     = errors.New("block overlaps the board")
	ErrBlockOutOfBounds = errors.New("block lies outside the board")
)

// Game is the whole state of a running game. Every operation returns a new
// Game and leaves its receiver usable, so a value can be handed to a renderer
// while the owner keeps playing.
type Game struct {
	Level        int
	CurrBlock    Block
	NextShape    Tetrimino
	NextShapeBag []Tetrimino
	Score        int
	Board        Board
}

// New draws the falling piece and the next one from a fresh bag.
func New(level int, r Rand) Game {
	first, bag := BagFourTetriminoEach(nil, r)
	next, bag := BagFourTetriminoEach(bag, r)

	return Game{
		Level:        level,
		CurrBlock:    InitBlock(first),
		NextShape:    next,
		NextShapeBag: bag,
		Board:        make(Board),
	}
}

// Shift moves the falling block one step, or does nothing when the target
// position does not fit.
func (g Game) Shift(d Direction) Game {
	b := g.CurrBlock.Translate(d)
	if !admits(g.CurrBlock, b, g.Board) {
		return g
	}

	g.CurrBlock = b
	return g
}

func (g Game) Gravitate() Game {
	return g.Shift(Down)
}

// IsLanded reports whether the falling block can not move down any further,
// either because of a settled cell or the floor.
func (g Game) IsLanded() bool {
	return !admits(g.CurrBlock, g.CurrBlock.Translate(Down), g.Board)
}

// HardDrop moves the falling block straight down until it lands.
func (g Game) HardDrop() Game {
	for !g.IsLanded() {
		g = g.Gravitate()
	}

	return g
}

// Ghost returns where the falling block would land after a hard drop.
func (g Game) Ghost() Block {
	return g.HardDrop().CurrBlock
}

// FreezeBlock writes the falling block into the board. The block must lie
// entirely on free cells inside the board; otherwise g is returned with an
// error wrapping ErrBlockOverlap or ErrBlockOutOfBounds.
func (g Game) FreezeBlock() (Game, error) {
	for _, c := range g.CurrBlock.Coords() {
		if IsOutOfBounds(c) {
			return g, fmt.Errorf("failed to freeze %s at %s: %w", g.CurrBlock, c, ErrBlockOutOfBounds)
		}
		if g.Board.IsOccupied(c) {
			return g, fmt.Errorf("failed to freeze %s at %s: %w", g.CurrBlock, c, ErrBlockOverlap)
		}
	}

	board := g.Board.clone()
	for _, c := range g.CurrBlock.Coords() {
		board[c] = g.CurrBlock.Shape
	}

	g.Board = board
	return g, nil
}

// NextBlock spawns NextShape and draws its successor from the bag.
func (g Game) NextBlock(r Rand) Game {
	next, bag := BagFourTetriminoEach(g.NextShapeBag, r)

	g.CurrBlock = InitBlock(g.NextShape)
	g.NextShape = next
	g.NextShapeBag = bag

	return g
}
