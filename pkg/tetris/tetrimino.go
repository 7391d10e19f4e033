// Package tetris holds the rules of the game as pure transforms over Game values.
package tetris

import (
	"strconv"
	"strings"
)

type Tetrimino int

const (
	I Tetrimino = iota
	O
	T
	S
	Z
	J
	L
)

// Tetriminos enumerates every piece once, in declaration order.
var Tetriminos = []Tetrimino{I, O, T, S, Z, J, L}

func (t Tetrimino) String() string {
	switch t {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Coord is a (column, row) pair. Rows grow upward, so gravity decreases Y.
type Coord struct {
	X, Y int
}

func (c Coord) Translate(d Direction) Coord {
	switch d {
	case Left:
		return Coord{c.X - 1, c.Y}
	case Right:
		return Coord{c.X + 1, c.Y}
	case Down:
		return Coord{c.X, c.Y - 1}
	default:
		return c
	}
}

func (c Coord) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(c.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(c.Y))
	b.WriteRune(')')

	return b.String()
}

type Direction int

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}
