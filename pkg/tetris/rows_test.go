package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b Board, y int, shape Tetrimino) {
	for x := 1; x <= BoardWidth; x++ {
		b[Coord{x, y}] = shape
	}
}

func TestFullRows(t *testing.T) {
	b := Board{}
	assert.Empty(t, FullRows(b))

	fillRow(b, 7, I)
	fillRow(b, 2, O)
	b[Coord{1, 3}] = T

	assert.Equal(t, []int{2, 7}, FullRows(b))
}

func TestClearFullRows(t *testing.T) {
	b := Board{}
	fillRow(b, 1, T)
	for x := 1; x <= 5; x++ {
		b[Coord{x, 2}] = S
	}

	g := Game{Board: b}.ClearFullRows()

	require.Len(t, g.Board, 5)
	for x := 1; x <= 5; x++ {
		shape, ok := g.Board[Coord{x, 1}]
		assert.True(t, ok, "missing cell at column %d", x)
		assert.Equal(t, S, shape)
	}

	// The source board is left as it was.
	assert.Len(t, b, 15)
}

func TestClearFullRowsSimultaneous(t *testing.T) {
	b := Board{}
	fillRow(b, 1, I)
	fillRow(b, 3, I)
	for x := 1; x <= 3; x++ {
		b[Coord{x, 2}] = J
	}
	b[Coord{1, 4}] = L
	b[Coord{2, 4}] = L
	b[Coord{4, 6}] = Z

	g := Game{Board: b}.ClearFullRows()

	assert.Equal(t, Board{
		{1, 1}: J,
		{2, 1}: J,
		{3, 1}: J,
		{1, 2}: L,
		{2, 2}: L,
		{4, 4}: Z,
	}, g.Board)
}

func TestClearFullRowsNone(t *testing.T) {
	b := Board{{1, 1}: O, {2, 1}: O}
	g := Game{Board: b}

	assert.Equal(t, g, g.ClearFullRows())
}
