package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetriterm/pkg/tetris"
)

const (
	leftMargin = 2
	topMargin  = 1
	cellWidth  = 2
	panelGap   = 4
)

// Frame is the read-only view of a session handed to the renderer
type Frame struct {
	Game   tetris.Game
	Name   string
	Lines  int
	Paused bool
	Over   bool
}

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// drawCell fills the two columns of a single board cell
func drawCell(s tcell.Screen, col, row int, style tcell.Style, left, right rune) {
	s.SetContent(col, row, left, nil, style)
	s.SetContent(col+1, row, right, nil, style)
}

// cellPos converts a board coordinate into screen coordinates
func cellPos(x, y int, c tetris.Coord) (int, int) {
	return x + leftMargin + 1 + (c.X-1)*cellWidth, y + topMargin + tetris.BoardHeight - c.Y
}

// drawWell draws the border and the empty cells of the board
func drawWell(s tcell.Screen, x, y int, t Theme) {
	borderStyle := tcell.StyleDefault.Foreground(t.Border)
	wellStyle := tcell.StyleDefault.Background(t.Well)

	left := x + leftMargin
	right := left + 1 + tetris.BoardWidth*cellWidth
	for r := 0; r < tetris.BoardHeight; r++ {
		row := y + topMargin + r
		drawRune(s, left, row, borderStyle, '│')
		for col := left + 1; col < right; col++ {
			drawRune(s, col, row, wellStyle, ' ')
		}
		drawRune(s, right, row, borderStyle, '│')
	}

	bottom := y + topMargin + tetris.BoardHeight
	drawRune(s, left, bottom, borderStyle, '└')
	for col := left + 1; col < right; col++ {
		drawRune(s, col, bottom, borderStyle, '─')
	}
	drawRune(s, right, bottom, borderStyle, '┘')
}

// drawBoard draws the settled cells, the ghost and the falling block. Cells
// above the ceiling are never drawn.
func drawBoard(s tcell.Screen, x, y int, f Frame, t Theme) {
	for c, shape := range f.Game.Board {
		if !tetris.IsInBounds(c) {
			continue
		}

		col, row := cellPos(x, y, c)
		style := tcell.StyleDefault.Background(t.Piece(shape))
		if f.Over {
			drawCell(s, col, row, style.Foreground(t.Well), '▓', '▓')
			continue
		}
		drawCell(s, col, row, style, ' ', ' ')
	}

	if f.Over {
		return
	}

	block := f.Game.CurrBlock
	ghostStyle := tcell.StyleDefault.Background(t.Well).Foreground(t.Piece(block.Shape))
	for _, c := range f.Game.Ghost().Coords() {
		if !tetris.IsInBounds(c) {
			continue
		}

		col, row := cellPos(x, y, c)
		drawCell(s, col, row, ghostStyle, '░', '░')
	}

	blockStyle := tcell.StyleDefault.Background(t.Piece(block.Shape))
	for _, c := range block.Coords() {
		if !tetris.IsInBounds(c) {
			continue
		}

		col, row := cellPos(x, y, c)
		drawCell(s, col, row, blockStyle, ' ', ' ')
	}
}

// drawNext draws a preview of the next piece with its top left corner at col, row
func drawNext(s tcell.Screen, col, row int, shape tetris.Tetrimino, t Theme) {
	coords := tetris.InitBlock(shape).Coords()

	minX, maxY := coords[0].X, coords[0].Y
	for _, c := range coords[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}

	style := tcell.StyleDefault.Background(t.Piece(shape))
	for _, c := range coords {
		drawCell(s, col+(c.X-minX)*cellWidth, row+(maxY-c.Y), style, ' ', ' ')
	}
}

// drawPanel draws the next piece, the player and the counters
func drawPanel(s tcell.Screen, x, y int, f Frame, t Theme) {
	col := x + leftMargin + 1 + tetris.BoardWidth*cellWidth + panelGap
	row := y + topMargin

	labelStyle := tcell.StyleDefault.Foreground(t.Label)
	textStyle := tcell.StyleDefault.Foreground(t.Text)

	drawText(s, col, row, labelStyle, "NEXT")
	drawNext(s, col, row+2, f.Game.NextShape, t)
	row += 5

	stats := []struct {
		label string
		value string
	}{
		{"PLAYER", f.Name},
		{"LEVEL", fmt.Sprint(f.Game.Level)},
		{"LINES", fmt.Sprint(f.Lines)},
		{"SCORE", fmt.Sprint(f.Game.Score)},
	}
	for _, st := range stats {
		drawText(s, col, row, labelStyle, st.label)
		drawText(s, col, row+1, textStyle, st.value)
		row += 3
	}

	msgStyle := tcell.StyleDefault.Foreground(t.Msg)
	switch {
	case f.Over:
		drawText(s, col, row, msgStyle, "GAME OVER")
	case f.Paused:
		drawText(s, col, row, msgStyle, "PAUSED")
	}
	row += 2

	for _, help := range Help {
		drawText(s, col, row, labelStyle, help)
		row++
	}
}

// Render draws a whole frame with its top left corner at x, y. Showing the
// screen is left to the caller.
func Render(s tcell.Screen, x, y int, f Frame, t Theme) {
	drawWell(s, x, y, t)
	drawBoard(s, x, y, f, t)
	drawPanel(s, x, y, f, t)
}
