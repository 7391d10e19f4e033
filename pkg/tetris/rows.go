package tetris

import "sort"

// FullRows returns, in ascending order, the rows holding BoardWidth cells.
func FullRows(board Board) []int {
	counts := make(map[int]int)
	for c := range board {
		counts[c.Y]++
	}

	var full []int
	for y := 1; y <= BoardHeight; y++ {
		if counts[y] == BoardWidth {
			full = append(full, y)
		}
	}

	return full
}

// ClearFullRows removes every full row and drops each remaining cell by the
// number of full rows beneath it, measured before anything moved.
func (g Game) ClearFullRows() Game {
	full := FullRows(g.Board)
	if len(full) == 0 {
		return g
	}

	g.Board = clearRows(g.Board, full)

	return g
}

func clearRows(board Board, full []int) Board {
	cleared := make(Board, len(board))
	for c, t := range board {
		// full is sorted, so the insertion point counts the rows below c.
		below := sort.SearchInts(full, c.Y)
		if below < len(full) && full[below] == c.Y {
			continue
		}

		cleared[Coord{c.X, c.Y - below}] = t
	}

	return cleared
}
