package tetris

func rotateCW(o Coord, c Coord) Coord {
	return Coord{o.X + c.Y - o.Y, o.Y + o.X - c.X}
}

func rotateCCW(o Coord, c Coord) Coord {
	return Coord{o.X + o.Y - c.Y, c.X + o.Y - o.X}
}

// RotateBlock turns the block a quarter around its origin without looking at
// the board. O never turns. I only has two orientations: when the cell above
// the origin is part of the piece it turns back clockwise.
func RotateBlock(b Block) Block {
	if b.Shape == O {
		return b
	}

	rotate := rotateCCW
	if b.Shape == I && b.has(Coord{b.Origin.X, b.Origin.Y + 1}) {
		rotate = rotateCW
	}

	extra := make([]Coord, len(b.Extra))
	for i, c := range b.Extra {
		extra[i] = rotate(b.Origin, c)
	}

	return Block{Shape: b.Shape, Origin: b.Origin, Extra: extra}
}

// Rotate applies the first rotation that fits: in place, then kicked one
// column left, then one column right. A block already inside the board never
// turns back above the ceiling. The game is unchanged when none fit.
func (g Game) Rotate() Game {
	candidates := []Block{
		RotateBlock(g.CurrBlock),
		RotateBlock(g.CurrBlock.Translate(Left)),
		RotateBlock(g.CurrBlock.Translate(Right)),
	}

	for _, b := range candidates {
		if admits(g.CurrBlock, b, g.Board) {
			g.CurrBlock = b
			return g
		}
	}

	return g
}
