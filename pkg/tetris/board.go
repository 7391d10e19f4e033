package tetris

// Board maps occupied cells to the piece that left them there. A cell inside
// the bounds that is missing from the map is empty. Boards are never modified
// in place once a Game holds them.
type Board map[Coord]Tetrimino

func (b Board) IsFree(c Coord) bool {
	_, ok := b[c]
	return !ok
}

func (b Board) IsOccupied(c Coord) bool {
	return !b.IsFree(c)
}

func (b Board) clone() Board {
	n := make(Board, len(b))
	for c, t := range b {
		n[c] = t
	}

	return n
}

func IsInBounds(c Coord) bool {
	return c.X >= 1 && c.X <= BoardWidth && c.Y >= 1 && c.Y <= BoardHeight
}

func IsOutOfBounds(c Coord) bool {
	return !IsInBounds(c)
}

// IsValidBlockPosition reports whether every cell of the block is free and
// inside the board.
func IsValidBlockPosition(block Block, board Board) bool {
	for _, c := range block.Coords() {
		if board.IsOccupied(c) || IsOutOfBounds(c) {
			return false
		}
	}

	return true
}

// IsStopped reports whether moving the block down would hit a settled cell.
// The floor is not considered; the driver decides when to lock with
// Game.IsLanded, which also sees the floor.
func IsStopped(board Board, block Block) bool {
	for _, c := range block.Coords() {
		if board.IsOccupied(c.Translate(Down)) {
			return true
		}
	}

	return false
}

// Fits accepts valid positions, and positions of a block still entering from
// above the ceiling as long as its cells are free, inside the columns and not
// below the floor.
func Fits(block Block, board Board) bool {
	return IsValidBlockPosition(block, board) || isEntering(block, board)
}

// admits is the gate for every move of the falling block from cur to next.
// Only a block that has not fully entered the board may use the vanish zone;
// once inside, next must be a valid position.
func admits(cur, next Block, board Board) bool {
	if cur.isAboveCeiling() {
		return Fits(next, board)
	}

	return IsValidBlockPosition(next, board)
}

func isEntering(block Block, board Board) bool {
	entering := false
	for _, c := range block.Coords() {
		if c.X < 1 || c.X > BoardWidth || c.Y < 1 || board.IsOccupied(c) {
			return false
		}
		if c.Y > BoardHeight {
			entering = true
		}
	}

	return entering
}

func (b Block) isAboveCeiling() bool {
	for _, c := range b.Coords() {
		if c.Y > BoardHeight {
			return true
		}
	}

	return false
}
