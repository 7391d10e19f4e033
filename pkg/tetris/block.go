package tetris

import (
	"fmt"
	"sort"
)

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// SpawnOrigin sits above the visible well so new pieces scroll into view.
var SpawnOrigin = Coord{6, 22}

// shapeOffsets holds the three cells of each piece relative to its origin.
var shapeOffsets = map[Tetrimino][3]Coord{
	I: {{-1, 0}, {1, 0}, {2, 0}},
	O: {{1, 0}, {0, -1}, {1, -1}},
	T: {{-1, 0}, {1, 0}, {0, 1}},
	S: {{-1, 0}, {0, 1}, {1, 1}},
	Z: {{1, 0}, {0, 1}, {-1, 1}},
	J: {{-1, 1}, {-1, 0}, {1, 0}},
	L: {{-1, 0}, {1, 0}, {1, 1}},
}

// Block is a located piece. Origin is the rotation pivot and Extra holds the
// other three cells in board coordinates.
type Block struct {
	Shape  Tetrimino
	Origin Coord
	Extra  []Coord
}

func InitBlock(shape Tetrimino) Block {
	offsets := shapeOffsets[shape]

	extra := make([]Coord, len(offsets))
	for i, o := range offsets {
		extra[i] = Coord{SpawnOrigin.X + o.X, SpawnOrigin.Y + o.Y}
	}

	return Block{Shape: shape, Origin: SpawnOrigin, Extra: extra}
}

// Coords returns the origin followed by the extra cells.
func (b Block) Coords() []Coord {
	coords := make([]Coord, 0, len(b.Extra)+1)
	coords = append(coords, b.Origin)

	return append(coords, b.Extra...)
}

// Translate moves every cell of the block one step in d.
func (b Block) Translate(d Direction) Block {
	extra := make([]Coord, len(b.Extra))
	for i, c := range b.Extra {
		extra[i] = c.Translate(d)
	}

	return Block{Shape: b.Shape, Origin: b.Origin.Translate(d), Extra: extra}
}

// Equal reports whether both blocks have the same shape, origin and cell set.
// The order of Extra is irrelevant.
func (b Block) Equal(other Block) bool {
	if b.Shape != other.Shape || b.Origin != other.Origin || len(b.Extra) != len(other.Extra) {
		return false
	}

	for _, c := range b.Extra {
		if !other.has(c) {
			return false
		}
	}

	return true
}

func (b Block) has(c Coord) bool {
	for _, e := range b.Extra {
		if e == c {
			return true
		}
	}

	return false
}

func (b Block) String() string {
	extra := make([]Coord, len(b.Extra))
	copy(extra, b.Extra)
	sort.Slice(extra, func(i, j int) bool {
		return extra[i].Y < extra[j].Y || (extra[i].Y == extra[j].Y && extra[i].X < extra[j].X)
	})

	return fmt.Sprintf("%s@%s%v", b.Shape, b.Origin, extra)
}
