package tetris

// BagCopies is how many times each piece appears in one bag. Four copies of
// seven pieces give a 28 piece bag, which bounds droughts less tightly than a
// single seven piece bag.
const BagCopies = 4

// Rand supplies uniform integers in [0, n-1]. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewBag returns BagCopies cycles of Tetriminos, unshuffled.
func NewBag() []Tetrimino {
	bag := make([]Tetrimino, 0, BagCopies*len(Tetriminos))
	for i := 0; i < BagCopies; i++ {
		bag = append(bag, Tetriminos...)
	}

	return bag
}

// Shuffle returns a uniform permutation of seq: a uniformly chosen item
// followed by a shuffle of the rest. seq is left untouched.
func Shuffle(seq []Tetrimino, r Rand) []Tetrimino {
	rest := make([]Tetrimino, len(seq))
	copy(rest, seq)

	shuffled := make([]Tetrimino, 0, len(seq))
	for len(rest) > 0 {
		i := r.Intn(len(rest))
		shuffled = append(shuffled, rest[i])
		rest = append(rest[:i], rest[i+1:]...)
	}

	return shuffled
}

// BagFourTetriminoEach pops the front of queue, refilling it with a freshly
// shuffled bag first when it is empty. The returned queue shares storage with
// the input and must not be modified.
func BagFourTetriminoEach(queue []Tetrimino, r Rand) (Tetrimino, []Tetrimino) {
	if len(queue) == 0 {
		queue = Shuffle(NewBag(), r)
	}

	return queue[0], queue[1:]
}
