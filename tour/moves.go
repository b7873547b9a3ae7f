package tour

// Offsets are the knight move vectors, clockwise from (2,1). The order is
// the tie-break order of the tour.
var Offsets = [8][2]int{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

func (p Position) add(d [2]int) Position {
	return Position{Row: p.Row + d[0], Col: p.Col + d[1]}
}

func legal(b *Board, p Position) bool {
	return b.InBounds(p) && b.cells[b.index(p)] != Visited
}

// Candidates lists the squares one knight move from `from` that are on the
// board and not yet visited, in Offsets order. from itself may lie off the
// board. An empty result is a dead end.
func Candidates(from Position, b *Board) []Position {
	moves := make([]Position, 0, len(Offsets))
	for _, d := range Offsets {
		next := from.add(d)
		if legal(b, next) {
			moves = append(moves, next)
		}
	}
	return moves
}

// Degree is len(Candidates(from, b)) without the allocation.
func Degree(from Position, b *Board) int {
	n := 0
	for _, d := range Offsets {
		if legal(b, from.add(d)) {
			n++
		}
	}
	return n
}

func IsKnightMove(from, to Position) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	for _, d := range Offsets {
		if d[0] == dr && d[1] == dc {
			return true
		}
	}
	return false
}
