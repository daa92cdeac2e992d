package board

// Perft counts the leaf nodes of the move tree at the given depth.
// Sides alternate every ply; a capture does not extend the turn here.
func Perft(b *Board, c Color, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := b.AvailableMoves(c)
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		child := b.Clone()
		child.Apply(m, c)
		nodes += Perft(child, c.Other(), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move.
func Divide(b *Board, c Color, depth int) map[Move]int64 {
	out := make(map[Move]int64)
	for _, m := range b.AvailableMoves(c) {
		child := b.Clone()
		child.Apply(m, c)
		out[m] = Perft(child, c.Other(), depth-1)
	}
	return out
}
