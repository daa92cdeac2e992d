package board

// IsOver returns true when at least one color has no legal moves.
func (b *Board) IsOver() bool {
	return !(b.HasMoves(White) && b.HasMoves(Black))
}

// Winner returns the winning color once the game is over. Black wins
// whenever white cannot move, including when neither side can; otherwise
// white wins.
func (b *Board) Winner() (Color, bool) {
	if !b.IsOver() {
		return White, false
	}
	if !b.HasMoves(White) {
		return Black, true
	}
	return White, true
}
