package chess

// Move is a single move of one piece, with the flags needed to apply it
// without re-deriving its kind from the position.
type Move struct {
	From Square
	To   Square

	// The piece type promoted to: Empty for no promotion, Knight through
	// Queen once chosen, or PendingPromotion while the choice is open.
	Promotion Piece

	// Castle is set on the king move of a castling move.
	Castle bool

	// EnPassant is set on a pawn capture onto the en passant target square.
	EnPassant bool
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// NeedsPromotionChoice reports whether the promotion piece is still open.
func (m Move) NeedsPromotionChoice() bool {
	return m.Promotion == PendingPromotion
}

// WithPromotion returns a copy of the move promoting to piece.
func (m Move) WithPromotion(piece Piece) Move {
	m.Promotion = piece
	return m
}

// UCI returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
// A pending promotion has no suffix.
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() && !m.NeedsPromotionChoice() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// String returns the UCI form of the move.
func (m Move) String() string {
	return m.UCI()
}
