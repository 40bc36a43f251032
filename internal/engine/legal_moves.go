package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the moves of the side to move that do not leave its own
// king in check. Promotions appear once per from/to pair with
// chess.PendingPromotion; use ExpandPromotions for one move per piece.
func LegalMoves(pos chess.Position) []chess.Move {
	pseudo := PseudoLegalMoves(pos)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if leavesKingSafe(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(pos chess.Position, from chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range LegalMoves(pos) {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

// FindLegalMove returns the first legal move from one square to another.
func FindLegalMove(pos chess.Position, from, to chess.Square) (chess.Move, bool) {
	for _, m := range LegalMovesFrom(pos, from) {
		if m.To == to {
			return m, true
		}
	}
	return chess.Move{}, false
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos chess.Position) bool {
	for _, m := range PseudoLegalMoves(pos) {
		if leavesKingSafe(pos, m) {
			return true
		}
	}
	return false
}

// ExpandPromotions replaces each pending promotion with one move per
// promotion piece. Other moves are copied unchanged.
func ExpandPromotions(moves []chess.Move) []chess.Move {
	out := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if !m.NeedsPromotionChoice() {
			out = append(out, m)
			continue
		}
		for _, piece := range chess.PromotionPieces {
			out = append(out, m.WithPromotion(piece))
		}
	}
	return out
}

// leavesKingSafe plays m and reports whether the mover's king is then out of
// check. The promoted piece type cannot affect the mover's own king, so a
// pending promotion is simulated as a queen.
func leavesKingSafe(pos chess.Position, m chess.Move) bool {
	if m.NeedsPromotionChoice() {
		m = m.WithPromotion(chess.Queen)
	}
	return !IsInCheck(applyMove(pos, m), pos.ToMove)
}
