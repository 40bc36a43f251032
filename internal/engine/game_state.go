package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if the side to move is in check and has no legal move.
func IsCheckmate(pos chess.Position) bool {
	return IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the side to move is not in check but has no legal move.
func IsStalemate(pos chess.Position) bool {
	return !IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// CheckStatusAfter classifies the position for the side to move as
// unchecked, checked or checkmated.
func CheckStatusAfter(pos chess.Position) chess.CheckStatus {
	if !IsInCheck(pos, pos.ToMove) {
		return chess.NoCheck
	}
	if HasLegalMoves(pos) {
		return chess.Check
	}
	return chess.Checkmate
}
