package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// AttackedSquares returns every square attacked by the pieces of attacker.
// Pawns attack diagonally forward only; sliders include the first occupied
// square on each ray whatever its colour.
func AttackedSquares(pos chess.Position, attacker chess.Colour) chess.SquareSet {
	var set chess.SquareSet
	for sq := chess.Square(0); sq < 64; sq++ {
		piece := pos.Board[sq]
		if piece == chess.Empty || chess.ExtractColour(piece) != attacker {
			continue
		}
		pieceType := chess.ExtractPiece(piece)
		if pieceType == chess.Pawn {
			for _, df := range pawnCaptureDirs {
				if target, ok := sq.Offset(df, chess.PawnDirection(attacker)); ok {
					set = set.Add(target)
				}
			}
			continue
		}
		for _, target := range reach(pos, sq, pieceType) {
			set = set.Add(target)
		}
	}
	return set
}

// IsInCheck returns true if the given colour's king is attacked.
// It panics if colour has no king; positions are validated on load, so a
// missing king is an invariant violation.
func IsInCheck(pos chess.Position, colour chess.Colour) bool {
	kingSq, ok := pos.KingSquare(colour)
	if !ok {
		panic(fmt.Sprintf("engine: no %s king on the board", colour))
	}
	return IsSquareAttacked(pos, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// It looks outward from the target square, which is cheaper than building
// the full attacked set.
func IsSquareAttacked(pos chess.Position, target chess.Square, byColour chess.Colour) bool {
	// A pawn attacks target from one rank behind it, relative to its direction.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	for _, df := range pawnCaptureDirs {
		if sq, ok := target.Offset(df, -chess.PawnDirection(byColour)); ok && pos.Get(sq) == pawn {
			return true
		}
	}

	for _, pieceType := range []chess.Piece{chess.Knight, chess.King} {
		attacker := chess.MakeColouredPiece(byColour, pieceType)
		for _, sq := range reach(pos, target, pieceType) {
			if pos.Get(sq) == attacker {
				return true
			}
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	for _, pieceType := range []chess.Piece{chess.Bishop, chess.Rook} {
		slider := chess.MakeColouredPiece(byColour, pieceType)
		for _, sq := range reach(pos, target, pieceType) {
			if piece := pos.Get(sq); piece == slider || piece == queen {
				return true
			}
		}
	}

	return false
}
