package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove returns the position reached by playing m in pos. The move is
// assumed to be pseudo-legal; pos itself is never modified. A promotion
// still awaiting its piece fails with errors.ErrPromotionUnresolved.
func ApplyMove(pos chess.Position, m chess.Move) (chess.Position, error) {
	if m.NeedsPromotionChoice() {
		return pos, fmt.Errorf("%s: %w", m.UCI(), errors.ErrPromotionUnresolved)
	}
	if pos.IsEmpty(m.From) {
		return pos, fmt.Errorf("%s: no piece on %s: %w", m.UCI(), m.From, errors.ErrIllegalMove)
	}
	return applyMove(pos, m), nil
}

// applyMove performs the board update for a move whose promotion piece,
// if any, is already known.
func applyMove(pos chess.Position, m chess.Move) chess.Position {
	next := pos
	colour := pos.ToMove
	piece := pos.Get(m.From)
	pieceType := chess.ExtractPiece(piece)
	captured := pos.Get(m.To)

	next.Board[m.From] = chess.Empty
	if m.IsPromotion() {
		next.Board[m.To] = chess.MakeColouredPiece(colour, m.Promotion)
	} else {
		next.Board[m.To] = piece
	}

	if m.EnPassant {
		// The captured pawn sits beside the origin, on the destination file.
		victim := chess.NewSquare(m.To.File(), m.From.Rank())
		captured = next.Board[victim]
		next.Board[victim] = chess.Empty
	}

	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m)
		next.Board[rookTo] = next.Board[rookFrom]
		next.Board[rookFrom] = chess.Empty
	}

	next.Castling = updateCastlingRights(pos.Castling, colour, pieceType, m)

	next.EnPassant = chess.NoSquare
	if pieceType == chess.Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		next.EnPassant = chess.NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	}

	if pieceType == chess.Pawn || captured != chess.Empty {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = pos.HalfmoveClock + 1
	}
	if colour == chess.Black {
		next.MoveNumber = pos.MoveNumber + 1
	}
	next.ToMove = colour.Opposite()

	return next
}

// updateCastlingRights removes rights lost by a king move, a rook leaving
// its corner, or a capture landing on a rook corner.
func updateCastlingRights(cr chess.CastlingRights, colour chess.Colour, pieceType chess.Piece, m chess.Move) chess.CastlingRights {
	if pieceType == chess.King {
		cr = cr.WithoutColour(colour)
	}
	return cr.WithoutCorner(m.From).WithoutCorner(m.To)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
