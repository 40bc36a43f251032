package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PseudoLegalMoves returns all moves for the side to move that obey piece
// movement rules, without checking whether the mover's king is left in
// check. Castling is the exception: its full precondition, including the
// attacked-square test, is applied here. Promotions are returned once per
// from/to pair carrying chess.PendingPromotion.
func PseudoLegalMoves(pos chess.Position) []chess.Move {
	colour := pos.ToMove
	moves := make([]chess.Move, 0, 48)

	for sq := chess.Square(0); sq < 64; sq++ {
		piece := pos.Board[sq]
		if piece == chess.Empty || chess.ExtractColour(piece) != colour {
			continue
		}
		switch pieceType := chess.ExtractPiece(piece); pieceType {
		case chess.Pawn:
			moves = appendPawnMoves(moves, pos, sq)
		case chess.King:
			moves = appendPieceMoves(moves, pos, sq, pieceType)
			moves = appendCastlingMoves(moves, pos, sq)
		default:
			moves = appendPieceMoves(moves, pos, sq, pieceType)
		}
	}
	return moves
}
