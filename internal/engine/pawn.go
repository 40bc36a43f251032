package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// appendPawnMoves adds single and double pushes, diagonal captures and en
// passant captures for the pawn on from.
func appendPawnMoves(moves []chess.Move, pos chess.Position, from chess.Square) []chess.Move {
	colour := pos.ToMove
	dir := chess.PawnDirection(colour)

	if one, ok := from.Offset(0, dir); ok && pos.IsEmpty(one) {
		moves = appendPawnMove(moves, from, one, colour)
		if from.Rank() == pawnStartRank(colour) {
			if two, ok := from.Offset(0, 2*dir); ok && pos.IsEmpty(two) {
				moves = append(moves, chess.Move{From: from, To: two})
			}
		}
	}

	for _, df := range pawnCaptureDirs {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		switch {
		case pos.HasColour(to, colour.Opposite()):
			moves = appendPawnMove(moves, from, to, colour)
		case to == pos.EnPassant && pos.IsEmpty(to) && isEnPassantVictim(pos, chess.NewSquare(to.File(), from.Rank())):
			moves = append(moves, chess.Move{From: from, To: to, EnPassant: true})
		}
	}
	return moves
}

// isEnPassantVictim reports whether sq holds an enemy pawn that could be
// taken en passant.
func isEnPassantVictim(pos chess.Position, sq chess.Square) bool {
	return pos.Get(sq) == chess.MakeColouredPiece(pos.ToMove.Opposite(), chess.Pawn)
}

// appendPawnMove adds a pawn move, flagging it as a pending promotion when
// it reaches the last rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	m := chess.Move{From: from, To: to}
	if to.Rank() == chess.HomeRank(colour.Opposite()) {
		m.Promotion = chess.PendingPromotion
	}
	return append(moves, m)
}

// pawnStartRank returns the rank index from which colour's pawns may
// advance two squares.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}
