package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleSide describes one castling option by file indices on the home rank.
type castleSide struct {
	kingside bool
	rookFrom int
	rookTo   int
	kingTo   int
	// Files that must be empty between king and rook.
	between []int
	// Files the king stands on, passes over and lands on.
	kingPath []int
}

const kingStartFile = 4

var castleSides = []castleSide{
	{kingside: true, rookFrom: 7, rookTo: 5, kingTo: 6, between: []int{5, 6}, kingPath: []int{4, 5, 6}},
	{kingside: false, rookFrom: 0, rookTo: 3, kingTo: 2, between: []int{1, 2, 3}, kingPath: []int{4, 3, 2}},
}

// appendCastlingMoves adds each castling move whose full precondition holds:
// the right is still held, king and rook are on their original squares, the
// squares between them are empty, and the king does not start on, pass over
// or land on an attacked square.
func appendCastlingMoves(moves []chess.Move, pos chess.Position, kingSq chess.Square) []chess.Move {
	colour := pos.ToMove
	rank := chess.HomeRank(colour)
	if kingSq != chess.NewSquare(kingStartFile, rank) {
		return moves
	}

	for _, side := range castleSides {
		if side.kingside && !pos.Castling.Kingside(colour) {
			continue
		}
		if !side.kingside && !pos.Castling.Queenside(colour) {
			continue
		}
		if canCastle(pos, colour, rank, side) {
			moves = append(moves, chess.Move{
				From:   kingSq,
				To:     chess.NewSquare(side.kingTo, rank),
				Castle: true,
			})
		}
	}
	return moves
}

// canCastle checks the board-dependent part of the castling precondition.
func canCastle(pos chess.Position, colour chess.Colour, rank int, side castleSide) bool {
	if pos.Get(chess.NewSquare(side.rookFrom, rank)) != chess.MakeColouredPiece(colour, chess.Rook) {
		return false
	}
	for _, file := range side.between {
		if !pos.IsEmpty(chess.NewSquare(file, rank)) {
			return false
		}
	}
	enemy := colour.Opposite()
	for _, file := range side.kingPath {
		if IsSquareAttacked(pos, chess.NewSquare(file, rank), enemy) {
			return false
		}
	}
	return true
}

// castleRookSquares returns the rook's origin and destination for a
// castling king move.
func castleRookSquares(m chess.Move) (from, to chess.Square) {
	rank := m.From.Rank()
	for _, side := range castleSides {
		if m.To.File() == side.kingTo {
			return chess.NewSquare(side.rookFrom, rank), chess.NewSquare(side.rookTo, rank)
		}
	}
	return chess.NoSquare, chess.NoSquare
}
