package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// appendPieceMoves adds the moves of a knight, bishop, rook, queen or king
// standing on from: every reached square that is empty or holds an enemy.
func appendPieceMoves(moves []chess.Move, pos chess.Position, from chess.Square, pieceType chess.Piece) []chess.Move {
	colour := pos.ToMove
	for _, to := range reach(pos, from, pieceType) {
		if pos.HasColour(to, colour) {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to})
	}
	return moves
}
