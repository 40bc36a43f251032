package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// offset is a (file, rank) step on the board.
type offset [2]int

var (
	knightOffsets   = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs  = append(append([]offset{}, diagonalDirs...), straightDirs...)
	pawnCaptureDirs = []int{-1, 1}
)

// movement describes how a piece type moves: a set of steps, and whether
// each step repeats until blocked.
type movement struct {
	steps   []offset
	sliding bool
}

// pieceMovement maps every non-pawn piece type to its movement.
var pieceMovement = map[chess.Piece]movement{
	chess.Knight: {steps: knightOffsets},
	chess.Bishop: {steps: diagonalDirs, sliding: true},
	chess.Rook:   {steps: straightDirs, sliding: true},
	chess.Queen:  {steps: allSlidingDirs, sliding: true},
	chess.King:   {steps: kingOffsets},
}

// reach returns the squares a non-pawn piece on from attacks, including the
// first occupied square along each sliding ray.
func reach(pos chess.Position, from chess.Square, pieceType chess.Piece) []chess.Square {
	mv, ok := pieceMovement[pieceType]
	if !ok {
		return nil
	}
	var out []chess.Square
	for _, step := range mv.steps {
		sq := from
		for {
			next, onBoard := sq.Offset(step[0], step[1])
			if !onBoard {
				break
			}
			out = append(out, next)
			if !mv.sliding || !pos.IsEmpty(next) {
				break
			}
			sq = next
		}
	}
	return out
}
