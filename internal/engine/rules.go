package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

const (
	// FiftyMoveHalfmoves is the halfmove clock at which a draw may be claimed.
	FiftyMoveHalfmoves = 100

	// ThreefoldRepetitions is the occurrence count at which a draw may be claimed.
	ThreefoldRepetitions = 3
)

// HasInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material is recognised only for:
// - K vs K
// - K+B vs K and K+N vs K
// - K+N+N vs K
// - K+B vs K+B with both bishops on the same square colour
// Every other material balance counts as sufficient.
func HasInsufficientMaterial(pos chess.Position) bool {
	var minors [2][]chess.Piece
	var bishopOnLight [2]bool

	for sq := chess.Square(0); sq < 64; sq++ {
		piece := pos.Board[sq]
		if piece == chess.Empty {
			continue
		}

		colour := chess.ExtractColour(piece)
		switch pieceType := chess.ExtractPiece(piece); pieceType {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		default:
			minors[colour] = append(minors[colour], pieceType)
			if pieceType == chess.Bishop {
				bishopOnLight[colour] = sq.IsLight()
			}
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white)+len(black) == 1:
		return true
	case len(black) == 0:
		return isTwoKnights(white)
	case len(white) == 0:
		return isTwoKnights(black)
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

func isTwoKnights(pieces []chess.Piece) bool {
	return len(pieces) == 2 && pieces[0] == chess.Knight && pieces[1] == chess.Knight
}

// FiftyMoveClaimable reports whether the fifty-move rule may be claimed.
func FiftyMoveClaimable(pos chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveHalfmoves
}

// ThreefoldClaimable reports whether a position seen count times may be
// claimed as a repetition draw.
func ThreefoldClaimable(count int) bool {
	return count >= ThreefoldRepetitions
}
