package chess

// CastlingRights records which castling options remain available.
// Rights only ever shrink over the course of a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the standard starting set of rights.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Mask packs the rights into 4 bits: K=1, Q=2, k=4, q=8.
func (cr CastlingRights) Mask() int {
	mask := 0
	if cr.WhiteKingside {
		mask |= 1
	}
	if cr.WhiteQueenside {
		mask |= 2
	}
	if cr.BlackKingside {
		mask |= 4
	}
	if cr.BlackQueenside {
		mask |= 8
	}
	return mask
}

// Kingside reports whether colour may still castle kingside.
func (cr CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return cr.WhiteKingside
	}
	return cr.BlackKingside
}

// Queenside reports whether colour may still castle queenside.
func (cr CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return cr.WhiteQueenside
	}
	return cr.BlackQueenside
}

// WithoutColour returns the rights with both options of colour removed.
func (cr CastlingRights) WithoutColour(colour Colour) CastlingRights {
	if colour == White {
		cr.WhiteKingside, cr.WhiteQueenside = false, false
	} else {
		cr.BlackKingside, cr.BlackQueenside = false, false
	}
	return cr
}

// WithoutCorner returns the rights with the option tied to the rook corner
// sq removed. Other squares leave the rights unchanged.
func (cr CastlingRights) WithoutCorner(sq Square) CastlingRights {
	switch sq {
	case NewSquare(7, 0):
		cr.WhiteKingside = false
	case NewSquare(0, 0):
		cr.WhiteQueenside = false
	case NewSquare(7, 7):
		cr.BlackKingside = false
	case NewSquare(0, 7):
		cr.BlackQueenside = false
	}
	return cr
}

// String returns the FEN castling field, "-" when no rights remain.
func (cr CastlingRights) String() string {
	var b []byte
	if cr.WhiteKingside {
		b = append(b, 'K')
	}
	if cr.WhiteQueenside {
		b = append(b, 'Q')
	}
	if cr.BlackKingside {
		b = append(b, 'k')
	}
	if cr.BlackQueenside {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// Position is a complete, immutable game position. It is passed and
// returned by value; operations on a position produce a new one.
type Position struct {
	// Board holds a coloured piece or Empty for each square index.
	Board [64]Piece

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// The square a pawn passed over on the previous double push, or NoSquare.
	EnPassant Square

	// Half-moves since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, starting at 1 and incremented after Black moves.
	MoveNumber int
}

// Get returns the coloured piece on sq, or Empty.
func (p Position) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return p.Board[sq]
}

// IsEmpty reports whether sq holds no piece.
func (p Position) IsEmpty(sq Square) bool {
	return p.Get(sq) == Empty
}

// HasColour reports whether sq holds a piece of colour.
func (p Position) HasColour(sq Square, colour Colour) bool {
	piece := p.Get(sq)
	return piece != Empty && ExtractColour(piece) == colour
}

// KingSquare returns the square of colour's king.
func (p Position) KingSquare(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for sq := Square(0); sq < 64; sq++ {
		if p.Board[sq] == king {
			return sq, true
		}
	}
	return NoSquare, false
}

// Count returns how many squares hold the coloured piece.
func (p Position) Count(colouredPiece Piece) int {
	n := 0
	for _, piece := range p.Board {
		if piece == colouredPiece {
			n++
		}
	}
	return n
}
