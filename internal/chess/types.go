// Package chess provides the core chess value types: colours, pieces,
// squares, castling rights, moves and positions.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece built with
// MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square, or no promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PendingPromotion // Promotion awaiting the player's choice of piece
)

// String returns the string representation of a piece type.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "Pending"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K', '?'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionPieces lists the piece types a pawn may promote to, strongest first.
var PromotionPieces = []Piece{Queen, Rook, Bishop, Knight}

// PromotionPieceFromLetter maps q, r, b or n (either case) to a piece type.
func PromotionPieceFromLetter(c byte) (Piece, bool) {
	switch c {
	case 'q', 'Q':
		return Queen, true
	case 'r', 'R':
		return Rook, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	}
	return Empty, false
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// PieceFromFENLetter converts a FEN letter to a coloured piece.
// Uppercase letters are white, lowercase black.
func PieceFromFENLetter(c byte) (Piece, bool) {
	var piece Piece
	switch c {
	case 'P', 'p':
		piece = Pawn
	case 'N', 'n':
		piece = Knight
	case 'B', 'b':
		piece = Bishop
	case 'R', 'r':
		piece = Rook
	case 'Q', 'q':
		piece = Queen
	case 'K', 'k':
		piece = King
	default:
		return Empty, false
	}
	if c >= 'a' {
		return B(piece), true
	}
	return W(piece), true
}

// FENLetter returns the FEN letter for a coloured piece.
func FENLetter(colouredPiece Piece) byte {
	letter := ExtractPiece(colouredPiece).Letter()
	if ExtractColour(colouredPiece) == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PawnDirection returns +1 for White, -1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index (0-7) of a colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return 7
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)
