package chess

import (
	"fmt"
	"math/bits"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is a board index 0-63, computed as rank*8 + file.
// a1 is 0, h1 is 7, a8 is 56 and h8 is 63.
type Square int

// NoSquare marks an absent square, such as no en passant target.
const NoSquare Square = -1

// BoardSize is the number of files (and ranks) on the board.
const BoardSize = 8

// NewSquare returns the square at file and rank (both 0-7).
func NewSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// OnBoard reports whether file and rank both lie within 0-7.
func OnBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// File returns the file index (0 = a).
func (s Square) File() int { return int(s) % BoardSize }

// Rank returns the rank index (0 = rank 1).
func (s Square) Rank() int { return int(s) / BoardSize }

// Valid reports whether s is a square on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

// IsLight reports whether s is a light square.
func (s Square) IsLight() bool { return (s.File()+s.Rank())%2 == 1 }

// Offset returns the square df files and dr ranks away, or false if that
// lies off the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f, r := s.File()+df, s.Rank()+dr
	if !OnBoard(f, r) {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// String returns algebraic coordinates such as "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// SquareSet is a set of squares stored as a 64-bit mask.
type SquareSet uint64

// Add returns the set with sq included.
func (ss SquareSet) Add(sq Square) SquareSet { return ss | 1<<uint(sq) }

// Has reports whether sq is in the set.
func (ss SquareSet) Has(sq Square) bool {
	return sq.Valid() && ss&(1<<uint(sq)) != 0
}

// Len returns the number of squares in the set.
func (ss SquareSet) Len() int { return bits.OnesCount64(uint64(ss)) }

// Squares returns the members in ascending order.
func (ss SquareSet) Squares() []Square {
	out := make([]Square, 0, ss.Len())
	for m := uint64(ss); m != 0; m &= m - 1 {
		out = append(out, Square(bits.TrailingZeros64(m)))
	}
	return out
}
