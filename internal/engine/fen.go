// Package engine implements the chess rules: FEN parsing and formatting,
// attack detection, move generation, move application, draw rules and
// SAN notation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFieldCount is the number of space-separated FEN fields.
const fenFieldCount = 6

// NewPositionFromFEN parses a six-field FEN string.
// Errors wrap errors.ErrInvalidFEN; a position without exactly one king
// per side also wraps errors.ErrMissingKing.
func NewPositionFromFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFieldCount {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "fields",
			Expected: strconv.Itoa(fenFieldCount),
			Got:      strconv.Itoa(len(parts)),
		}
	}

	var pos chess.Position
	if err := parsePiecePositions(&pos, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts[1]); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts[2]); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts[3]); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, parts[4], parts[5]); err != nil {
		return chess.Position{}, err
	}
	if err := validateKings(pos); err != nil {
		return chess.Position{}, err
	}
	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "piece placement",
			Expected: "8 ranks",
			Got:      strconv.Itoa(len(ranks)),
		}
	}

	for i, rankText := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromFENLetter(c)
			if !ok {
				return &errors.ParseError{
					Err:   errors.ErrInvalidFEN,
					Field: "piece placement",
					Index: i + 1,
					Got:   fmt.Sprintf("character %q", c),
				}
			}
			if file >= chess.BoardSize {
				return &errors.ParseError{
					Err:      errors.ErrInvalidFEN,
					Field:    "piece placement",
					Index:    i + 1,
					Expected: "8 files",
					Got:      rankText,
				}
			}
			pos.Board[chess.NewSquare(file, rank)] = piece
			file++
		}
		if file != chess.BoardSize {
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Field:    "piece placement",
				Index:    i + 1,
				Expected: "8 files",
				Got:      rankText,
			}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, side string) error {
	switch side {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "side to move", Expected: "w or b", Got: side}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, field string) error {
	pos.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}

	for i := 0; i < len(field); i++ {
		var seen *bool
		switch field[i] {
		case 'K':
			seen = &pos.Castling.WhiteKingside
		case 'Q':
			seen = &pos.Castling.WhiteQueenside
		case 'k':
			seen = &pos.Castling.BlackKingside
		case 'q':
			seen = &pos.Castling.BlackQueenside
		}
		if seen == nil || *seen {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Index: i + 1, Expected: "- or a subset of KQkq", Got: field}
		}
		*seen = true
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	// The target lies behind a pawn the opponent just pushed two squares.
	wantRank, rankName := 5, "6"
	if pos.ToMove == chess.Black {
		wantRank, rankName = 2, "3"
	}
	sq, err := chess.ParseSquare(field)
	if err != nil || sq.Rank() != wantRank {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en passant", Expected: "- or a square on rank " + rankName, Got: field}
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, halfmove, fullmove string) error {
	hm, err := strconv.Atoi(halfmove)
	if err != nil || hm < 0 {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Expected: "non-negative integer", Got: halfmove}
	}
	fm, err := strconv.Atoi(fullmove)
	if err != nil || fm < 1 {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Expected: "positive integer", Got: fullmove}
	}
	pos.HalfmoveClock = hm
	pos.MoveNumber = fm
	return nil
}

// validateKings requires exactly one king of each colour.
func validateKings(pos chess.Position) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := pos.Count(chess.MakeColouredPiece(colour, chess.King)); n != 1 {
			return &errors.ParseError{
				Err:      fmt.Errorf("%w: %w", errors.ErrMissingKing, errors.ErrInvalidFEN),
				Field:    "piece placement",
				Expected: fmt.Sprintf("one %s king", strings.ToLower(colour.String())),
				Got:      strconv.Itoa(n),
			}
		}
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Get(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(chess.FENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() chess.Position {
	pos, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		panic(fmt.Sprintf("engine: initial FEN rejected: %v", err))
	}
	return pos
}
