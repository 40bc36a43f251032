package engine

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// sanPattern matches the shape of a SAN move once check suffixes are removed.
var sanPattern = regexp.MustCompile(`^(O-O(-O)?|[NBRQK][a-h]?[1-8]?x?[a-h][1-8]|([a-h]x)?[a-h][1-8](=[NBRQ])?)$`)

// uciPattern matches long algebraic move text.
var uciPattern = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][qrbn]?$`)

// ParseSAN finds the legal move of the side to move written as text in
// Standard Algebraic Notation. Check suffixes and annotation marks are
// ignored; "0-0" is accepted for castling.
func ParseSAN(pos chess.Position, text string) (chess.Move, error) {
	san := normaliseSAN(text)
	if !sanPattern.MatchString(san) {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidNotation, Field: "SAN", Got: text}
	}

	for _, m := range ExpandPromotions(LegalMoves(pos)) {
		if strings.TrimRight(MoveToSAN(pos, m), "+#") == san {
			return m, nil
		}
	}
	return chess.Move{}, &errors.ParseError{Err: errors.ErrIllegalMove, Field: "SAN", Got: text}
}

// normaliseSAN strips whitespace, check and annotation suffixes.
func normaliseSAN(text string) string {
	san := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	return strings.ReplaceAll(san, "0", "O")
}

// ParseUCI finds the legal move written in long algebraic form, e.g. "e2e4"
// or "e7e8q". A promotion written without its piece letter is returned with
// chess.PendingPromotion.
func ParseUCI(pos chess.Position, text string) (chess.Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidNotation, Field: "UCI", Expected: "4 or 5 characters", Got: text}
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidNotation, Field: "UCI", Got: text}
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidNotation, Field: "UCI", Got: text}
	}

	m, ok := FindLegalMove(pos, from, to)
	if !ok {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrIllegalMove, Field: "UCI", Got: text}
	}
	if len(text) == 5 {
		piece, valid := chess.PromotionPieceFromLetter(text[4])
		if !valid || !m.IsPromotion() {
			return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidNotation, Field: "UCI", Index: 5, Expected: "promotion piece q, r, b or n", Got: text}
		}
		m = m.WithPromotion(piece)
	}
	return m, nil
}

// ParseMove accepts either UCI or SAN text.
func ParseMove(pos chess.Position, text string) (chess.Move, error) {
	if uciPattern.MatchString(strings.ToLower(strings.TrimSpace(text))) {
		return ParseUCI(pos, text)
	}
	return ParseSAN(pos, text)
}
