package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SAN castling tokens.
const (
	SANKingsideCastle  = "O-O"
	SANQueensideCastle = "O-O-O"
)

// MoveToSAN formats a legal move of the side to move in Standard Algebraic
// Notation, including the check or mate suffix. A promotion still awaiting
// its piece is written without the "=X" part and checked as a queen.
func MoveToSAN(pos chess.Position, m chess.Move) string {
	var sb strings.Builder

	if m.Castle {
		if m.To.File() > m.From.File() {
			sb.WriteString(SANKingsideCastle)
		} else {
			sb.WriteString(SANQueensideCastle)
		}
	} else {
		writeMoveBody(&sb, pos, m)
	}

	played := m
	if played.NeedsPromotionChoice() {
		played = played.WithPromotion(chess.Queen)
	}
	switch CheckStatusAfter(applyMove(pos, played)) {
	case chess.Checkmate:
		sb.WriteByte('#')
	case chess.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}

// writeMoveBody writes everything but the castling token and check suffix.
func writeMoveBody(sb *strings.Builder, pos chess.Position, m chess.Move) {
	pieceType := chess.ExtractPiece(pos.Get(m.From))
	isCapture := m.EnPassant || !pos.IsEmpty(m.To)

	if pieceType == chess.Pawn {
		if isCapture {
			sb.WriteByte(byte('a' + m.From.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() && !m.NeedsPromotionChoice() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
		return
	}

	sb.WriteByte(pieceType.Letter())
	sb.WriteString(disambiguation(pos, m, pieceType))
	if isCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves by the same piece type to the same square.
// The file is preferred, then the rank, then both.
func disambiguation(pos chess.Position, m chess.Move, pieceType chess.Piece) string {
	var rivals []chess.Square
	for _, other := range LegalMoves(pos) {
		if other.To != m.To || other.From == m.From {
			continue
		}
		if chess.ExtractPiece(pos.Get(other.From)) == pieceType {
			rivals = append(rivals, other.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		if sq.File() == m.From.File() {
			sameFile = true
		}
		if sq.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	switch {
	case !sameFile:
		return string(rune('a' + m.From.File()))
	case !sameRank:
		return string(rune('1' + m.From.Rank()))
	default:
		return m.From.String()
	}
}
