package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string     `json:"id"`
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Moves      []JSONMove `json:"moves"`
	PlyCount   int        `json:"plyCount"`
	Result     string     `json:"result"`
	Status     string     `json:"status"`

	Repetitions []JSONRepetition `json:"repetitions,omitempty"`
}

// JSONRepetition reports a position reached more than once.
type JSONRepetition struct {
	Key   string `json:"key"` // Zobrist hash, 16 hex digits
	Count int    `json:"count"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen"`
}

// GameToJSON converts a game session to its JSON record.
func GameToJSON(g *game.Game) *JSONGame {
	history := g.History()
	jg := &JSONGame{
		ID:         g.ID(),
		InitialFEN: engine.PositionToFEN(g.StartPosition()),
		FinalFEN:   g.ToFEN(),
		Moves:      make([]JSONMove, 0, len(history)),
		PlyCount:   len(history),
		Result:     g.Result(),
		Status:     g.StatusString(),
	}

	for i, entry := range history {
		after := g.Position()
		if i+1 < len(history) {
			after = history[i+1].Before
		}
		jg.Moves = append(jg.Moves, convertMove(entry, after))
	}
	for _, rep := range g.Repetitions() {
		jg.Repetitions = append(jg.Repetitions, JSONRepetition{
			Key:   fmt.Sprintf("%016x", rep.Hash),
			Count: rep.Count,
		})
	}
	return jg
}

// convertMove describes one history entry; after is the position it produced.
func convertMove(entry game.HistoryEntry, after chess.Position) JSONMove {
	before, m := entry.Before, entry.Move
	jm := JSONMove{
		MoveNumber: before.MoveNumber,
		Color:      colorName(before.ToMove),
		SAN:        entry.SAN,
		UCI:        m.UCI(),
		From:       m.From.String(),
		To:         m.To.String(),
		Piece:      pieceTypeName(chess.ExtractPiece(before.Get(m.From))),
		FEN:        engine.PositionToFEN(after),
	}

	switch {
	case m.EnPassant:
		jm.Captured = pieceTypeName(chess.Pawn)
	case !before.IsEmpty(m.To) && !m.Castle:
		jm.Captured = pieceTypeName(chess.ExtractPiece(before.Get(m.To)))
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	return jm
}

// WriteJSON writes g as an indented JSON record.
func WriteJSON(w io.Writer, g *game.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g))
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
