// Package game implements the game session: the current position, its
// move history with undo, repetition counts, the selection and promotion
// input states and end-of-game detection.
package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/obslog"
)

const noSelection = chess.NoSquare

// HistoryEntry records one played move for undo and notation.
type HistoryEntry struct {
	Before chess.Position // position the move was played from
	Move   chess.Move
	SAN    string
	Hash   uint64 // Zobrist key of Before
}

// Game is a single chess session. It is not safe for concurrent use.
//
// Every exported method computes the next session state in full before
// assigning it, so a failed operation leaves the session unchanged.
type Game struct {
	id     string
	logger *zap.Logger
	newID  func() string

	start    chess.Position
	pos      chess.Position
	history  []HistoryEntry
	reps     *hashing.RepetitionTable
	selected chess.Square
	pending  *chess.Move
	claim    string // message of an accepted draw claim
}

// New creates a session at the standard starting position.
func New(opts ...Option) *Game {
	return newGame(engine.NewInitialPosition(), opts)
}

// NewFromFEN creates a session starting from fen.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(pos, opts), nil
}

func newGame(pos chess.Position, opts []Option) *Game {
	g := &Game{
		logger: obslog.L(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.begin(pos)
	g.logger.Debug("game_new", zap.String("game_id", g.id))
	return g
}

// begin replaces the whole session with one starting at pos.
func (g *Game) begin(pos chess.Position) {
	reps := hashing.NewRepetitionTable()
	reps.Increment(pos)

	g.id = g.newID()
	g.start = pos
	g.pos = pos
	g.history = nil
	g.reps = reps
	g.selected = noSelection
	g.pending = nil
	g.claim = ""
}

// Reset starts a new session at the standard starting position.
func (g *Game) Reset() {
	g.begin(engine.NewInitialPosition())
	g.logger.Info("game_new", zap.String("game_id", g.id))
}

// LoadFEN starts a new session from fen. On error the session is unchanged.
func (g *Game) LoadFEN(fen string) error {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		g.logger.Warn("game_fen_rejected",
			zap.String("game_id", g.id),
			zap.String("fen", fen),
			zap.Error(err),
		)
		return err
	}
	g.begin(pos)
	g.logger.Info("game_fen_loaded", zap.String("game_id", g.id), zap.String("fen", fen))
	return nil
}

// ID returns the session identifier.
func (g *Game) ID() string { return g.id }

// Position returns the current position.
func (g *Game) Position() chess.Position { return g.pos }

// StartPosition returns the position the session started from.
func (g *Game) StartPosition() chess.Position { return g.start }

// ToFEN returns the FEN of the current position.
func (g *Game) ToFEN() string { return engine.PositionToFEN(g.pos) }

// History returns a copy of the played moves, oldest first.
func (g *Game) History() []HistoryEntry {
	out := make([]HistoryEntry, len(g.history))
	copy(out, g.history)
	return out
}

// Ply returns the number of moves played in the session.
func (g *Game) Ply() int { return len(g.history) }

// RepetitionCount returns how often the current position has occurred.
func (g *Game) RepetitionCount() int { return g.reps.Count(g.pos) }

// Repetitions returns every position reached more than once in the session,
// keyed by its Zobrist hash.
func (g *Game) Repetitions() []hashing.Repetition { return g.reps.Repeated(2) }

// LegalMoves returns the legal moves of the side to move. Promotions appear
// once per from/to pair, awaiting a piece choice.
func (g *Game) LegalMoves() []chess.Move { return engine.LegalMoves(g.pos) }

// LegalMovesFrom returns the legal moves of the piece on sq.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Move {
	return engine.LegalMovesFrom(g.pos, sq)
}

// CanSelect reports whether sq holds a piece of the side to move.
func (g *Game) CanSelect(sq chess.Square) bool {
	return g.pos.HasColour(sq, g.pos.ToMove)
}

// Select marks sq as the origin of the next move. It fails while a
// promotion is pending, after the game has ended, or when CanSelect is false.
func (g *Game) Select(sq chess.Square) bool {
	if g.pending != nil || g.EndState().Over() || !g.CanSelect(sq) {
		return false
	}
	g.selected = sq
	return true
}

// Deselect clears the selected square.
func (g *Game) Deselect() { g.selected = noSelection }

// Selected returns the selected square, if any.
func (g *Game) Selected() (chess.Square, bool) {
	return g.selected, g.selected != noSelection
}

// PendingMove returns the promotion move awaiting a piece choice, if any.
func (g *Game) PendingMove() (chess.Move, bool) {
	if g.pending == nil {
		return chess.Move{}, false
	}
	return *g.pending, true
}

// State returns the current phase of the session.
func (g *Game) State() State {
	switch {
	case g.pending != nil:
		return PendingPromotion
	case g.EndState().Over():
		return GameOver
	case g.selected != noSelection:
		return Selected
	}
	return Idle
}

// TryMove plays the legal move from one square to another. A pawn reaching
// the last rank returns MovePromotionNeeded and waits for Promote.
// Any selection is cleared once the move has been looked up.
func (g *Game) TryMove(from, to chess.Square) MoveStatus {
	if g.pending != nil {
		return MovePromotionPending
	}
	if g.EndState().Over() {
		return MoveGameOver
	}

	g.selected = noSelection
	m, ok := engine.FindLegalMove(g.pos, from, to)
	if !ok {
		g.logger.Debug("game_move_illegal",
			zap.String("game_id", g.id),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
		return MoveIllegal
	}

	if m.NeedsPromotionChoice() {
		g.pending = &m
		g.logger.Debug("game_promotion_needed", zap.String("game_id", g.id), zap.String("move", m.UCI()))
		return MovePromotionNeeded
	}

	if err := g.play(m); err != nil {
		g.logger.Error("game_move_failed", zap.String("game_id", g.id), zap.String("move", m.UCI()), zap.Error(err))
		return MoveIllegal
	}
	return MoveOK
}

// Promote completes the pending promotion with the piece named by letter
// (q, r, b or n, any case). An unknown letter leaves the promotion pending.
func (g *Game) Promote(letter string) bool {
	if g.pending == nil {
		return false
	}
	letter = strings.TrimSpace(letter)
	if len(letter) != 1 {
		return false
	}
	piece, ok := chess.PromotionPieceFromLetter(letter[0])
	if !ok {
		return false
	}

	m := g.pending.WithPromotion(piece)
	if err := g.play(m); err != nil {
		g.logger.Error("game_move_failed", zap.String("game_id", g.id), zap.String("move", m.UCI()), zap.Error(err))
		return false
	}
	g.pending = nil
	return true
}

// play applies a legal, fully specified move and records it.
func (g *Game) play(m chess.Move) error {
	next, err := engine.ApplyMove(g.pos, m)
	if err != nil {
		return err
	}
	entry := HistoryEntry{
		Before: g.pos,
		Move:   m,
		SAN:    engine.MoveToSAN(g.pos, m),
		Hash:   hashing.Hash(g.pos),
	}

	g.history = append(g.history, entry)
	g.pos = next
	g.reps.Increment(next)
	g.selected = noSelection

	g.logger.Info("game_move",
		zap.String("game_id", g.id),
		zap.Int("ply", len(g.history)),
		zap.String("san", entry.SAN),
		zap.String("uci", m.UCI()),
	)
	if end := g.EndState(); end.Over() {
		g.logger.Info("game_over",
			zap.String("game_id", g.id),
			zap.String("kind", end.Kind.String()),
			zap.String("result", g.Result()),
		)
	}
	return nil
}

// Undo takes back the last move, restoring the position before it and
// removing the position being left from the repetition table. It also
// clears any pending promotion, selection and draw claim. It returns false
// when there is no move to take back.
func (g *Game) Undo() bool {
	g.pending = nil
	g.selected = noSelection
	if len(g.history) == 0 {
		return false
	}

	last := g.history[len(g.history)-1]
	g.reps.Decrement(g.pos)
	g.history = g.history[:len(g.history)-1]
	g.pos = last.Before
	g.claim = ""

	g.logger.Info("game_undo",
		zap.String("game_id", g.id),
		zap.Int("ply", len(g.history)),
		zap.String("san", last.SAN),
	)
	return true
}

// ParseMove reads move text (UCI such as "e7e8q", or SAN such as "Nf3")
// against the current position.
func (g *Game) ParseMove(text string) (chess.Move, error) {
	m, err := engine.ParseMove(g.pos, text)
	if err != nil {
		return chess.Move{}, &errors.GameError{
			Err:      err,
			GameID:   g.id,
			PlyNum:   len(g.history) + 1,
			MoveText: text,
		}
	}
	return m, nil
}

// PlayMove parses text and tries the move. A promotion written with its
// piece is completed at once; one written without it is left pending.
func (g *Game) PlayMove(text string) (MoveStatus, error) {
	m, err := g.ParseMove(text)
	if err != nil {
		return MoveIllegal, err
	}

	status := g.TryMove(m.From, m.To)
	if status != MovePromotionNeeded || m.NeedsPromotionChoice() {
		return status, nil
	}
	if !g.Promote(string(m.Promotion.Letter())) {
		return MovePromotionNeeded, fmt.Errorf("promote to %v: %w", m.Promotion, errors.ErrIllegalMove)
	}
	return MoveOK, nil
}
