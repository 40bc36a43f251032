package parser

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Replay starts a game from the record's FEN tag (or the standard
// position) and plays its moves in order. On an illegal or unreadable
// move it returns the game as far as it got, with the error.
func Replay(rec *Record, opts ...game.Option) (*game.Game, error) {
	fen := engine.InitialFEN
	if f := rec.Tag("FEN"); f != "" {
		fen = f
	}
	g, err := game.NewFromFEN(fen, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "game at line %d", rec.Line)
	}

	for _, text := range rec.Moves {
		status, err := g.PlayMove(text)
		if err != nil {
			return g, err
		}
		if status != game.MoveOK {
			return g, &errors.GameError{
				Err:      errors.ErrIllegalMove,
				GameID:   g.ID(),
				PlyNum:   g.Ply() + 1,
				MoveText: text,
			}
		}
	}
	return g, nil
}
