package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// State is the phase of the session's input state machine.
type State int

const (
	// Idle waits for a piece to be selected or a move to be tried.
	Idle State = iota
	// Selected holds a selected square of the side to move.
	Selected
	// PendingPromotion waits for the promotion piece of a pawn move.
	PendingPromotion
	// GameOver rejects further moves until undo, reset or a new position.
	GameOver
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case PendingPromotion:
		return "pending_promotion"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// MoveStatus is the outcome of TryMove.
type MoveStatus int

const (
	MoveOK MoveStatus = iota
	MoveIllegal
	MovePromotionNeeded
	MovePromotionPending
	MoveGameOver
)

// String returns the string representation of a move status.
func (s MoveStatus) String() string {
	switch s {
	case MoveOK:
		return "ok"
	case MoveIllegal:
		return "illegal"
	case MovePromotionNeeded:
		return "promotion_needed"
	case MovePromotionPending:
		return "promotion_pending"
	case MoveGameOver:
		return "game_over"
	}
	return "unknown"
}

// EndKind classifies the current position.
type EndKind int

const (
	Ongoing EndKind = iota
	InCheck
	Checkmate
	Stalemate
	Draw // insufficient material or a claimed draw
)

// String returns the string representation of an end kind.
func (k EndKind) String() string {
	switch k {
	case Ongoing:
		return "ongoing"
	case InCheck:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// EndState is an end kind with its human-readable message.
type EndState struct {
	Kind    EndKind
	Message string
}

// Over reports whether the game has ended.
func (e EndState) Over() bool {
	return e.Kind == Checkmate || e.Kind == Stalemate || e.Kind == Draw
}

// Result tokens as written in PGN.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultOngoing   = "*"
)

// End-state messages.
const (
	msgInsufficient = "Draw: insufficient material."
	msgStalemate    = "Draw: stalemate."
	msgCheck        = "Check!"
	msgOK           = "OK"
)

// EndState classifies the current position. An accepted draw claim ends
// the game as a draw.
func (g *Game) EndState() EndState {
	if g.claim != "" {
		return EndState{Kind: Draw, Message: g.claim}
	}
	return g.positionEnd()
}

// positionEnd classifies the position alone, ignoring draw claims.
func (g *Game) positionEnd() EndState {
	if engine.HasInsufficientMaterial(g.pos) {
		return EndState{Kind: Draw, Message: msgInsufficient}
	}

	inCheck := engine.IsInCheck(g.pos, g.pos.ToMove)
	if !engine.HasLegalMoves(g.pos) {
		if inCheck {
			winner := g.pos.ToMove.Opposite()
			return EndState{Kind: Checkmate, Message: fmt.Sprintf("Checkmate! %s wins.", winner)}
		}
		return EndState{Kind: Stalemate, Message: msgStalemate}
	}
	if inCheck {
		return EndState{Kind: InCheck, Message: msgCheck}
	}
	return EndState{Kind: Ongoing, Message: msgOK}
}

// StatusString returns the end-state message, followed by any claimable
// draws while the game is still going, e.g. "Check! (50-move claimable)".
func (g *Game) StatusString() string {
	end := g.EndState()
	if end.Over() {
		return end.Message
	}

	claimable := g.DrawStatus().Claimable()
	if len(claimable) == 0 {
		return end.Message
	}
	hints := make([]string, len(claimable))
	for i, d := range claimable {
		hints[i] = d.hint()
	}
	return end.Message + " (" + strings.Join(hints, ", ") + ")"
}

// Result returns the PGN result token for the current state.
func (g *Game) Result() string {
	switch end := g.EndState(); end.Kind {
	case Checkmate:
		if g.pos.ToMove == chess.White {
			return ResultBlackWins
		}
		return ResultWhiteWins
	case Stalemate, Draw:
		return ResultDraw
	}
	return ResultOngoing
}

// SANMoves returns the SAN of every played move, in order.
func (g *Game) SANMoves() []string {
	out := make([]string, len(g.history))
	for i, h := range g.history {
		out[i] = h.SAN
	}
	return out
}

// MoveSANList returns the played moves grouped by move number, such as
// "1. e4 e5". A session starting with Black to move begins "N... e5".
func (g *Game) MoveSANList() []string {
	var out []string
	number := g.start.MoveNumber
	i := 0
	if g.start.ToMove == chess.Black && len(g.history) > 0 {
		out = append(out, fmt.Sprintf("%d... %s", number, g.history[0].SAN))
		number++
		i = 1
	}
	for ; i < len(g.history); i += 2 {
		line := fmt.Sprintf("%d. %s", number, g.history[i].SAN)
		if i+1 < len(g.history) {
			line += " " + g.history[i+1].SAN
		}
		out = append(out, line)
		number++
	}
	return out
}
