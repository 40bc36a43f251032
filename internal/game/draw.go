package game

import (
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// DrawType names a drawing rule.
type DrawType int

const (
	NoDraw DrawType = iota
	DrawStalemate
	DrawInsufficientMaterial
	DrawFiftyMove
	DrawThreefold
)

// String returns the string representation of a draw type.
func (d DrawType) String() string {
	switch d {
	case NoDraw:
		return "none"
	case DrawStalemate:
		return "stalemate"
	case DrawInsufficientMaterial:
		return "insufficient material"
	case DrawFiftyMove:
		return "50-move rule"
	case DrawThreefold:
		return "threefold repetition"
	}
	return "unknown"
}

// hint is the short form used in status lines.
func (d DrawType) hint() string {
	switch d {
	case DrawFiftyMove:
		return "50-move claimable"
	case DrawThreefold:
		return "3x repetition claimable"
	}
	return d.String()
}

// DrawStatus reports the automatic draw, if any, and the draws that may be
// claimed in the current position.
type DrawStatus struct {
	Auto      DrawType
	claimable map[DrawType]struct{}
}

// CanClaim reports whether d may be claimed.
func (s DrawStatus) CanClaim(d DrawType) bool {
	_, ok := s.claimable[d]
	return ok
}

// Claimable returns the claimable draw types in rule order.
func (s DrawStatus) Claimable() []DrawType {
	return slices.Sorted(maps.Keys(s.claimable))
}

// Messages returned by ClaimDraw.
const (
	msgDrawConfirmed = "Draw confirmed."
	msgNothingClaim  = "No claimable draw right now."
	msgClaimPrefix   = "Draw claimed: "
)

// DrawStatus classifies the current position's draws.
func (g *Game) DrawStatus() DrawStatus {
	status := DrawStatus{claimable: make(map[DrawType]struct{})}

	switch g.positionEnd().Kind {
	case Stalemate:
		status.Auto = DrawStalemate
	case Draw:
		status.Auto = DrawInsufficientMaterial
	}

	if engine.FiftyMoveClaimable(g.pos) {
		status.claimable[DrawFiftyMove] = struct{}{}
	}
	if engine.ThreefoldClaimable(g.reps.Count(g.pos)) {
		status.claimable[DrawThreefold] = struct{}{}
	}
	return status
}

// ClaimDraw claims a draw in the current position. It succeeds when an
// automatic draw already applies, or when the fifty-move or threefold rule
// may be claimed; a successful claim ends the game. The message names the
// outcome.
//
// Checkmate takes precedence over any claim: a mated position refuses the
// claim and returns the mate message, even when the fifty-move or threefold
// rule would otherwise be claimable.
func (g *Game) ClaimDraw() (bool, string) {
	end := g.positionEnd()
	if end.Kind == Checkmate {
		return false, end.Message
	}

	status := g.DrawStatus()
	if status.Auto != NoDraw {
		return true, msgDrawConfirmed
	}

	claimable := status.Claimable()
	if len(claimable) == 0 {
		return false, msgNothingClaim
	}

	reasons := make([]string, len(claimable))
	for i, d := range claimable {
		reasons[i] = d.String()
	}
	msg := msgClaimPrefix + strings.Join(reasons, " & ") + "."

	g.pending = nil
	g.selected = noSelection
	if g.claim == "" {
		g.claim = msg
		g.logger.Info("game_draw_claimed",
			zap.String("game_id", g.id),
			zap.String("reason", strings.Join(reasons, ",")),
			zap.Int("ply", len(g.history)),
		)
	}
	return true, msg
}
