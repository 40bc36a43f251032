package engine

import (
	"strings"
	"testing"

	nchess "github.com/corentings/chess/v2"
)

// TestMoveToSAN_MatchesCorentings formats every legal move of a set of
// positions and compares the result with an independent SAN encoder.
// Check suffixes are stripped on both sides.
func TestMoveToSAN_MatchesCorentings(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/Q7/8/Q1Q1K3 w - - 0 1",
		"4k3/8/8/R7/8/8/8/R3K3 w - - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			opt, err := nchess.FEN(fen)
			if err != nil {
				t.Fatalf("oracle rejected FEN: %v", err)
			}
			oraclePos := nchess.NewGame(opt).Position()

			pos := mustPosition(t, fen)
			for _, m := range ExpandPromotions(LegalMoves(pos)) {
				om, err := nchess.UCINotation{}.Decode(oraclePos, m.UCI())
				if err != nil {
					t.Errorf("oracle could not decode %s: %v", m.UCI(), err)
					continue
				}
				want := strings.TrimRight(nchess.AlgebraicNotation{}.Encode(oraclePos, om), "+#")
				got := strings.TrimRight(MoveToSAN(pos, m), "+#")
				if got != want {
					t.Errorf("MoveToSAN(%s) = %q, oracle says %q", m.UCI(), got, want)
				}
			}
		})
	}
}
