package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Sq parses algebraic coordinates, panicking on malformed input.
// Intended for literal squares in test tables.
func Sq(name string) chess.Square {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// UCIs returns the UCI text of each move, in order.
func UCIs(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}

// AssertSameMoves compares the UCI text of moves against want, ignoring order.
func AssertSameMoves(t *testing.T, moves []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(want, UCIs(moves), sortStrings, cmpopts.EquateEmpty()); diff != "" {
		fail(t, "move set mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}
