package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestLegalMoves_StartingPosition(t *testing.T) {
	moves := LegalMoves(NewInitialPosition())
	if len(moves) != 20 {
		t.Fatalf("len(LegalMoves(start)) = %d, want 20", len(moves))
	}
	testutil.AssertSameMoves(t, LegalMovesFrom(NewInitialPosition(), testutil.Sq("g1")), []string{"g1f3", "g1h3"})
}

func TestLegalMovesFrom(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "double push blocked on first square",
			fen:  "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{},
		},
		{
			name: "double push blocked on second square",
			fen:  "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e2e3"},
		},
		{
			name: "pinned rook stays on the file",
			fen:  "4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e2e3", "e2e4", "e2e5", "e2e6", "e2e7", "e2e8"},
		},
		{
			name: "king may not step into attack",
			fen:  "4k3/8/8/8/8/8/r7/4K3 w - - 0 1",
			from: "e1",
			want: []string{"e1d1", "e1f1"},
		},
		{
			name: "en passant capture",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
			from: "e5",
			want: []string{"e5e6", "e5d6"},
		},
		{
			name: "en passant needs a pawn to take",
			fen:  "4k3/8/8/4P3/8/8/8/4K3 w - d6 0 1",
			from: "e5",
			want: []string{"e5e6"},
		},
		{
			name: "black en passant capture",
			fen:  "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1",
			from: "d4",
			want: []string{"d4d3", "d4e3"},
		},
		{
			name: "promotion listed once per square",
			fen:  "1n5k/P7/8/8/8/8/8/7K w - - 0 1",
			from: "a7",
			want: []string{"a7a8", "a7b8"},
		},
		{
			name: "only moves that answer check",
			fen:  "4k3/8/8/8/8/8/3PPP2/r3K3 w - - 0 1",
			from: "e1",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, tt.fen)
			testutil.AssertSameMoves(t, LegalMovesFrom(pos, testutil.Sq(tt.from)), tt.want)
		})
	}
}

func TestLegalMoves_Castling(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantKingside  bool
		wantQueenside bool
	}{
		{"both available", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"through check", "r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1", false, true},
		{"out of check", "r3k2r/8/8/8/8/4r3/8/R3K2R w KQkq - 0 1", false, false},
		{"into check", "r3k2r/8/8/8/8/6r1/8/R3K2R w KQkq - 0 1", false, true},
		{"b-file attack does not stop queenside", "r3k2r/8/8/8/8/1r6/8/R3K2R w KQkq - 0 1", true, true},
		{"piece between", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", true, false},
		{"right lost", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1", true, false},
		{"rook missing", "r3k2r/8/8/8/8/8/8/4K2R w KQkq - 0 1", true, false},
		{"black both available", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, tt.fen)
			rank := chess.HomeRank(pos.ToMove)
			kingSq := chess.NewSquare(4, rank)

			var gotKingside, gotQueenside bool
			for _, m := range LegalMovesFrom(pos, kingSq) {
				if !m.Castle {
					continue
				}
				switch m.To {
				case chess.NewSquare(6, rank):
					gotKingside = true
				case chess.NewSquare(2, rank):
					gotQueenside = true
				default:
					t.Errorf("castle move to unexpected square %s", m.To)
				}
			}
			if gotKingside != tt.wantKingside {
				t.Errorf("kingside castle available = %v, want %v", gotKingside, tt.wantKingside)
			}
			if gotQueenside != tt.wantQueenside {
				t.Errorf("queenside castle available = %v, want %v", gotQueenside, tt.wantQueenside)
			}
		})
	}
}

func TestLegalMoves_PromotionsArePending(t *testing.T) {
	pos := mustPosition(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	var pending int
	for _, m := range LegalMoves(pos) {
		if m.IsPromotion() {
			pending++
			testutil.AssertTrue(t, m.NeedsPromotionChoice(), "promotion %s should await a piece", m)
		}
	}
	testutil.AssertEqual(t, pending, 1)

	expanded := ExpandPromotions(LegalMovesFrom(pos, testutil.Sq("a7")))
	testutil.AssertSameMoves(t, expanded, []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"})
}

func TestFindLegalMove(t *testing.T) {
	pos := NewInitialPosition()
	m, ok := FindLegalMove(pos, testutil.Sq("e2"), testutil.Sq("e4"))
	testutil.AssertTrue(t, ok, "e2e4 should be legal")
	testutil.AssertEqual(t, m, chess.Move{From: testutil.Sq("e2"), To: testutil.Sq("e4")})

	_, ok = FindLegalMove(pos, testutil.Sq("e2"), testutil.Sq("e5"))
	testutil.AssertFalse(t, ok, "e2e5 should be illegal")

	_, ok = FindLegalMove(pos, testutil.Sq("e7"), testutil.Sq("e5"))
	testutil.AssertFalse(t, ok, "Black may not move on White's turn")
}

func TestPseudoLegalMoves_IncludesSelfCheck(t *testing.T) {
	pos := mustPosition(t, "4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1")
	pseudo := PseudoLegalMoves(pos)
	legal := LegalMoves(pos)
	if len(pseudo) <= len(legal) {
		t.Errorf("pseudo-legal moves (%d) should include pinned-rook moves excluded from legal moves (%d)", len(pseudo), len(legal))
	}
}
