package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// mustPosition parses fen or aborts the test.
func mustPosition(t testing.TB, fen string) chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return pos
}

// mustMove parses UCI text against pos or aborts the test.
func mustMove(t testing.TB, pos chess.Position, uci string) chess.Move {
	t.Helper()
	m, err := ParseUCI(pos, uci)
	if err != nil {
		t.Fatalf("ParseUCI(%q) error: %v", uci, err)
	}
	return m
}

func TestNewPositionFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p chess.Position) bool {
				return p.Get(testutil.Sq("e1")) == chess.W(chess.King) &&
					p.Get(testutil.Sq("e8")) == chess.B(chess.King) &&
					p.Get(testutil.Sq("e2")) == chess.W(chess.Pawn) &&
					p.Get(testutil.Sq("d8")) == chess.B(chess.Queen) &&
					p.IsEmpty(testutil.Sq("e4")) &&
					p.ToMove == chess.White &&
					p.Castling == chess.AllCastlingRights &&
					p.EnPassant == chess.NoSquare &&
					p.HalfmoveClock == 0 &&
					p.MoveNumber == 1
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p chess.Position) bool {
				return p.Get(testutil.Sq("e4")) == chess.W(chess.Pawn) &&
					p.IsEmpty(testutil.Sq("e2")) &&
					p.ToMove == chess.Black &&
					p.EnPassant == testutil.Sq("e3")
			},
		},
		{
			name: "partial castling and clocks",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 17 42",
			checkFn: func(p chess.Position) bool {
				return p.Castling == chess.CastlingRights{WhiteKingside: true, BlackQueenside: true} &&
					p.HalfmoveClock == 17 &&
					p.MoveNumber == 42
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if !tt.checkFn(pos) {
				t.Errorf("NewPositionFromFEN(%q) position check failed", tt.fen)
			}
		})
	}
}

func TestNewPositionFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr error
	}{
		{"empty string", "", chesserrors.ErrInvalidFEN},
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", chesserrors.ErrInvalidFEN},
		{"seven fields", InitialFEN + " extra", chesserrors.ErrInvalidFEN},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"extra piece", "rnbqkbnrp/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"bad piece letter", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", chesserrors.ErrInvalidFEN},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1", chesserrors.ErrInvalidFEN},
		{"repeated castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KK - 0 1", chesserrors.ErrInvalidFEN},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1", chesserrors.ErrInvalidFEN},
		{"en passant behind own pawn", "4k3/8/8/8/8/8/3PK3/8 w - e3 0 1", chesserrors.ErrInvalidFEN},
		{"en passant on own side", "4k3/8/8/8/8/8/3PP3/4K3 w - e3 0 1", chesserrors.ErrInvalidFEN},
		{"black en passant on rank 6", "4k3/3pp3/8/8/8/8/8/4K3 b - e6 0 1", chesserrors.ErrInvalidFEN},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", chesserrors.ErrInvalidFEN},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", chesserrors.ErrInvalidFEN},
		{"no black king", "8/8/8/8/8/8/8/4K3 w - - 0 1", chesserrors.ErrMissingKing},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1", chesserrors.ErrMissingKing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPositionFromFEN(tt.fen)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewPositionFromFEN(%q) error = %v, want %v", tt.fen, err, tt.wantErr)
			}
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("error %v should also match ErrInvalidFEN", err)
			}
			var parseErr *chesserrors.ParseError
			if !errors.As(err, &parseErr) || parseErr.Field == "" {
				t.Errorf("error %v should be a ParseError naming the field", err)
			}
		})
	}
}

func TestPositionToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/5k2/8/8/8/8/5K2/4R3 w - - 99 120",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos := mustPosition(t, fen)
			testutil.AssertEqual(t, PositionToFEN(pos), fen)
		})
	}
}

func TestPositionToFEN_AfterMoves(t *testing.T) {
	pos := NewInitialPosition()
	for _, uci := range []string{"e2e4", "c7c5", "g1f3"} {
		next, err := ApplyMove(pos, mustMove(t, pos, uci))
		if err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", uci, err)
		}
		pos = next
	}

	want := "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	testutil.AssertEqual(t, PositionToFEN(pos), want)

	reparsed := mustPosition(t, want)
	testutil.AssertEqual(t, reparsed, pos, "re-parsed position")
}
