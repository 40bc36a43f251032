package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// runScript feeds script to a fresh command loop and returns its output.
func runScript(t *testing.T, cfg *config.Config, script string) string {
	t.Helper()
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g, err := game.NewFromFEN(cfg.StartFEN, game.WithIDGenerator(func() string { return "cli-game" }))
	if err != nil {
		t.Fatalf("NewFromFEN() error: %v", err)
	}
	var out bytes.Buffer
	if err := newREPL(g, cfg, &out).run(strings.NewReader(script)); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	return out.String()
}

func TestREPL_MoveUndoFEN(t *testing.T) {
	got := runScript(t, nil, `move e4
move e5

fen
undo
fen
quit
move d4
`)
	want := `OK
OK
rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2
OK
rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1
`
	testutil.AssertEqual(t, got, want)
}

func TestREPL_Commands(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{
			name:   "fool's mate",
			script: "move f3\nmove e5\nmove g4\nmove Qh4#\nstatus\nclaim\n",
			want:   []string{"Checkmate! Black wins.\nCheckmate! Black wins.\nCheckmate! Black wins.\n"},
		},
		{
			name:   "illegal move",
			script: "move e5\n",
			want:   []string{"Illegal move: "},
		},
		{
			name:   "nothing to undo",
			script: "undo\n",
			want:   []string{"Nothing to undo.\n"},
		},
		{
			name:   "promotion",
			script: "load 4k3/P7/8/8/8/8/8/4K3 w - - 0 1\nmove a7a8\npromote x\npromote q\nfen\n",
			want: []string{
				"OK\nPromotion: choose q, r, b or n.\nPromotion: choose q, r, b or n.\nCheck!\n",
				"Q3k3/8/8/8/8/8/8/4K3 b - - 0 1\n",
			},
		},
		{
			name:   "promote without pending move",
			script: "promote q\n",
			want:   []string{"No promotion pending.\n"},
		},
		{
			name:   "select",
			script: "select g1\nselect e7\n",
			want:   []string{"Selected g1: g1f3 g1h3\n", "Cannot select e7.\n"},
		},
		{
			name:   "legal from square",
			script: "legal e2\nlegal b1\n",
			want:   []string{"e2e3 e2e4\nb1a3 b1c3\n"},
		},
		{
			name:   "attacks",
			script: "load 7k/8/8/8/8/8/8/K7 w - - 0 1\nattacks black\nattacks\nattacks green\n",
			want: []string{
				"Attacked by black: g7 h7 g8\n",
				"Attacked by white: b1 a2 b2\n",
				"Usage: attacks [white|black]\n",
			},
		},
		{
			name:   "legal promotions expanded",
			script: "load 4k3/P7/8/8/8/8/8/4K3 w - - 0 1\nlegal a7\n",
			want:   []string{"a7a8b a7a8n a7a8q a7a8r\n"},
		},
		{
			name:   "bad load",
			script: "load not a fen\nfen\n",
			want:   []string{"Error: ", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1\n"},
		},
		{
			name:   "claim with nothing to claim",
			script: "claim\n",
			want:   []string{"No claimable draw right now.\n"},
		},
		{
			name:   "threefold claim",
			script: "move Nf3\nmove Nf6\nmove Ng1\nmove Ng8\nmove Nf3\nmove Nf6\nmove Ng1\nmove Ng8\nstatus\nclaim\nstatus\n",
			want: []string{
				"OK (3x repetition claimable)\n",
				"Draw claimed: threefold repetition.\n",
			},
		},
		{
			name:   "move list",
			script: "move e4\nmove e5\nmove Nf3\nmoves\n",
			want:   []string{"1. e4 e5\n2. Nf3\n"},
		},
		{
			name:   "board",
			script: "board\n",
			want: []string{
				"8 r n b q k b n r\n7 p p p p p p p p\n6 . . . . . . . .\n",
				"1 R N B Q K B N R\n  a b c d e f g h\n",
			},
		},
		{
			name:   "new game",
			script: "move e4\nnew\nfen\n",
			want:   []string{"New game.\nrnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1\n"},
		},
		{
			name:   "unknown command",
			script: "castle\n",
			want:   []string{`Unknown command "castle"`},
		},
		{
			name:   "pgn export",
			script: "move e4\npgn\n",
			want:   []string{"[Result \"*\"]\n\n1. e4 *\n"},
		},
		{
			name:   "json export",
			script: "move e4\njson\n",
			want:   []string{`"id": "cli-game"`, `"san": "e4"`},
		},
		{
			name:   "perft",
			script: "perft 1\n",
			want:   []string{"a2a3: 1\n", "h2h4: 1\nNodes: 20\n"},
		},
		{
			name:   "perft over limit",
			script: "perft 9\nperft two\n",
			want:   []string{"Error: perft depth 9 outside 1-6\n", "Error: depth \"two\" is not a number\n"},
		},
		{
			name:   "help",
			script: "help\n",
			want:   []string{"Commands:\n", "  quit           exit\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runScript(t, nil, tt.script)
			for _, want := range tt.want {
				testutil.AssertContains(t, got, want)
			}
		})
	}
}

func TestREPL_ExportUsesConfiguredFormat(t *testing.T) {
	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()
	got := runScript(t, cfg, "move d4\nexport\n")
	testutil.AssertContains(t, got, `"uci": "d2d4"`)

	cfg = config.NewConfig()
	got = runScript(t, cfg, "move d4\nexport\n")
	testutil.AssertContains(t, got, "1. d4 *")
}

func TestREPL_StartFENFromConfig(t *testing.T) {
	cfg := config.NewConfigBuilder().WithStartFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1").Build()
	got := runScript(t, cfg, "move O-O\nfen\nnew\nfen\n")
	testutil.AssertContains(t, got, "4k3/8/8/8/8/8/8/5RK1 b - - 1 1\n")
	testutil.AssertContains(t, got, "New game.\n4k3/8/8/8/8/8/8/4K2R w K - 0 1\n")
}

func TestREPL_Import(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "mate.pgn")
	bad := filepath.Join(dir, "broken.pgn")
	empty := filepath.Join(dir, "empty.pgn")
	for path, body := range map[string]string{
		good:  "[Event \"Mate\"]\n\n1. f3 e5 2. g4 Qh4# 0-1\n",
		bad:   "1. e4 e5 2. Ke3 *\n",
		empty: "\n",
	} {
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	got := runScript(t, nil, "import "+good+"\nmoves\n")
	testutil.AssertContains(t, got, "Imported 4 moves. Checkmate! Black wins.\n1. f3 e5\n2. g4 Qh4#\n")

	got = runScript(t, nil, "import "+bad+"\nfen\n")
	testutil.AssertContains(t, got, "Stopped at ply 3: ")
	testutil.AssertContains(t, got, "Imported 2 moves. OK\nrnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2\n")

	got = runScript(t, nil, "import "+empty+"\nimport "+filepath.Join(dir, "absent.pgn")+"\n")
	testutil.AssertContains(t, got, "Error: no game found in ")
	testutil.AssertContains(t, got, "no such file")
}
