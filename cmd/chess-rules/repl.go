package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/obslog"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

const helpText = `Commands:
  move <m>       play a move in SAN (Nf3) or UCI (g1f3, e7e8q)
  promote <p>    finish a pending promotion with q, r, b or n
  undo           take back the last move
  select <sq>    select a square and list its moves
  legal [sq]     list legal moves, optionally from one square
  attacks [side] list squares attacked by white or black (default: side to move)
  claim          claim a fifty-move or threefold repetition draw
  status         show check, mate and draw status
  moves          show the move list
  fen            show the current position as FEN
  load <fen>     start from a FEN position
  import <file>  replay the first game of a PGN file
  new            start a new game from the configured position
  board          print the board
  perft <n>      count leaf nodes to depth n
  pgn | json     export the game
  export         export the game in the configured format
  help           show this text
  quit           exit`

// repl reads one command per line and writes replies to out.
type repl struct {
	g   *game.Game
	cfg *config.Config
	out io.Writer
}

func newREPL(g *game.Game, cfg *config.Config, out io.Writer) *repl {
	return &repl{g: g, cfg: cfg, out: out}
}

// run executes commands until quit or end of input.
func (r *repl) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !r.execute(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// execute runs one command line and reports whether to keep reading.
func (r *repl) execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		r.println(helpText)
	case "move", "m":
		r.move(args)
	case "promote":
		r.promote(args)
	case "undo":
		if r.g.Undo() {
			r.println(r.g.StatusString())
		} else {
			r.println("Nothing to undo.")
		}
	case "select":
		r.selectSquare(args)
	case "legal":
		r.legal(args)
	case "attacks":
		r.attacks(args)
	case "claim":
		_, msg := r.g.ClaimDraw()
		r.println(msg)
	case "status":
		r.println(r.g.StatusString())
	case "moves":
		for _, line := range r.g.MoveSANList() {
			r.println(line)
		}
	case "fen":
		r.println(r.g.ToFEN())
	case "load":
		r.load(args)
	case "import":
		r.importPGN(args)
	case "new":
		if err := r.g.LoadFEN(r.cfg.StartFEN); err != nil {
			r.printf("Error: %v\n", err)
			return true
		}
		r.println("New game.")
	case "board":
		r.board()
	case "perft":
		r.perft(args)
	case "pgn":
		r.export(output.NewPGNWriter(r.out, r.cfg.Output, nil))
	case "json":
		r.export(output.NewJSONWriter(r.out))
	case "export":
		r.export(output.NewWriter(r.out, r.cfg.Output, nil))
	default:
		r.printf("Unknown command %q. Type 'help' for commands.\n", fields[0])
	}
	return true
}

func (r *repl) move(args []string) {
	if len(args) != 1 {
		r.println("Usage: move <move>")
		return
	}
	status, err := r.g.PlayMove(args[0])
	if err != nil {
		r.printf("Illegal move: %v\n", err)
		return
	}
	r.reportMove(status)
}

// reportMove describes the outcome of a move attempt.
func (r *repl) reportMove(status game.MoveStatus) {
	switch status {
	case game.MoveOK:
		r.println(r.g.StatusString())
	case game.MoveIllegal:
		r.println("Illegal move.")
	case game.MovePromotionNeeded, game.MovePromotionPending:
		r.println("Promotion: choose q, r, b or n.")
	case game.MoveGameOver:
		r.printf("Game over: %s\n", r.g.EndState().Message)
	}
}

func (r *repl) promote(args []string) {
	if _, ok := r.g.PendingMove(); !ok {
		r.println("No promotion pending.")
		return
	}
	if len(args) != 1 || !r.g.Promote(args[0]) {
		r.println("Promotion: choose q, r, b or n.")
		return
	}
	r.println(r.g.StatusString())
}

func (r *repl) selectSquare(args []string) {
	if len(args) != 1 {
		r.println("Usage: select <square>")
		return
	}
	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		r.printf("Error: %v\n", err)
		return
	}
	if !r.g.Select(sq) {
		r.printf("Cannot select %s.\n", sq)
		return
	}
	r.printf("Selected %s: %s\n", sq, formatMoves(r.g.LegalMovesFrom(sq)))
}

func (r *repl) legal(args []string) {
	switch len(args) {
	case 0:
		r.println(formatMoves(r.g.LegalMoves()))
	case 1:
		sq, err := chess.ParseSquare(args[0])
		if err != nil {
			r.printf("Error: %v\n", err)
			return
		}
		r.println(formatMoves(r.g.LegalMovesFrom(sq)))
	default:
		r.println("Usage: legal [square]")
	}
}

func (r *repl) attacks(args []string) {
	side := r.g.Position().ToMove
	switch {
	case len(args) == 0:
	case len(args) == 1 && strings.EqualFold(args[0], "white"):
		side = chess.White
	case len(args) == 1 && strings.EqualFold(args[0], "black"):
		side = chess.Black
	default:
		r.println("Usage: attacks [white|black]")
		return
	}

	squares := engine.AttackedSquares(r.g.Position(), side).Squares()
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	r.printf("Attacked by %s: %s\n", strings.ToLower(side.String()), strings.Join(names, " "))
}

func (r *repl) load(args []string) {
	if len(args) == 0 {
		r.println("Usage: load <fen>")
		return
	}
	if err := r.g.LoadFEN(strings.Join(args, " ")); err != nil {
		r.printf("Error: %v\n", err)
		return
	}
	r.println(r.g.StatusString())
}

// importPGN replaces the session with the first game of a PGN file. A game
// that stops on an illegal move is kept up to that move.
func (r *repl) importPGN(args []string) {
	if len(args) != 1 {
		r.println("Usage: import <file>")
		return
	}
	f, err := os.Open(args[0]) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		r.printf("Error: %v\n", err)
		return
	}
	defer f.Close() //nolint:errcheck // read-only file

	rec := parser.NewParser(f, obslog.L()).ParseGame()
	if rec == nil {
		r.printf("Error: no game found in %s\n", args[0])
		return
	}
	g, err := parser.Replay(rec, game.WithLogger(obslog.L()))
	if g == nil {
		r.printf("Error: %v\n", err)
		return
	}
	r.g = g
	if err != nil {
		r.printf("Stopped at ply %d: %v\n", g.Ply()+1, err)
	}
	r.printf("Imported %d moves. %s\n", g.Ply(), g.StatusString())
}

func (r *repl) perft(args []string) {
	if len(args) != 1 {
		r.println("Usage: perft <depth>")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		r.printf("Error: depth %q is not a number\n", args[0])
		return
	}
	if err := runPerft(context.Background(), r.out, r.g.Position(), depth, r.cfg.Perft); err != nil {
		r.printf("Error: %v\n", err)
	}
}

func (r *repl) export(w output.GameWriter) {
	if err := w.WriteGame(r.g); err != nil {
		r.printf("Error: %v\n", err)
	}
}

// board prints the position from White's side, rank 8 first.
func (r *repl) board() {
	pos := r.g.Position()
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			if p := pos.Get(chess.NewSquare(file, rank)); p != chess.Empty {
				sb.WriteByte(chess.FENLetter(p))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	r.println(sb.String())
}

func (r *repl) println(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *repl) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

// formatMoves lists moves in sorted UCI form, one entry per promotion piece.
func formatMoves(moves []chess.Move) string {
	moves = engine.ExpandPromotions(moves)
	if len(moves) == 0 {
		return "(none)"
	}
	ucis := make([]string, len(moves))
	for i, m := range moves {
		ucis[i] = m.UCI()
	}
	slices.Sort(ucis)
	return strings.Join(ucis, " ")
}

func sortedKeys(m map[string]uint64) []string {
	return slices.Sorted(maps.Keys(m))
}
