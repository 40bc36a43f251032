// chess-rules is an interactive chess rules engine: it plays legal moves,
// reports check, mate and draws, and exports the game as PGN or JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/obslog"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(run(os.Stdin, os.Stdout))
}

// run loads the configuration, then either prints perft counts or starts
// the command loop. It returns the process exit code.
func run(in io.Reader, out io.Writer) int {
	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	closeLog, err := obslog.Init(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		return 1
	}
	defer closeLog()

	g, err := game.NewFromFEN(cfg.StartFEN, game.WithLogger(obslog.L()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	obslog.L().Info("cli_start",
		zap.String("game_id", g.ID()),
		zap.String("fen", cfg.StartFEN),
	)

	if *perftDepth > 0 {
		if err := runPerft(context.Background(), out, g.Position(), *perftDepth, cfg.Perft); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := newREPL(g, cfg, out).run(in); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the optional config file and applies command-line flags.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runPerft prints the node count of each root move, then the total. An
// interrupt abandons the count without ending the process.
func runPerft(ctx context.Context, w io.Writer, pos chess.Position, depth int, limits config.PerftConfig) error {
	if depth < 1 || depth > limits.MaxDepth {
		return fmt.Errorf("perft depth %d outside 1-%d", depth, limits.MaxDepth)
	}

	workers := limits.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	counts, err := engine.ParallelDivide(ctx, pos, depth, workers)
	if err != nil {
		return fmt.Errorf("perft depth %d: %w", depth, err)
	}
	var total uint64
	for _, uci := range sortedKeys(counts) {
		fmt.Fprintf(w, "%s: %d\n", uci, counts[uci])
		total += counts[uci]
	}
	fmt.Fprintf(w, "Nodes: %d\n", total)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a chess game from commands read on standard input.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nType 'help' at the prompt for the list of commands.\n")
}
