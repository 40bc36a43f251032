package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Setup
	configFile = flag.String("config", "", "YAML configuration file")
	startFEN   = flag.String("fen", "", "Start position as FEN (default: standard position)")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")

	// Output
	jsonOutput = flag.Bool("json", false, "Export games as JSON instead of PGN")
	lineLength = flag.Int("w", 0, "Maximum PGN line length")

	// Batch
	perftDepth = flag.Int("perft", 0, "Print perft node counts for the start position to this depth and exit")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides cfg with every flag that was given a value.
func applyFlags(cfg *config.Config) {
	applySetupFlags(cfg)
	applyOutputFlags(cfg)
}

// applySetupFlags configures the start position and logging.
func applySetupFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
}

// applyOutputFlags configures game export.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.JSON = true
	}
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}
