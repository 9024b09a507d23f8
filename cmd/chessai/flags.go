// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/minimax-chess-go/internal/config"
)

var (
	// Mode and position
	mode     = flag.String("mode", "analyse", "What to do: analyse, play, batch, perft")
	fenInput = flag.String("fen", "", "Start position in FEN (default: initial position)")
	moves    = flag.String("moves", "", "Long algebraic moves to play from the start position, e.g. \"e2e4 e7e5\"")

	// Search options
	depth       = flag.Int("depth", 3, "Search depth in plies")
	mateScoring = flag.Bool("mate", false, "Score checkmate and stalemate instead of material at terminal nodes")
	perftDepth  = flag.Int("perftdepth", 3, "Tree depth counted in perft mode")

	// Self-play options
	maxPlies = flag.Int("plies", 40, "Maximum number of plies in self-play")
	pgnOut   = flag.Bool("pgn", false, "Write self-play games as PGN instead of long algebraic")

	// Batch options
	positionsFile = flag.String("positions", "", "File of FEN positions, one per line, for batch mode")
	workers       = flag.Int("workers", 1, "Number of positions searched concurrently in batch mode")
	failFast      = flag.Bool("failfast", false, "Stop batch mode at the first position that fails to load")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Log file (default: stderr)")
	showBoard  = flag.Bool("board", false, "Print the board diagram")
	showStats  = flag.Bool("stats", false, "Print search statistics")
	noFEN      = flag.Bool("nofen", false, "Don't print the FEN of the final position")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 running commentary")
	quiet      = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags maps command-line flags onto the configuration.
func applyFlags(cfg *config.Config) error {
	m, err := config.ParseMode(*mode)
	if err != nil {
		return err
	}
	cfg.Mode = m
	cfg.StartFEN = *fenInput

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}

	applySearchFlags(cfg)
	applyPlayFlags(cfg)
	applyBatchFlags(cfg)
	applyOutputFlags(cfg)
	return nil
}

// applySearchFlags maps search depth and scoring flags.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.MateScoring = *mateScoring
	cfg.Search.PerftDepth = *perftDepth
}

// applyPlayFlags maps self-play flags.
func applyPlayFlags(cfg *config.Config) {
	cfg.Play.MaxPlies = *maxPlies
}

// applyBatchFlags maps batch analysis flags.
func applyBatchFlags(cfg *config.Config) {
	cfg.Batch.PositionsFile = *positionsFile
	cfg.Batch.Workers = *workers
	cfg.Batch.FailFast = *failFast
}

// applyOutputFlags maps output format flags.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Format = config.LALG
	if *pgnOut {
		cfg.Output.Format = config.PGN
	}
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowStats = *showStats
	cfg.Output.ShowFEN = !*noFEN
}
