// chessai searches chess positions with minimax and alpha-beta pruning.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/search"
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
		fmt.Printf("chessai version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := run(cfg, *moves); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// run executes the configured mode. moveText holds long algebraic moves
// played from the start position before the mode begins.
func run(cfg *config.Config, moveText string) error {
	if cfg.Mode == config.BatchMode {
		return runBatch(cfg)
	}

	g, err := loadGame(cfg.StartFEN, moveText)
	if err != nil {
		return err
	}

	switch cfg.Mode {
	case config.PlayMode:
		return selfPlay(cfg, g)
	case config.PerftMode:
		return runPerft(cfg, g)
	default:
		return analysePosition(cfg, g)
	}
}

// loadGame builds the starting game and plays any opening moves on it.
func loadGame(fen, moveText string) (*engine.Game, error) {
	g := engine.NewGame()
	if fen != "" {
		var err error
		if g, err = engine.NewGameFromFEN(fen); err != nil {
			return nil, err
		}
	}
	if err := g.ApplyCoordinateList(strings.Fields(moveText)...); err != nil {
		return nil, err
	}
	return g, nil
}

// newSearcher creates a searcher over g with the configured options.
func newSearcher(cfg *config.Config, g *engine.Game) *search.Searcher {
	return search.NewSearcher(g, searchOptions(cfg)...)
}

func searchOptions(cfg *config.Config) []search.Option {
	var opts []search.Option
	if cfg.Search.MateScoring {
		opts = append(opts, search.WithMateScoring())
	}
	return opts
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessai [options]\n\n")
	fmt.Fprintf(os.Stderr, "Searches chess positions with minimax and alpha-beta pruning.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  analyse  Print the best move for the side to move (default)\n")
	fmt.Fprintf(os.Stderr, "  play     Let the engine play both sides\n")
	fmt.Fprintf(os.Stderr, "  batch    Search every FEN in the -positions file\n")
	fmt.Fprintf(os.Stderr, "  perft    Count the legal move tree below each move\n")
}
