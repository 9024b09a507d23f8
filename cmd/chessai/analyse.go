package main

import (
	"fmt"
	"sort"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/search"
)

// analysePosition searches the current position and prints the best move.
func analysePosition(cfg *config.Config, g *engine.Game) error {
	out := cfg.OutputFile
	s := newSearcher(cfg, g)

	move, score, ok := s.BestMove(cfg.Search.Depth)
	if !ok {
		fmt.Fprintf(out, "no legal moves: %s\n", terminalName(g))
	} else {
		fmt.Fprintf(out, "bestmove %s score %d\n", move, score)
	}

	writePositionDetails(cfg, g, s.Stats())
	cfg.Logf(1, "Searched %s to depth %d\n", g.FEN(), cfg.Search.Depth)
	if !ok {
		return fmt.Errorf("%s: %w", terminalName(g), errors.ErrNoLegalMoves)
	}
	return nil
}

// writePositionDetails prints the optional stats, board and FEN lines.
func writePositionDetails(cfg *config.Config, g *engine.Game, stats search.Stats) {
	out := cfg.OutputFile
	if cfg.Output.ShowStats {
		fmt.Fprintf(out, "nodes %d leaves %d cutoffs %d\n", stats.Nodes, stats.Leaves, stats.Cutoffs)
	}
	if cfg.Output.ShowBoard {
		fmt.Fprint(out, g.Board.String())
	}
	if cfg.Output.ShowFEN {
		fmt.Fprintf(out, "fen %s\n", g.FEN())
	}
}

// terminalName describes a position whose LegalMoves came back empty.
func terminalName(g *engine.Game) string {
	if g.Checkmate {
		return "checkmate"
	}
	return "stalemate"
}

// result returns the PGN result of the game as it stands.
func result(g *engine.Game) string {
	g.LegalMoves()
	switch {
	case g.Checkmate && g.ToMove() == chess.White:
		return "0-1"
	case g.Checkmate:
		return "1-0"
	case g.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

// runPerft prints the perft count below each legal move and the total.
func runPerft(cfg *config.Config, g *engine.Game) error {
	out := cfg.OutputFile
	counts := g.Divide(cfg.Search.PerftDepth)

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var total uint64
	for _, name := range names {
		fmt.Fprintf(out, "%s: %d\n", name, counts[name])
		total += counts[name]
	}
	if cfg.Search.PerftDepth == 0 {
		total = 1
	}
	fmt.Fprintf(out, "total %d\n", total)
	cfg.Logf(1, "Perft depth %d from %s\n", cfg.Search.PerftDepth, g.FEN())
	return nil
}
