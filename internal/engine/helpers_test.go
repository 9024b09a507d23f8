package engine

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

// mustGame builds a game from FEN or aborts the test.
func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// play applies long algebraic moves or aborts the test.
func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	if err := g.ApplyCoordinateList(moves...); err != nil {
		t.Fatalf("ApplyCoordinateList(%v) error: %v", moves, err)
	}
}

// mustFind returns the legal move between two squares or aborts the test.
func mustFind(t *testing.T, g *Game, from, to string) chess.Move {
	t.Helper()
	m, ok := g.FindMove(testutil.MustSquare(t, from), testutil.MustSquare(t, to))
	if !ok {
		t.Fatalf("FindMove(%s, %s) found nothing in %s", from, to, g.FEN())
	}
	return m
}

// gameSnapshot is everything Undo has to restore.
type gameSnapshot struct {
	Board      chess.Board
	HistoryLen int
	CastleLen  int
	StateLen   int
}

func snapshot(g *Game) gameSnapshot {
	return gameSnapshot{
		Board:      *g.Board,
		HistoryLen: len(g.History),
		CastleLen:  len(g.castleLog),
		StateLen:   len(g.stateLog),
	}
}
