package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// MustSquare parses an algebraic square name or aborts the test.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// MoveStrings returns the long algebraic text of moves, sorted, so move
// lists from different generators can be compared with AssertEqual.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// ContainsMove reports whether any move in the list has the given text.
func ContainsMove(moves []chess.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}
