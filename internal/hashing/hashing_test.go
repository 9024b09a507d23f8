package hashing

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func TestZobristHashConsistency(t *testing.T) {
	board1 := chess.NewBoard()
	board1.SetupInitialPosition()
	board2 := mustBoard(t, engine.InitialFEN)

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)
	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := chess.NewBoard()
	board1.SetupInitialPosition()

	board2 := board1.Copy()
	board2.Set(chess.Sq('e', '2'), chess.Empty)
	board2.Set(chess.Sq('e', '4'), chess.W(chess.Pawn))

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashIgnoresClocks(t *testing.T) {
	a := mustBoard(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	b := mustBoard(t, "4k3/8/8/8/8/8/8/4K2R w K - 37 60")
	testutil.AssertEqual(t, GenerateZobristHash(a), GenerateZobristHash(b))
}

func TestZobristHashStateFields(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		wantSame bool
	}{
		{
			name: "side to move",
			a:    "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			b:    "4k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name: "castling rights",
			a:    "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			b:    "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1",
		},
		{
			name: "each castling right distinct",
			a:    "r3k2r/8/8/8/8/8/8/R3K2R w K - 0 1",
			b:    "r3k2r/8/8/8/8/8/8/R3K2R w k - 0 1",
		},
		{
			name: "capturable en passant",
			a:    "rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 2",
			b:    "rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq - 0 2",
		},
		{
			name:     "pinned en passant",
			a:        "8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1",
			b:        "8/8/8/KPp4r/8/8/8/4k3 w - - 0 1",
			wantSame: true,
		},
		{
			name:     "uncapturable en passant",
			a:        "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			b:        "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			same := GenerateZobristHash(mustBoard(t, tt.a)) == GenerateZobristHash(mustBoard(t, tt.b))
			testutil.AssertEqual(t, same, tt.wantSame)
		})
	}
}

func TestZobristHashTransposition(t *testing.T) {
	g1, err := engine.NewGameFromFEN(engine.InitialFEN)
	testutil.AssertNoError(t, err)
	g2, err := engine.NewGameFromFEN(engine.InitialFEN)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, g1.ApplyCoordinateList("g1f3", "g8f6", "b1c3"))
	testutil.AssertNoError(t, g2.ApplyCoordinateList("b1c3", "g8f6", "g1f3"))
	testutil.AssertEqual(t, GenerateZobristHash(g1.Board), GenerateZobristHash(g2.Board))
}

func TestRepetitionTracker(t *testing.T) {
	g, err := engine.NewGameFromFEN(engine.InitialFEN)
	testutil.AssertNoError(t, err)
	tracker := NewRepetitionTracker(g.Board)
	testutil.AssertEqual(t, tracker.Count(g.Board), 1)
	testutil.AssertFalse(t, tracker.Threefold())

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	var counts []int
	for round := 0; round < 2; round++ {
		for _, text := range shuffle {
			_, err := g.ApplyCoordinates(text)
			testutil.AssertNoError(t, err)
			counts = append(counts, tracker.Add(g.Board))
		}
	}

	testutil.AssertEqual(t, counts, []int{1, 1, 1, 2, 2, 2, 2, 3})
	testutil.AssertTrue(t, tracker.Threefold())
	testutil.AssertEqual(t, tracker.Len(), 9)
	testutil.AssertEqual(t, tracker.Count(g.Board), 3)
}

func TestRepetitionTrackerEmpty(t *testing.T) {
	tracker := &RepetitionTracker{counts: map[uint64]int{}}
	testutil.AssertFalse(t, tracker.Threefold())
	testutil.AssertEqual(t, tracker.Len(), 0)
}
