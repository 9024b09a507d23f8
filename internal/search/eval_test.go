package search

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestPieceValue(t *testing.T) {
	tests := []struct {
		piece chess.Piece
		want  int
	}{
		{chess.Empty, 0},
		{chess.W(chess.Pawn), 10},
		{chess.B(chess.Pawn), -10},
		{chess.W(chess.Knight), 30},
		{chess.B(chess.Bishop), -30},
		{chess.W(chess.Rook), 50},
		{chess.B(chess.Queen), -90},
		{chess.W(chess.King), 900},
		{chess.B(chess.King), -900},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			testutil.AssertEqual(t, PieceValue(tt.piece), tt.want)
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{name: "initial position", fen: engine.InitialFEN, want: 0},
		{name: "black queen missing", fen: "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", want: 90},
		{name: "white rook missing", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN1 w Qkq - 0 1", want: -50},
		{name: "bare kings", fen: "4k3/8/8/8/8/8/8/4K3 w - - 0 1", want: 0},
		{name: "extra knight and pawn", fen: "4k3/8/8/8/8/8/4P3/4KN2 w - - 0 1", want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := engine.NewBoardFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, Evaluate(board), tt.want)
		})
	}
}
