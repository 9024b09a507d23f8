package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq('e', '1')) == chess.W(chess.King) &&
					b.Get(chess.Sq('e', '8')) == chess.B(chess.King) &&
					b.Get(chess.Sq('e', '2')) == chess.W(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.Castling == chess.AllCastlingRights &&
					b.WhiteKing == chess.Sq('e', '1') &&
					b.BlackKing == chess.Sq('e', '8')
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq('e', '4')) == chess.W(chess.Pawn) &&
					b.Get(chess.Sq('e', '2')) == chess.Empty &&
					b.ToMove == chess.Black &&
					b.EnPassant &&
					b.EPSquare == chess.Sq('e', '3')
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Castling == chess.CastlingRights{}
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board) bool {
				return b.ToMove == chess.White && !b.EnPassant && b.MoveNumber == 1
			},
		},
		{
			name: "clocks",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 17 42",
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock == 17 && b.MoveNumber == 42
			},
		},
		{name: "empty string", fen: "", wantErr: true},
		{name: "missing black king", fen: "8/8/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "two white kings", fen: "4k3/8/8/8/8/8/8/3KK3 w - - 0 1", wantErr: true},
		{name: "seven ranks", fen: "4k3/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "short rank", fen: "4k3/8/8/8/8/8/8/4K2 w - - 0 1", wantErr: true},
		{name: "long rank", fen: "4k3/8/8/8/8/8/8/4K4 w - - 0 1", wantErr: true},
		{name: "digit run past the board", fen: strings.Repeat("8", 20) + "p/8/8/8/8/8/8/K6k w - - 0 1", wantErr: true},
		{name: "digit run of 264 files", fen: strings.Repeat("8", 33) + "/8/8/8/8/8/8/K6k w - - 0 1", wantErr: true},
		{name: "piece after full rank", fen: "4k3/8/8/8/8/8/8/8K w - - 0 1", wantErr: true},
		{name: "bad piece", fen: "4k3/8/8/8/8/8/8/4K2X w - - 0 1", wantErr: true},
		{name: "bad side", fen: "4k3/8/8/8/8/8/8/4K3 x - - 0 1", wantErr: true},
		{name: "bad castling", fen: "4k3/8/8/8/8/8/8/4K3 w KX - 0 1", wantErr: true},
		{name: "bad en passant", fen: "4k3/8/8/8/8/8/8/4K3 w - e4 0 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBoardFromFEN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
				return
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) board check failed:\n%s", tt.fen, board)
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w Kq - 3 17",
		"8/8/8/8/8/8/8/K6k b - - 12 60",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			g := mustGame(t, fen)
			testutil.AssertEqual(t, g.FEN(), fen)
		})
	}
}

func TestFENAfterMoves(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   []string
		wantFEN string
	}{
		{
			name:    "1.e4",
			fen:     InitialFEN,
			moves:   []string{"e2e4"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "1.Nf3",
			fen:     InitialFEN,
			moves:   []string{"g1f3"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name:    "1.e4 e5 2.Nf3",
			fen:     InitialFEN,
			moves:   []string{"e2e4", "e7e5", "g1f3"},
			wantFEN: "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:    "kingside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			moves:   []string{"e1g1"},
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name:    "queenside castle black",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			moves:   []string{"e8c8"},
			wantFEN: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 1 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			play(t, g, tt.moves...)
			testutil.AssertEqual(t, g.FEN(), tt.wantFEN)
		})
	}
}
