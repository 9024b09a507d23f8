// Package hashing provides Zobrist position hashing and repetition
// tracking for chess games.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

const (
	zobristSeed = 0x5eed

	// numColouredPieces bounds the coloured-piece encoding.
	numColouredPieces = int(chess.King)<<chess.PieceShift | int(chess.White) + 1
)

var (
	// pieceKeys is indexed by coloured piece, then square.
	pieceKeys    [numColouredPieces][chess.BoardSize * chess.BoardSize]uint64
	blackToMove  uint64
	castlingKeys [4]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for piece := range pieceKeys {
		for sq := range pieceKeys[piece] {
			pieceKeys[piece][sq] = rng.Uint64()
		}
	}
	blackToMove = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.Uint64()
	}
}

// squareIndex maps a square to 0..63.
func squareIndex(sq chess.Square) int {
	return int(sq.Rank-chess.FirstRank)*chess.BoardSize + int(sq.Col-chess.FirstCol)
}

// GenerateZobristHash returns the Zobrist hash of the position: piece
// placement, side to move, castling rights, and the en passant file when
// a legal en passant capture is available.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for col := chess.FirstCol; col <= chess.LastCol; col++ {
		for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
			sq := chess.Sq(col, rank)
			if piece := board.Get(sq); piece != chess.Empty {
				hash ^= pieceKeys[piece][squareIndex(sq)]
			}
		}
	}

	if board.ToMove == chess.Black {
		hash ^= blackToMove
	}
	for i, held := range []bool{
		board.Castling.WhiteKingside,
		board.Castling.WhiteQueenside,
		board.Castling.BlackKingside,
		board.Castling.BlackQueenside,
	} {
		if held {
			hash ^= castlingKeys[i]
		}
	}
	if engine.EnPassantAvailable(board) {
		hash ^= epFileKeys[board.EPSquare.Col-chess.FirstCol]
	}
	return hash
}
