package search

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// pieceValues holds the material value of each piece type for White.
var pieceValues = [chess.NumPieceValues]int{
	chess.Empty:  0,
	chess.Pawn:   10,
	chess.Knight: 30,
	chess.Bishop: 30,
	chess.Rook:   50,
	chess.Queen:  90,
	chess.King:   900,
}

// PieceValue returns the signed material value of a coloured piece:
// positive for White, negative for Black, zero for an empty square.
func PieceValue(p chess.Piece) int {
	if p == chess.Empty {
		return 0
	}
	value := pieceValues[chess.ExtractPiece(p)]
	if chess.ExtractColour(p) == chess.Black {
		return -value
	}
	return value
}

// Evaluate returns the material balance of the board from White's side.
func Evaluate(board *chess.Board) int {
	score := 0
	for _, column := range board.Squares {
		for _, piece := range column {
			score += PieceValue(piece)
		}
	}
	return score
}
