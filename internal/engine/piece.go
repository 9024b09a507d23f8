package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

// appendPieceMoves appends the pseudo-legal moves of the non-pawn piece on from.
func appendPieceMoves(board *chess.Board, from chess.Square, pieceType chess.Piece, colour chess.Colour, moves []chess.Move) []chess.Move {
	switch pieceType {
	case chess.Knight:
		return appendStepMoves(board, from, colour, knightOffsets, moves)
	case chess.King:
		return appendStepMoves(board, from, colour, kingOffsets, moves)
	case chess.Bishop:
		return appendSlidingMoves(board, from, colour, diagonalDirs, moves)
	case chess.Rook:
		return appendSlidingMoves(board, from, colour, straightDirs, moves)
	case chess.Queen:
		return appendSlidingMoves(board, from, colour, allSlidingDirs, moves)
	}
	return moves
}

// appendStepMoves handles knights and kings: each offset is a single
// destination, kept unless a friendly piece stands there.
func appendStepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.OnBoard() || chess.IsColour(board.Get(to), colour) {
			continue
		}
		moves = append(moves, chess.NewMove(board, from, to))
	}
	return moves
}

// appendSlidingMoves walks each ray until the edge, a friendly piece
// (excluded) or an enemy piece (included, then stop).
func appendSlidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.OnBoard(); to = to.Offset(dir[0], dir[1]) {
			target := board.Get(to)
			if chess.IsColour(target, colour) {
				break // Blocked
			}
			moves = append(moves, chess.NewMove(board, from, to))
			if target != chess.Empty {
				break // Capture ends the ray
			}
		}
	}
	return moves
}
