package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return SquareAttacked(board, board.KingSquare(colour), colour.Opposite())
}

// SquareAttacked returns true if any piece of byColour attacks sq.
//
// This is a one-ply scan over byColour's pseudo-legal geometry. It never
// consults the legality filter or castling generation, which both call it.
// Pawns are the exception to "a move lands there": they attack their
// forward diagonals even when those squares are empty, and their pushes
// attack nothing.
func SquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	var buf [28]chess.Move
	attacked := false
	eachPiece(board, byColour, func(from chess.Square, pieceType chess.Piece) {
		if attacked {
			return
		}
		if pieceType == chess.Pawn {
			attacked = pawnAttacks(from, sq, byColour)
			return
		}
		for _, m := range appendPieceMoves(board, from, pieceType, byColour, buf[:0]) {
			if m.To == sq {
				attacked = true
				return
			}
		}
	})
	return attacked
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.FirstCol; col <= chess.LastCol; col++ {
		for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
			if board.Get(chess.Sq(col, rank)) == king {
				return chess.Sq(col, rank), true
			}
		}
	}
	return chess.Square{}, false
}
