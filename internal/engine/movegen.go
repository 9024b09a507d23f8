package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// eachPiece calls fn for every square holding a piece of the given colour,
// scanning rank 8 to rank 1 and file a to h.
func eachPiece(board *chess.Board, colour chess.Colour, fn func(sq chess.Square, pieceType chess.Piece)) {
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			sq := chess.Sq(col, rank)
			piece := board.Get(sq)
			if chess.IsColour(piece, colour) {
				fn(sq, chess.ExtractPiece(piece))
			}
		}
	}
}

// PseudoLegalMoves returns every move the pieces of colour can make by
// geometry alone. It ignores whether the mover's own king is left attacked
// and never includes castling.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	eachPiece(board, colour, func(sq chess.Square, pieceType chess.Piece) {
		if pieceType == chess.Pawn {
			moves = appendPawnMoves(board, sq, colour, moves)
		} else {
			moves = appendPieceMoves(board, sq, pieceType, colour, moves)
		}
	})
	return moves
}
