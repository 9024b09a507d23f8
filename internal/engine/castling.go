package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// castleRookSquares returns where the rook starts and lands for a castling move.
func castleRookSquares(move chess.Move) (from, to chess.Square) {
	rank := move.From.Rank
	if move.Class == chess.KingsideCastle {
		return chess.Sq('h', rank), chess.Sq('f', rank)
	}
	return chess.Sq('a', rank), chess.Sq('d', rank)
}

// appendCastlingMoves appends the castling moves available to colour.
// Each one is emitted only when its right is held, the squares between
// king and rook are empty, and the king neither starts on, passes through
// nor lands on an attacked square, so the results need no further
// legality filtering.
func appendCastlingMoves(board *chess.Board, colour chess.Colour, moves []chess.Move) []chess.Move {
	rank := chess.HomeRank(colour)
	king := chess.Sq('e', rank)
	if board.KingSquare(colour) != king || board.Get(king) != chess.MakeColouredPiece(colour, chess.King) {
		return moves
	}
	kingside := board.Castling.Kingside(colour)
	queenside := board.Castling.Queenside(colour)
	if !kingside && !queenside {
		return moves
	}

	opponent := colour.Opposite()
	if SquareAttacked(board, king, opponent) {
		return moves
	}

	if kingside && castlePathClear(board, king, chess.Sq('h', rank), colour) &&
		kingPathSafe(board, king, chess.Sq('g', rank), opponent) {
		moves = append(moves, chess.NewSpecialMove(board, king, chess.Sq('g', rank), chess.KingsideCastle))
	}
	if queenside && castlePathClear(board, king, chess.Sq('a', rank), colour) &&
		kingPathSafe(board, king, chess.Sq('c', rank), opponent) {
		moves = append(moves, chess.NewSpecialMove(board, king, chess.Sq('c', rank), chess.QueensideCastle))
	}
	return moves
}

// castlePathClear checks that the colour's rook stands on rookSq and every
// square strictly between it and the king is empty.
func castlePathClear(board *chess.Board, king, rookSq chess.Square, colour chess.Colour) bool {
	if board.Get(rookSq) != chess.MakeColouredPiece(colour, chess.Rook) {
		return false
	}
	step := sign(int(rookSq.Col) - int(king.Col))
	for sq := king.Offset(step, 0); sq != rookSq; sq = sq.Offset(step, 0) {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// kingPathSafe checks every square the king crosses, including its
// destination, for attacks. The starting square is checked by the caller.
func kingPathSafe(board *chess.Board, king, dest chess.Square, opponent chess.Colour) bool {
	step := sign(int(dest.Col) - int(king.Col))
	for sq := king.Offset(step, 0); ; sq = sq.Offset(step, 0) {
		if SquareAttacked(board, sq, opponent) {
			return false
		}
		if sq == dest {
			return true
		}
	}
}
