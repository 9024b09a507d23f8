package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// appendPawnMoves appends the pseudo-legal moves of the pawn on from.
func appendPawnMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := chess.ColourOffset(colour)

	// Forward moves
	one := from.Offset(0, dir)
	if one.OnBoard() && board.IsEmpty(one) {
		moves = append(moves, chess.NewMove(board, from, one))
		// Double push from starting rank
		if from.Rank == chess.PawnStartRank(colour) {
			two := from.Offset(0, 2*dir)
			if board.IsEmpty(two) {
				moves = append(moves, chess.NewMove(board, from, two))
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dc, dir)
		if !to.OnBoard() {
			continue
		}
		target := board.Get(to)
		if chess.IsColour(target, colour.Opposite()) {
			moves = append(moves, chess.NewMove(board, from, to))
		} else if board.EnPassant && to == board.EPSquare {
			moves = append(moves, chess.NewSpecialMove(board, from, to, chess.EnPassantPawnMove))
		}
	}
	return moves
}

// pawnAttacks reports whether the pawn on from attacks sq. A pawn attacks
// its two forward diagonals whether or not anything stands there.
func pawnAttacks(from, sq chess.Square, colour chess.Colour) bool {
	return sq.Rank == from.Offset(0, chess.ColourOffset(colour)).Rank &&
		abs(int(sq.Col)-int(from.Col)) == 1
}

// isDoublePawnPush returns true for a two-square pawn advance.
func isDoublePawnPush(m chess.Move) bool {
	return chess.ExtractPiece(m.PieceToMove) == chess.Pawn &&
		m.From.Col == m.To.Col &&
		abs(int(m.To.Rank)-int(m.From.Rank)) == 2
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture: beside the capturing pawn, on the destination file.
func enPassantVictim(m chess.Move) chess.Square {
	return chess.Sq(m.To.Col, m.From.Rank)
}

// EnPassantAvailable reports whether the side to move has a legal en
// passant capture. A target square with no capturing pawn, or whose only
// capture would expose the king, does not count.
func EnPassantAvailable(board *chess.Board) bool {
	if !board.EnPassant {
		return false
	}
	colour := board.ToMove
	pawn := chess.MakeColouredPiece(colour, chess.Pawn)
	victim := board.EPSquare.Offset(0, -chess.ColourOffset(colour))
	if board.Get(victim) != chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
		return false
	}

	var g *Game
	for _, dc := range []int{-1, 1} {
		from := victim.Offset(dc, 0)
		if !from.OnBoard() || board.Get(from) != pawn {
			continue
		}
		if g == nil {
			g = newGameFromBoard(board.Copy())
		}
		if g.leavesKingSafe(chess.NewSpecialMove(g.Board, from, board.EPSquare, chess.EnPassantPawnMove)) {
			return true
		}
	}
	return false
}
