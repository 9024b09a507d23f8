package engine

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// Apply plays a move on the game. The move must come from the current
// LegalMoves result; anything else leaves the game in an undefined state.
func (g *Game) Apply(move chess.Move) {
	board := g.Board
	colour := move.Colour()

	g.stateLog = append(g.stateLog, positionState{
		enPassant:     board.EnPassant,
		epSquare:      board.EPSquare,
		halfmoveClock: board.HalfmoveClock,
	})

	// Move the piece
	board.Set(move.From, chess.Empty)
	board.Set(move.To, move.PieceToMove)

	switch move.Class {
	case chess.PawnMoveWithPromotion:
		board.Set(move.To, chess.MakeColouredPiece(colour, chess.Queen))
	case chess.EnPassantPawnMove:
		board.Set(enPassantVictim(move), chess.Empty)
	case chess.KingsideCastle, chess.QueensideCastle:
		rookFrom, rookTo := castleRookSquares(move)
		board.Set(rookTo, board.Get(rookFrom))
		board.Set(rookFrom, chess.Empty)
	}

	// Set en passant square if double pawn push
	if isDoublePawnPush(move) {
		board.EnPassant = true
		board.EPSquare = move.From.Offset(0, chess.ColourOffset(colour))
	} else {
		board.EnPassant = false
		board.EPSquare = chess.Square{}
	}

	if chess.ExtractPiece(move.PieceToMove) == chess.King {
		board.SetKingSquare(colour, move.To)
	}

	updateCastlingRights(board, move)
	g.castleLog = append(g.castleLog, board.Castling)

	if chess.ExtractPiece(move.PieceToMove) == chess.Pawn || move.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}

	g.History = append(g.History, move)
	board.ToMove = colour.Opposite()
}

// Undo takes back the most recently applied move. It does nothing when no
// move has been applied.
func (g *Game) Undo() {
	if len(g.History) == 0 {
		return
	}
	board := g.Board
	move := g.History[len(g.History)-1]
	g.History = g.History[:len(g.History)-1]
	colour := move.Colour()

	// Put the mover back and restore whatever stood on the destination
	board.Set(move.From, move.PieceToMove)
	board.Set(move.To, move.CapturedPiece)

	switch move.Class {
	case chess.EnPassantPawnMove:
		board.Set(move.To, chess.Empty)
		board.Set(enPassantVictim(move), move.CapturedPiece)
	case chess.KingsideCastle, chess.QueensideCastle:
		rookFrom, rookTo := castleRookSquares(move)
		board.Set(rookFrom, board.Get(rookTo))
		board.Set(rookTo, chess.Empty)
	}

	if chess.ExtractPiece(move.PieceToMove) == chess.King {
		board.SetKingSquare(colour, move.From)
	}

	g.castleLog = g.castleLog[:len(g.castleLog)-1]
	if n := len(g.castleLog); n > 0 {
		board.Castling = g.castleLog[n-1]
	}

	state := g.stateLog[len(g.stateLog)-1]
	g.stateLog = g.stateLog[:len(g.stateLog)-1]
	board.EnPassant = state.enPassant
	board.EPSquare = state.epSquare
	board.HalfmoveClock = state.halfmoveClock

	if colour == chess.Black {
		board.MoveNumber--
	}
	board.ToMove = colour
}

// Try applies a move and returns the function that takes it back, so a
// caller can write
//
//	defer g.Try(move)()
//
// and be sure the undo runs on every return path.
func (g *Game) Try(move chess.Move) (undo func()) {
	g.Apply(move)
	return g.Undo
}

// updateCastlingRights removes rights lost by this move: a king move loses
// both, and any move from or onto a rook's home corner loses that corner.
func updateCastlingRights(board *chess.Board, move chess.Move) {
	if chess.ExtractPiece(move.PieceToMove) == chess.King {
		board.Castling.ClearColour(move.Colour())
	}
	clearCornerRight(&board.Castling, move.From)
	clearCornerRight(&board.Castling, move.To)
}

// clearCornerRight clears the right that depends on a rook standing on sq.
func clearCornerRight(rights *chess.CastlingRights, sq chess.Square) {
	switch sq {
	case chess.Sq('h', '1'):
		rights.WhiteKingside = false
	case chess.Sq('a', '1'):
		rights.WhiteQueenside = false
	case chess.Sq('h', '8'):
		rights.BlackKingside = false
	case chess.Sq('a', '8'):
		rights.BlackQueenside = false
	}
}
