package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// positionState is the part of the board that a move overwrites without
// being able to recompute on undo.
type positionState struct {
	enPassant     bool
	epSquare      chess.Square
	halfmoveClock uint
}

// Game owns a board and the history needed to take moves back. It is
// mutated only through Apply and Undo, and is not safe for concurrent use;
// give each goroutine its own Copy.
type Game struct {
	Board *chess.Board

	// Moves applied so far, oldest first.
	History []chess.Move

	// Castling rights after each applied move, with the starting rights
	// at index 0. len(castleLog) == len(History)+1.
	castleLog []chess.CastlingRights

	// En passant target and halfmove clock before each applied move.
	stateLog []positionState

	// Terminal flags, recomputed by every call to LegalMoves.
	Checkmate bool
	Stalemate bool
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return newGameFromBoard(board)
}

// newGameFromBoard wraps an already populated board.
func newGameFromBoard(board *chess.Board) *Game {
	return &Game{
		Board:     board,
		castleLog: []chess.CastlingRights{board.Castling},
	}
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour {
	return g.Board.ToMove
}

// Ply returns the number of moves applied since the game was created.
func (g *Game) Ply() int {
	return len(g.History)
}

// LastMove returns the most recently applied move.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.History) == 0 {
		return chess.Move{}, false
	}
	return g.History[len(g.History)-1], true
}

// IsOver reports whether the last LegalMoves call found checkmate or stalemate.
func (g *Game) IsOver() bool {
	return g.Checkmate || g.Stalemate
}

// InCheck returns true if the side to move is in check.
func (g *Game) InCheck() bool {
	return IsInCheck(g.Board, g.Board.ToMove)
}

// Copy returns an independent game with the same position and history.
func (g *Game) Copy() *Game {
	return &Game{
		Board:     g.Board.Copy(),
		History:   append([]chess.Move(nil), g.History...),
		castleLog: append([]chess.CastlingRights(nil), g.castleLog...),
		stateLog:  append([]positionState(nil), g.stateLog...),
		Checkmate: g.Checkmate,
		Stalemate: g.Stalemate,
	}
}
