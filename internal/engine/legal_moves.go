package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// LegalMoves returns every legal move for the side to move and refreshes
// the Checkmate and Stalemate flags. Pseudo-legal moves are kept only if,
// after tentatively playing them, the mover's king is not attacked.
// Castling moves are appended last.
func (g *Game) LegalMoves() []chess.Move {
	colour := g.Board.ToMove
	pseudo := PseudoLegalMoves(g.Board, colour)

	legal := make([]chess.Move, 0, len(pseudo)+2)
	for _, move := range pseudo {
		if g.leavesKingSafe(move) {
			legal = append(legal, move)
		}
	}
	legal = appendCastlingMoves(g.Board, colour, legal)

	g.Checkmate, g.Stalemate = false, false
	if len(legal) == 0 {
		if IsInCheck(g.Board, colour) {
			g.Checkmate = true
		} else {
			g.Stalemate = true
		}
	}
	return legal
}

// leavesKingSafe plays move, tests the mover's king and takes the move back.
func (g *Game) leavesKingSafe(move chess.Move) bool {
	colour := move.Colour()
	defer g.Try(move)()
	return !SquareAttacked(g.Board, g.Board.KingSquare(colour), colour.Opposite())
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (g *Game) HasLegalMoves() bool {
	return len(g.LegalMoves()) > 0
}

// FindMove locates the legal move with the given start and end squares.
// Only the squares are compared; the engine supplies the move's flags.
func (g *Game) FindMove(from, to chess.Square) (chess.Move, bool) {
	requested := chess.Move{From: from, To: to}
	for _, move := range g.LegalMoves() {
		if move.SameSquares(requested) {
			return move, true
		}
	}
	return chess.Move{}, false
}

// ParseCoordinates splits long algebraic text such as "e2e4" or "e7e8q"
// into its squares. A trailing promotion letter is accepted and ignored
// because promotion is always to a queen.
func ParseCoordinates(text string) (from, to chess.Square, err error) {
	text = strings.TrimSpace(strings.ToLower(text))
	if len(text) == 5 && text[4] == 'q' {
		text = text[:4]
	}
	if len(text) != 4 {
		return from, to, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}
	if from, err = chess.ParseSquare(text[:2]); err != nil {
		return from, to, err
	}
	if to, err = chess.ParseSquare(text[2:]); err != nil {
		return from, to, err
	}
	return from, to, nil
}

// ApplyCoordinates finds the legal move described by long algebraic text
// and plays it.
func (g *Game) ApplyCoordinates(text string) (chess.Move, error) {
	from, to, err := ParseCoordinates(text)
	if err != nil {
		return chess.Move{}, err
	}
	move, ok := g.FindMove(from, to)
	if !ok {
		return chess.Move{}, &errors.PositionError{
			Err:      errors.ErrIllegalMove,
			PlyNum:   g.Ply() + 1,
			MoveText: text,
			FEN:      g.FEN(),
		}
	}
	g.Apply(move)
	return move, nil
}

// ApplyCoordinateList plays a sequence of long algebraic moves, stopping
// at the first one that is not legal.
func (g *Game) ApplyCoordinateList(moves ...string) error {
	for _, text := range moves {
		if _, err := g.ApplyCoordinates(text); err != nil {
			return err
		}
	}
	return nil
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (g *Game) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		undo := g.Try(move)
		nodes += g.Perft(depth - 1)
		undo()
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by its long
// algebraic text.
func (g *Game) Divide(depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth < 1 {
		return counts
	}
	for _, move := range g.LegalMoves() {
		undo := g.Try(move)
		counts[move.String()] = g.Perft(depth - 1)
		undo()
	}
	return counts
}
