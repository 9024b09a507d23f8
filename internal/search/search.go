// Package search picks moves with a depth-limited minimax search using
// alpha-beta pruning over a material evaluation.
package search

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

const (
	// Infinity bounds every reachable score, mate scores included.
	Infinity = 1 << 30

	// MateScore is the score of delivering mate at the root. Mates found
	// deeper score lower so the search prefers the quickest one.
	MateScore = 100000
)

// Stats counts the work done by a search.
type Stats struct {
	Nodes   uint64 // Positions visited
	Leaves  uint64 // Static evaluations
	Cutoffs uint64 // Pruned move lists
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithMateScoring makes positions without legal moves score as mate or
// draw instead of by material.
func WithMateScoring() Option {
	return func(s *Searcher) {
		s.mateScoring = true
	}
}

// Searcher runs minimax on a game it mutates in place. Every move it plays
// is taken back before the call that played it returns.
type Searcher struct {
	game        *engine.Game
	mateScoring bool
	ply         int
	stats       Stats
}

// NewSearcher creates a searcher over g.
func NewSearcher(g *engine.Game, opts ...Option) *Searcher {
	s := &Searcher{game: g}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns the counters accumulated since the searcher was created.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// Minimax returns the white-positive score of the current position
// searched to depth plies. The maximizing side picks the highest child
// score, the other side the lowest; a move list is abandoned as soon as
// beta <= alpha.
func (s *Searcher) Minimax(depth int, maximizing bool, alpha, beta int) int {
	s.stats.Nodes++
	if depth <= 0 {
		s.stats.Leaves++
		return Evaluate(s.game.Board)
	}

	moves := s.game.LegalMoves()
	if len(moves) == 0 {
		s.stats.Leaves++
		return s.terminalScore()
	}

	if maximizing {
		best := -Infinity
		for _, move := range moves {
			best = max(best, s.child(move, depth-1, false, alpha, beta))
			alpha = max(alpha, best)
			if beta <= alpha {
				s.stats.Cutoffs++
				break
			}
		}
		return best
	}

	best := Infinity
	for _, move := range moves {
		best = min(best, s.child(move, depth-1, true, alpha, beta))
		beta = min(beta, best)
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}
	return best
}

// child plays move, searches the resulting position and takes the move back.
func (s *Searcher) child(move chess.Move, depth int, maximizing bool, alpha, beta int) int {
	defer s.game.Try(move)()
	s.ply++
	defer func() { s.ply-- }()
	return s.Minimax(depth, maximizing, alpha, beta)
}

// terminalScore scores a position whose LegalMoves call came back empty.
func (s *Searcher) terminalScore() int {
	if !s.mateScoring {
		return Evaluate(s.game.Board)
	}
	if !s.game.Checkmate {
		return 0
	}
	score := MateScore - s.ply
	if s.game.ToMove() == chess.White {
		return -score
	}
	return score
}

// FindBestMove searches every legal move to depth plies in total and
// returns the one with the best score for the root side: highest when
// maximizing, lowest otherwise. Ties go to the first move generated.
// It returns false when there are no legal moves, leaving the game's
// Checkmate or Stalemate flag set.
func (s *Searcher) FindBestMove(depth int, maximizing bool) (chess.Move, int, bool) {
	moves := s.game.LegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, s.terminalScore(), false
	}
	if depth < 1 {
		depth = 1
	}

	alpha, beta := -Infinity, Infinity
	bestMove := moves[0]
	bestScore := Infinity
	if maximizing {
		bestScore = -Infinity
	}

	for _, move := range moves {
		score := s.child(move, depth-1, !maximizing, alpha, beta)
		if maximizing && score > bestScore {
			bestMove, bestScore = move, score
			alpha = max(alpha, score)
		} else if !maximizing && score < bestScore {
			bestMove, bestScore = move, score
			beta = min(beta, score)
		}
	}

	// The children's LegalMoves calls overwrote the root's flags.
	s.game.Checkmate, s.game.Stalemate = false, false
	return bestMove, bestScore, true
}

// BestMove is FindBestMove for the side to move: White maximizes and Black
// minimizes.
func (s *Searcher) BestMove(depth int) (chess.Move, int, bool) {
	return s.FindBestMove(depth, s.game.ToMove() == chess.White)
}

// FindBestMove runs a default search on g and returns the chosen move.
func FindBestMove(g *engine.Game, depth int, maximizing bool) (chess.Move, bool) {
	move, _, ok := NewSearcher(g).FindBestMove(depth, maximizing)
	return move, ok
}
