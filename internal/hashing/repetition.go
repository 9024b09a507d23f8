package hashing

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// RepetitionTracker counts how often each position has occurred in a game.
type RepetitionTracker struct {
	counts    map[uint64]int
	positions []uint64
}

// NewRepetitionTracker creates a tracker seeded with the starting position.
func NewRepetitionTracker(start *chess.Board) *RepetitionTracker {
	t := &RepetitionTracker{counts: make(map[uint64]int)}
	t.Add(start)
	return t
}

// Add records the position and returns how many times it has now occurred.
func (t *RepetitionTracker) Add(board *chess.Board) int {
	hash := GenerateZobristHash(board)
	t.positions = append(t.positions, hash)
	t.counts[hash]++
	return t.counts[hash]
}

// Count returns how many times the position has occurred.
func (t *RepetitionTracker) Count(board *chess.Board) int {
	return t.counts[GenerateZobristHash(board)]
}

// Threefold reports whether the most recently added position has occurred
// at least three times.
func (t *RepetitionTracker) Threefold() bool {
	if len(t.positions) == 0 {
		return false
	}
	return t.counts[t.positions[len(t.positions)-1]] >= 3
}

// Len returns the number of positions recorded.
func (t *RepetitionTracker) Len() int {
	return len(t.positions)
}
