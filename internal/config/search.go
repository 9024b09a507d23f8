package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// MaxDepth bounds the search depth a user may ask for.
const MaxDepth = 8

// SearchConfig holds settings for the move search.
type SearchConfig struct {
	// Depth is the number of plies searched from the root
	Depth int

	// MateScoring scores positions without legal moves as mate or draw
	// instead of by material
	MateScoring bool

	// PerftDepth is the tree depth counted in perft mode
	PerftDepth int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:      3,
		PerftDepth: 3,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 || s.Depth > MaxDepth {
		return fmt.Errorf("search depth %d out of range 1-%d: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.PerftDepth < 0 {
		return fmt.Errorf("perft depth %d is negative: %w", s.PerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}
