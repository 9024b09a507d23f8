package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// PlayConfig holds settings for engine self-play.
type PlayConfig struct {
	// MaxPlies stops the game after this many moves if it has not ended
	MaxPlies int
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{MaxPlies: 40}
}

// Validate checks that the play configuration is valid.
func (p *PlayConfig) Validate() error {
	if p.MaxPlies < 1 {
		return fmt.Errorf("max plies %d must be positive: %w", p.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}

// BatchConfig holds settings for analysing a file of positions.
type BatchConfig struct {
	// PositionsFile holds one FEN per line
	PositionsFile string

	// Workers is the number of positions searched concurrently
	Workers int

	// BufferSize is the capacity of the work and result queues
	BufferSize int

	// FailFast stops the batch at the first position that fails to load
	FailFast bool
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:    1,
		BufferSize: 16,
	}
}

// Validate checks that the batch configuration is valid. A positions file
// is only required when batch mode is selected.
func (b *BatchConfig) Validate(required bool) error {
	if b.Workers < 1 {
		return fmt.Errorf("workers %d must be positive: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 0 {
		return fmt.Errorf("buffer size %d is negative: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	if required && b.PositionsFile == "" {
		return fmt.Errorf("batch mode needs a positions file: %w", errors.ErrInvalidConfig)
	}
	return nil
}
