// Package config provides configuration for the chessai command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Mode selects what the command does.
type Mode int

const (
	AnalyseMode Mode = iota // Search one position and report the best move
	PlayMode                // Let the engine play both sides
	BatchMode               // Search every position in a file
	PerftMode               // Count the legal move tree
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case AnalyseMode:
		return "analyse"
	case PlayMode:
		return "play"
	case BatchMode:
		return "batch"
	case PerftMode:
		return "perft"
	}
	return "unknown"
}

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{AnalyseMode, PlayMode, BatchMode, PerftMode} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Mode      Mode
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// StartFEN is the position to analyse or play from. Empty means the
	// standard starting position.
	StartFEN string

	Search *SearchConfig
	Play   *PlayConfig
	Batch  *BatchConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:       AnalyseMode,
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Play:       NewPlayConfig(),
		Batch:      NewBatchConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration and every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Play.Validate(); err != nil {
		return err
	}
	if err := c.Batch.Validate(c.Mode == BatchMode); err != nil {
		return err
	}
	return nil
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
