package config

// OutputFormat selects how moves are written.
type OutputFormat int

const (
	LALG OutputFormat = iota // Long algebraic (e2e4)
	PGN                      // PGN movetext with SAN moves
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the move notation for played games
	Format OutputFormat

	// ShowBoard prints the board diagram after each result
	ShowBoard bool

	// ShowFEN prints the FEN of the final position
	ShowFEN bool

	// ShowStats prints search node counts
	ShowStats bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:  LALG,
		ShowFEN: true,
	}
}
