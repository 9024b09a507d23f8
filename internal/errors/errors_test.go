package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrNoLegalMoves", ErrNoLegalMoves, ErrNoLegalMoves},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrInvalidFEN, ErrIllegalMove, ErrInvalidSquare, ErrInvalidConfig, ErrNoLegalMoves}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestPositionError_Error verifies the error message format
func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:      ErrIllegalMove,
				Index:    5,
				PlyNum:   12,
				MoveText: "e2e5",
				FEN:      "8/8/8/8/8/8/8/K6k w - - 0 1",
			},
			contains: []string{"position 5", "ply 12", "e2e5", "K6k", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &PositionError{Err: ErrInvalidFEN},
			contains: []string{"invalid fen"},
		},
		{
			name:     "no error",
			err:      &PositionError{Index: 2},
			contains: []string{"position 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(strings.ToLower(msg), strings.ToLower(s)) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestPositionError_As verifies that errors.As works through wrapping
func TestPositionError_As(t *testing.T) {
	posErr := &PositionError{Err: ErrIllegalMove, PlyNum: 3, MoveText: "e1g1"}
	wrapped := fmt.Errorf("self-play failed: %w", posErr)

	var extracted *PositionError
	if !As(wrapped, &extracted) {
		t.Fatal("As(wrapped, *PositionError) = false, want true")
	}
	if extracted.PlyNum != 3 {
		t.Errorf("extracted.PlyNum = %d, want 3", extracted.PlyNum)
	}
	if !Is(wrapped, ErrIllegalMove) {
		t.Error("Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestWrap verifies Wrap and Wrapf preserve the chain and pass nil through
func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}

	err := Wrapf(ErrInvalidFEN, "line %d", 7)
	if !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("errors.Is(Wrapf(...), ErrInvalidFEN) = false")
	}
	if got := err.Error(); got != "line 7: invalid FEN string" {
		t.Errorf("Wrapf().Error() = %q", got)
	}
}
