package chess

// Move represents a single chess move built from a board snapshot.
// Moves are values; once constructed they are never changed.
type Move struct {
	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// Source square.
	From Square

	// Destination square.
	To Square

	// The coloured piece being moved.
	PieceToMove Piece

	// The coloured piece captured (Empty if no capture). For en passant
	// this is the opposing pawn even though To is empty.
	CapturedPiece Piece
}

// NewMove builds a move from the pieces currently on the board. A pawn
// reaching the farthest rank is classed as a promotion.
func NewMove(b *Board, from, to Square) Move {
	m := Move{
		Class:         PieceMove,
		From:          from,
		To:            to,
		PieceToMove:   b.Get(from),
		CapturedPiece: b.Get(to),
	}
	if ExtractPiece(m.PieceToMove) == Pawn {
		m.Class = PawnMove
		if to.Rank == PromotionRank(ExtractColour(m.PieceToMove)) {
			m.Class = PawnMoveWithPromotion
		}
	}
	return m
}

// NewSpecialMove builds an en passant or castling move. For en passant
// the captured piece is the opposing pawn rather than the empty target.
func NewSpecialMove(b *Board, from, to Square, class MoveClass) Move {
	m := NewMove(b, from, to)
	m.Class = class
	if class == EnPassantPawnMove {
		m.CapturedPiece = MakeColouredPiece(ExtractColour(m.PieceToMove).Opposite(), Pawn)
	}
	return m
}

// Colour returns the colour of the side making the move.
func (m Move) Colour() Colour {
	return ExtractColour(m.PieceToMove)
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.CapturedPiece != Empty
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsEnPassant returns true if this move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsKingsideCastle returns true for O-O.
func (m Move) IsKingsideCastle() bool {
	return m.Class == KingsideCastle
}

// IsQueensideCastle returns true for O-O-O.
func (m Move) IsQueensideCastle() bool {
	return m.Class == QueensideCastle
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// SameSquares reports whether two moves share start and end squares.
// This is the equality used to match a requested move against the legal
// move list; class and pieces are not compared.
func (m Move) SameSquares(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// String returns the move in long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += "q"
	}
	return s
}
