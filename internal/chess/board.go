package chess

import "fmt"

// Board represents a chess board with all state needed to generate moves.
type Board struct {
	// The board squares, indexed Squares[col][rank] with 0-based indices
	// ('a' and '1' map to 0).
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Keep track of where the two kings are for check detection.
	WhiteKing Square
	BlackKing Square

	// Is EnPassant capture possible? If so then EPSquare holds the square
	// on which this can be made.
	EnPassant bool
	EPSquare  Square

	// Castling permissions still available.
	Castling CastlingRights

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col][0] = W(backRank[col])
		b.Squares[col][1] = W(Pawn)
		b.Squares[col][6] = B(Pawn)
		b.Squares[col][7] = B(backRank[col])
	}

	b.WhiteKing = Sq('e', '1')
	b.BlackKing = Sq('e', '8')
	b.Castling = AllCastlingRights
	b.ToMove = White
	b.EnPassant = false
	b.EPSquare = Square{}
	b.HalfmoveClock = 0
	b.MoveNumber = 1
}

// index converts a square to array indices. Reaching this with an
// off-board square is a generator bug, so it panics rather than returning
// a sentinel.
func index(sq Square) (int, int) {
	if !sq.OnBoard() {
		panic(fmt.Sprintf("chess: square (%d,%d) is off the board", sq.Col, sq.Rank))
	}
	return int(sq.Col - FirstCol), int(sq.Rank - FirstRank)
}

// Get returns the piece on the given square.
func (b *Board) Get(sq Square) Piece {
	c, r := index(sq)
	return b.Squares[c][r]
}

// Set places a piece on the given square.
func (b *Board) Set(sq Square, piece Piece) {
	c, r := index(sq)
	b.Squares[c][r] = piece
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == Empty
}

// KingSquare returns the cached king location for a colour.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return b.WhiteKing
	}
	return b.BlackKing
}

// SetKingSquare updates the cached king location for a colour.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WhiteKing = sq
	} else {
		b.BlackKing = sq
	}
}

// Grid returns the board as rows for rendering: row 0 is rank 8 and
// column 0 is the a-file, matching how a board is drawn from White's side.
func (b *Board) Grid() [BoardSize][BoardSize]Piece {
	var grid [BoardSize][BoardSize]Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			grid[row][col] = b.Squares[col][BoardSize-1-row]
		}
	}
	return grid
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String draws the board as eight lines of FEN-style letters with '.'
// for empty squares, rank 8 first.
func (b *Board) String() string {
	buf := make([]byte, 0, (BoardSize+1)*BoardSize)
	for _, row := range b.Grid() {
		for _, cell := range row {
			buf = append(buf, CellLetter(cell))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// CellLetter returns the FEN letter of a cell: uppercase for White,
// lowercase for Black and '.' for an empty square.
func CellLetter(cell Piece) byte {
	if cell == Empty {
		return '.'
	}
	letter := ExtractPiece(cell).Letter()
	if ExtractColour(cell) == Black {
		letter += 'a' - 'A'
	}
	return letter
}
