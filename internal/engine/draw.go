package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// FiftyMoveLimit is the halfmove clock value at which either side may
// claim a draw.
const FiftyMoveLimit = 100

// minorMaterial records a side's pieces apart from the king, once it is
// known that no pawn, rook or queen is on the board.
type minorMaterial struct {
	count        int
	bishop       bool
	bishopOnDark bool
}

// HasInsufficientMaterial reports whether neither side can possibly mate:
// K vs K, a lone minor piece against a bare king, or one bishop each on
// squares of the same colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	var sides [2]minorMaterial
	for ci, column := range board.Squares {
		for ri, cell := range column {
			pieceType := chess.ExtractPiece(cell)
			switch pieceType {
			case chess.Empty, chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}
			side := &sides[chess.ExtractColour(cell)]
			side.count++
			if pieceType == chess.Bishop {
				side.bishop = true
				side.bishopOnDark = (ci+ri)%2 == 0
			}
		}
	}

	white, black := sides[chess.White], sides[chess.Black]
	switch {
	case white.count+black.count <= 1:
		return true
	case white.count == 1 && black.count == 1:
		return white.bishop && black.bishop && white.bishopOnDark == black.bishopOnDark
	}
	return false
}

// FiftyMoveRule reports whether fifty moves by each side have passed
// without a pawn move or capture.
func FiftyMoveRule(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}
