// Package eval scores a board in centipawns from the side-to-move's perspective: material
// plus piece-square tables, mirrored for Black.
package eval

import "github.com/herohde/zugzwang/pkg/board"

// PieceValue returns the material value of a piece kind, in centipawns.
func PieceValue(p board.Piece) int {
	return pieceValues[p]
}

var pieceValues = [board.NumPieces]int{
	board.Pawn:   100,
	board.Knight: 300,
	board.Bishop: 300,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   10000,
}

// Piece-square tables, indexed a1=0..h8=63 for White; Black looks up the vertically
// mirrored square. Queen has no table (zero everywhere). Lifted from the classic
// Michniewski set.
var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, -10, -10, 0, 0, 0,
	0, 0, 0, 5, 5, 0, 0, 0,
	5, 5, 10, 20, 20, 5, 5, 5,
	10, 10, 10, 20, 20, 10, 10, 10,
	20, 20, 20, 30, 30, 30, 20, 20,
	30, 30, 30, 40, 40, 30, 30, 30,
	90, 90, 90, 90, 90, 90, 90, 90,
}

var knightTable = [64]int{
	-5, -10, 0, 0, 0, 0, -10, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 5, 20, 10, 10, 20, 5, -5,
	-5, 10, 20, 30, 30, 20, 10, -5,
	-5, 10, 20, 30, 30, 20, 10, -5,
	-5, 5, 20, 20, 20, 20, 5, -5,
	-5, 0, 0, 10, 10, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
}

var bishopTable = [64]int{
	0, 0, -10, 0, 0, -10, 0, 0,
	0, 30, 0, 0, 0, 0, 30, 0,
	0, 10, 0, 0, 0, 0, 10, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 0, 10, 10, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var rookTable = [64]int{
	0, 0, 0, 20, 20, 0, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	0, 0, 10, 20, 20, 10, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	50, 50, 50, 50, 50, 50, 50, 50,
}

var kingTable = [64]int{
	0, 0, 5, 0, -15, 0, 10, 0,
	0, 5, 5, -5, -5, 0, 5, 0,
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 5, 10, 20, 20, 10, 5, 0,
	0, 5, 10, 20, 20, 10, 5, 0,
	0, 5, 5, 10, 10, 5, 5, 0,
	0, 0, 5, 5, 5, 5, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// mirrorSquare returns the vertically mirrored square, used to look up Black's
// piece-square value in a White-oriented table.
func mirrorSquare(sq board.Square) board.Square {
	rank := int(sq.Rank())
	file := int(sq.File())
	return board.Square((7-rank)*8 + file)
}

func pieceSquareValue(p board.Piece, sq board.Square) int {
	switch p {
	case board.Pawn:
		return pawnTable[sq]
	case board.Knight:
		return knightTable[sq]
	case board.Bishop:
		return bishopTable[sq]
	case board.Rook:
		return rookTable[sq]
	case board.King:
		return kingTable[sq]
	default:
		return 0 // Queen
	}
}

// colorScore sums material plus piece-square value for every piece of c on b.
func colorScore(b *board.Board, c board.Color) int {
	score := 0
	for _, p := range board.AllPieces {
		bb := b.Pieces(c, p)
		for bb != board.EmptyBitboard {
			var sq board.Square
			sq, bb = bb.PopLSB()
			score += pieceValues[p]
			if c == board.White {
				score += pieceSquareValue(p, sq)
			} else {
				score += pieceSquareValue(p, mirrorSquare(sq))
			}
		}
	}
	return score
}

// Evaluate scores b in centipawns from the perspective of the side to move: positive
// favors the mover, negative favors the opponent.
func Evaluate(b *board.Board) int {
	score := colorScore(b, board.White) - colorScore(b, board.Black)
	if b.SideToMove == board.Black {
		return -score
	}
	return score
}
