package board

// Piece is a chess piece kind, without color. 3 bits.
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

const NumPieces Piece = 6

// AllPieces enumerates the piece kinds in a stable order, used for iteration and for
// Zobrist/evaluation table indexing.
var AllPieces = [NumPieces]Piece{Pawn, Knight, Bishop, Rook, Queen, King}

func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return 0, false
	}
}

func (p Piece) IsValid() bool {
	return p < NumPieces
}

// Letter returns the lowercase SAN letter for the piece, e.g. for printing promotions.
func (p Piece) Letter() string {
	switch p {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

func (p Piece) String() string {
	return p.Letter()
}

// Index returns the piece-square table/Zobrist index color<<3|kind for (color, kind):
// 0..5 for White, 8..13 for Black.
func Index(c Color, p Piece) int {
	return int(c)<<3 | int(p)
}

const NumPieceIndices = 16 // color_bit<<3|kind leaves gaps, but bounds the table cheaply.
