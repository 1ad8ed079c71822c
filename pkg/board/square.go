// Package board contains the chess position representation: squares, bitboards, pieces,
// moves and the board itself, along with Zobrist hashing.
package board

import "fmt"

// Square is a square on the board, numbered a1=0 .. h8=63: s = rank*8 + file, rank 0 is
// White's first rank and file 0 is the a-file. This matches a natural bit index into a
// Bitboard. 6 bits.
type Square int8

// NoSquare represents the absence of a square, e.g. no en passant target.
const NoSquare Square = -1

const (
	ZeroSquare Square = 0
	NumSquares Square = 64
)

// Named squares, a1 through h8.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1

	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2

	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3

	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4

	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5

	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6

	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7

	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from a file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// ParseSquare parses a file and rank rune pair, such as ('a', '1').
func ParseSquare(f, r rune) (Square, error) {
	file, ok := ParseFile(f)
	if !ok {
		return NoSquare, fmt.Errorf("invalid file: %q", f)
	}
	rank, ok := ParseRank(r)
	if !ok {
		return NoSquare, fmt.Errorf("invalid rank: %q", r)
	}
	return NewSquare(file, rank), nil
}

// ParseSquareStr parses a two-character algebraic square, such as "a1" or "h8".
func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", str)
	}
	return ParseSquare(runes[0], runes[1])
}

// IsValid returns true iff the square is in range [0;64).
func (s Square) IsValid() bool {
	return s >= ZeroSquare && s < NumSquares
}

func (s Square) File() File {
	return File(int(s) % 8)
}

func (s Square) Rank() Rank {
	return Rank(int(s) / 8)
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// Rank is a chess board rank, Rank1=0 .. Rank8=7.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const NumRanks Rank = 8

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return Rank(r - '1'), true
}

func (r Rank) String() string {
	return string(rune('1' + r))
}

// File is a chess board file, FileA=0 .. FileH=7.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const NumFiles File = 8

func ParseFile(r rune) (File, bool) {
	switch {
	case r >= 'a' && r <= 'h':
		return File(r - 'a'), true
	case r >= 'A' && r <= 'H':
		return File(r - 'A'), true
	default:
		return 0, false
	}
}

func (f File) String() string {
	return string(rune('a' + f))
}
