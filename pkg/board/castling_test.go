package board_test

import (
	"testing"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestCastlingStringAndParse(t *testing.T) {
	tests := []struct {
		str string
		c   board.Castling
	}{
		{"-", board.NoCastling},
		{"KQkq", board.FullCastling},
		{"Kq", board.WhiteKingside | board.BlackQueenside},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.c.String())
			parsed, ok := board.ParseCastling(tt.str)
			assert.True(t, ok)
			assert.Equal(t, tt.c, parsed)
		})
	}
}

func TestParseCastlingInvalid(t *testing.T) {
	_, ok := board.ParseCastling("Xq")
	assert.False(t, ok)
}

func TestKingsideQueensideRight(t *testing.T) {
	assert.Equal(t, board.WhiteKingside, board.KingsideRight(board.White))
	assert.Equal(t, board.BlackKingside, board.KingsideRight(board.Black))
	assert.Equal(t, board.WhiteQueenside, board.QueensideRight(board.White))
	assert.Equal(t, board.BlackQueenside, board.QueensideRight(board.Black))
}

func TestColorOpponent(t *testing.T) {
	assert.Equal(t, board.Black, board.White.Opponent())
	assert.Equal(t, board.White, board.Black.Opponent())
}

func TestPieceParseAndLetter(t *testing.T) {
	tests := []struct {
		r rune
		p board.Piece
	}{
		{'p', board.Pawn}, {'N', board.Knight}, {'b', board.Bishop},
		{'R', board.Rook}, {'q', board.Queen}, {'K', board.King},
	}
	for _, tt := range tests {
		p, ok := board.ParsePiece(tt.r)
		assert.True(t, ok)
		assert.Equal(t, tt.p, p)
	}

	_, ok := board.ParsePiece('x')
	assert.False(t, ok)
}
