package fen_test

import (
	"testing"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStartPos(t *testing.T) {
	b, halfmove, fullmove, err := fen.Decode(fen.StartFEN)
	require.NoError(t, err)
	assert.Equal(t, 0, halfmove)
	assert.Equal(t, 1, fullmove)
	assert.True(t, b.Equals(board.StartPos()))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.StartFEN,
		"8/8/8/8/8/5k2/6q1/7K w - - 0 1",                          // checkmate
		"8/8/8/8/8/8/p7/k6K w - - 0 1",                            // stalemate
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",                       // en passant
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",                    // castling
		"8/P7/8/8/8/8/8/4k2K w - - 0 1",                           // promotion
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			b, halfmove, fullmove, err := fen.Decode(s)
			require.NoError(t, err)
			assert.Equal(t, s, fen.Encode(b, halfmove, fullmove))
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // too few fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",        // wrong rank count
		"8/8/8/8/8/8/8/8 x KQkq - 0 1",                           // bad turn
		"8/8/8/8/8/8/8/8 w XQkq - 0 1",                           // bad castling
		"8/8/8/8/8/8/8/8 w KQkq z9 0 1",                          // bad en passant
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, _, _, err := fen.Decode(s)
			assert.Error(t, err)
		})
	}
}

func TestDecodeEnPassantSquare(t *testing.T) {
	b, _, _, err := fen.Decode("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	assert.Equal(t, board.D6, b.EnPassant)
}

func TestDecodeCastlingRights(t *testing.T) {
	b, _, _, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, board.FullCastling, b.Castling)
}
