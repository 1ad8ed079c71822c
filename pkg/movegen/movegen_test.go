package movegen_test

import (
	"testing"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/board/fen"
	"github.com/herohde/zugzwang/pkg/movegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Perft counts from the standard starting position. See
// https://www.chessprogramming.org/Perft_Results. Depth 5 is the slowest and is skipped in
// short mode.
func TestPerftStartPos(t *testing.T) {
	b := board.StartPos()

	tests := []struct {
		depth int
		nodes uint64
		long  bool
	}{
		{1, 20, false},
		{2, 400, false},
		{3, 8902, false},
		{4, 197281, false},
		{5, 4865609, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(intName(tt.depth), func(t *testing.T) {
			if tt.long && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			assert.Equal(t, tt.nodes, movegen.Perft(b, tt.depth))
		})
	}
}

func intName(i int) string {
	names := map[int]string{1: "depth1", 2: "depth2", 3: "depth3", 4: "depth4", 5: "depth5"}
	return names[i]
}

func TestLegalMovesCheckmate(t *testing.T) {
	b, _, _, err := fen.Decode("8/8/8/8/8/5k2/6q1/7K w - - 0 1")
	require.NoError(t, err)

	moves := movegen.LegalMoves(b)
	assert.Empty(t, moves)
	assert.True(t, b.InCheck)
}

func TestLegalMovesStalemate(t *testing.T) {
	b, _, _, err := fen.Decode("8/8/8/8/8/8/p7/k6K w - - 0 1")
	require.NoError(t, err)

	moves := movegen.LegalMoves(b)
	assert.Empty(t, moves)
	assert.False(t, b.InCheck)
}

func TestLegalMovesEnPassant(t *testing.T) {
	b, _, _, err := fen.Decode("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	moves := movegen.LegalMoves(b)
	found := false
	for _, m := range moves {
		if m.From == board.E5 && m.To == board.D6 && m.Special == board.EnPassant {
			found = true
		}
	}
	assert.True(t, found, "expected e5d6 en passant capture among legal moves")
}

func TestLegalMovesCastling(t *testing.T) {
	b, _, _, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	moves := movegen.LegalMoves(b)
	var castles []board.Move
	for _, m := range moves {
		if m.Special == board.Castle {
			castles = append(castles, m)
		}
	}
	assert.Len(t, castles, 2)
}

func TestLegalMovesPromotion(t *testing.T) {
	b, _, _, err := fen.Decode("8/P7/8/8/8/8/8/4k2K w - - 0 1")
	require.NoError(t, err)

	moves := movegen.LegalMoves(b)
	count := 0
	for _, m := range moves {
		if m.From == board.A7 && m.To == board.A8 && m.Special.IsPromotion() {
			count++
		}
	}
	assert.Equal(t, 4, count) // one move per promotion piece
}

func TestLegalMovesMidgameScenario(t *testing.T) {
	b, _, _, err := fen.Decode("r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	require.NoError(t, err)

	moves := movegen.LegalMoves(b)
	assert.NotEmpty(t, moves)
	assert.False(t, b.InCheck)
}
