package engine_test

import (
	"context"
	"testing"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/engine"
	"github.com/herohde/zugzwang/pkg/movegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBotMakeMove(t *testing.T) {
	ctx := context.Background()
	bot := engine.NewSearchBot(ctx, 3, 1<<16, 2000)

	b := board.StartPos()
	m, err := bot.MakeMove(ctx, b)
	require.NoError(t, err)

	legal := movegen.LegalMoves(b)
	found := false
	for _, lm := range legal {
		if lm.Equals(m) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRandomBotMakeMove(t *testing.T) {
	ctx := context.Background()
	bot := engine.NewRandomBot(1)

	b := board.StartPos()
	m, err := bot.MakeMove(ctx, b)
	require.NoError(t, err)

	legal := movegen.LegalMoves(b)
	found := false
	for _, lm := range legal {
		if lm.Equals(m) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRandomBotNoLegalMoves(t *testing.T) {
	ctx := context.Background()
	bot := engine.NewRandomBot(1)

	b, err := board.NewBoard([]board.Placement{
		{Square: board.H1, Color: board.White, Piece: board.King},
		{Square: board.F2, Color: board.Black, Piece: board.King},
		{Square: board.G2, Color: board.Black, Piece: board.Queen},
	}, board.White, board.NoCastling, board.NoSquare)
	require.NoError(t, err)

	_, err = bot.MakeMove(ctx, b)
	assert.Error(t, err)
}
