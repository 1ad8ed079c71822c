package eval_test

import (
	"testing"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceValue(t *testing.T) {
	assert.Equal(t, 100, eval.PieceValue(board.Pawn))
	assert.Equal(t, 300, eval.PieceValue(board.Knight))
	assert.Equal(t, 300, eval.PieceValue(board.Bishop))
	assert.Equal(t, 500, eval.PieceValue(board.Rook))
	assert.Equal(t, 900, eval.PieceValue(board.Queen))
	assert.Equal(t, 10000, eval.PieceValue(board.King))
}

func TestEvaluateStartPosIsSymmetric(t *testing.T) {
	assert.Equal(t, 0, eval.Evaluate(board.StartPos()))
}

// A pawn's piece-square value is mirrored between colors: an advanced White pawn with White
// to move should score identically to the same pawn, color and side-to-move both swapped,
// since Evaluate is always reported from the mover's perspective.
func TestEvaluateMirrorsAcrossColor(t *testing.T) {
	white, err := board.NewBoard([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.D7, Color: board.White, Piece: board.Pawn},
	}, board.White, board.NoCastling, board.NoSquare)
	require.NoError(t, err)

	black, err := board.NewBoard([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.D2, Color: board.Black, Piece: board.Pawn},
	}, board.Black, board.NoCastling, board.NoSquare)
	require.NoError(t, err)

	assert.Equal(t, eval.Evaluate(white), eval.Evaluate(black))
}

func TestEvaluateFavorsMaterial(t *testing.T) {
	withQueen, err := board.NewBoard([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.D4, Color: board.White, Piece: board.Queen},
	}, board.White, board.NoCastling, board.NoSquare)
	require.NoError(t, err)

	bare, err := board.NewBoard([]board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
	}, board.White, board.NoCastling, board.NoSquare)
	require.NoError(t, err)

	assert.Greater(t, eval.Evaluate(withQueen), eval.Evaluate(bare))
}
