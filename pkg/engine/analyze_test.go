package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/herohde/zugzwang/pkg/board/fen"
	"github.com/herohde/zugzwang/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeStreamsAndHalts(t *testing.T) {
	ctx := context.Background()
	e, err := engine.NewEngine(ctx, 6, 1<<16, 5000)
	require.NoError(t, err)

	h, out, err := e.Analyze(ctx, fen.StartFEN, 4)
	require.NoError(t, err)

	var last engine.Result
	for result := range out {
		last = result
		if result.DepthReached >= 2 {
			break
		}
	}

	final := h.Halt()
	assert.NotEmpty(t, final.Move)
	assert.GreaterOrEqual(t, final.DepthReached, last.DepthReached)

	// the channel must close once halted, within a reasonable bound.
	select {
	case _, ok := <-out:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Analyze channel did not close after Halt")
	}
}

func TestAnalyzeRejectsInvalidFEN(t *testing.T) {
	ctx := context.Background()
	e, err := engine.NewEngine(ctx, 4, 1024, 1000)
	require.NoError(t, err)

	_, _, err = e.Analyze(ctx, "not a fen", 4)
	assert.Error(t, err)
}
