// Package engine is the external-facing facade over board, movegen and search: FEN/move
// string plumbing in, move strings and search statistics out. This is the surface a web
// server, UCI bridge or test harness would call through -- those callers are explicitly
// out of scope for this repository.
package engine

import (
	"context"
	"fmt"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/board/fen"
	"github.com/herohde/zugzwang/pkg/movegen"
	"github.com/herohde/zugzwang/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

// defaultZobristSeed fixes search determinism: same board, depth and seed always yield the
// same move (spec's determinism invariant).
const defaultZobristSeed = 0xC0FFEE

var version = build.NewVersion(0, 1, 0)

// Version returns the engine's name and version, e.g. for a console banner.
func Version() string {
	return fmt.Sprintf("zugzwang %v", version)
}

// Result is the outcome of a BestMove search.
type Result struct {
	Move         string
	Score        int
	Nodes        uint64
	DepthReached int
	PV           []string
}

// Engine is the top-level entry point: a fixed-size transposition table and search
// parameters, constructed once and reused across searches.
type Engine struct {
	search   *search.Engine
	maxDepth int
	timeMs   int
}

// NewEngine constructs an engine with a transposition table of ttEntries entries, searching
// to at most maxDepth with a soft deadline of timeMs milliseconds per BestMove call.
func NewEngine(ctx context.Context, maxDepth, ttEntries, timeMs int) (*Engine, error) {
	if maxDepth <= 0 {
		return nil, fmt.Errorf("%w: max depth must be positive, got %v", ErrOutOfRange, maxDepth)
	}
	if ttEntries <= 0 {
		return nil, fmt.Errorf("%w: tt entries must be positive, got %v", ErrOutOfRange, ttEntries)
	}
	if timeMs <= 0 {
		return nil, fmt.Errorf("%w: time budget must be positive, got %v", ErrOutOfRange, timeMs)
	}

	logw.Infof(ctx, "Constructing engine: maxDepth=%v ttEntries=%v timeMs=%v", maxDepth, ttEntries, timeMs)
	return &Engine{
		search:   search.NewEngine(ctx, ttEntries, defaultZobristSeed),
		maxDepth: maxDepth,
		timeMs:   timeMs,
	}, nil
}

// LegalMovesFromFEN returns every legal move from the position encoded by fenStr, in pure
// coordinate notation.
func (e *Engine) LegalMovesFromFEN(fenStr string) ([]string, error) {
	b, _, _, err := fen.Decode(fenStr)
	if err != nil {
		return nil, err
	}
	return formatMoves(movegen.LegalMoves(b)), nil
}

// BestMove runs the configured search from the position encoded by fenStr.
func (e *Engine) BestMove(ctx context.Context, fenStr string) (Result, error) {
	b, _, _, err := fen.Decode(fenStr)
	if err != nil {
		return Result{}, err
	}

	pv, err := e.search.SearchBestMove(ctx, b, e.maxDepth, e.timeMs)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Move:         pv.Move.String(),
		Score:        pv.Score,
		Nodes:        pv.Nodes,
		DepthReached: pv.DepthReached,
		PV:           formatMoves(pv.Moves),
	}, nil
}

// ApplyMove parses moveStr in pure coordinate notation, matches it against the legal moves
// from fenStr, and returns the resulting position as a new FEN string.
func ApplyMove(fenStr, moveStr string) (string, error) {
	b, halfmove, fullmove, err := fen.Decode(fenStr)
	if err != nil {
		return "", err
	}

	m, err := matchLegalMove(b, moveStr)
	if err != nil {
		return "", err
	}

	nb := b.MakeMove(m)

	nextHalfmove := halfmove + 1
	if m.Capture || m.Piece == board.Pawn {
		nextHalfmove = 0
	}
	nextFullmove := fullmove
	if b.SideToMove == board.Black {
		nextFullmove++
	}

	return fen.Encode(nb, nextHalfmove, nextFullmove), nil
}

// matchLegalMove resolves a pure coordinate-notation string against the legal moves from b,
// filling in the capture/special metadata that ParseMove alone cannot recover.
func matchLegalMove(b *board.Board, str string) (board.Move, error) {
	parsed, err := board.ParseMove(str)
	if err != nil {
		return board.Move{}, err
	}
	for _, m := range movegen.LegalMoves(b) {
		if m.Equals(parsed) {
			return m, nil
		}
	}
	return board.Move{}, fmt.Errorf("%w: %q is not a legal move in this position", board.ErrMalformedMove, str)
}

func formatMoves(moves []board.Move) []string {
	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	return strs
}
