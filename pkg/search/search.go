// Package search implements iterative-deepening negamax alpha-beta search with
// quiescence, a triangular principal-variation table, move ordering and a transposition
// table.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/eval"
	"github.com/herohde/zugzwang/pkg/movegen"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

const (
	// maxPly bounds the triangular PV table and the check-extension recursion depth.
	maxPly = 128

	// Mate is the base magnitude of a checkmate score; search returns -Mate+ply for a mate
	// found ply moves from the root, so scores stay sortable by distance to mate.
	Mate = 490_000

	// window is the root alpha-beta window, wide enough to never clip a real evaluation or
	// a mate score.
	window = 500_000
)

// PV is the result of a completed (or soft-aborted) search: the best move found, its
// principal variation, and bookkeeping about the search that produced it.
type PV struct {
	Move         board.Move
	Moves        []board.Move
	Score        int
	Nodes        uint64
	DepthReached int
	Time         time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", p.DepthReached, p.Score, p.Nodes, p.Time, board.PrintMoves(p.Moves))
}

// Engine runs search against a fixed-size transposition table and a fixed Zobrist key
// table. Not safe for concurrent use -- all mutable search state (node counter, PV table,
// stop flag) lives on the single instance, per the single-threaded scheduling model.
type Engine struct {
	tt      *Table
	zobrist *board.ZobristTable

	nodes      uint64
	deadline   time.Time
	shouldStop bool

	pvTable [maxPly][maxPly]board.Move
	pvLen   [maxPly]int
}

// NewEngine builds a search engine with its own transposition table of ttEntries entries,
// and a Zobrist key table seeded from seed (fixed seed gives reproducible search, per the
// determinism invariant).
func NewEngine(ctx context.Context, ttEntries int, seed int64) *Engine {
	return &Engine{
		tt:      NewTable(ctx, ttEntries),
		zobrist: board.NewZobristTable(seed),
	}
}

// SearchBestMove runs iterative deepening from 1..maxDepth, honoring a wall-clock soft
// deadline of timeMs milliseconds, shared across the whole call. Returns the PV of the last
// fully-completed iteration; if even depth 1 could not complete, returns the first legal
// move in generation order (any legal move is acceptable per spec).
func (e *Engine) SearchBestMove(ctx context.Context, b *board.Board, maxDepth int, timeMs int) (PV, error) {
	moves := movegen.LegalMoves(b)
	if len(moves) == 0 {
		return PV{}, fmt.Errorf("%w: no legal moves from this position", ErrNoLegalMoves)
	}

	e.resetSearchState(timeMs)

	start := time.Now()
	best := PV{Move: moves[0], Moves: moves[:1]}

	for depth := 1; depth <= maxDepth; depth++ {
		score := e.search(ctx, b, -window, window, depth, 0, true)
		if e.shouldStop || contextx.IsCancelled(ctx) {
			break
		}

		best = e.rootPV(moves, score, depth, time.Since(start))
		logw.Debugf(ctx, "Searched %v", best)
	}

	return best, nil
}

// SearchDepth runs negamax to exactly depth plies from the root and returns its PV, honoring
// a fresh wall-clock deadline of timeMs milliseconds for this call only. Unlike
// SearchBestMove, it does not iterate depths itself: a caller doing its own iterative
// deepening (e.g. a streaming Analyze API) calls this once per depth, reusing the same
// transposition table across calls.
func (e *Engine) SearchDepth(ctx context.Context, b *board.Board, depth int, timeMs int) (PV, error) {
	moves := movegen.LegalMoves(b)
	if len(moves) == 0 {
		return PV{}, fmt.Errorf("%w: no legal moves from this position", ErrNoLegalMoves)
	}

	e.resetSearchState(timeMs)

	start := time.Now()
	score := e.search(ctx, b, -window, window, depth, 0, true)
	return e.rootPV(moves, score, depth, time.Since(start)), nil
}

func (e *Engine) resetSearchState(timeMs int) {
	e.nodes = 0
	e.shouldStop = false
	e.deadline = time.Now().Add(time.Duration(timeMs) * time.Millisecond)
	for ply := range e.pvLen {
		e.pvLen[ply] = 0
	}
}

func (e *Engine) rootPV(rootMoves []board.Move, score, depth int, elapsed time.Duration) PV {
	pvMoves := append([]board.Move(nil), e.pvTable[0][:e.pvLen[0]]...)
	if len(pvMoves) == 0 {
		pvMoves = rootMoves[:1]
	}
	return PV{
		Move:         pvMoves[0],
		Moves:        pvMoves,
		Score:        score,
		Nodes:        e.nodes,
		DepthReached: depth,
		Time:         elapsed,
	}
}

// search is the negamax alpha-beta recursion. Returns the score for the side to move.
func (e *Engine) search(ctx context.Context, b *board.Board, alpha, beta, depth, ply int, followPV bool) int {
	e.nodes++
	if e.nodes%5000 == 0 {
		e.checkTime(ctx)
	}
	if e.shouldStop {
		return 0
	}

	if depth == 0 || ply >= maxPly-1 {
		return e.quiescence(ctx, b, alpha, beta, ply)
	}

	hash := e.zobrist.Hash(b)
	if ply > 0 {
		// The root is always searched, so an entry left by an earlier call cannot answer it
		// with a score but no root move.
		if score, ok := e.tt.Probe(hash, depth, alpha, beta); ok {
			return score
		}
	}

	moves := movegen.LegalMoves(b)
	if len(moves) == 0 {
		if b.InCheck {
			return -Mate + ply
		}
		return 0
	}

	pvMove, hasPV := e.pvMove(ply)
	if followPV {
		followPV = false
		if hasPV {
			for _, m := range moves {
				if m.Equals(pvMove) {
					followPV = true
					break
				}
			}
		}
	}
	e.pvLen[ply] = 0

	e.orderMoves(b, moves, pvMove, followPV)

	nextDepth := depth - 1
	if b.InCheck {
		nextDepth = depth
	}

	bound := Upper
	var bestMove board.Move
	for i, m := range moves {
		score := -e.search(ctx, b.MakeMove(m), -beta, -alpha, nextDepth, ply+1, followPV && i == 0)
		if e.shouldStop {
			return 0
		}

		if score >= beta {
			e.tt.Store(hash, depth, beta, Lower, m)
			return beta
		}
		if score > alpha {
			alpha = score
			bound = Exact
			bestMove = m
			e.updatePV(ply, m)
		}
	}

	if bound != Exact {
		bestMove = moves[0]
	}
	e.tt.Store(hash, depth, alpha, bound, bestMove)
	return alpha
}

// quiescence extends search along capture lines only, to avoid the horizon effect at the
// depth-0 leaves of the main search.
func (e *Engine) quiescence(ctx context.Context, b *board.Board, alpha, beta, ply int) int {
	e.nodes++
	if e.nodes%5000 == 0 {
		e.checkTime(ctx)
	}
	if e.shouldStop {
		return 0
	}

	score := eval.Evaluate(b)
	if score >= beta {
		return beta
	}
	if score > alpha {
		alpha = score
	}

	moves := movegen.LegalMoves(b)
	e.orderMoves(b, moves, board.Move{}, false)

	for _, m := range moves {
		if !m.Capture {
			continue
		}
		score := -e.quiescence(ctx, b.MakeMove(m), -beta, -alpha, ply+1)
		if e.shouldStop {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func (e *Engine) checkTime(ctx context.Context) {
	if contextx.IsCancelled(ctx) || time.Now().After(e.deadline) {
		e.shouldStop = true
	}
}

func (e *Engine) pvMove(ply int) (board.Move, bool) {
	if e.pvLen[ply] == 0 {
		return board.Move{}, false
	}
	return e.pvTable[ply][0], true
}

// updatePV copies the child row's PV into this row, shifted by one: the triangular table.
func (e *Engine) updatePV(ply int, m board.Move) {
	e.pvTable[ply][0] = m
	copy(e.pvTable[ply][1:], e.pvTable[ply+1][:e.pvLen[ply+1]])
	e.pvLen[ply] = e.pvLen[ply+1] + 1
}
