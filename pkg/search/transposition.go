package search

import (
	"context"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/seekerror/logw"
)

// Bound classifies the precision of a stored transposition table score, relative to the
// alpha-beta window it was computed under.
type Bound uint8

const (
	Exact Bound = iota
	Lower
	Upper
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "Exact"
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	default:
		return "?"
	}
}

// entry is one transposition table slot. A zero-value entry is distinguished from a real
// one by the valid flag, which Store always sets, so a real position whose hash is 0 is
// not mistaken for an empty slot; a valid entry is then matched on the full hash.
type entry struct {
	hash  board.ZobristHash
	depth int
	score int
	bound Bound
	best  board.Move
	valid bool
}

// Table is a fixed-size, direct-mapped transposition table. Always-replace: a probe that
// misses the slot's stored hash is treated as a miss, and a store always overwrites
// whatever was there, per spec -- no aging, no two-tier replacement.
type Table struct {
	entries []entry
}

// NewTable allocates a table of exactly n entries.
func NewTable(ctx context.Context, n int) *Table {
	logw.Infof(ctx, "Allocating transposition table with %v entries", n)
	return &Table{entries: make([]entry, n)}
}

func (t *Table) index(hash board.ZobristHash) int {
	return int(uint64(hash) % uint64(len(t.entries)))
}

// Probe looks up hash. If the stored entry is deep enough for depth, its score is usable
// under the (alpha, beta) window according to its bound; the second return reports hit.
func (t *Table) Probe(hash board.ZobristHash, depth, alpha, beta int) (int, bool) {
	e := t.entries[t.index(hash)]
	if !e.valid || e.hash != hash || e.depth < depth {
		return 0, false
	}

	switch e.bound {
	case Exact:
		return e.score, true
	case Lower:
		if e.score >= beta {
			return e.score, true
		}
	case Upper:
		if e.score <= alpha {
			return e.score, true
		}
	}
	return 0, false
}

// BestMove returns the best move recorded for hash, if any entry (at any depth) exists.
func (t *Table) BestMove(hash board.ZobristHash) (board.Move, bool) {
	e := t.entries[t.index(hash)]
	if !e.valid || e.hash != hash {
		return board.Move{}, false
	}
	return e.best, true
}

// Store overwrites the slot for hash.
func (t *Table) Store(hash board.ZobristHash, depth, score int, bound Bound, best board.Move) {
	t.entries[t.index(hash)] = entry{hash: hash, depth: depth, score: score, bound: bound, best: best, valid: true}
}
