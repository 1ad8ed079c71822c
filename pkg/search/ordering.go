package search

import (
	"sort"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/eval"
)

const pvMoveScore = 10_000

// orderMoves sorts moves descending by priority: the PV move first (if scorePV and present),
// then captures by MVV/LVA (10*victim - attacker), then everything else at 0. A capture by
// the king scores below 0 and so sorts after the quiet moves. Stable, so ties preserve
// generation order.
func (e *Engine) orderMoves(b *board.Board, moves []board.Move, pv board.Move, scorePV bool) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moveScore(b, moves[i], pv, scorePV) > moveScore(b, moves[j], pv, scorePV)
	})
}

func moveScore(b *board.Board, m, pv board.Move, scorePV bool) int {
	if scorePV && m.Equals(pv) {
		return pvMoveScore
	}
	if !m.Capture {
		return 0
	}

	victim := board.Pawn
	if m.Special != board.EnPassant {
		if _, p, ok := b.PieceAt(m.To); ok {
			victim = p
		}
	}
	return 10*eval.PieceValue(victim) - eval.PieceValue(m.Piece)
}
