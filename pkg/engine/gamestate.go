package engine

import (
	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/movegen"
)

// GameState is the caller-facing outcome of a position, given its history. The core only
// computes legality and check; fifty-move and repetition bookkeeping is supplied by the
// caller, per spec Non-goals.
type GameState int

const (
	InProgress GameState = iota
	Checkmate
	Stalemate
	DrawByInsufficientMaterial
	DrawByFiftyMoveRule
	DrawByRepetition
)

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case DrawByInsufficientMaterial:
		return "DrawByInsufficientMaterial"
	case DrawByFiftyMoveRule:
		return "DrawByFiftyMoveRule"
	case DrawByRepetition:
		return "DrawByRepetition"
	default:
		return "?"
	}
}

// ComputeGameState derives the outcome of b, given the halfmove clock (for the fifty-move
// rule) and the position history (for threefold repetition, compared by full board
// equality per spec §4.2's Equality contract).
func ComputeGameState(b *board.Board, halfmoveClock int, history []*board.Board) GameState {
	if len(movegen.LegalMoves(b)) == 0 {
		if b.InCheck {
			return Checkmate
		}
		return Stalemate
	}
	if halfmoveClock >= 100 {
		return DrawByFiftyMoveRule
	}
	if b.HasInsufficientMaterial() {
		return DrawByInsufficientMaterial
	}

	repeats := 0
	for _, h := range history {
		if h.Equals(b) {
			repeats++
		}
	}
	if repeats >= 3 {
		return DrawByRepetition
	}
	return InProgress
}
