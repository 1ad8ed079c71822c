package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/movegen"
	"github.com/herohde/zugzwang/pkg/search"
)

// Bot picks a move for the side to move on b. A variant (sum type) over strategies is
// preferred here to an inheritance hierarchy -- every bot shares this one operation and
// nothing else.
type Bot interface {
	MakeMove(ctx context.Context, b *board.Board) (board.Move, error)
}

// SearchBot picks a move via full alpha-beta search.
type SearchBot struct {
	Search   *search.Engine
	MaxDepth int
	TimeMs   int
}

// NewSearchBot builds a SearchBot with its own transposition table and Zobrist seed.
func NewSearchBot(ctx context.Context, maxDepth, ttEntries, timeMs int) *SearchBot {
	return &SearchBot{
		Search:   search.NewEngine(ctx, ttEntries, defaultZobristSeed),
		MaxDepth: maxDepth,
		TimeMs:   timeMs,
	}
}

func (s *SearchBot) MakeMove(ctx context.Context, b *board.Board) (board.Move, error) {
	pv, err := s.Search.SearchBestMove(ctx, b, s.MaxDepth, s.TimeMs)
	if err != nil {
		return board.Move{}, err
	}
	return pv.Move, nil
}

// RandomBot picks a uniformly random legal move. Useful as a search opponent in tests and
// as a trivial baseline.
type RandomBot struct {
	Rand *rand.Rand
}

// NewRandomBot builds a RandomBot seeded from seed.
func NewRandomBot(seed int64) *RandomBot {
	return &RandomBot{Rand: rand.New(rand.NewSource(seed))}
}

func (r *RandomBot) MakeMove(_ context.Context, b *board.Board) (board.Move, error) {
	moves := movegen.LegalMoves(b)
	if len(moves) == 0 {
		return board.Move{}, fmt.Errorf("%w: no legal moves from this position", search.ErrNoLegalMoves)
	}
	return moves[r.Rand.Intn(len(moves))], nil
}
