package engine

import (
	"fmt"

	"github.com/herohde/zugzwang/pkg/board"
	"github.com/herohde/zugzwang/pkg/board/fen"
	"github.com/herohde/zugzwang/pkg/movegen"
)

// Game tracks a full played game: the current position, its move/board history (for
// threefold repetition), the fifty-move counter, and the derived GameState. The core
// engine package computes only legality and check; Game is where the caller-side
// bookkeeping spec Non-goals excludes from search lives.
type Game struct {
	current    *board.Board
	moves      []board.Move
	history    []*board.Board
	halfmove   int
	fullmove   int
	gameState  GameState
}

// NewGame starts a game from the standard starting position.
func NewGame() *Game {
	g := &Game{current: board.StartPos(), fullmove: 1}
	g.history = append(g.history, g.current)
	g.refreshState()
	return g
}

// NewGameFromFEN starts a game from an arbitrary position, with empty history -- threefold
// repetition can only be detected against moves played from this point forward.
func NewGameFromFEN(fenStr string) (*Game, error) {
	b, halfmove, fullmove, err := fen.Decode(fenStr)
	if err != nil {
		return nil, err
	}
	g := &Game{current: b, halfmove: halfmove, fullmove: fullmove}
	g.history = append(g.history, g.current)
	g.refreshState()
	return g, nil
}

// Board returns the current position.
func (g *Game) Board() *board.Board {
	return g.current
}

// Moves returns the moves played so far, in order.
func (g *Game) Moves() []board.Move {
	return append([]board.Move(nil), g.moves...)
}

// State returns the current game state.
func (g *Game) State() GameState {
	return g.gameState
}

// LegalMoves returns every legal move from the current position.
func (g *Game) LegalMoves() []board.Move {
	return movegen.LegalMoves(g.current)
}

// BoardAtPly returns the position after ply moves, where 0 is the starting position this
// game was created with.
func (g *Game) BoardAtPly(ply int) (*board.Board, error) {
	if ply < 0 || ply >= len(g.history) {
		return nil, fmt.Errorf("%w: ply %v out of range [0,%v)", ErrOutOfRange, ply, len(g.history))
	}
	return g.history[ply], nil
}

// MakeMove applies the move denoted by str (pure coordinate notation), provided it is
// legal in the current position and the game is still in progress.
func (g *Game) MakeMove(str string) error {
	if g.gameState != InProgress {
		return fmt.Errorf("%w: game is already over (%v)", board.ErrMalformedMove, g.gameState)
	}

	m, err := matchLegalMove(g.current, str)
	if err != nil {
		return err
	}

	if m.Capture || m.Piece == board.Pawn {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	if g.current.SideToMove == board.Black {
		g.fullmove++
	}

	g.current = g.current.MakeMove(m)
	g.moves = append(g.moves, m)
	g.history = append(g.history, g.current)
	g.refreshState()
	return nil
}

// ToFEN renders the current position, including the caller-tracked halfmove/fullmove
// counters.
func (g *Game) ToFEN() string {
	return fen.Encode(g.current, g.halfmove, g.fullmove)
}

func (g *Game) refreshState() {
	g.gameState = ComputeGameState(g.current, g.halfmove, g.history)
}
