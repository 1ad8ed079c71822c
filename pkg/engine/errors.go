package engine

import "errors"

// ErrOutOfRange indicates a construction parameter was rejected: a zero or negative time
// budget, transposition table size, or search depth. Game.BoardAtPly also returns it for a
// ply outside the game's history.
var ErrOutOfRange = errors.New("value out of range")
