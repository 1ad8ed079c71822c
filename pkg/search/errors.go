package search

import "errors"

// ErrNoLegalMoves indicates SearchBestMove was called on a position with no legal moves
// (checkmate or stalemate) -- there is no move to return.
var ErrNoLegalMoves = errors.New("no legal moves")
