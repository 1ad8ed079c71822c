package board

import "errors"

// ErrMalformedFEN indicates a FEN string failed to parse: missing fields, a rank with the
// wrong number of squares, an unknown piece letter, an invalid castling string, or an
// invalid en passant square.
var ErrMalformedFEN = errors.New("malformed FEN")

// ErrMalformedMove indicates a move string did not parse as pure coordinate notation, or
// does not match a move that can be played in the position.
var ErrMalformedMove = errors.New("malformed move")
