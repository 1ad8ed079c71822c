// Package fen decodes and encodes Forsyth-Edwards Notation. Kept separate from package
// board so board.Board never has to import it -- fen depends on board, never the reverse.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/zugzwang/pkg/board"
)

// StartFEN is the FEN for the canonical starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a full 6-field FEN record into a board, along with the halfmove clock and
// fullmove number, which package board does not itself track.
func Decode(s string) (*board.Board, int, int, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, 0, 0, fmt.Errorf("%w: expected 6 fields, got %d in %q", board.ErrMalformedFEN, len(fields), s)
	}

	placements, err := decodePlacement(fields[0])
	if err != nil {
		return nil, 0, 0, err
	}

	turn, err := decodeTurn(fields[1])
	if err != nil {
		return nil, 0, 0, err
	}

	castling, ok := board.ParseCastling(fields[2])
	if !ok {
		return nil, 0, 0, fmt.Errorf("%w: invalid castling field %q", board.ErrMalformedFEN, fields[2])
	}

	ep, err := decodeEnPassant(fields[3])
	if err != nil {
		return nil, 0, 0, err
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: invalid halfmove clock %q", board.ErrMalformedFEN, fields[4])
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: invalid fullmove number %q", board.ErrMalformedFEN, fields[5])
	}

	b, err := board.NewBoard(placements, turn, castling, ep)
	if err != nil {
		return nil, 0, 0, err
	}
	return b, halfmove, fullmove, nil
}

func decodePlacement(field string) ([]board.Placement, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d in %q", board.ErrMalformedFEN, len(ranks), field)
	}

	var placements []board.Placement
	for i, rankStr := range ranks {
		r := board.Rank(7 - i) // FEN ranks run 8 (index 0) down to 1 (index 7)
		f := board.File(0)
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				f += board.File(ch - '0')
			default:
				p, ok := board.ParsePiece(ch)
				if !ok || f >= board.NumFiles {
					return nil, fmt.Errorf("%w: invalid rank %q", board.ErrMalformedFEN, rankStr)
				}
				c := board.White
				if ch >= 'a' && ch <= 'z' {
					c = board.Black
				}
				placements = append(placements, board.Placement{Square: board.NewSquare(f, r), Color: c, Piece: p})
				f++
			}
		}
		if f != board.NumFiles {
			return nil, fmt.Errorf("%w: rank %q does not cover 8 files", board.ErrMalformedFEN, rankStr)
		}
	}
	return placements, nil
}

func decodeTurn(field string) (board.Color, error) {
	switch field {
	case "w":
		return board.White, nil
	case "b":
		return board.Black, nil
	default:
		return 0, fmt.Errorf("%w: invalid side to move %q", board.ErrMalformedFEN, field)
	}
}

func decodeEnPassant(field string) (board.Square, error) {
	if field == "-" {
		return board.NoSquare, nil
	}
	sq, err := board.ParseSquareStr(field)
	if err != nil {
		return board.NoSquare, fmt.Errorf("%w: invalid en passant square %q: %v", board.ErrMalformedFEN, field, err)
	}
	return sq, nil
}

// Encode renders a board, halfmove clock and fullmove number back into a FEN string.
func Encode(b *board.Board, halfmove, fullmove int) string {
	var ranks []string
	for r := int(board.NumRanks) - 1; r >= 0; r-- {
		var sb strings.Builder
		empty := 0
		for f := board.File(0); f < board.NumFiles; f++ {
			sq := board.NewSquare(f, board.Rank(r))
			c, p, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := p.Letter()
			if c == board.White {
				letter = strings.ToUpper(letter)
			}
			sb.WriteString(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		ranks = append(ranks, sb.String())
	}

	return fmt.Sprintf("%s %s %s %s %d %d",
		strings.Join(ranks, "/"), b.SideToMove, b.Castling, enPassantField(b.EnPassant), halfmove, fullmove)
}

func enPassantField(sq board.Square) string {
	if sq == board.NoSquare {
		return "-"
	}
	return sq.String()
}
