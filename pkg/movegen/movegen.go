// Package movegen generates legal moves for a board: pseudo-legal candidates per piece,
// filtered by simulating each one and checking the moving side's king is left safe.
package movegen

import "github.com/herohde/zugzwang/pkg/board"

// LegalMoves returns every legal move for b.SideToMove.
func LegalMoves(b *board.Board) []board.Move {
	pseudo := pseudoLegalMoves(b)

	legal := make([]board.Move, 0, len(pseudo))
	for _, m := range pseudo {
		nb := b.MakeMove(m)
		if !nb.IsAttacked(nb.KingSquare(b.SideToMove), b.SideToMove.Opponent()) {
			legal = append(legal, m)
		}
	}
	return legal
}

// Perft counts the number of leaf positions reachable in exactly depth plies of legal play.
// depth 1 returns len(LegalMoves(b)).
func Perft(b *board.Board, depth int) uint64 {
	moves := LegalMoves(b)
	if depth == 1 {
		return uint64(len(moves))
	}

	var count uint64
	for _, m := range moves {
		count += Perft(b.MakeMove(m), depth-1)
	}
	return count
}

// pseudoLegalMoves generates every pseudo-legal move for b.SideToMove: respects
// piece-movement shape and occupancy but does not check whether the mover's own king ends
// up attacked.
func pseudoLegalMoves(b *board.Board) []board.Move {
	moves := make([]board.Move, 0, 64)
	c := b.SideToMove
	occupied := b.Occupied()
	own := b.OccupiedBy(c)
	enemy := b.OccupiedBy(c.Opponent())

	moves = genPawnMoves(b, c, occupied, enemy, moves)
	moves = genJumperMoves(b, c, board.Knight, own, board.KnightAttackboard, moves)
	moves = genSliderMoves(b, c, board.Bishop, own, occupied, board.BishopAttackboard, moves)
	moves = genSliderMoves(b, c, board.Rook, own, occupied, board.RookAttackboard, moves)
	moves = genSliderMoves(b, c, board.Queen, own, occupied, board.QueenAttackboard, moves)
	moves = genJumperMoves(b, c, board.King, own, board.KingAttackboard, moves)
	moves = genCastleMoves(b, c, occupied, moves)
	return moves
}

func genJumperMoves(b *board.Board, c board.Color, p board.Piece, own board.Bitboard, attacks func(board.Square) board.Bitboard, moves []board.Move) []board.Move {
	bb := b.Pieces(c, p)
	for bb != board.EmptyBitboard {
		var from board.Square
		from, bb = bb.PopLSB()

		targets := attacks(from) &^ own
		for targets != board.EmptyBitboard {
			var to board.Square
			to, targets = targets.PopLSB()
			_, _, capture := b.PieceAt(to)
			moves = append(moves, board.Move{From: from, To: to, Piece: p, Capture: capture})
		}
	}
	return moves
}

func genSliderMoves(b *board.Board, c board.Color, p board.Piece, own, occupied board.Bitboard, attacks func(board.Bitboard, board.Square) board.Bitboard, moves []board.Move) []board.Move {
	bb := b.Pieces(c, p)
	for bb != board.EmptyBitboard {
		var from board.Square
		from, bb = bb.PopLSB()

		targets := attacks(occupied, from) &^ own
		for targets != board.EmptyBitboard {
			var to board.Square
			to, targets = targets.PopLSB()
			_, _, capture := b.PieceAt(to)
			moves = append(moves, board.Move{From: from, To: to, Piece: p, Capture: capture})
		}
	}
	return moves
}

func genPawnMoves(b *board.Board, c board.Color, occupied, enemy board.Bitboard, moves []board.Move) []board.Move {
	pawns := b.Pieces(c, board.Pawn)
	promoRank := board.PawnPromotionRank(c)
	startRank := board.PawnStartRank(c)

	for p := pawns; p != board.EmptyBitboard; {
		var from board.Square
		from, p = p.PopLSB()

		single := board.PawnPushboard(c, board.BitMask(from), occupied)
		if single != board.EmptyBitboard {
			to := single.LSB()
			moves = appendPawnMove(moves, from, to, promoRank, false)

			if from.Rank() == startRank {
				double := board.PawnPushboard(c, single, occupied)
				if double != board.EmptyBitboard {
					moves = append(moves, board.Move{From: from, To: double.LSB(), Piece: board.Pawn, Special: board.DoublePush})
				}
			}
		}

		captures := board.PawnCaptureboard(c, board.BitMask(from)) & enemy
		for captures != board.EmptyBitboard {
			var to board.Square
			to, captures = captures.PopLSB()
			moves = appendPawnMove(moves, from, to, promoRank, true)
		}

		if b.EnPassant != board.NoSquare {
			if board.PawnCaptureboard(c, board.BitMask(from))&board.BitMask(b.EnPassant) != 0 {
				moves = append(moves, board.Move{From: from, To: b.EnPassant, Piece: board.Pawn, Capture: true, Special: board.EnPassant})
			}
		}
	}
	return moves
}

func appendPawnMove(moves []board.Move, from, to board.Square, promoRank board.Rank, capture bool) []board.Move {
	if to.Rank() == promoRank {
		for _, special := range []board.Special{board.PromoteKnight, board.PromoteBishop, board.PromoteRook, board.PromoteQueen} {
			moves = append(moves, board.Move{From: from, To: to, Piece: board.Pawn, Capture: capture, Special: special})
		}
		return moves
	}
	return append(moves, board.Move{From: from, To: to, Piece: board.Pawn, Capture: capture})
}

// castleSquares describes the squares relevant to one castling move: the right required,
// the squares that must be empty, the squares (besides the king's origin) that must not be
// attacked, and the king's destination.
type castleSquares struct {
	right        board.Castling
	mustBeEmpty  board.Bitboard
	mustBeSafe   []board.Square
	kingTo       board.Square
}

func genCastleMoves(b *board.Board, c board.Color, occupied board.Bitboard, moves []board.Move) []board.Move {
	opp := c.Opponent()
	kingFrom := b.KingSquare(c)

	for _, cs := range castlesFor(c) {
		if !b.Castling.Has(cs.right) {
			continue
		}
		if occupied&cs.mustBeEmpty != 0 {
			continue
		}
		if b.IsAttacked(kingFrom, opp) {
			continue
		}
		safe := true
		for _, sq := range cs.mustBeSafe {
			if b.IsAttacked(sq, opp) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		moves = append(moves, board.Move{From: kingFrom, To: cs.kingTo, Piece: board.King, Special: board.Castle})
	}
	return moves
}

func castlesFor(c board.Color) []castleSquares {
	if c == board.White {
		return []castleSquares{
			{
				right:       board.WhiteKingside,
				mustBeEmpty: board.BitMask(board.F1) | board.BitMask(board.G1),
				mustBeSafe:  []board.Square{board.F1, board.G1},
				kingTo:      board.G1,
			},
			{
				right:       board.WhiteQueenside,
				mustBeEmpty: board.BitMask(board.B1) | board.BitMask(board.C1) | board.BitMask(board.D1),
				mustBeSafe:  []board.Square{board.D1, board.C1},
				kingTo:      board.C1,
			},
		}
	}
	return []castleSquares{
		{
			right:       board.BlackKingside,
			mustBeEmpty: board.BitMask(board.F8) | board.BitMask(board.G8),
			mustBeSafe:  []board.Square{board.F8, board.G8},
			kingTo:      board.G8,
		},
		{
			right:       board.BlackQueenside,
			mustBeEmpty: board.BitMask(board.B8) | board.BitMask(board.C8) | board.BitMask(board.D8),
			mustBeSafe:  []board.Square{board.D8, board.C8},
			kingTo:      board.C8,
		},
	}
}
