package movegen

import (
	"github.com/daystram/chessington/board"
	"github.com/daystram/chessington/position"
)

// pawnMoves computes straight advances, diagonal captures and en passant
// independently, so a blocked pawn may still capture. A pawn on its last row
// never advances.
func pawnMoves(b Board, p board.Piece, from position.Square) []position.Square {
	fwd := p.Side.Forward()
	var moves []position.Square

	one := from.Add(position.Offset{DRow: fwd})
	if from.Row != p.Side.LastRow() && b.IsInBounds(one) && !occupied(b, one) {
		moves = append(moves, one)
		two := one.Add(position.Offset{DRow: fwd})
		if from.Row == p.Side.PawnStartRow() && b.IsInBounds(two) && !occupied(b, two) {
			moves = append(moves, two)
		}
	}

	for _, dc := range []int8{-1, 1} {
		to := from.Add(position.Offset{DRow: fwd, DCol: dc})
		if !b.IsInBounds(to) {
			continue
		}
		if target, ok := b.GetPiece(to); ok && target.Side != p.Side {
			moves = append(moves, to)
		}
	}

	if from.Row == p.Side.EnPassantRow() {
		for _, dc := range []int8{-1, 1} {
			if canCaptureEnPassant(b, p, from.Add(position.Offset{DCol: dc})) {
				moves = append(moves, from.Add(position.Offset{DRow: fwd, DCol: dc}))
			}
		}
	}

	return moves
}

// canCaptureEnPassant reports whether the pawn beside the capturer on lateral
// advanced two rows on the move just played.
func canCaptureEnPassant(b Board, p board.Piece, lateral position.Square) bool {
	if !b.IsInBounds(lateral) {
		return false
	}
	target, ok := b.GetPiece(lateral)
	if !ok {
		return false
	}
	return target.Side != p.Side &&
		target.Kind == board.KindPawn &&
		target.ID == b.LastPieceMoved() &&
		target.MovedTwo
}

func occupied(b Board, sq position.Square) bool {
	_, ok := b.GetPiece(sq)
	return ok
}
