// Package movegen computes the squares a piece may move to, by geometry and
// occupancy alone. Check, castling and promotion are left to the caller.
package movegen

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/daystram/chessington/board"
	"github.com/daystram/chessington/position"
)

// Board is the read-only view of a position the rules need. *board.Board
// satisfies it.
type Board interface {
	IsInBounds(sq position.Square) bool
	GetPiece(sq position.Square) (board.Piece, bool)
	Piece(id board.PieceID) board.Piece
	FindPiece(id board.PieceID) position.Square
	LastPieceMoved() board.PieceID
}

var (
	directionsLateral = []position.Offset{
		{DRow: 1, DCol: 0}, {DRow: -1, DCol: 0}, {DRow: 0, DCol: 1}, {DRow: 0, DCol: -1},
	}
	directionsDiagonal = []position.Offset{
		{DRow: 1, DCol: 1}, {DRow: 1, DCol: -1}, {DRow: -1, DCol: 1}, {DRow: -1, DCol: -1},
	}
	directionsAll = append(append([]position.Offset{}, directionsLateral...), directionsDiagonal...)

	offsetsKnight = []position.Offset{
		{DRow: 2, DCol: 1}, {DRow: 2, DCol: -1}, {DRow: -2, DCol: 1}, {DRow: -2, DCol: -1},
		{DRow: 1, DCol: 2}, {DRow: 1, DCol: -2}, {DRow: -1, DCol: 2}, {DRow: -1, DCol: -2},
	}
)

// AvailableMoves returns the destinations of piece id. The piece must be on
// the board. The board is not modified.
func AvailableMoves(b Board, id board.PieceID) []position.Square {
	p := b.Piece(id)
	from := b.FindPiece(id)
	switch p.Kind {
	case board.KindPawn:
		return pawnMoves(b, p, from)
	case board.KindKnight:
		return stepMoves(b, p.Side, from, offsetsKnight)
	case board.KindBishop:
		return slideMoves(b, p.Side, from, directionsDiagonal)
	case board.KindRook:
		return slideMoves(b, p.Side, from, directionsLateral)
	case board.KindQueen:
		return slideMoves(b, p.Side, from, directionsAll)
	case board.KindKing:
		return stepMoves(b, p.Side, from, directionsLateral)
	default:
		panic(fmt.Sprintf("movegen: unknown piece kind %d", p.Kind))
	}
}

// CanMoveTo reports whether sq is among the available moves of piece id.
func CanMoveTo(b Board, id board.PieceID, sq position.Square) bool {
	return slices.Contains(AvailableMoves(b, id), sq)
}

// GenerateMoves lists the available moves of every piece of side s, in a1..h8
// order of origin.
func GenerateMoves(b *board.Board, s board.Side) []board.Move {
	var mvs []board.Move
	for _, id := range b.Pieces(s) {
		p := b.Piece(id)
		from := b.FindPiece(id)
		for _, to := range AvailableMoves(b, id) {
			mv := board.Move{
				From:   from,
				To:     to,
				Piece:  p.Kind,
				IsTurn: s,
			}
			if _, ok := b.GetPiece(to); ok {
				mv.IsCapture = true
			} else if p.Kind == board.KindPawn && from.Col != to.Col {
				mv.IsCapture = true
				mv.IsEnPassant = true
			}
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

// stepMoves handles pieces that jump by fixed offsets: knight and king.
func stepMoves(b Board, s board.Side, from position.Square, offsets []position.Offset) []position.Square {
	var moves []position.Square
	for _, o := range offsets {
		to := from.Add(o)
		if !b.IsInBounds(to) {
			continue
		}
		if p, ok := b.GetPiece(to); ok && p.Side == s {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}
