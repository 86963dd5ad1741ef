package movegen

import (
	"github.com/daystram/chessington/board"
	"github.com/daystram/chessington/position"
)

// slideMoves casts a ray along each direction, advancing all rays one step
// per round. A ray stops at the edge or at the first occupied square; that
// square is included only when it holds an opponent piece.
func slideMoves(b Board, s board.Side, from position.Square, directions []position.Offset) []position.Square {
	var moves []position.Square
	heads := make([]position.Square, len(directions))
	open := make([]bool, len(directions))
	for i := range directions {
		heads[i] = from
		open[i] = true
	}

	for remaining := len(directions); remaining > 0; {
		for i, d := range directions {
			if !open[i] {
				continue
			}
			heads[i] = heads[i].Add(d)
			next := heads[i]
			if !b.IsInBounds(next) {
				open[i] = false
				remaining--
				continue
			}
			if p, ok := b.GetPiece(next); ok {
				open[i] = false
				remaining--
				if p.Side == s {
					continue
				}
			}
			moves = append(moves, next)
		}
	}
	return moves
}
