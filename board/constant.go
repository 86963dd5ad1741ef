package board

import (
	"github.com/daystram/chessington/position"
)

const (
	Width  = position.MaxComponentScalar
	Height = position.MaxComponentScalar

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	EmptyPositionFEN           = "8/8/8/8/8/8/8/8 w - - 0 1"
)

var (
	fenSymbols = map[rune]struct {
		s Side
		k Kind
	}{
		'P': {SideWhite, KindPawn},
		'B': {SideWhite, KindBishop},
		'N': {SideWhite, KindKnight},
		'R': {SideWhite, KindRook},
		'Q': {SideWhite, KindQueen},
		'K': {SideWhite, KindKing},
		'p': {SideBlack, KindPawn},
		'b': {SideBlack, KindBishop},
		'n': {SideBlack, KindKnight},
		'r': {SideBlack, KindRook},
		'q': {SideBlack, KindQueen},
		'k': {SideBlack, KindKing},
	}
)
