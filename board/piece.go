package board

import "fmt"

type Kind uint8

const (
	KindUnknown Kind = iota
	KindPawn
	KindBishop
	KindKnight
	KindRook
	KindQueen
	KindKing
)

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

func (k Kind) SymbolAlgebra(s Side) string {
	if k == KindPawn {
		return ""
	}
	return k.SymbolFEN(s)
}

func (k Kind) SymbolFEN(s Side) string {
	var sym rune
	switch k {
	case KindPawn:
		sym = 'P'
	case KindBishop:
		sym = 'B'
	case KindKnight:
		sym = 'N'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (k Kind) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch k {
		case KindPawn:
			return "♙"
		case KindBishop:
			return "♗"
		case KindKnight:
			return "♘"
		case KindRook:
			return "♖"
		case KindQueen:
			return "♕"
		case KindKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch k {
		case KindPawn:
			return "♟"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// PieceID is a stable handle into the board's piece arena. The zero value
// refers to no piece.
type PieceID uint16

const PieceIDNone PieceID = 0

// Piece is an arena record. It does not know its own square; ask the board.
type Piece struct {
	ID   PieceID
	Kind Kind
	Side Side

	// MovedTwo is set by Board.MovePiece when a pawn advances two rows in one
	// move, and cleared on its next move.
	MovedTwo bool
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s#%d", p.Side, p.Kind, p.ID)
}
