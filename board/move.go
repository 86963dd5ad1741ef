package board

import "github.com/daystram/chessington/position"

type Move struct {
	From, To position.Square
	Piece    Kind

	IsTurn      Side
	IsCapture   bool
	IsEnPassant bool
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	nt := m.Piece.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	if m.IsCapture {
		if m.Piece == KindPawn {
			nt += position.NotationComponentX(m.From.Col)
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.IsEnPassant {
		nt += " e.p."
	}
	return nt
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation()
}
