package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the row delta of a single pawn advance.
func (s Side) Forward() int8 {
	if s == SideBlack {
		return -1
	}
	return 1
}

// PawnStartRow is the row pawns of this side may double-advance from.
func (s Side) PawnStartRow() int8 {
	if s == SideBlack {
		return Height - 2
	}
	return 1
}

// EnPassantRow is the row a pawn of this side must stand on to capture en passant.
func (s Side) EnPassantRow() int8 {
	if s == SideBlack {
		return 3
	}
	return Height - 4
}

// LastRow is the farthest row a pawn of this side can reach.
func (s Side) LastRow() int8 {
	if s == SideBlack {
		return 0
	}
	return Height - 1
}
