package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/chessington/position"
)

func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}
	b.reset()

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := int8(0); y < Height; y++ {
		row := rows[Height-y-1]
		ptrX := -1
		for x := int8(0); x < Width; x++ {
			ptrX++
			if ptrX >= len(row) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			cell := rune(row[ptrX])
			sym, ok := fenSymbols[cell]
			if !ok {
				if cell != '0' && unicode.IsDigit(cell) {
					skip := int8(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if _, err := b.SetPiece(position.At(y, x), sym.k, sym.s); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidFEN, err)
			}
		}
		if ptrX != len(row)-1 {
			return fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}

	switch segments[1] {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	// Castling rights are not tracked; the field is validated and carried through.
	if len(segments[2]) > 4 || segments[2] == "" {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	if segments[2] != "-" {
		for _, e := range segments[2] {
			if !strings.ContainsRune("KQkq", e) {
				return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
		}
	}
	b.castling = segments[2]

	if segments[3] != "-" {
		target, err := position.NewSquareFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: %v", fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN), err)
		}
		if err := b.restoreEnPassant(target); err != nil {
			return err
		}
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	b.halfMoveClock = halfMoveClock

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	b.fullMoveClock = fullMoveClock

	return nil
}

// restoreEnPassant marks the pawn that just passed over target as the last
// piece moved, with its two-square flag set.
func (b *Board) restoreEnPassant(target position.Square) error {
	mover := b.turn.Opposite()
	if target.Row != mover.PawnStartRow()+mover.Forward() {
		return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
	}
	if _, ok := b.GetPiece(target); ok {
		return fmt.Errorf("%w: enpassant target occupied", ErrInvalidFEN)
	}
	if _, ok := b.GetPiece(position.At(target.Row-mover.Forward(), target.Col)); ok {
		return fmt.Errorf("%w: enpassant start square occupied", ErrInvalidFEN)
	}
	p, ok := b.GetPiece(position.At(target.Row+mover.Forward(), target.Col))
	if !ok || p.Kind != KindPawn || p.Side != mover {
		return fmt.Errorf("%w: enpassant pawn missing", ErrInvalidFEN)
	}
	b.pieces[p.ID-1].MovedTwo = true
	b.lastMoved = p.ID
	return nil
}

// enPassantTarget returns the square the last moved pawn passed over, if it
// just advanced two rows.
func (b *Board) enPassantTarget() (position.Square, bool) {
	if b.lastMoved == PieceIDNone {
		return position.Square{}, false
	}
	p := b.pieces[b.lastMoved-1]
	if p.Kind != KindPawn || !p.MovedTwo || b.squares[p.ID-1] == offBoard {
		return position.Square{}, false
	}
	sq := b.squares[p.ID-1]
	return position.At(sq.Row-p.Side.Forward(), sq.Col), true
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	var skip uint8
	for y := Height - 1; y >= 0; y-- {
		for x := int8(0); x < Width; x++ {
			for skip = 0; x < Width && b.cells[y][x] == PieceIDNone; x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				p := b.pieces[b.cells[y][x]-1]
				_, _ = builder.WriteString(p.Kind.SymbolFEN(p.Side))
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(b.castling)
	_, _ = builder.WriteRune(' ')

	if target, ok := b.enPassantTarget(); ok {
		_, _ = builder.WriteString(target.Notation())
	} else {
		_, _ = builder.WriteRune('-')
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String(), nil
}

func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}
