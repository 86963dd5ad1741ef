package position

import (
	"errors"
	"strconv"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar int8 = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square is a (row, column) pair. Row 0 is rank 1 and column 0 is file a.
// Squares may lie outside the board; use IsInBounds to check.
type Square struct {
	Row, Col int8
}

// Offset is a direction vector between two squares.
type Offset struct {
	DRow, DCol int8
}

func At(row, col int8) Square {
	return Square{Row: row, Col: col}
}

func NewSquareFromNotation(n string) (Square, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return Square{}, err
	}
	return At(y, x), nil
}

func IsInBounds(sq Square) bool {
	return 0 <= sq.Row && sq.Row < MaxComponentScalar && 0 <= sq.Col && sq.Col < MaxComponentScalar
}

func (sq Square) Add(o Offset) Square {
	return Square{Row: sq.Row + o.DRow, Col: sq.Col + o.DCol}
}

// Index maps in-bounds squares to little-endian rank-file indices (a1=0, h8=63).
func (sq Square) Index() int {
	return int(sq.Row)*int(MaxComponentScalar) + int(sq.Col)
}

func (sq Square) String() string {
	if n := sq.Notation(); n != "" {
		return n
	}
	return "(" + strconv.Itoa(int(sq.Row)) + "," + strconv.Itoa(int(sq.Col)) + ")"
}

func (sq Square) Notation() string {
	if !IsInBounds(sq) {
		return ""
	}
	return NotationComponentX(sq.Col) + NotationComponentY(sq.Row)
}

func notationToXY(n string) (int8, int8, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (int8, error) {
	if x < 'a' || 'a'+byte(MaxComponentScalar) <= x {
		return 0, ErrInvalidNotation
	}
	return int8(x - 'a'), nil
}

func notationToY(y byte) (int8, error) {
	if y < '1' || '1'+byte(MaxComponentScalar) <= y {
		return 0, ErrInvalidNotation
	}
	return int8(y - '1'), nil
}

func NotationComponentX(col int8) string {
	if col < 0 || MaxComponentScalar <= col {
		return ""
	}
	return string(rune('a' + col))
}

func NotationComponentY(row int8) string {
	if row < 0 || MaxComponentScalar <= row {
		return ""
	}
	return string(rune('1' + row))
}
