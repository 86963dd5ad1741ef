package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chessington/position"
)

var (
	colorCellDark  = color.New(color.FgBlack, color.BgGreen)
	colorCellLight = color.New(color.FgBlack, color.BgHiWhite)
	colorCellMark  = color.New(color.FgBlack, color.BgYellow)
	colorLabel     = color.New(color.Bold)
)

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := int8(0); x < Width; x++ {
			sym := " "
			if p, ok := b.GetPiece(position.At(y, x)); ok {
				sym = p.Kind.SymbolFEN(p.Side)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := int8(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NotationComponentX(x)))
	}
	return builder.String()
}

// Draw renders the board with colored cells. Squares in marks are highlighted.
func (b *Board) Draw(marks ...position.Square) string {
	marked := make(map[position.Square]bool, len(marks))
	for _, sq := range marks {
		marked[sq] = true
	}

	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := int8(0); x < Width; x++ {
			sq := position.At(y, x)
			sym := " "
			if p, ok := b.GetPiece(sq); ok {
				sym = p.Kind.SymbolUnicode(p.Side, false)
			}
			c := colorCellLight
			switch {
			case marked[sq]:
				c = colorCellMark
			case x%2^y%2 == 0:
				c = colorCellDark
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := int8(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", position.NotationComponentX(x)))
	}
	return builder.String()
}
