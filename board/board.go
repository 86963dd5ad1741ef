package board

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/daystram/chessington/position"
)

var (
	ErrInvalidFEN        = errors.New("invalid fen")
	ErrSquareOutOfBounds = errors.New("square out of bounds")
	ErrSquareEmpty       = errors.New("square empty")
	ErrNullMove          = errors.New("null move")
	ErrInvalidPiece      = errors.New("invalid piece")

	offBoard = position.At(-1, -1)
)

// Board is an 8x8 mailbox over an arena of piece records. A Board is not safe
// for concurrent use; clone it to explore positions in parallel.
type Board struct {
	// grid data
	cells   [Height][Width]PieceID
	pieces  []Piece
	squares []position.Square

	// meta
	lastMoved     PieceID
	turn          Side
	castling      string
	halfMoveClock uint64
	fullMoveClock uint64
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func WithStartingPosition() BoardOption {
	return WithFEN(DefaultStartingPositionFEN)
}

// NewBoard returns an empty board with White to move unless a FEN option is given.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: EmptyPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) reset() {
	*b = Board{
		turn:          SideWhite,
		castling:      "-",
		fullMoveClock: 1,
	}
}

func (b *Board) IsInBounds(sq position.Square) bool {
	return position.IsInBounds(sq)
}

// GetPiece returns the occupant of sq. Out of bounds squares are reported empty.
func (b *Board) GetPiece(sq position.Square) (Piece, bool) {
	if !b.IsInBounds(sq) {
		return Piece{}, false
	}
	id := b.cells[sq.Row][sq.Col]
	if id == PieceIDNone {
		return Piece{}, false
	}
	return b.pieces[id-1], true
}

// Piece returns the arena record of id, whether or not it is still on the board.
func (b *Board) Piece(id PieceID) Piece {
	if id == PieceIDNone || int(id) > len(b.pieces) {
		panic(fmt.Sprintf("board: unknown piece id %d", id))
	}
	return b.pieces[id-1]
}

// FindPiece returns the square id stands on. It panics if the piece is not on
// the board.
func (b *Board) FindPiece(id PieceID) position.Square {
	if id == PieceIDNone || int(id) > len(b.squares) || b.squares[id-1] == offBoard {
		panic(fmt.Sprintf("board: piece %d not on board", id))
	}
	return b.squares[id-1]
}

func (b *Board) LastPieceMoved() PieceID {
	return b.lastMoved
}

func (b *Board) Turn() Side {
	return b.turn
}

// Pieces lists the pieces of s on the board in a1..h8 order.
func (b *Board) Pieces(s Side) []PieceID {
	var ids []PieceID
	for y := int8(0); y < Height; y++ {
		for x := int8(0); x < Width; x++ {
			if id := b.cells[y][x]; id != PieceIDNone && b.pieces[id-1].Side == s {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// SetPiece places a new piece on sq, displacing any occupant.
func (b *Board) SetPiece(sq position.Square, k Kind, s Side) (PieceID, error) {
	if !b.IsInBounds(sq) {
		return PieceIDNone, fmt.Errorf("%w: %s", ErrSquareOutOfBounds, sq)
	}
	if k == KindUnknown || s == SideUnknown {
		return PieceIDNone, fmt.Errorf("%w: %s %s", ErrInvalidPiece, s, k)
	}
	b.RemovePiece(sq)
	b.pieces = append(b.pieces, Piece{
		ID:   PieceID(len(b.pieces) + 1),
		Kind: k,
		Side: s,
	})
	b.squares = append(b.squares, sq)
	id := PieceID(len(b.pieces))
	b.cells[sq.Row][sq.Col] = id
	return id, nil
}

// RemovePiece takes the occupant of sq off the board. Its arena record is kept.
func (b *Board) RemovePiece(sq position.Square) (Piece, bool) {
	p, ok := b.GetPiece(sq)
	if !ok {
		return Piece{}, false
	}
	b.cells[sq.Row][sq.Col] = PieceIDNone
	b.squares[p.ID-1] = offBoard
	return p, true
}

// MovePiece relocates the occupant of from onto to without checking the move
// is available. A piece on to is captured. A pawn moving diagonally onto an
// empty square captures the pawn beside it only if that pawn may be taken en
// passant.
func (b *Board) MovePiece(from, to position.Square) (Move, error) {
	if !b.IsInBounds(from) || !b.IsInBounds(to) {
		return Move{}, fmt.Errorf("%w: %s%s", ErrSquareOutOfBounds, from, to)
	}
	if from == to {
		return Move{}, fmt.Errorf("%w: %s", ErrNullMove, from)
	}
	id := b.cells[from.Row][from.Col]
	if id == PieceIDNone {
		return Move{}, fmt.Errorf("%w: %s", ErrSquareEmpty, from)
	}
	p := &b.pieces[id-1]
	mv := Move{
		From:   from,
		To:     to,
		Piece:  p.Kind,
		IsTurn: p.Side,
	}

	if _, ok := b.RemovePiece(to); ok {
		mv.IsCapture = true
	} else if p.Kind == KindPawn && from.Col != to.Col {
		passed := position.At(from.Row, to.Col)
		if b.isEnPassantVictim(passed, p.Side) {
			b.RemovePiece(passed)
			mv.IsCapture = true
			mv.IsEnPassant = true
		}
	}

	b.cells[from.Row][from.Col] = PieceIDNone
	b.cells[to.Row][to.Col] = id
	b.squares[id-1] = to
	p.MovedTwo = p.Kind == KindPawn && abs(to.Row-from.Row) == 2
	b.lastMoved = id

	if p.Kind == KindPawn || mv.IsCapture {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if p.Side == SideBlack {
		b.fullMoveClock++
	}
	b.turn = p.Side.Opposite()

	return mv, nil
}

// isEnPassantVictim reports whether sq holds an opponent pawn of s that
// advanced two rows on the last move.
func (b *Board) isEnPassantVictim(sq position.Square, s Side) bool {
	q, ok := b.GetPiece(sq)
	return ok &&
		q.Side != s &&
		q.Kind == KindPawn &&
		q.ID == b.lastMoved &&
		q.MovedTwo
}

func (b *Board) Clone() *Board {
	bb := *b
	bb.pieces = append([]Piece(nil), b.pieces...)
	bb.squares = append([]position.Square(nil), b.squares...)
	return &bb
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("turn: %s\nlast: %d\nhalf: %4d\nfull: %4d", b.turn, b.lastMoved, b.halfMoveClock, b.fullMoveClock)
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
