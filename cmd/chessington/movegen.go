package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/fatih/color"

	"github.com/daystram/chessington/board"
	mg "github.com/daystram/chessington/movegen"
	"github.com/daystram/chessington/position"
)

func movegen(fen, square string, draw bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.DebugString())

	if square != "" {
		return dumpPieceMoves(b, square)
	}
	dumpMoves(b)

	if draw {
		for _, mv := range mg.GenerateMoves(b, b.Turn()) {
			bb := b.Clone()
			if _, err := bb.MovePiece(mv.From, mv.To); err != nil {
				return err
			}
			fmt.Println(mv)
			fmt.Println(bb.Draw(mv.From, mv.To))
			fmt.Println(bb.FEN())
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := mg.GenerateMoves(b, b.Turn())
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (enp=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.IsTurn, mv.Piece, mv.From, mv.To, mv.IsCapture, mv.IsEnPassant)
	}
}

func dumpPieceMoves(b *board.Board, square string) error {
	sq, err := position.NewSquareFromNotation(square)
	if err != nil {
		return err
	}
	p, ok := b.GetPiece(sq)
	if !ok {
		return fmt.Errorf("%w: %s", board.ErrSquareEmpty, sq)
	}

	moves := mg.AvailableMoves(b, p.ID)
	fmt.Println(b.Draw(moves...))
	hl := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("%s %s on %s: %d moves\n", p.Side, p.Kind, sq, len(moves))
	for _, to := range moves {
		fmt.Println(" ", hl(to.Notation()))
	}
	return nil
}
