package main

import (
	"fmt"
	"log"
	"time"

	"github.com/daystram/chessington/board"
	mg "github.com/daystram/chessington/movegen"
)

// step plays random pseudo moves. Kings may be captured; the walk ends when
// the side to move has no moves left.
func step(fen string, count int, seed uint64) error {
	log.Println("============ step")
	var timesGenerateMoves, timesApply []time.Duration
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	r := board.NewPseudoRand(seed)

	for i := 0; i < count; i++ {
		t1 := time.Now()
		mvs := mg.GenerateMoves(b, b.Turn())
		t2 := time.Now()
		timesGenerateMoves = append(timesGenerateMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			log.Printf("no moves left for %s\n", b.Turn())
			break
		}
		mv := mvs[r.Intn(len(mvs))]

		t1 = time.Now()
		if _, err := b.MovePiece(mv.From, mv.To); err != nil {
			return err
		}
		t2 = time.Now()
		timesApply = append(timesApply, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", i/2+1, mv.IsTurn, mv)
		fmt.Println(b.Draw(mv.From, mv.To))
		fmt.Println(b.FEN())
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("apply:", avg(timesApply))
	return nil
}
