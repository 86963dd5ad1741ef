package main

import (
	"log"

	"github.com/daystram/chessington/bench"
)

func perft(depth int, fen string, parallel bool) error {
	log.Printf("============ perft(%d): parallel=%v\n", depth, parallel)

	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			log.Println(line)
		}
	}()

	_, err := bench.Perft(depth, fen, parallel, true, out)
	close(out)
	<-done
	return err
}
