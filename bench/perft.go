package bench

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessington/board"
	"github.com/daystram/chessington/movegen"
)

var ErrInvalidDepth = errors.New("invalid depth")

// Result counts the leaves of a pseudo-move tree. Moves are not checked for
// king safety, so counts differ from standard perft tables past depth 2.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
}

func (r Result) String() string {
	return message.NewPrinter(language.English).
		Sprintf("nodes=%d cap=%d enp=%d", r.Nodes, r.Captures, r.EnPassants)
}

func Perft(depth int, fen string, parallel, verbose bool, out chan string) (Result, error) {
	var res Result
	if depth < 0 {
		return res, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return res, err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b, depth, true, verbose, out, &res)
	end := time.Now()

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d %s rate=%dn/s (%.3fs elapsed)",
				depth, res, int(float64(res.Nodes)/end.Sub(start).Seconds()), end.Sub(start).Seconds())
	}

	return res, nil
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan string, res *Result) uint64

func runPerft(b *board.Board, d int, root, verbose bool, out chan string, res *Result) uint64 {
	if d == 0 {
		res.Nodes++
		return 1
	}

	var sum uint64
	for _, mv := range movegen.GenerateMoves(b, b.Turn()) {
		var child uint64
		if d == 1 {
			child = 1
			res.Nodes++
			if mv.IsCapture {
				res.Captures++
			}
			if mv.IsEnPassant {
				res.EnPassants++
			}
		} else {
			bb := b.Clone()
			if _, err := bb.MovePiece(mv.From, mv.To); err != nil {
				panic(err)
			}
			child = runPerft(bb, d-1, false, verbose, out, res)
		}
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan string, res *Result) uint64 {
	if d == 0 {
		atomic.AddUint64(&res.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range movegen.GenerateMoves(b, b.Turn()) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			if d == 1 {
				child = 1
				atomic.AddUint64(&res.Nodes, 1)
				if mv.IsCapture {
					atomic.AddUint64(&res.Captures, 1)
				}
				if mv.IsEnPassant {
					atomic.AddUint64(&res.EnPassants, 1)
				}
			} else {
				bb := b.Clone()
				if _, err := bb.MovePiece(mv.From, mv.To); err != nil {
					panic(err)
				}
				child = runPerftParallel(bb, d-1, false, verbose, out, res)
			}
			if verbose && root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
