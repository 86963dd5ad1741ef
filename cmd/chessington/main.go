package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/daystram/chessington/board"
	"github.com/daystram/chessington/server"
)

const (
	exitOK = iota
	exitErr
)

var (
	profileRun = flag.Bool("profile", false, "write a cpu profile to the working directory")

	movegenRun    = flag.Bool("movegen", false, "run movegen mode")
	movegenSquare = flag.String("movegen.square", "", "only list moves of the piece on this square in movegen mode")
	movegenDraw   = flag.Bool("movegen.draw", false, "draw the board after each move in movegen mode")

	perftRun      = flag.Int("perft", 0, "run perft mode to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "branch perft across goroutines")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepCount = flag.Int("step.count", 200, "number of moves to play in step mode")
	stepSeed  = flag.Uint64("step.seed", 1, "random seed in step mode")

	serveRun  = flag.Bool("serve", false, "run the http api")
	serveAddr = flag.String("serve.addr", server.DefaultAddr, "listen address of the http api")
	serveCORS = flag.String("serve.cors", "", "comma separated origins allowed to call the http api")
)

func main() {
	flag.Parse()

	code := exitOK
	if err := realMain(flag.Args()); err != nil {
		log.Println(err)
		code = exitErr
	}
	os.Exit(code)
}

func realMain(args []string) error {
	if *profileRun {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	switch {
	case *movegenRun:
		return movegen(fen, *movegenSquare, *movegenDraw)
	case *perftRun > 0:
		return perft(*perftRun, fen, *perftParallel)
	case *stepRun:
		return step(fen, *stepCount, *stepSeed)
	case *serveRun:
		return serve(*serveAddr, *serveCORS)
	}

	flag.Usage()
	return nil
}
