package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/daystram/chessington/server"
)

func serve(addr, origins string) error {
	log.Println("============ serve:", addr)
	opts := []server.Option{
		server.WithAddr(addr),
		server.WithLogger(os.Stderr),
	}
	if origins != "" {
		opts = append(opts, server.WithAllowOrigins(origins))
	}
	s := server.New(opts...)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Listen()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	select {
	case err := <-errCh:
		return err
	case <-sig:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}
