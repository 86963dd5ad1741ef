package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/chessington/board"
)

const fenEnPassant = "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"

func TestMovegen(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fen     string
		square  string
		draw    bool
		wantErr error
	}{
		{name: "start", fen: board.DefaultStartingPositionFEN},
		{name: "draw", fen: fenEnPassant, draw: true},
		{name: "square", fen: fenEnPassant, square: "e5"},
		{name: "empty square", fen: fenEnPassant, square: "e4", wantErr: board.ErrSquareEmpty},
		{name: "bad fen", fen: "8/8/8 w", wantErr: board.ErrInvalidFEN},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := movegen(tt.fen, tt.square, tt.draw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPerft(t *testing.T) {
	t.Parallel()
	require.NoError(t, perft(2, board.DefaultStartingPositionFEN, false))
	require.NoError(t, perft(2, fenEnPassant, true))
	assert.ErrorIs(t, perft(1, "invalid", false), board.ErrInvalidFEN)
}

func TestStep(t *testing.T) {
	t.Parallel()
	require.NoError(t, step(board.DefaultStartingPositionFEN, 40, 7))
	// nothing left to move
	require.NoError(t, step(board.EmptyPositionFEN, 10, 7))
	assert.Error(t, step("", 1, 1))
}
