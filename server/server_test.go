package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/chessington/board"
)

func do(t *testing.T, s *Server, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	if len(raw) != 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func create(t *testing.T, s *Server, fen string) string {
	t.Helper()
	code, out := do(t, s, http.MethodPost, "/positions", `{"fen":"`+fen+`"}`)
	require.Equal(t, http.StatusCreated, code, out)
	return out["id"].(string)
}

func TestCreatePosition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantFEN  string
	}{
		{
			name:     "default",
			wantCode: http.StatusCreated,
			wantFEN:  board.DefaultStartingPositionFEN,
		},
		{
			name:     "fen",
			body:     `{"fen":"4k3/8/8/3q4/8/2N5/8/4K3 w - - 0 1"}`,
			wantCode: http.StatusCreated,
			wantFEN:  "4k3/8/8/3q4/8/2N5/8/4K3 w - - 0 1",
		},
		{
			name:     "bad fen",
			body:     `{"fen":"invalid fen"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad body",
			body:     `{"fen":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := New()
			code, out := do(t, s, http.MethodPost, "/positions", tt.body)
			require.Equal(t, tt.wantCode, code, out)
			if tt.wantCode != http.StatusCreated {
				assert.NotEmpty(t, out["error"])
				assert.Zero(t, s.Store().Len())
				return
			}
			assert.Equal(t, tt.wantFEN, out["fen"])
			_, err := uuid.Parse(out["id"].(string))
			assert.NoError(t, err)
			assert.Equal(t, 1, s.Store().Len())
		})
	}
}

func TestGetPosition(t *testing.T) {
	t.Parallel()
	s := New()
	id := create(t, s, board.DefaultStartingPositionFEN)

	code, out := do(t, s, http.MethodGet, "/positions/"+id, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, out["id"])
	assert.Equal(t, "White", out["turn"])
	assert.Contains(t, out["board"], " 1 | R | N | B | Q | K | B | N | R |")

	code, _ = do(t, s, http.MethodGet, "/positions/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = do(t, s, http.MethodGet, "/positions/not-a-uuid", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestListMoves(t *testing.T) {
	t.Parallel()
	s := New()
	id := create(t, s, board.DefaultStartingPositionFEN)

	code, out := do(t, s, http.MethodGet, "/positions/"+id+"/moves", "")
	require.Equal(t, http.StatusOK, code)
	moves, ok := out["moves"].([]interface{})
	require.True(t, ok)
	assert.Len(t, moves, 20)
	assert.Contains(t, moves, "e2e4")
	assert.Contains(t, moves, "g1f3")
}

func TestPieceMoves(t *testing.T) {
	t.Parallel()
	s := New()
	id := create(t, s, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")

	tests := []struct {
		square    string
		wantCode  int
		wantPiece string
		wantMoves []interface{}
	}{
		{square: "e5", wantCode: http.StatusOK, wantPiece: "Pawn", wantMoves: []interface{}{"e6", "f6"}},
		{square: "g1", wantCode: http.StatusOK, wantPiece: "Knight", wantMoves: []interface{}{"h3", "f3", "e2"}},
		{square: "a1", wantCode: http.StatusOK, wantPiece: "Rook", wantMoves: []interface{}{}},
		{square: "e4", wantCode: http.StatusBadRequest},
		{square: "z9", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.square, func(t *testing.T) {
			t.Parallel()
			code, out := do(t, s, http.MethodGet, "/positions/"+id+"/moves/"+tt.square, "")
			require.Equal(t, tt.wantCode, code, out)
			if tt.wantCode != http.StatusOK {
				return
			}
			assert.Equal(t, tt.square, out["square"])
			assert.Equal(t, tt.wantPiece, out["piece"])
			assert.ElementsMatch(t, tt.wantMoves, out["moves"])
		})
	}
}

func TestAllowOrigins(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		opts       []Option
		origin     string
		wantHeader string
	}{
		{
			name:       "allowed origin",
			opts:       []Option{WithAllowOrigins("http://localhost:3000")},
			origin:     "http://localhost:3000",
			wantHeader: "http://localhost:3000",
		},
		{
			name:       "wildcard",
			opts:       []Option{WithAllowOrigins("*")},
			origin:     "http://localhost:3000",
			wantHeader: "*",
		},
		{
			name:   "disabled",
			origin: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := New(tt.opts...)
			id := create(t, s, "")

			req := httptest.NewRequest(http.MethodGet, "/positions/"+id, nil)
			req.Header.Set("Origin", tt.origin)
			resp, err := s.App().Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.wantHeader, resp.Header.Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestDeletePosition(t *testing.T) {
	t.Parallel()
	s := New()
	id := create(t, s, "")

	code, _ := do(t, s, http.MethodDelete, "/positions/"+id, "")
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = do(t, s, http.MethodDelete, "/positions/"+id, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Zero(t, s.Store().Len())
}
