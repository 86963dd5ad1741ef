// Package server exposes move generation over HTTP. Positions are created
// from FEN and then queried; the API never applies moves.
package server

import (
	"context"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/daystram/chessington/board"
	"github.com/daystram/chessington/movegen"
	"github.com/daystram/chessington/position"
)

const DefaultAddr = "localhost:8080"

type config struct {
	addr         string
	logOutput    io.Writer
	allowOrigins string
}

type Option func(*config)

func WithAddr(addr string) Option {
	return func(cfg *config) {
		cfg.addr = addr
	}
}

// WithLogger enables request logging to w.
func WithLogger(w io.Writer) Option {
	return func(cfg *config) {
		cfg.logOutput = w
	}
}

func WithAllowOrigins(origins string) Option {
	return func(cfg *config) {
		cfg.allowOrigins = origins
	}
}

type Server struct {
	app   *fiber.App
	store *Store
	cfg   config
}

type createPositionRequest struct {
	FEN string `json:"fen"`
}

type positionResponse struct {
	ID    string `json:"id"`
	FEN   string `json:"fen"`
	Turn  string `json:"turn,omitempty"`
	Board string `json:"board,omitempty"`
}

type movesResponse struct {
	ID    string   `json:"id"`
	Turn  string   `json:"turn"`
	Moves []string `json:"moves"`
}

type pieceMovesResponse struct {
	Square string   `json:"square"`
	Side   string   `json:"side"`
	Piece  string   `json:"piece"`
	Moves  []string `json:"moves"`
}

func New(opts ...Option) *Server {
	cfg := config{
		addr: DefaultAddr,
	}
	for _, f := range opts {
		f(&cfg)
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ErrorHandler:          errorHandler,
		}),
		store: NewStore(),
		cfg:   cfg,
	}

	if cfg.logOutput != nil {
		s.app.Use(logger.New(logger.Config{Output: cfg.logOutput}))
	}
	if cfg.allowOrigins != "" {
		s.app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.allowOrigins,
			AllowMethods: "GET, POST, DELETE, OPTIONS",
		}))
	}

	positions := s.app.Group("/positions")
	positions.Post("/", s.createPosition)
	positions.Get("/:id", s.getPosition)
	positions.Delete("/:id", s.deletePosition)
	positions.Get("/:id/moves", s.listMoves)
	positions.Get("/:id/moves/:square", s.pieceMoves)

	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) createPosition(c *fiber.Ctx) error {
	var req createPositionRequest
	if len(c.Body()) != 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	id, err := s.store.Create(req.FEN)
	if err != nil {
		return err
	}

	var res positionResponse
	err = s.store.View(id.String(), func(b *board.Board) error {
		res = positionResponse{ID: id.String(), FEN: b.FEN()}
		return nil
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (s *Server) getPosition(c *fiber.Ctx) error {
	id := c.Params("id")
	var res positionResponse
	err := s.store.View(id, func(b *board.Board) error {
		res = positionResponse{
			ID:    id,
			FEN:   b.FEN(),
			Turn:  b.Turn().String(),
			Board: b.Dump(),
		}
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (s *Server) deletePosition(c *fiber.Ctx) error {
	if err := s.store.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listMoves(c *fiber.Ctx) error {
	id := c.Params("id")
	var res movesResponse
	err := s.store.View(id, func(b *board.Board) error {
		res = movesResponse{
			ID:    id,
			Turn:  b.Turn().String(),
			Moves: make([]string, 0),
		}
		for _, mv := range movegen.GenerateMoves(b, b.Turn()) {
			res.Moves = append(res.Moves, mv.UCI())
		}
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (s *Server) pieceMoves(c *fiber.Ctx) error {
	sq, err := position.NewSquareFromNotation(c.Params("square"))
	if err != nil {
		return err
	}

	var res pieceMovesResponse
	err = s.store.View(c.Params("id"), func(b *board.Board) error {
		p, ok := b.GetPiece(sq)
		if !ok {
			return board.ErrSquareEmpty
		}
		res = pieceMovesResponse{
			Square: sq.Notation(),
			Side:   p.Side.String(),
			Piece:  p.Kind.String(),
			Moves:  make([]string, 0),
		}
		for _, to := range movegen.AvailableMoves(b, p.ID) {
			res.Moves = append(res.Moves, to.Notation())
		}
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, ErrPositionNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, board.ErrInvalidFEN),
		errors.Is(err, board.ErrSquareEmpty),
		errors.Is(err, position.ErrInvalidNotation):
		code = fiber.StatusBadRequest
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
