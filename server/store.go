package server

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/daystram/chessington/board"
)

var (
	ErrPositionNotFound = errors.New("position not found")
)

// Store keeps positions in memory. Readers share the lock, so a board is
// never modified while moves are generated from it.
type Store struct {
	positions map[uuid.UUID]*board.Board
	mu        sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		positions: make(map[uuid.UUID]*board.Board),
	}
}

func (s *Store) Create(fen string) (uuid.UUID, error) {
	if fen == "" {
		fen = board.DefaultStartingPositionFEN
	}
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[id] = b
	return id, nil
}

// View runs fn with the board of id under the read lock. fn must not modify b.
func (s *Store) View(id string, fn func(b *board.Board) error) error {
	key, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPositionNotFound, id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.positions[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPositionNotFound, id)
	}
	return fn(b)
}

func (s *Store) Delete(id string) error {
	key, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPositionNotFound, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.positions[key]; !ok {
		return fmt.Errorf("%w: %s", ErrPositionNotFound, id)
	}
	delete(s.positions, key)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.positions)
}
