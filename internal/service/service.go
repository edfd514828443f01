// FILE: internal/service/service.go
package service

import (
	"fmt"
	"sync"

	"ataxx/internal/core"
	"ataxx/internal/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service is a pure state manager for game sessions. The interactive
// shell drives one game at a time; the registry keeps ownership and
// lifecycle in one place.
type Service struct {
	games map[string]*game.Game
	mu    sync.RWMutex
	log   zerolog.Logger
}

func New(log zerolog.Logger) *Service {
	return &Service{
		games: make(map[string]*game.Game),
		log:   log,
	}
}

// CreateGame registers a new game from the default layout, black to move.
func (s *Service) CreateGame(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}
	s.games[id] = game.New()
	s.log.Info().Str("game_id", id).Msg("game created")
	return nil
}

// ResumeGame registers a game rebuilt from a serialized board.
func (s *Service) ResumeGame(id, boardString string, turn core.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}
	g, err := game.Resume(boardString, turn)
	if err != nil {
		return err
	}
	s.games[id] = g
	s.log.Info().
		Str("game_id", id).
		Str("turn", turn.String()).
		Str("board", boardString).
		Msg("game resumed")
	return nil
}

// GetGame retrieves a game by ID.
func (s *Service) GetGame(id string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", id)
	}
	return g, nil
}

// DeleteGame removes a game from memory.
func (s *Service) DeleteGame(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return fmt.Errorf("game not found: %s", id)
	}
	delete(s.games, id)
	s.log.Debug().Str("game_id", id).Msg("game deleted")
	return nil
}

// GenerateGameID creates a new unique game ID.
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// Close discards all session state.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*game.Game)
	return nil
}
