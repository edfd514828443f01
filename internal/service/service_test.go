// FILE: internal/service/service_test.go
package service

import (
	"errors"
	"testing"

	"ataxx/internal/core"

	"github.com/rs/zerolog"
)

func newTestService() *Service {
	return New(zerolog.Nop())
}

func TestCreateAndGetGame(t *testing.T) {
	s := newTestService()
	id := s.GenerateGameID()

	if err := s.CreateGame(id); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	g, err := s.GetGame(id)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if g.NextTurn() != core.ColorBlack {
		t.Errorf("new game first mover = %v, want black", g.NextTurn())
	}

	if err := s.CreateGame(id); err == nil {
		t.Error("creating a duplicate game ID should fail")
	}
}

func TestResumeGame(t *testing.T) {
	s := newTestService()
	id := s.GenerateGameID()

	if err := s.ResumeGame(id, "B5EW35EW5EB", core.ColorWhite); err != nil {
		t.Fatalf("ResumeGame: %v", err)
	}
	g, err := s.GetGame(id)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if g.NextTurn() != core.ColorWhite {
		t.Errorf("resumed turn = %v, want white", g.NextTurn())
	}

	if err := s.ResumeGame(s.GenerateGameID(), "48E", core.ColorBlack); !errors.Is(err, core.ErrInvalidBoard) {
		t.Errorf("ResumeGame with a short board = %v, want ErrInvalidBoard", err)
	}
}

func TestDeleteGame(t *testing.T) {
	s := newTestService()
	id := s.GenerateGameID()

	if err := s.DeleteGame(id); err == nil {
		t.Error("deleting an unknown game should fail")
	}

	if err := s.CreateGame(id); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteGame(id); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
	if _, err := s.GetGame(id); err == nil {
		t.Error("deleted game is still retrievable")
	}
}

func TestGenerateGameIDUnique(t *testing.T) {
	s := newTestService()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.GenerateGameID()
		if seen[id] {
			t.Fatalf("duplicate game ID: %s", id)
		}
		seen[id] = true
	}
}

func TestClose(t *testing.T) {
	s := newTestService()
	id := s.GenerateGameID()
	if err := s.CreateGame(id); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := s.GetGame(id); err == nil {
		t.Error("games survive Close")
	}
}
