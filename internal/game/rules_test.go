// FILE: internal/game/rules_test.go
package game

import (
	"testing"

	"ataxx/internal/board"
)

func pos(t *testing.T, s string) board.Position {
	t.Helper()
	p, err := board.ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", s, err)
	}
	return p
}

func TestReach(t *testing.T) {
	tests := []struct {
		from, to string
		want     MoveKind
	}{
		{"1a", "1b", KindClone},
		{"1a", "2b", KindClone},
		{"4d", "3c", KindClone},
		{"1a", "1c", KindJump},
		{"1a", "3c", KindJump},
		{"4d", "2f", KindJump},
		{"1a", "1d", KindNone},
		{"1a", "4d", KindNone},
		{"1a", "1a", KindNone},
	}
	for _, tt := range tests {
		if got := reach(pos(t, tt.from), pos(t, tt.to)); got != tt.want {
			t.Errorf("reach(%s,%s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		at   string
		want int
	}{
		{"1a", 3}, // corner
		{"1d", 5}, // edge
		{"4d", 8}, // center
	}
	for _, tt := range tests {
		if got := len(neighbors(pos(t, tt.at))); got != tt.want {
			t.Errorf("neighbors(%s) = %d squares, want %d", tt.at, got, tt.want)
		}
	}
}

func TestDestinations(t *testing.T) {
	tests := []struct {
		at   string
		want int
	}{
		{"1a", 8},  // corner: 3x3 reachable block minus self
		{"1d", 14}, // edge: 3x5 block minus self
		{"4d", 24}, // center: full 5x5 block minus self
	}
	for _, tt := range tests {
		ds := destinations(pos(t, tt.at))
		if len(ds) != tt.want {
			t.Errorf("destinations(%s) = %d squares, want %d", tt.at, len(ds), tt.want)
		}
		for _, d := range ds {
			if reach(pos(t, tt.at), d) == KindNone {
				t.Errorf("destinations(%s) includes unreachable %s", tt.at, d)
			}
		}
	}
}
