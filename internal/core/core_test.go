// FILE: internal/core/core_test.go
package core

import "testing"

func TestOppositeColor(t *testing.T) {
	if OppositeColor(ColorBlack) != ColorWhite {
		t.Error("opposite of black should be white")
	}
	if OppositeColor(ColorWhite) != ColorBlack {
		t.Error("opposite of white should be black")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"b", ColorBlack, true},
		{"black", ColorBlack, true},
		{"w", ColorWhite, true},
		{"white", ColorWhite, true},
		{"B", 0, false},
		{"", 0, false},
		{"red", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %t", tt.in, got, ok)
		}
	}
}

func TestWinnerState(t *testing.T) {
	if WinnerState(ColorBlack) != StateBlackWins {
		t.Error("black's winner state should be black wins")
	}
	if WinnerState(ColorWhite) != StateWhiteWins {
		t.Error("white's winner state should be white wins")
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateOngoing:   "ongoing",
		StateBlackWins: "black wins",
		StateWhiteWins: "white wins",
		StateDraw:      "draw",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
