// FILE: internal/board/board_test.go
package board

import (
	"errors"
	"testing"

	"ataxx/internal/core"
)

const defaultBoard = "B5EW35EW5EB"

func mustPosition(t *testing.T, s string) Position {
	t.Helper()
	p, err := ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", s, err)
	}
	return p
}

func TestNewDefaultLayout(t *testing.T) {
	b := New()

	if got := b.Count(CellBlack); got != 2 {
		t.Errorf("black count = %d, want 2", got)
	}
	if got := b.Count(CellWhite); got != 2 {
		t.Errorf("white count = %d, want 2", got)
	}
	if got := b.Count(CellEmpty); got != 45 {
		t.Errorf("empty count = %d, want 45", got)
	}

	corners := map[string]Cell{
		"1a": CellBlack,
		"7g": CellBlack,
		"1g": CellWhite,
		"7a": CellWhite,
	}
	for s, want := range corners {
		if got := b.GetCell(mustPosition(t, s)); got != want {
			t.Errorf("cell %s = %v, want %v", s, got, want)
		}
	}

	if got := b.String(); got != defaultBoard {
		t.Errorf("default board serializes to %q, want %q", got, defaultBoard)
	}
}

func TestParseRoundTrip(t *testing.T) {
	boards := []string{
		defaultBoard,
		"49E",
		"49B",
		"25B24W",
		"BW6EW33EW6E",
		"B2W4E3W4E3W32E",
	}
	for _, s := range boards {
		b, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := b.String(); got != s {
			t.Errorf("Parse(%q).String() = %q", s, got)
		}
	}
}

func TestParseNonCanonicalCounts(t *testing.T) {
	// A count of 1 may be written explicitly; serialization collapses it.
	b, err := Parse("1B5E1W35E1W5E1B")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := b.String(); got != defaultBoard {
		t.Errorf("String() = %q, want %q", got, defaultBoard)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",     // no cells
		"48E",  // one cell short
		"50E",  // one cell over
		"49EB", // extra cell after full board
		"49X",  // unrecognized cell code
		"XE",   // unrecognized cell code up front
		"49",   // count without a code
		"48E9", // trailing count
	}
	for _, s := range tests {
		if _, err := Parse(s); !errors.Is(err, core.ErrInvalidBoard) {
			t.Errorf("Parse(%q) = %v, want ErrInvalidBoard", s, err)
		}
	}
}

func TestGetSetCell(t *testing.T) {
	b := New()
	p := mustPosition(t, "4d")

	if got := b.GetCell(p); got != CellEmpty {
		t.Fatalf("cell 4d = %v, want empty", got)
	}
	b.SetCell(p, CellWhite)
	if got := b.GetCell(p); got != CellWhite {
		t.Errorf("cell 4d = %v after SetCell, want white", got)
	}
	// SetCell is unconditional storage: overwriting is allowed
	b.SetCell(p, CellBlack)
	if got := b.GetCell(p); got != CellBlack {
		t.Errorf("cell 4d = %v after overwrite, want black", got)
	}
}

func TestCloneIndependence(t *testing.T) {
	b := New()
	c := b.Clone()
	c.SetCell(mustPosition(t, "4d"), CellBlack)

	if b.GetCell(mustPosition(t, "4d")) != CellEmpty {
		t.Error("mutating a clone changed the original board")
	}
}

func TestFull(t *testing.T) {
	b, err := Parse("25B24W")
	if err != nil {
		t.Fatal(err)
	}
	if !b.Full() {
		t.Error("board with no empty cells should be full")
	}
	if New().Full() {
		t.Error("default board should not be full")
	}
}

func TestCellColor(t *testing.T) {
	if c, ok := CellBlack.Color(); !ok || c != core.ColorBlack {
		t.Errorf("CellBlack.Color() = %v, %t", c, ok)
	}
	if c, ok := CellWhite.Color(); !ok || c != core.ColorWhite {
		t.Errorf("CellWhite.Color() = %v, %t", c, ok)
	}
	if _, ok := CellEmpty.Color(); ok {
		t.Error("CellEmpty.Color() should report no side")
	}
	if CellOf(core.ColorBlack) != CellBlack || CellOf(core.ColorWhite) != CellWhite {
		t.Error("CellOf does not invert Cell.Color")
	}
}
