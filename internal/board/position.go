// FILE: internal/board/position.go
package board

import (
	"fmt"

	"ataxx/internal/core"
)

// Position is a validated (row, column) coordinate on the board. It is
// immutable once constructed; the zero value is the top-left corner.
type Position struct {
	row, col int
}

// NewPosition bounds-checks the coordinate against the board size.
func NewPosition(row, col int) (Position, error) {
	if row < 0 || row >= Size {
		return Position{}, fmt.Errorf("%w: row %d (0 <= row < %d)", core.ErrInvalidPosition, row, Size)
	}
	if col < 0 || col >= Size {
		return Position{}, fmt.Errorf("%w: column %d (0 <= column < %d)", core.ErrInvalidPosition, col, Size)
	}
	return Position{row: row, col: col}, nil
}

// ParsePosition reads the two-character coordinate form: a row digit
// 1..7 followed by a column letter a..g, e.g. "3c".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", core.ErrInvalidPosition, s)
	}
	if s[0] < '1' || s[0] > '0'+Size {
		return Position{}, fmt.Errorf("%w: row %q in %q", core.ErrInvalidPosition, s[0], s)
	}
	if s[1] < 'a' || s[1] > 'a'+Size-1 {
		return Position{}, fmt.Errorf("%w: column %q in %q", core.ErrInvalidPosition, s[1], s)
	}
	return Position{row: int(s[0] - '1'), col: int(s[1] - 'a')}, nil
}

func (p Position) Row() int {
	return p.row
}

func (p Position) Column() int {
	return p.col
}

// Offset returns the position shifted by (dr, dc), false when the result
// falls off the board.
func (p Position) Offset(dr, dc int) (Position, bool) {
	q, err := NewPosition(p.row+dr, p.col+dc)
	if err != nil {
		return Position{}, false
	}
	return q, true
}

// String inverts ParsePosition: (0,0) renders as "1a".
func (p Position) String() string {
	return fmt.Sprintf("%d%c", p.row+1, 'a'+p.col)
}

// AllPositions enumerates every board coordinate in row-major order.
func AllPositions() []Position {
	ps := make([]Position, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			ps = append(ps, Position{row: r, col: c})
		}
	}
	return ps
}
