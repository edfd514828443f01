// FILE: internal/board/board.go
package board

import (
	"fmt"
	"strconv"
	"strings"

	"ataxx/internal/core"
)

// Size is the fixed board dimension.
const Size = 7

// Cell is the content of one board square. The byte value doubles as the
// canonical serialization code.
type Cell byte

const (
	CellEmpty Cell = 'E'
	CellBlack Cell = 'B'
	CellWhite Cell = 'W'
)

// Code returns the single-character serialization code.
func (c Cell) Code() byte {
	return byte(c)
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellBlack:
		return "black"
	case CellWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Color reports the side occupying the cell; false when the cell is empty.
func (c Cell) Color() (core.Color, bool) {
	switch c {
	case CellBlack:
		return core.ColorBlack, true
	case CellWhite:
		return core.ColorWhite, true
	default:
		return 0, false
	}
}

// CellOf returns the cell holding a piece of the given side.
func CellOf(c core.Color) Cell {
	if c == core.ColorBlack {
		return CellBlack
	}
	return CellWhite
}

// Board is a fixed 7x7 grid of cells. It is pure storage: reads and
// writes are unconditional, move legality lives in the game package.
type Board struct {
	cells [Size * Size]Cell
}

// New creates the default starting layout: black in the top-left and
// bottom-right corners, white in the other two.
func New() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i] = CellEmpty
	}
	b.cells[0] = CellBlack
	b.cells[Size-1] = CellWhite
	b.cells[(Size-1)*Size] = CellWhite
	b.cells[Size*Size-1] = CellBlack
	return b
}

// Parse decodes the run-length board form: a sequence of [count]code
// tokens where a missing count means 1. The decoded cells must total
// exactly Size*Size.
func Parse(s string) (*Board, error) {
	b := &Board{}
	i, filled := 0, 0
	for i < len(s) {
		count := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			count = count*10 + int(s[i]-'0')
			i++
		}
		if i == len(s) {
			return nil, fmt.Errorf("%w: count without a cell code", core.ErrInvalidBoard)
		}
		if count == 0 {
			count = 1
		}

		var cell Cell
		switch s[i] {
		case 'E':
			cell = CellEmpty
		case 'B':
			cell = CellBlack
		case 'W':
			cell = CellWhite
		default:
			return nil, fmt.Errorf("%w: unrecognized cell code %q", core.ErrInvalidBoard, s[i])
		}
		i++

		if filled+count > Size*Size {
			return nil, fmt.Errorf("%w: more than %d cells", core.ErrInvalidBoard, Size*Size)
		}
		for j := 0; j < count; j++ {
			b.cells[filled+j] = cell
		}
		filled += count
	}
	if filled != Size*Size {
		return nil, fmt.Errorf("%w: %d cells, want %d", core.ErrInvalidBoard, filled, Size*Size)
	}
	return b, nil
}

func index(p Position) int {
	return p.row*Size + p.col
}

// GetCell never fails: Position construction already bounds-checks.
func (b *Board) GetCell(p Position) Cell {
	return b.cells[index(p)]
}

// SetCell writes unconditionally; no legality check.
func (b *Board) SetCell(p Position, c Cell) {
	b.cells[index(p)] = c
}

// Count returns how many squares hold the given cell value.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Full reports whether no empty square remains.
func (b *Board) Full() bool {
	return b.Count(CellEmpty) == 0
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	dup := *b
	return &dup
}

// String encodes the board row-major with identical adjacent cells
// run-length-collapsed, the count omitted when it is 1. Round-trips
// with Parse.
func (b *Board) String() string {
	var sb strings.Builder
	last := b.cells[0]
	count := 0
	for _, cell := range b.cells {
		if cell == last {
			count++
			continue
		}
		writeRun(&sb, last, count)
		last = cell
		count = 1
	}
	writeRun(&sb, last, count)
	return sb.String()
}

func writeRun(sb *strings.Builder, cell Cell, count int) {
	if count > 1 {
		sb.WriteString(strconv.Itoa(count))
	}
	sb.WriteByte(cell.Code())
}
