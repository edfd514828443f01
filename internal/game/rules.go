// FILE: internal/game/rules.go
package game

import "ataxx/internal/board"

// reach classifies the travel between two squares under the fixed rule:
// Chebyshev distance 1 clones, distance 2 jumps, anything else is out of
// reach. Move generation, validation and application all go through this
// one definition so the three can never drift apart.
func reach(from, to board.Position) MoveKind {
	switch chebyshev(from, to) {
	case 1:
		return KindClone
	case 2:
		return KindJump
	default:
		return KindNone
	}
}

func chebyshev(a, b board.Position) int {
	dr := abs(a.Row() - b.Row())
	dc := abs(a.Column() - b.Column())
	if dr > dc {
		return dr
	}
	return dc
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// neighbors enumerates the 8-neighborhood of p in row-major order. The
// capture radius is exactly this neighborhood.
func neighbors(p board.Position) []board.Position {
	ps := make([]board.Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if q, ok := p.Offset(dr, dc); ok {
				ps = append(ps, q)
			}
		}
	}
	return ps
}

// destinations enumerates every square within jump range of p, row-major.
func destinations(p board.Position) []board.Position {
	ps := make([]board.Position, 0, 24)
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if q, ok := p.Offset(dr, dc); ok {
				ps = append(ps, q)
			}
		}
	}
	return ps
}
