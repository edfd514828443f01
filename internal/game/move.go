// FILE: internal/game/move.go
package game

import (
	"fmt"

	"ataxx/internal/board"
	"ataxx/internal/core"
)

// MoveKind classifies how a move travels.
type MoveKind int

const (
	KindNone  MoveKind = iota // destination out of reach
	KindClone                 // distance 1: the piece duplicates
	KindJump                  // distance 2: the piece travels, vacating the source
)

func (k MoveKind) String() string {
	switch k {
	case KindClone:
		return "clone"
	case KindJump:
		return "jump"
	default:
		return "none"
	}
}

// Move is a transient action by the side to move: a from/to pair, or the
// distinguished pass value used when no legal move exists.
type Move struct {
	From, To board.Position
	pass     bool
}

// PassMove returns the distinguished no-legal-move marker.
func PassMove() Move {
	return Move{pass: true}
}

func (m Move) IsPass() bool {
	return m.pass
}

// Kind classifies the move by the distance it travels.
func (m Move) Kind() MoveKind {
	if m.pass {
		return KindNone
	}
	return reach(m.From, m.To)
}

// ParseMove reads the four-character form <from><to>, e.g. "1a2b".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: %q", core.ErrIllegalMove, s)
	}
	from, err := board.ParsePosition(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := board.ParsePosition(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

func (m Move) String() string {
	if m.pass {
		return "pass"
	}
	return m.From.String() + m.To.String()
}
