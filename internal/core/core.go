// FILE: internal/core/core.go
package core

// Color identifies a side: black or white.
type Color byte

const (
	ColorBlack Color = 'b'
	ColorWhite Color = 'w'
)

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

func OppositeColor(c Color) Color {
	if c == ColorBlack {
		return ColorWhite
	}
	return ColorBlack
}

// ParseColor reads the single-letter side code used by the resume command.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "b", "black":
		return ColorBlack, true
	case "w", "white":
		return ColorWhite, true
	default:
		return 0, false
	}
}

type State int

const (
	StateOngoing State = iota
	StateBlackWins
	StateWhiteWins
	StateDraw
)

func (s State) String() string {
	switch s {
	case StateBlackWins:
		return "black wins"
	case StateWhiteWins:
		return "white wins"
	case StateDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

// WinnerState maps a side to the state in which it has won.
func WinnerState(c Color) State {
	if c == ColorBlack {
		return StateBlackWins
	}
	return StateWhiteWins
}
