// FILE: internal/core/errors.go
package core

import "errors"

// Engine error kinds. The engine raises these wrapped with detail at the
// point of detection; callers match them with errors.Is. User-facing text
// is the shell's business, never the engine's.
var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidBoard    = errors.New("invalid board")
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameOver        = errors.New("game over")
)
