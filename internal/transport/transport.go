// FILE: internal/transport/transport.go
package transport

import (
	"ataxx/internal/board"
	"ataxx/internal/core"
	"ataxx/internal/game"
)

// View abstracts display/output operations over read-only engine
// snapshots; the view never mutates engine state.
type View interface {
	DisplayBoard(b *board.Board, highlights map[board.Position]bool)
	ShowMessage(msg string)
	ShowError(err error)
	ShowLegalMoves(side core.Color, moves []game.Move)
	ShowMoveResult(result *game.MoveResult)
	ShowGameHistory(g *game.Game)
	ShowGameOver(state core.State, black, white int)
	ShowWelcome()
	ShowHelp()
}

// Dispatcher drives a game session from user commands, independent of
// the input medium.
type Dispatcher interface {
	Run()
}
