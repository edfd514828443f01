// FILE: internal/game/game.go
package game

import (
	"fmt"

	"ataxx/internal/board"
	"ataxx/internal/core"
)

// Snapshot is one entry of the game history: the serialized board after
// an action, the action that produced it, and whose turn follows.
type Snapshot struct {
	Board        string
	PreviousMove string // "" for the initial position, "pass" for a forced pass
	NextTurn     core.Color
}

// MoveResult tracks the outcome of a successful move application.
type MoveResult struct {
	Move       Move
	Player     core.Color
	Flipped    []board.Position
	ForcedPass bool       // the opponent had no reply and passed
	PassedBy   core.Color // set when ForcedPass
	GameState  core.State
	Black      int // piece counts after the move
	White      int
}

// Game owns one board plus turn and history state. It is single-owner,
// driven from one control flow, and performs no locking of its own.
type Game struct {
	board      *board.Board
	turn       core.Color
	state      core.State
	snapshots  []Snapshot
	lastResult *MoveResult
}

// New starts a game from the default four-corner layout, black to move.
func New() *Game {
	g := &Game{
		board: board.New(),
		turn:  core.ColorBlack,
		state: core.StateOngoing,
	}
	g.snapshots = []Snapshot{{Board: g.board.String(), NextTurn: g.turn}}
	return g
}

// Resume rebuilds a game from a serialized board with the given side to
// move. The turn state is normalized immediately: a side with no legal
// move passes, and a position where neither side can act finishes.
func Resume(boardString string, turn core.Color) (*Game, error) {
	b, err := board.Parse(boardString)
	if err != nil {
		return nil, err
	}
	g := &Game{
		board: b,
		turn:  turn,
		state: core.StateOngoing,
	}
	g.snapshots = []Snapshot{{Board: b.String(), NextTurn: turn}}
	g.normalize()
	return g, nil
}

// LegalMoves enumerates every legal move for the side to move, ordered
// row-major by source and then row-major by destination. The order is
// stable across calls on an unchanged board. An empty result means the
// side to move has no legal action.
func (g *Game) LegalMoves() []Move {
	if g.state != core.StateOngoing {
		return nil
	}
	return g.legalMovesFor(g.turn)
}

func (g *Game) legalMovesFor(side core.Color) []Move {
	own := board.CellOf(side)
	var moves []Move
	for _, from := range board.AllPositions() {
		if g.board.GetCell(from) != own {
			continue
		}
		for _, to := range destinations(from) {
			if g.board.GetCell(to) != board.CellEmpty {
				continue
			}
			if reach(from, to) == KindNone {
				continue
			}
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// LegalDestinations collects the squares the side to move can reach;
// the printer highlights these for the "what moves" rendering.
func (g *Game) LegalDestinations() map[board.Position]bool {
	set := make(map[board.Position]bool)
	for _, m := range g.LegalMoves() {
		set[m.To] = true
	}
	return set
}

// ApplyMove validates mv against the current legal-move set and applies
// it: the piece clones or jumps to the destination, every adjacent
// opposing piece flips to the mover's color, and the turn advances
// (including automatic forced-pass handling and end detection). A failed
// application leaves board and turn state untouched.
func (g *Game) ApplyMove(mv Move) (*MoveResult, error) {
	if g.state != core.StateOngoing {
		return nil, fmt.Errorf("%w: %s", core.ErrGameOver, g.state)
	}
	if mv.IsPass() {
		return nil, fmt.Errorf("%w: passing is automatic", core.ErrIllegalMove)
	}

	legal := false
	for _, m := range g.legalMovesFor(g.turn) {
		if m == mv {
			legal = true
			break
		}
	}
	if !legal {
		return nil, fmt.Errorf("%w: %s for %s", core.ErrIllegalMove, mv, g.turn)
	}

	mover := g.turn
	own := board.CellOf(mover)
	if reach(mv.From, mv.To) == KindJump {
		g.board.SetCell(mv.From, board.CellEmpty)
	}
	g.board.SetCell(mv.To, own)

	// Capture: one deterministic pass over the whole 8-neighborhood.
	opponent := board.CellOf(core.OppositeColor(mover))
	var flipped []board.Position
	for _, p := range neighbors(mv.To) {
		if g.board.GetCell(p) == opponent {
			g.board.SetCell(p, own)
			flipped = append(flipped, p)
		}
	}

	g.turn = core.OppositeColor(mover)
	g.snapshots = append(g.snapshots, Snapshot{
		Board:        g.board.String(),
		PreviousMove: mv.String(),
		NextTurn:     g.turn,
	})

	passed, passer := g.normalize()

	result := &MoveResult{
		Move:       mv,
		Player:     mover,
		Flipped:    flipped,
		ForcedPass: passed,
		PassedBy:   passer,
		GameState:  g.state,
		Black:      g.board.Count(board.CellBlack),
		White:      g.board.Count(board.CellWhite),
	}
	g.lastResult = result
	return result, nil
}

// normalize settles the turn state: a full board finishes the game, a
// side with no legal move passes without consuming a move, and two
// passes in succession finish the game on piece count.
func (g *Game) normalize() (passed bool, passer core.Color) {
	if g.state != core.StateOngoing {
		return false, 0
	}
	if g.board.Full() {
		g.finish()
		return false, 0
	}
	if len(g.legalMovesFor(g.turn)) > 0 {
		return false, 0
	}

	passer = g.turn
	g.turn = core.OppositeColor(g.turn)
	g.snapshots = append(g.snapshots, Snapshot{
		Board:        g.board.String(),
		PreviousMove: PassMove().String(),
		NextTurn:     g.turn,
	})
	if len(g.legalMovesFor(g.turn)) == 0 {
		g.finish()
	}
	return true, passer
}

// finish computes the outcome by piece count: majority wins, ties draw.
func (g *Game) finish() {
	black := g.board.Count(board.CellBlack)
	white := g.board.Count(board.CellWhite)
	switch {
	case black > white:
		g.state = core.StateBlackWins
	case white > black:
		g.state = core.StateWhiteWins
	default:
		g.state = core.StateDraw
	}
}

// Resign concedes the game for the given side.
func (g *Game) Resign(side core.Color) error {
	if g.state != core.StateOngoing {
		return fmt.Errorf("%w: %s", core.ErrGameOver, g.state)
	}
	g.state = core.WinnerState(core.OppositeColor(side))
	return nil
}

// UndoMoves rewinds the history by count moves and restores the board
// and turn recorded at that point. A forced pass belongs to the move
// that caused it and rewinds together with it, so the restored position
// always leaves the side to move with a legal action.
func (g *Game) UndoMoves(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}
	available := 0
	for _, snap := range g.snapshots[1:] {
		if snap.PreviousMove != PassMove().String() {
			available++
		}
	}
	if available < count {
		return fmt.Errorf("cannot undo %d moves: only %d available", count, available)
	}

	kept := len(g.snapshots)
	for n := 0; n < count; n++ {
		for g.snapshots[kept-1].PreviousMove == PassMove().String() {
			kept--
		}
		kept--
	}
	g.snapshots = g.snapshots[:kept]
	snap := g.snapshots[len(g.snapshots)-1]
	b, err := board.Parse(snap.Board)
	if err != nil {
		return err
	}
	g.board = b
	g.turn = snap.NextTurn
	g.state = core.StateOngoing
	g.lastResult = nil
	return nil
}

func (g *Game) State() core.State {
	return g.state
}

// NextTurn reports the side to move. Meaningless once the game finished.
func (g *Game) NextTurn() core.Color {
	return g.turn
}

// Board returns a defensive copy; the engine's own board is never shared.
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

// Counts returns the current black and white piece counts.
func (g *Game) Counts() (black, white int) {
	return g.board.Count(board.CellBlack), g.board.Count(board.CellWhite)
}

func (g *Game) CurrentSnapshot() Snapshot {
	return g.snapshots[len(g.snapshots)-1]
}

// Moves lists the applied actions in order, forced passes included.
func (g *Game) Moves() []string {
	moves := []string{}
	for i := 1; i < len(g.snapshots); i++ {
		if g.snapshots[i].PreviousMove != "" {
			moves = append(moves, g.snapshots[i].PreviousMove)
		}
	}
	return moves
}

func (g *Game) InitialBoard() string {
	return g.snapshots[0].Board
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}
