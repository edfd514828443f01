// FILE: internal/transport/cli/handler.go
package cli

import (
	"fmt"
	"strconv"

	"ataxx/internal/cli"
	"ataxx/internal/core"
	"ataxx/internal/game"
	"ataxx/internal/service"
	"ataxx/internal/transport"
)

// Handler is the command dispatcher: it parses nothing itself, asks the
// view for commands, and routes them into the game service.
type Handler struct {
	svc    *service.Service
	view   *cli.CLI
	gameID string
}

var (
	_ transport.Dispatcher = (*Handler)(nil)
	_ transport.View       = (*cli.CLI)(nil)
)

func New(svc *service.Service, view *cli.CLI) *Handler {
	return &Handler{
		svc:  svc,
		view: view,
	}
}

// Run is the main game loop: prompt, read, process, repeat.
func (h *Handler) Run() {
	for {
		cmd, err := h.view.GetCommand(h.getPrompt())
		if err != nil {
			break
		}
		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// Generates the appropriate command prompt
func (h *Handler) getPrompt() string {
	prompt := "> "
	if h.gameID != "" {
		g, err := h.svc.GetGame(h.gameID)
		if err == nil && g.State() == core.StateOngoing {
			prompt = fmt.Sprintf("[%s]> ", g.NextTurn())
		}
	}
	return prompt
}

// ProcessCommand handles one user command - returns false to exit.
func (h *Handler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		// EOF quits silently; a typed quit asks for confirmation.
		if cmd.Raw == "" || h.view.Confirm("Quit? Any game in progress is lost. (y/n): ") {
			return false
		}

	case cli.CmdNone:
		// Nothing to do

	case cli.CmdNew:
		h.handleNewGame("", 0)

	case cli.CmdResume:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: resume <board> [b|w]")
			return true
		}
		turn := core.ColorBlack
		if len(cmd.Args) > 1 {
			t, ok := core.ParseColor(cmd.Args[1])
			if !ok {
				h.view.ShowMessage("Side to move must be 'b' or 'w'.")
				return true
			}
			turn = t
		}
		h.handleNewGame(cmd.Args[0], turn)

	case cli.CmdMove:
		h.handleMove(cmd.Args[0])

	case cli.CmdMoves:
		g, ok := h.activeGame()
		if !ok {
			return true
		}
		h.view.ShowLegalMoves(g.NextTurn(), g.LegalMoves())
		h.view.DisplayBoard(g.Board(), g.LegalDestinations())

	case cli.CmdBoard:
		g, ok := h.activeGame()
		if !ok {
			return true
		}
		h.view.DisplayBoard(g.Board(), nil)

	case cli.CmdHistory:
		g, ok := h.activeGame()
		if !ok {
			return true
		}
		h.view.ShowGameHistory(g)

	case cli.CmdUndo:
		h.handleUndo(cmd.Args)

	case cli.CmdResign:
		h.handleResign()

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
		if g, err := h.svc.GetGame(h.gameID); h.gameID != "" && err == nil {
			h.view.DisplayBoard(g.Board(), nil)
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

// activeGame fetches the current game, complaining when there is none.
func (h *Handler) activeGame() (*game.Game, bool) {
	if h.gameID == "" {
		h.view.ShowMessage("No active game. Use 'new' or 'resume <board>'.")
		return nil, false
	}
	g, err := h.svc.GetGame(h.gameID)
	if err != nil {
		h.view.ShowError(err)
		return nil, false
	}
	return g, true
}

// handleNewGame starts a fresh or resumed game, confirming first when a
// game is already in progress.
func (h *Handler) handleNewGame(boardString string, turn core.Color) {
	if h.gameID != "" {
		g, err := h.svc.GetGame(h.gameID)
		if err == nil && g.State() == core.StateOngoing {
			if !h.view.Confirm("A game is in progress. Abandon it? (y/n): ") {
				return
			}
		}
		h.svc.DeleteGame(h.gameID)
		h.gameID = ""
	}

	id := h.svc.GenerateGameID()
	var err error
	if boardString == "" {
		err = h.svc.CreateGame(id)
	} else {
		err = h.svc.ResumeGame(id, boardString, turn)
	}
	if err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %w", err))
		return
	}

	h.gameID = id
	h.view.ShowMessage("Game started.")
	g, _ := h.svc.GetGame(id)
	h.view.DisplayBoard(g.Board(), nil)
	if g.State() != core.StateOngoing {
		h.finishGame(g)
	}
}

func (h *Handler) handleMove(text string) {
	g, ok := h.activeGame()
	if !ok {
		return
	}

	mv, err := game.ParseMove(text)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	result, err := g.ApplyMove(mv)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	h.view.ShowMoveResult(result)
	h.view.DisplayBoard(g.Board(), nil)

	if result.GameState != core.StateOngoing {
		h.finishGame(g)
	}
}

func (h *Handler) handleUndo(args []string) {
	g, ok := h.activeGame()
	if !ok {
		return
	}

	count := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
			return
		}
		count = n
	}

	if err := g.UndoMoves(count); err != nil {
		h.view.ShowError(err)
		return
	}
	if count == 1 {
		h.view.ShowMessage("Move undone")
	} else {
		h.view.ShowMessage(fmt.Sprintf("%d moves undone", count))
	}
	h.view.DisplayBoard(g.Board(), nil)
}

func (h *Handler) handleResign() {
	g, ok := h.activeGame()
	if !ok {
		return
	}
	if !h.view.Confirm(fmt.Sprintf("Resign as %s? (y/n): ", g.NextTurn())) {
		return
	}
	if err := g.Resign(g.NextTurn()); err != nil {
		h.view.ShowError(err)
		return
	}
	h.finishGame(g)
}

func (h *Handler) finishGame(g *game.Game) {
	black, white := g.Counts()
	h.view.ShowGameOver(g.State(), black, white)
	h.svc.DeleteGame(h.gameID)
	h.gameID = ""
}
