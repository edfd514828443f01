// FILE: internal/cli/cli.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ataxx/internal/board"
	"ataxx/internal/core"
	"ataxx/internal/game"
)

// LineReader supplies user input lines. The interactive shell backs it
// with readline; tests and piped input use the plain scanner form.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

type scanReader struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewScanReader adapts a plain reader to LineReader, echoing prompts to out.
func NewScanReader(in io.Reader, out io.Writer) LineReader {
	return &scanReader{in: bufio.NewScanner(in), out: out}
}

func (r *scanReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.in.Text(), nil
}

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdResume
	CmdMove
	CmdMoves
	CmdBoard
	CmdHistory
	CmdUndo
	CmdResign
	CmdColor
	CmdVerbose
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg     string
	darkBg      string
	highlightBg string
	black       string
	white       string
	reset       string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg:     "\033[48;5;230m", // Beige
		darkBg:      "\033[48;5;94m",  // Brown
		highlightBg: "\033[48;5;178m", // Gold
		black:       "\033[30m",
		white:       "\033[97m",
		reset:       "\033[0m",
	},
	ThemeGreen: {
		lightBg:     "\033[48;5;157m", // Light green
		darkBg:      "\033[48;5;22m",  // Dark green
		highlightBg: "\033[48;5;178m",
		black:       "\033[30m",
		white:       "\033[97m",
		reset:       "\033[0m",
	},
	ThemeGray: {
		lightBg:     "\033[48;5;251m", // Light gray
		darkBg:      "\033[48;5;240m", // Dark gray
		highlightBg: "\033[48;5;178m",
		black:       "\033[30m",
		white:       "\033[97m",
		reset:       "\033[0m",
	},
}

type CLI struct {
	input   LineReader
	output  io.Writer
	theme   ColorTheme
	verbose bool
}

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:   input,
		output:  output,
		theme:   ThemeOff,
		verbose: false,
	}
}

// GetCommand reads and parses the next command. EOF surfaces as a quit
// command with an empty Raw field.
func (c *CLI) GetCommand(prompt string) (*Command, error) {
	line, err := c.input.ReadLine(prompt)
	if err == io.EOF {
		return &Command{Type: CmdQuit}, nil
	}
	if err != nil {
		return nil, err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return &Command{Type: CmdNone}, nil
	}
	return c.parseCommand(line), nil
}

func (c *CLI) parseCommand(input string) *Command {
	parts := strings.Fields(input)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new", "play":
		return &Command{Type: CmdNew, Args: args, Raw: input}
	case "resume":
		return &Command{Type: CmdResume, Args: args, Raw: input}
	case "moves", "whatmoves":
		return &Command{Type: CmdMoves, Raw: input}
	case "board":
		return &Command{Type: CmdBoard, Raw: input}
	case "history":
		return &Command{Type: CmdHistory, Raw: input}
	case "undo":
		return &Command{Type: CmdUndo, Args: args, Raw: input}
	case "resign":
		return &Command{Type: CmdResign, Raw: input}
	case "color":
		return &Command{Type: CmdColor, Args: args, Raw: input}
	case "verbose":
		return &Command{Type: CmdVerbose, Raw: input}
	case "help", "?":
		return &Command{Type: CmdHelp, Raw: input}
	case "quit", "exit":
		return &Command{Type: CmdQuit, Raw: input}
	default:
		// Assume it's a move
		return &Command{Type: CmdMove, Args: []string{cmd}, Raw: input}
	}
}

// Confirm asks a yes/no question; only an explicit yes confirms, and EOF
// counts as yes so a closed input stream never wedges the shell.
func (c *CLI) Confirm(prompt string) bool {
	line, err := c.input.ReadLine(prompt)
	if err != nil {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) IsVerbose() bool {
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

// DisplayBoard renders the grid; highlighted squares mark the legal
// destinations for the side to move. The view only reads the snapshot.
func (c *CLI) DisplayBoard(b *board.Board, highlights map[board.Position]bool) {
	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString("\n  a b c d e f g\n")
	for r := 0; r < board.Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for f := 0; f < board.Size; f++ {
			pos, _ := board.NewPosition(r, f)
			cell := b.GetCell(pos)

			if c.theme == ThemeOff {
				switch {
				case highlights[pos] && cell == board.CellEmpty:
					sb.WriteString("* ")
				case cell == board.CellEmpty:
					sb.WriteString(". ")
				default:
					sb.WriteString(fmt.Sprintf("%c ", cell.Code()))
				}
				continue
			}

			bg := theme.darkBg
			if (r+f)%2 == 0 {
				bg = theme.lightBg
			}
			if highlights[pos] {
				bg = theme.highlightBg
			}

			switch cell {
			case board.CellEmpty:
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
			case board.CellBlack:
				sb.WriteString(fmt.Sprintf("%s%sB %s", bg, theme.black, theme.reset))
			case board.CellWhite:
				sb.WriteString(fmt.Sprintf("%s%sW %s", bg, theme.white, theme.reset))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r+1))
	}
	sb.WriteString("  a b c d e f g\n")

	c.ShowMessage(sb.String())
}

// ShowLegalMoves prints the ordered legal-move list for the side to move.
func (c *CLI) ShowLegalMoves(side core.Color, moves []game.Move) {
	if len(moves) == 0 {
		c.ShowMessage(fmt.Sprintf("No legal moves for %s.", side))
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Legal moves for %s (%d):\n", side, len(moves)))
	for i, m := range moves {
		sb.WriteString(m.String())
		if m.Kind() == game.KindJump {
			sb.WriteString("*")
		}
		if (i+1)%8 == 0 {
			sb.WriteString("\n")
		} else if i != len(moves)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n(* marks a jump; everything else clones)")
	c.ShowMessage(sb.String())
}

func (c *CLI) ShowMoveResult(result *game.MoveResult) {
	if c.verbose {
		flips := make([]string, len(result.Flipped))
		for i, p := range result.Flipped {
			flips[i] = p.String()
		}
		c.ShowMessage(fmt.Sprintf("%s plays %s (%s), flips %d [%s], B %d - W %d",
			result.Player, result.Move, result.Move.Kind(),
			len(result.Flipped), strings.Join(flips, " "),
			result.Black, result.White))
	}
	if result.ForcedPass && result.GameState == core.StateOngoing {
		c.ShowMessage(fmt.Sprintf("%s has no legal move and passes.", result.PassedBy))
	}
}

func (c *CLI) ShowGameHistory(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("Starting board: %s", g.InitialBoard()))
	for i, m := range g.Moves() {
		c.ShowMessage(fmt.Sprintf("%d. %s", i+1, m))
	}
	c.ShowMessage(fmt.Sprintf("Current board: %s", g.CurrentSnapshot().Board))
	if r := g.LastResult(); r != nil && len(r.Flipped) > 0 {
		c.ShowMessage(fmt.Sprintf("Last move %s flipped %d piece(s)", r.Move, len(r.Flipped)))
	}
	c.ShowMessage(fmt.Sprintf("Game state: %s", g.State()))
}

func (c *CLI) ShowGameOver(state core.State, black, white int) {
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s (B %d - W %d)", state, black, white))
	c.ShowMessage("Start a new game with 'new' or 'resume'.")
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Ataxx!")
	c.ShowMessage("Black moves first. Enter moves as <from><to>, e.g. 1a2b.")
	c.ShowMessage("Commands: new, resume <board> [b|w], moves, board, history, undo, resign, quit. Type 'help' for details.")
	c.ShowMessage("")
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new              - Start a new game (black to move)
  resume <board>   - Resume from a serialized board, e.g. B5EW35EW5EB [b|w]
  <move>           - Make a move: source then destination, e.g. 1a2b
                     (step to an adjacent square to clone, two squares to jump)
  moves            - Show the legal moves and highlight their destinations
  board            - Show the current board
  history          - Show the move history and board strings
  undo [count]     - Undo last move(s), default 1
  resign           - Concede the game to the opponent
  color <theme>    - Set board color theme (off|brown|green|gray)
  verbose          - Toggle detailed move information
  quit/exit        - Exit the program
  help/?           - Show this help message`

	c.ShowMessage(help)
}
