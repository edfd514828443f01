// FILE: cmd/ataxx/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"ataxx/internal/cli"
	"ataxx/internal/config"
	"ataxx/internal/service"
	clitransport "ataxx/internal/transport/cli"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment
	theme := flag.String("theme", cfg.Theme, "Board color theme (off|brown|green|gray)")
	verbose := flag.Bool("verbose", cfg.Verbose, "Show detailed move information")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (trace|debug|info|warn|error)")
	flag.Parse()

	cfg.Theme = *theme
	cfg.Verbose = *verbose
	cfg.LogLevel = *logLevel
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to validate configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	svc := service.New(logger)
	defer svc.Close()

	reader, cleanup, err := newLineReader(cfg.HistoryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	view := cli.New(reader, os.Stdout)
	if err := view.SetTheme(cli.ColorTheme(cfg.Theme)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	if cfg.Verbose {
		view.ToggleVerbose()
	}

	handler := clitransport.New(svc, view)
	view.ShowWelcome()
	handler.Run() // All game loop logic is in the handler
}

// newLineReader picks line editing with history when stdin is a
// terminal, and a plain scanner for piped input.
func newLineReader(historyFile string) (cli.LineReader, func(), error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return cli.NewScanReader(os.Stdin, os.Stdout), func() {}, nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, nil, err
	}
	return &readlineReader{rl: rl}, func() { rl.Close() }, nil
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		// ^C abandons the current line, not the program
		return "", nil
	}
	if err != nil {
		return "", io.EOF
	}
	return line, nil
}
