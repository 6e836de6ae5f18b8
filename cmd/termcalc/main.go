package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/codefionn/termcalc/internal/config"
	"github.com/codefionn/termcalc/internal/engine"
	"github.com/codefionn/termcalc/internal/logger"
	"github.com/codefionn/termcalc/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	exprFlag := flag.String("e", "", "evaluate the expression and exit instead of starting the UI")
	logLevelFlag := flag.String("log-level", "", "override log level (debug, info, warn, error, none)")
	flag.Parse()

	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Environment variables override config file values for logging.
	if envLevel := strings.TrimSpace(os.Getenv("TERMCALC_LOG_LEVEL")); envLevel != "" {
		cfg.LogLevel = envLevel
	}
	if envPath := strings.TrimSpace(os.Getenv("TERMCALC_LOG_PATH")); envPath != "" {
		cfg.LogPath = envPath
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = *logLevelFlag
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err != nil {
			logger.Error("fatal: %v", err)
		}
		if closeErr := logger.Global().Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	// One-shot mode: evaluate and print without touching the terminal.
	expr := *exprFlag
	if expr == "" && flag.NArg() > 0 {
		expr = strings.Join(flag.Args(), " ")
	}
	if expr != "" {
		return evalOnce(expr, cfg.Precision)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal; use -e EXPR for non-interactive evaluation")
	}

	logger.Info("starting termcalc UI")

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !cfg.DisableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(tui.New(cfg), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}

func evalOnce(expr string, precision int) error {
	value, err := engine.Eval(expr)
	if err != nil {
		return fmt.Errorf("failed to evaluate %q: %w", expr, err)
	}
	fmt.Println(tui.FormatResult(value, precision))
	return nil
}
