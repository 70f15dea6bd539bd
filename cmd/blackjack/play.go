package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/tui"
)

type PlayCmd struct {
	Config string `short:"c" help:"Path to an HCL config file" type:"existingfile" optional:""`
	Seed   int64  `help:"RNG seed (0 for random)" default:"0"`
	Debug  bool   `short:"d" help:"Write debug logs to blackjack.log"`
}

func (p *PlayCmd) Run() error {
	cfg, err := game.LoadConfig(p.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// The TUI owns stdout and stderr; logs go to a file or nowhere.
	logger := shared.DiscardLogger()
	if p.Debug {
		fileLogger, closer, err := shared.SetupFileLogger("blackjack.log", true)
		if err != nil {
			return err
		}
		defer closer.Close()
		logger = fileLogger
	}
	logger.Info("starting table", "seed", seed, "decks", cfg.Decks)

	model := tui.New(cfg, seed, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
