package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/simulator"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	netUpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	netDnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type SimulateCmd struct {
	Rounds int    `short:"n" help:"Rounds to play per table" default:"1000"`
	Tables int    `short:"t" help:"Tables to run in parallel" default:"1"`
	Seed   int64  `help:"RNG seed (0 for random)" default:"0"`
	Config string `short:"c" help:"Path to an HCL config file" type:"existingfile" optional:""`
	Debug  bool   `short:"d" help:"Verbose logging"`
}

func (s *SimulateCmd) Run() error {
	cfg, err := game.LoadConfig(s.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if s.Tables < 1 {
		return fmt.Errorf("need at least one table, got %d", s.Tables)
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := shared.SetupLogger(s.Debug)
	ctx := shared.SetupSignalHandler(logger)

	logger.Info("starting simulation",
		"tables", s.Tables, "rounds", s.Rounds, "seed", seed)

	started := time.Now()

	var mu sync.Mutex
	total := &simulator.Stats{}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < s.Tables; i++ {
		tableSeed := seed + int64(i)
		tableLogger := logger.WithPrefix(fmt.Sprintf("table-%d", i))
		g.Go(func() error {
			sim := simulator.New(simulator.Config{
				Rounds: s.Rounds,
				Seed:   tableSeed,
				Table:  cfg,
				Logger: tableLogger,
			})
			stats, err := sim.Run(ctx)
			if err != nil {
				return err
			}
			mu.Lock()
			total.Merge(stats)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printStats(total, s.Tables, time.Since(started))
	return nil
}

func printStats(stats *simulator.Stats, tables int, wall time.Duration) {
	fmt.Println(headerStyle.Render("Simulation complete"))

	line := func(label string, value string) {
		fmt.Println(statStyle.Render(fmt.Sprintf("  %-14s %s", label, value)))
	}
	line("tables", fmt.Sprintf("%d", tables))
	line("rounds", fmt.Sprintf("%d", stats.Rounds))
	line("wins", fmt.Sprintf("%d", stats.Wins))
	line("losses", fmt.Sprintf("%d", stats.Losses))
	line("pushes", fmt.Sprintf("%d", stats.Pushes))
	line("blackjacks", fmt.Sprintf("%d", stats.Blackjacks))
	if stats.Rounds > 0 {
		line("win rate", fmt.Sprintf("%.1f%%", 100*float64(stats.Wins)/float64(stats.Rounds)))
		perSec := float64(stats.Rounds) / wall.Seconds()
		line("throughput", fmt.Sprintf("%.0f rounds/sec", perSec))
	}
	line("wall time", wall.Round(time.Millisecond).String())

	netStyle := netUpStyle
	if stats.Net < 0 {
		netStyle = netDnStyle
	}
	fmt.Println(netStyle.Render(fmt.Sprintf("  %-14s %+d", "player net", stats.Net)))
	fmt.Println(statStyle.Render(fmt.Sprintf("  %-14s %+d", "house net", stats.HouseNet)))
}
