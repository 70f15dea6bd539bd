// Package simulator drives the blackjack engine headlessly: the human seat
// is auto-played by the same policy the bots use, and rounds run as fast as
// the tick loop allows. It is the engine's soak test and the backing for
// the simulate command.
package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// Config holds configuration for a simulation run.
type Config struct {
	Rounds int
	Seed   int64
	Table  *game.Config
	Logger *log.Logger

	// Clock measures elapsed time; tests inject a mock.
	Clock quartz.Clock

	// StepDT is the fixed per-tick elapsed time fed to the engine.
	StepDT float64
}

// Stats aggregates the human seat's results across a run.
type Stats struct {
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int

	// Net is the human's balance delta over the run.
	Net int

	// HouseNet is the table's take across all seats.
	HouseNet int

	Elapsed time.Duration
}

// Merge folds other into s (for aggregating parallel tables).
func (s *Stats) Merge(other *Stats) {
	s.Rounds += other.Rounds
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.Net += other.Net
	s.HouseNet += other.HouseNet
	if other.Elapsed > s.Elapsed {
		s.Elapsed = other.Elapsed
	}
}

// Simulator runs rounds against one table.
type Simulator struct {
	config Config
}

// New creates a simulator, filling config defaults.
func New(config Config) *Simulator {
	if config.Table == nil {
		config.Table = game.DefaultConfig()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.StepDT <= 0 {
		config.StepDT = 0.25
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// maxTicksPerRound bounds a single round; a round that spins longer has
// wedged the state machine.
const maxTicksPerRound = 100000

// Run plays the configured number of rounds and returns the aggregated
// stats. It stops early when the context is cancelled, the table stalls,
// or the human can no longer cover the minimum bet.
func (s *Simulator) Run(ctx context.Context) (*Stats, error) {
	logger := s.config.Logger.WithPrefix("sim")
	table := game.NewTable(s.config.Table, virtualZones(), randutil.New(s.config.Seed), logger)
	human := game.NewBotPolicy(randutil.New(s.config.Seed + 1))

	startBalance := 0
	for _, seat := range table.Seats() {
		startBalance += seat.Balance
	}

	stats := &Stats{}
	start := s.config.Clock.Now()
	defer func() { stats.Elapsed = s.config.Clock.Since(start) }()

	ticks := 0
	for stats.Rounds < s.config.Rounds {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if table.Stalled() {
			return stats, fmt.Errorf("table stalled after %d rounds", stats.Rounds)
		}
		if ticks++; ticks > maxTicksPerRound {
			return stats, fmt.Errorf("round %d wedged after %d ticks", stats.Rounds, ticks)
		}

		switch table.Mode() {
		case game.ModeBet:
			bet := human.DecideBet(s.config.Table.MinBet, s.config.Table.MaxBet)
			if bet > table.Human().Balance {
				bet = table.Human().Balance
			}
			if err := table.PlaceHumanBet(bet); err != nil {
				// Felted: the human cannot cover the minimum bet.
				logger.Info("human seat is out of chips", "rounds", stats.Rounds)
				return stats, nil
			}
		case game.ModeTurn:
			_, handIdx, ok := table.CurrentTurn()
			if ok {
				action := human.Decide(table.Human().Hand(handIdx), table.Dealer())
				if action == game.Double && table.Human().Balance < table.Human().Bet(handIdx) {
					action = game.Hit
				}
				if err := table.ApplyHumanAction(action); err != nil {
					return stats, fmt.Errorf("auto-playing human: %w", err)
				}
			}
		}

		before := table.Round()
		table.Step(s.config.StepDT)
		if table.Round() == before {
			continue
		}
		ticks = 0

		s.harvest(table, stats)
		if err := checkConservation(table, startBalance); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// harvest records the settled round's human results.
func (s *Simulator) harvest(table *game.Table, stats *Stats) {
	stats.Rounds++
	stats.HouseNet = table.HouseNet()
	stats.Net = table.Human().Balance - s.config.Table.Balance
	result := table.LastResult()
	if result == nil {
		return
	}
	for _, hr := range result.Hands {
		if hr.Seat != game.HumanSeat {
			continue
		}
		switch hr.Outcome {
		case game.OutcomeWin:
			stats.Wins++
		case game.OutcomeLoss:
			stats.Losses++
		case game.OutcomePush:
			stats.Pushes++
		case game.OutcomeBlackjack:
			stats.Blackjacks++
		}
	}
}

// checkConservation verifies that chips only move between the seats and
// the house: at a round boundary every bet is settled, so seat balances
// plus the house take must equal the starting total.
func checkConservation(table *game.Table, startBalance int) error {
	total := 0
	for _, seat := range table.Seats() {
		total += seat.Balance
	}
	if total+table.HouseNet() != startBalance {
		return fmt.Errorf("chip conservation broken: balances %d + house %d != start %d",
			total, table.HouseNet(), startBalance)
	}
	return nil
}

// virtualZones lays the table out on a fixed 160x48 surface; the simulator
// never renders, but the engine still animates against real geometry.
func virtualZones() game.Zones {
	z := game.Zones{
		game.ZoneDeck:   {X: 150, Y: 1, W: 6, H: 5},
		game.ZoneBurn:   {X: 2, Y: 1, W: 6, H: 5},
		game.ZoneDealer: {X: 66, Y: 1, W: 28, H: 6},
		game.ZoneChip:   {X: 78, Y: 12, W: 4, H: 2},
	}
	for seat := 0; seat < game.NumSeats; seat++ {
		base := float64(seat) * 40
		quads := []struct{ dx, dy float64 }{{0, 4}, {10, 4}, {0, 0}, {10, 0}}
		for hand := 0; hand < game.MaxHands; hand++ {
			z[game.HandZone(seat, hand)] = game.Rect{
				X: base + quads[hand].dx, Y: 28 + quads[hand].dy, W: 10, H: 4,
			}
		}
		z[game.StatZone(seat)] = game.Rect{X: base, Y: 37, W: 20, H: 2}
		z[game.BetZone(seat)] = game.Rect{X: base, Y: 40, W: 20, H: 2}
	}
	return z
}
