package game

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config holds the table parameters. Speeds are in surface units per
// second (the layout collaborator decides what a unit is).
type Config struct {
	Decks     int     `hcl:"decks,optional"`
	MinBet    int     `hcl:"min_bet,optional"`
	MaxBet    int     `hcl:"max_bet,optional"`
	Balance   int     `hcl:"balance,optional"`
	CardSpeed float64 `hcl:"card_speed,optional"`
	ChipSpeed float64 `hcl:"chip_speed,optional"`
}

// fileConfig is the root HCL schema: a single optional table block.
type fileConfig struct {
	Table *Config `hcl:"table,block"`
}

// DefaultConfig returns the standard six-deck table
func DefaultConfig() *Config {
	return &Config{
		Decks:     6,
		MinBet:    100,
		MaxBet:    5000,
		Balance:   10000,
		CardSpeed: 90,
		ChipSpeed: 60,
	}
}

// LoadConfig reads an HCL table configuration. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", path, diags.Error())
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", path, diags.Error())
	}
	if fc.Table != nil {
		cfg.merge(fc.Table)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// merge copies the non-zero fields of other over cfg.
func (c *Config) merge(other *Config) {
	if other.Decks != 0 {
		c.Decks = other.Decks
	}
	if other.MinBet != 0 {
		c.MinBet = other.MinBet
	}
	if other.MaxBet != 0 {
		c.MaxBet = other.MaxBet
	}
	if other.Balance != 0 {
		c.Balance = other.Balance
	}
	if other.CardSpeed != 0 {
		c.CardSpeed = other.CardSpeed
	}
	if other.ChipSpeed != 0 {
		c.ChipSpeed = other.ChipSpeed
	}
}

// Validate checks the config for internally consistent values
func (c *Config) Validate() error {
	switch {
	case c.Decks < 1:
		return fmt.Errorf("decks must be at least 1, got %d", c.Decks)
	case c.MinBet < 1:
		return fmt.Errorf("min_bet must be positive, got %d", c.MinBet)
	case c.MaxBet < c.MinBet:
		return fmt.Errorf("max_bet %d below min_bet %d", c.MaxBet, c.MinBet)
	case c.Balance < c.MinBet:
		return fmt.Errorf("balance %d cannot cover min_bet %d", c.Balance, c.MinBet)
	case c.CardSpeed <= 0 || c.ChipSpeed <= 0:
		return fmt.Errorf("speeds must be positive")
	}
	return nil
}
