// Package config loads table and session settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete cardroom configuration.
type Config struct {
	Table   TableConfig   `hcl:"table,block"`
	Session SessionConfig `hcl:"session,block"`
}

// TableConfig defines the stakes and seating for a table.
type TableConfig struct {
	Variant       string `hcl:"variant,optional"`
	Seats         int    `hcl:"seats,optional"`
	Ante          int    `hcl:"ante,optional"`
	SmallBlind    int    `hcl:"small_blind,optional"`
	BigBlind      int    `hcl:"big_blind,optional"`
	StartingChips int    `hcl:"starting_chips,optional"`
	BuyIn         int    `hcl:"buy_in,optional"`
	Decks         int    `hcl:"decks,optional"`
}

// SessionConfig controls the round loop.
type SessionConfig struct {
	Rounds   int    `hcl:"rounds,optional"`
	Seed     int64  `hcl:"seed,optional"`
	PacingMS int    `hcl:"pacing_ms,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			Variant:       "holdem",
			Seats:         4,
			Ante:          0,
			SmallBlind:    1,
			BigBlind:      2,
			StartingChips: 200,
			BuyIn:         200,
			Decks:         1,
		},
		Session: SessionConfig{
			Rounds:   10,
			PacingMS: 0,
			LogLevel: "info",
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Table.Variant == "" {
		cfg.Table.Variant = def.Table.Variant
	}
	if cfg.Table.Seats == 0 {
		cfg.Table.Seats = def.Table.Seats
	}
	if cfg.Table.SmallBlind == 0 {
		cfg.Table.SmallBlind = def.Table.SmallBlind
	}
	if cfg.Table.BigBlind == 0 {
		cfg.Table.BigBlind = def.Table.BigBlind
	}
	if cfg.Table.StartingChips == 0 {
		cfg.Table.StartingChips = def.Table.StartingChips
	}
	if cfg.Table.BuyIn == 0 {
		cfg.Table.BuyIn = def.Table.BuyIn
	}
	if cfg.Table.Decks == 0 {
		cfg.Table.Decks = def.Table.Decks
	}
	if cfg.Session.Rounds == 0 {
		cfg.Session.Rounds = def.Session.Rounds
	}
	if cfg.Session.LogLevel == "" {
		cfg.Session.LogLevel = def.Session.LogLevel
	}
}

func validate(cfg *Config) error {
	switch cfg.Table.Variant {
	case "holdem", "five-card-draw":
	default:
		return fmt.Errorf("unknown variant %q", cfg.Table.Variant)
	}
	if cfg.Table.Seats < 2 {
		return fmt.Errorf("need at least 2 seats, got %d", cfg.Table.Seats)
	}
	if cfg.Table.BigBlind < cfg.Table.SmallBlind {
		return fmt.Errorf("big blind %d below small blind %d", cfg.Table.BigBlind, cfg.Table.SmallBlind)
	}
	if cfg.Table.Ante < 0 {
		return fmt.Errorf("negative ante %d", cfg.Table.Ante)
	}
	return nil
}
