package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjacksim/internal/game"
)

// FileConfig is the on-disk HCL configuration. Both blocks are
// optional, and within a block any attribute left out keeps the
// built-in default.
//
//	table {
//	  decks       = 6
//	  min_bet     = 10
//	  penetration = 0.75
//	}
//
//	simulation {
//	  runs     = 50
//	  hands    = 2000
//	  bankroll = 5000
//	}
type FileConfig struct {
	Table      *TableBlock      `hcl:"table,block"`
	Simulation *SimulationBlock `hcl:"simulation,block"`
}

// TableBlock overrides table rules
type TableBlock struct {
	Decks            int     `hcl:"decks,optional"`
	MinBet           float64 `hcl:"min_bet,optional"`
	BlackjackPayout  float64 `hcl:"blackjack_payout,optional"`
	Penetration      float64 `hcl:"penetration,optional"`
	BetRampStart     float64 `hcl:"bet_ramp_start,optional"`
	MinBetMultiplier int     `hcl:"min_bet_multiplier,optional"`
	MaxBetMultiplier int     `hcl:"max_bet_multiplier,optional"`
}

// SimulationBlock overrides simulation parameters
type SimulationBlock struct {
	Runs             int     `hcl:"runs,optional"`
	Hands            int     `hcl:"hands,optional"`
	StartingBankroll float64 `hcl:"bankroll,optional"`
	Workers          int     `hcl:"workers,optional"`
	HouseEdge        float64 `hcl:"house_edge,optional"`
}

// LoadFile parses an HCL configuration file. Unlike implicit config
// paths, the file was asked for by name, so a missing file is an
// error rather than a silent fallback.
func LoadFile(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return &config, nil
}

// Apply overlays every value set in the file onto cfg. Zero values in
// the file are treated as unset, so a config file cannot switch the
// house edge off once a flag turned it on; it can only replace it.
func (f *FileConfig) Apply(cfg *Config) {
	if f.Table != nil {
		f.Table.apply(&cfg.Rules)
	}
	if f.Simulation == nil {
		return
	}

	sim := f.Simulation
	if sim.Runs != 0 {
		cfg.Runs = sim.Runs
	}
	if sim.Hands != 0 {
		cfg.HandsPerRun = sim.Hands
	}
	if sim.StartingBankroll != 0 {
		cfg.StartingBankroll = sim.StartingBankroll
	}
	if sim.Workers != 0 {
		cfg.Workers = sim.Workers
	}
	if sim.HouseEdge != 0 {
		cfg.HouseEdge = sim.HouseEdge
	}
}

func (t *TableBlock) apply(rules *game.Rules) {
	if t.Decks != 0 {
		rules.NumDecks = t.Decks
	}
	if t.MinBet != 0 {
		rules.MinBet = t.MinBet
	}
	if t.BlackjackPayout != 0 {
		rules.BlackjackPayout = t.BlackjackPayout
	}
	if t.Penetration != 0 {
		rules.Penetration = t.Penetration
	}
	if t.BetRampStart != 0 {
		rules.BetRampStart = t.BetRampStart
	}
	if t.MinBetMultiplier != 0 {
		rules.MinBetMultiplier = t.MinBetMultiplier
	}
	if t.MaxBetMultiplier != 0 {
		rules.MaxBetMultiplier = t.MaxBetMultiplier
	}
}
