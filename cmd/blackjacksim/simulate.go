package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/blackjacksim/internal/plot"
	"github.com/lox/blackjacksim/internal/report"
	"github.com/lox/blackjacksim/internal/simulator"
)

// SimulateCmd contains the full simulation configuration
type SimulateCmd struct {
	Runs      int     `kong:"default='20',help='Number of independent runs'"`
	Hands     int     `kong:"default='250',help='Hands to play per run'"`
	Bankroll  float64 `kong:"default='1000',help='Starting bankroll for each seat'"`
	Seed      *int64  `kong:"help='Deterministic RNG seed (optional)'"`
	Workers   int     `kong:"default='0',help='Concurrent runs (0 uses all CPUs)'"`
	Rules     string  `kong:"help='Table rules file (HCL)'"`
	HouseEdge float64 `kong:"name='house-edge',default='0',help='Periodic drain rate applied to the basic seat, e.g. 0.005'"`
	Output    string  `kong:"short='o',help='Write a JSON report to this file'"`
	CSV       string  `kong:"name='csv',help='Write per-hand bankroll histories to this CSV file'"`
	Chart     string  `kong:"help='Write a bankroll chart to this PNG file'"`
	Quiet     bool    `kong:"short='q',help='Suppress progress output'"`
	Debug     bool    `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := newLogger(c.Debug)

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	cfg := simulator.DefaultConfig()
	cfg.Runs = c.Runs
	cfg.HandsPerRun = c.Hands
	cfg.StartingBankroll = c.Bankroll
	cfg.Seed = seed
	cfg.Workers = c.Workers
	cfg.HouseEdge = c.HouseEdge
	cfg.Logger = logger

	if c.Rules != "" {
		fc, err := simulator.LoadFile(c.Rules)
		if err != nil {
			return fmt.Errorf("loading rules: %w", err)
		}
		fc.Apply(&cfg)
	}

	var progress *progressPrinter
	if !c.Quiet {
		progress = newProgressPrinter(os.Stdout, cfg.Runs, cfg.HandsPerRun)
		cfg.OnRunComplete = progress.RunComplete
	}

	sim, err := simulator.New(cfg)
	if err != nil {
		return err
	}

	if progress != nil {
		progress.Start()
	}

	results, err := sim.Run(signalContext(logger))
	if err != nil {
		return err
	}

	rep := report.New(results)
	if err := rep.WriteText(os.Stdout, nil); err != nil {
		return err
	}

	if c.Output != "" {
		if err := rep.SaveJSON(c.Output); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Wrote JSON report to %s\n", c.Output)
	}
	if c.CSV != "" {
		if err := report.SaveHistoriesCSV(c.CSV, results.BasicHistory, results.CountingHistory); err != nil {
			return fmt.Errorf("writing histories: %w", err)
		}
		fmt.Printf("Wrote bankroll histories to %s\n", c.CSV)
	}
	if c.Chart != "" {
		t := plot.Trajectories{
			Basic:            results.BasicHistory,
			Counting:         results.CountingHistory,
			StartingBankroll: results.StartingBankroll,
		}
		if err := plot.Save(t, c.Chart); err != nil {
			return fmt.Errorf("writing chart: %w", err)
		}
		fmt.Printf("Wrote bankroll chart to %s\n", c.Chart)
	}

	return nil
}
