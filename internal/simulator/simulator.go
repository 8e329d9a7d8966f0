package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/statistics"
)

// Seat names used for the two players in every run.
const (
	BasicPlayerName    = "basic"
	CountingPlayerName = "counter"
)

// Config holds configuration for running simulations
type Config struct {
	Runs             int
	HandsPerRun      int
	StartingBankroll float64
	Seed             int64
	Workers          int     // 0 means one worker per CPU
	HouseEdge        float64 // Expected-loss drain on the flat bettor, 0 disables
	Rules            game.Rules
	Logger           *log.Logger

	// OnRunComplete is invoked after each run finishes. It may be
	// called concurrently from worker goroutines.
	OnRunComplete func(completed, total int)
}

// DefaultConfig returns the standard setup: twenty runs of a thousand
// hands from a 1000-unit bankroll at a six-deck table.
func DefaultConfig() Config {
	return Config{
		Runs:             20,
		HandsPerRun:      250,
		StartingBankroll: 1000,
		Rules:            game.DefaultRules(),
	}
}

// Validate checks for configuration values that would make a
// simulation meaningless.
func (c *Config) Validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	if c.HandsPerRun < 1 {
		return fmt.Errorf("hands per run must be at least 1, got %d", c.HandsPerRun)
	}
	if c.StartingBankroll <= 0 {
		return fmt.Errorf("starting bankroll must be positive, got %.2f", c.StartingBankroll)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Workers)
	}
	if c.HouseEdge < 0 || c.HouseEdge >= 1 {
		return fmt.Errorf("house edge must be in [0, 1), got %.4f", c.HouseEdge)
	}
	return c.Rules.Validate()
}

// Results aggregates everything a simulation produced
type Results struct {
	Basic      *statistics.Summary
	Counting   *statistics.Summary
	Comparison statistics.Comparison // Counting minus basic

	// Bankroll trajectories from the first run, for plotting and export
	BasicHistory    []float64
	CountingHistory []float64

	Rules            game.Rules
	Runs             int
	HandsPerRun      int
	StartingBankroll float64
	HouseEdge        float64
	Seed             int64
	Workers          int
	Elapsed          time.Duration
}

// Simulator plays paired blackjack runs: a flat-betting basic strategy
// player and a Hi-Lo counter share every shoe, so differences in
// profit come from play decisions and bet sizing alone.
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a simulator, filling in defaults for unset fields
func New(config Config) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Workers == 0 {
		config.Workers = runtime.NumCPU()
		if config.Workers > config.Runs {
			config.Workers = config.Runs
		}
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{config: config, logger: logger}, nil
}

// Run executes every configured run and aggregates the results. Each
// run derives its own seed from the base seed, and outcomes are folded
// in run order after all workers finish, so results are identical for
// any worker count.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	cfg := s.config
	start := time.Now()

	s.logger.Info("Starting simulation",
		"runs", cfg.Runs,
		"hands", cfg.HandsPerRun,
		"bankroll", cfg.StartingBankroll,
		"seed", cfg.Seed,
		"workers", cfg.Workers)

	outcomes := make([]runOutcome, cfg.Runs)
	var completed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := 0; i < cfg.Runs; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = s.runOne(i)
			if cfg.OnRunComplete != nil {
				cfg.OnRunComplete(int(completed.Add(1)), cfg.Runs)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	basic := &statistics.Summary{Strategy: game.BasicStrategy.String()}
	counting := &statistics.Summary{Strategy: game.CardCounting.String()}
	for _, o := range outcomes {
		basic.Add(o.basic)
		counting.Add(o.counting)
	}

	if err := basic.Validate(); err != nil {
		return nil, fmt.Errorf("basic strategy statistics failed validation: %w", err)
	}
	if err := counting.Validate(); err != nil {
		return nil, fmt.Errorf("counting strategy statistics failed validation: %w", err)
	}

	results := &Results{
		Basic:            basic,
		Counting:         counting,
		Comparison:       statistics.Compare(counting, basic),
		BasicHistory:     outcomes[0].basicHistory,
		CountingHistory:  outcomes[0].countingHistory,
		Rules:            cfg.Rules,
		Runs:             cfg.Runs,
		HandsPerRun:      cfg.HandsPerRun,
		StartingBankroll: cfg.StartingBankroll,
		HouseEdge:        cfg.HouseEdge,
		Seed:             cfg.Seed,
		Workers:          cfg.Workers,
		Elapsed:          time.Since(start),
	}

	s.logger.Info("Simulation complete",
		"elapsed", results.Elapsed,
		"basic_mean", basic.Mean(),
		"counting_mean", counting.Mean(),
		"p_value", results.Comparison.PValue)

	return results, nil
}

// runOutcome carries one run's results for both seats
type runOutcome struct {
	basic           statistics.RunResult
	counting        statistics.RunResult
	basicHistory    []float64
	countingHistory []float64
}

// runOne plays a full run on a fresh table. The run ends early if
// either seat goes broke: the seats are paired on the same shoe, so
// playing one on without the other would unpair the comparison.
func (s *Simulator) runOne(run int) runOutcome {
	cfg := s.config
	seed := randutil.Derive(cfg.Seed, run)
	rng := randutil.New(seed)

	table := game.NewTable(cfg.Rules, rng, s.logger.WithPrefix("table").With("run", run))
	basic := game.NewPlayer(BasicPlayerName, game.BasicStrategy, cfg.StartingBankroll)
	counter := game.NewPlayer(CountingPlayerName, game.CardCounting, cfg.StartingBankroll)
	table.AddPlayer(basic)
	table.AddPlayer(counter)

	basicHistory := make([]float64, 0, cfg.HandsPerRun+1)
	countingHistory := make([]float64, 0, cfg.HandsPerRun+1)
	basicHistory = append(basicHistory, basic.Bankroll)
	countingHistory = append(countingHistory, counter.Bankroll)

	hands := 0
	for hand := 0; hand < cfg.HandsPerRun; hand++ {
		table.PlayRound()
		hands++
		basicHistory = append(basicHistory, basic.Bankroll)
		countingHistory = append(countingHistory, counter.Bankroll)

		if basic.Bankroll <= 0 || counter.Bankroll <= 0 {
			break
		}
	}

	// The drain is a post-hoc transform of the recorded trajectory.
	// The table itself never charges an edge.
	if cfg.HouseEdge > 0 {
		basicHistory = statistics.AdjustForHouseEdge(basicHistory, cfg.StartingBankroll, cfg.HouseEdge)
	}

	basicFinal := basicHistory[len(basicHistory)-1]
	countingFinal := countingHistory[len(countingHistory)-1]

	return runOutcome{
		basic: statistics.RunResult{
			Profit:    basicFinal - cfg.StartingBankroll,
			Hands:     hands,
			WentBroke: basicFinal <= 0,
			Seed:      seed,
		},
		counting: statistics.RunResult{
			Profit:    countingFinal - cfg.StartingBankroll,
			Hands:     hands,
			WentBroke: countingFinal <= 0,
			Seed:      seed,
		},
		basicHistory:    basicHistory,
		countingHistory: countingHistory,
	}
}
