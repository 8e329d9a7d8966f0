// Package report turns simulation results into JSON, CSV, and styled
// terminal output.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/lox/blackjacksim/internal/fileutil"
	"github.com/lox/blackjacksim/internal/simulator"
	"github.com/lox/blackjacksim/internal/statistics"
)

// DefaultAlpha is the significance level used for verdicts.
const DefaultAlpha = 0.05

// Report is the serializable form of a finished simulation
type Report struct {
	RunID    string     `json:"run_id"`
	Metadata Metadata   `json:"metadata"`
	Config   Config     `json:"configuration"`
	Results  Statistics `json:"results"`
}

// Metadata contains execution metadata
type Metadata struct {
	GeneratedAt     time.Time `json:"generated_at"`
	DurationSeconds float64   `json:"duration_seconds"`
	HandsPerSecond  float64   `json:"hands_per_second"`
	TotalHands      int       `json:"total_hands_played"`
}

// Config records the simulation and table parameters the run used
type Config struct {
	Runs             int     `json:"runs"`
	HandsPerRun      int     `json:"hands_per_run"`
	StartingBankroll float64 `json:"starting_bankroll"`
	Seed             int64   `json:"seed"`
	Workers          int     `json:"workers"`
	HouseEdge        float64 `json:"house_edge,omitempty"`
	Decks            int     `json:"decks"`
	MinBet           float64 `json:"min_bet"`
	BlackjackPayout  float64 `json:"blackjack_payout"`
	Penetration      float64 `json:"penetration"`
	BetRampStart     float64 `json:"bet_ramp_start"`
	MaxBetMultiplier int     `json:"max_bet_multiplier"`
}

// Statistics contains the aggregated results for both strategies
type Statistics struct {
	Basic      StrategyStats   `json:"basic"`
	Counting   StrategyStats   `json:"counting"`
	Comparison ComparisonStats `json:"comparison"`
}

// StrategyStats contains per-strategy performance metrics
type StrategyStats struct {
	Strategy     string  `json:"strategy"`
	Runs         int     `json:"runs"`
	MeanProfit   float64 `json:"mean_profit"`
	MedianProfit float64 `json:"median_profit"`
	StdDev       float64 `json:"std_dev"`
	StdError     float64 `json:"std_error"`
	CI95Low      float64 `json:"ci_95_low"`
	CI95High     float64 `json:"ci_95_high"`
	P05          float64 `json:"p05"`
	P25          float64 `json:"p25"`
	P75          float64 `json:"p75"`
	P95          float64 `json:"p95"`
	WinRate      float64 `json:"win_rate"`
	BrokeRuns    int     `json:"broke_runs"`
	HandsPerRun  float64 `json:"hands_per_run"`
}

// ComparisonStats contains the statistical comparison of counting
// against basic strategy
type ComparisonStats struct {
	MeanDifference   float64 `json:"mean_difference"`
	StdError         float64 `json:"std_error"`
	TStatistic       float64 `json:"t_statistic"`
	DegreesOfFreedom float64 `json:"degrees_of_freedom"`
	PValue           float64 `json:"p_value"`
	EffectSize       float64 `json:"effect_size"`
	EffectLabel      string  `json:"effect_label"`
	CI95Low          float64 `json:"ci_95_low"`
	CI95High         float64 `json:"ci_95_high"`
	Significant      bool    `json:"significant"`
	Verdict          string  `json:"verdict"`
}

// New builds a report from simulation results
func New(results *simulator.Results) *Report {
	handsPerSecond := 0.0
	if results.Elapsed > 0 {
		handsPerSecond = float64(results.Basic.TotalHands) / results.Elapsed.Seconds()
	}

	return &Report{
		RunID: uuid.New().String(),
		Metadata: Metadata{
			GeneratedAt:     time.Now().UTC(),
			DurationSeconds: results.Elapsed.Seconds(),
			HandsPerSecond:  handsPerSecond,
			TotalHands:      results.Basic.TotalHands,
		},
		Config: Config{
			Runs:             results.Runs,
			HandsPerRun:      results.HandsPerRun,
			StartingBankroll: results.StartingBankroll,
			Seed:             results.Seed,
			Workers:          results.Workers,
			HouseEdge:        results.HouseEdge,
			Decks:            results.Rules.NumDecks,
			MinBet:           results.Rules.MinBet,
			BlackjackPayout:  results.Rules.BlackjackPayout,
			Penetration:      results.Rules.Penetration,
			BetRampStart:     results.Rules.BetRampStart,
			MaxBetMultiplier: results.Rules.MaxBetMultiplier,
		},
		Results: Statistics{
			Basic:      strategyStats(results.Basic),
			Counting:   strategyStats(results.Counting),
			Comparison: comparisonStats(results.Comparison),
		},
	}
}

func strategyStats(s *statistics.Summary) StrategyStats {
	low, high := s.ConfidenceInterval95()
	return StrategyStats{
		Strategy:     s.Strategy,
		Runs:         s.Runs,
		MeanProfit:   s.Mean(),
		MedianProfit: s.Median(),
		StdDev:       s.StdDev(),
		StdError:     s.StdError(),
		CI95Low:      low,
		CI95High:     high,
		P05:          s.Percentile(0.05),
		P25:          s.Percentile(0.25),
		P75:          s.Percentile(0.75),
		P95:          s.Percentile(0.95),
		WinRate:      s.WinRate(),
		BrokeRuns:    s.Broke,
		HandsPerRun:  s.HandsPerRun(),
	}
}

func comparisonStats(c statistics.Comparison) ComparisonStats {
	return ComparisonStats{
		MeanDifference:   c.Difference,
		StdError:         c.StdError,
		TStatistic:       c.TStatistic,
		DegreesOfFreedom: c.DegreesOfFreedom,
		PValue:           c.PValue,
		EffectSize:       c.EffectSize,
		EffectLabel:      statistics.InterpretEffectSize(c.EffectSize),
		CI95Low:          c.CI95Low,
		CI95High:         c.CI95High,
		Significant:      c.Significant(DefaultAlpha),
		Verdict:          verdict(c),
	}
}

func verdict(c statistics.Comparison) string {
	switch {
	case c.Significant(DefaultAlpha) && c.Difference > 0:
		return "card counting outperformed basic strategy"
	case c.Significant(DefaultAlpha) && c.Difference < 0:
		return "card counting underperformed basic strategy"
	default:
		return "no significant difference between strategies"
	}
}

// WriteJSON writes the report as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// SaveJSON writes the report to a file atomically
func (r *Report) SaveJSON(filename string) error {
	return fileutil.WriteFileAtomicFunc(filename, 0644, r.WriteJSON)
}
