package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// RunResult represents the outcome of a single simulation run for one player
type RunResult struct {
	Profit    float64 // Final bankroll minus starting bankroll
	Hands     int     // Hands actually played before the run stopped
	WentBroke bool    // Run ended because the bankroll hit zero
	Seed      int64   // RNG seed for this run (for replay)
}

// Summary tracks aggregate statistics for one strategy across runs
type Summary struct {
	Strategy string

	Runs   int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all profits for median/percentile calculation

	Wins       int // Runs that finished in profit
	Broke      int // Runs that ended with an empty bankroll
	TotalHands int
}

// Add incorporates a run result into the summary
func (s *Summary) Add(result RunResult) {
	profit := result.Profit
	s.Runs++
	s.Sum += profit
	s.Sum2 += profit * profit
	s.Values = append(s.Values, profit)
	s.TotalHands += result.Hands

	if profit > 0 {
		s.Wins++
	}
	if result.WentBroke {
		s.Broke++
	}
}

// Mean returns the arithmetic mean profit per run
func (s *Summary) Mean() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.Sum / float64(s.Runs)
}

// Variance returns the sample variance of run profits
func (s *Summary) Variance() float64 {
	if s.Runs < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Runs)*mean*mean) / float64(s.Runs-1)
}

// StdDev returns the sample standard deviation of run profits
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Summary) StdError() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Runs))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
// profit using the Student's t distribution
func (s *Summary) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	if s.Runs < 2 {
		return mean, mean
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(s.Runs - 1)}
	margin := tDist.Quantile(0.975) * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the fraction of runs that finished in profit
func (s *Summary) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Runs)
}

// BrokeRate returns the fraction of runs that busted before finishing
func (s *Summary) BrokeRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Broke) / float64(s.Runs)
}

// HandsPerRun returns the mean number of hands played per run. Runs
// that go broke stop early, so this can be well below the configured
// hand count.
func (s *Summary) HandsPerRun() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.TotalHands) / float64(s.Runs)
}

// Median returns the median profit across runs
func (s *Summary) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the profit at the given percentile (0.0 to 1.0)
func (s *Summary) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate performs consistency checks on the accumulated data
func (s *Summary) Validate() error {
	if s.Runs <= 0 {
		return fmt.Errorf("invalid run count: %d", s.Runs)
	}

	if len(s.Values) != s.Runs {
		return fmt.Errorf("values array length (%d) does not match run count (%d)",
			len(s.Values), s.Runs)
	}

	total := 0.0
	for _, v := range s.Values {
		total += v
	}
	if math.Abs(total-s.Sum) > 1e-6 {
		return fmt.Errorf("ledger mismatch: Sum=%.6f, values total %.6f", s.Sum, total)
	}

	if s.Wins > s.Runs {
		return fmt.Errorf("winning runs (%d) exceed total runs (%d)", s.Wins, s.Runs)
	}

	// A busted run always ends below its starting bankroll, so the two
	// buckets never overlap.
	if s.Wins+s.Broke > s.Runs {
		return fmt.Errorf("wins (%d) plus busts (%d) exceed total runs (%d)",
			s.Wins, s.Broke, s.Runs)
	}

	return nil
}
