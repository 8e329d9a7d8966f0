package statistics

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Comparison holds the result of a Welch two-sample t-test between two
// strategies' run profits.
type Comparison struct {
	Difference       float64 // Mean of a minus mean of b
	StdError         float64 // Pooled standard error of the difference
	TStatistic       float64
	DegreesOfFreedom float64 // Welch-Satterthwaite approximation
	PValue           float64 // Two-tailed
	EffectSize       float64 // Cohen's d
	CI95Low          float64 // 95% CI for the difference
	CI95High         float64
}

// Significant reports whether the difference is significant at the
// given alpha level.
func (c Comparison) Significant(alpha float64) bool {
	return c.PValue < alpha
}

// Compare runs Welch's t-test on the run profits of two strategies.
// Welch's variant does not assume equal variances, which matters here:
// bet ramping inflates the variance of the counting strategy well past
// the flat bettor's.
func Compare(a, b *Summary) Comparison {
	n1 := len(a.Values)
	n2 := len(b.Values)
	if n1 == 0 || n2 == 0 {
		return Comparison{PValue: 1}
	}

	mean1 := stat.Mean(a.Values, nil)
	mean2 := stat.Mean(b.Values, nil)
	var1, var2 := 0.0, 0.0
	if n1 > 1 {
		var1 = stat.Variance(a.Values, nil)
	}
	if n2 > 1 {
		var2 = stat.Variance(b.Values, nil)
	}

	diff := mean1 - mean2

	se1Sq := var1 / float64(n1)
	se2Sq := var2 / float64(n2)
	sePooled := math.Sqrt(se1Sq + se2Sq)

	tStat := 0.0
	if sePooled > 0 {
		tStat = diff / sePooled
	}

	df := welchDF(var1, n1, var2, n2)
	pValue := pValueFromT(tStat, df)

	effectSize := 0.0
	if pooled := pooledStdDev(var1, n1, var2, n2); pooled > 0 {
		effectSize = diff / pooled
	}

	ciLow, ciHigh := diff, diff
	if df > 0 && sePooled > 0 {
		tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		margin := tDist.Quantile(0.975) * sePooled
		ciLow, ciHigh = diff-margin, diff+margin
	}

	return Comparison{
		Difference:       diff,
		StdError:         sePooled,
		TStatistic:       tStat,
		DegreesOfFreedom: df,
		PValue:           pValue,
		EffectSize:       effectSize,
		CI95Low:          ciLow,
		CI95High:         ciHigh,
	}
}

// pooledStdDev computes the pooled standard deviation for Cohen's d
func pooledStdDev(var1 float64, n1 int, var2 float64, n2 int) float64 {
	if n1 < 2 || n2 < 2 {
		return 0
	}
	pooledVar := (float64(n1-1)*var1 + float64(n2-1)*var2) / float64(n1+n2-2)
	return math.Sqrt(pooledVar)
}

// welchDF computes the Welch-Satterthwaite degrees of freedom
func welchDF(var1 float64, n1 int, var2 float64, n2 int) float64 {
	if n1 <= 1 || n2 <= 1 {
		return 1
	}

	se1Sq := var1 / float64(n1)
	se2Sq := var2 / float64(n2)

	numerator := (se1Sq + se2Sq) * (se1Sq + se2Sq)
	denominator := (se1Sq*se1Sq)/float64(n1-1) + (se2Sq*se2Sq)/float64(n2-1)

	if denominator == 0 {
		df := float64(n1 + n2 - 2)
		if df < 1 {
			return 1
		}
		return df
	}

	return math.Floor(numerator / denominator)
}

// pValueFromT computes the two-tailed p-value for a t statistic
func pValueFromT(tStat, df float64) float64 {
	if df <= 0 {
		return 1
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * (1 - tDist.CDF(math.Abs(tStat)))

	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// InterpretEffectSize translates Cohen's d into a plain-language label
func InterpretEffectSize(d float64) string {
	abs := math.Abs(d)
	switch {
	case abs < 0.2:
		return "negligible"
	case abs < 0.5:
		return "small"
	case abs < 0.8:
		return "medium"
	default:
		return "large"
	}
}

// InterpretPValue translates a p-value into a plain-language label
func InterpretPValue(p, alpha float64) string {
	switch {
	case p < 0.001:
		return "highly significant"
	case p < 0.01:
		return "very significant"
	case p < alpha:
		return "significant"
	case p < 0.10:
		return "marginally significant"
	default:
		return "not significant"
	}
}
