package statistics

// houseEdgeWindow is how many hands elapse between expected-loss
// deductions.
const houseEdgeWindow = 10

// AdjustForHouseEdge applies an expected-loss drain to a recorded
// bankroll history and returns the adjusted copy. Every ten hands the
// cumulative deduction grows by startingBankroll * edge * 10/100, and
// no balance is allowed below zero. The input history is not modified.
//
// This is a modelling aid for flat-betting baselines, not part of the
// game ledger: the table itself never charges an edge, so an edge of
// zero leaves the history untouched.
func AdjustForHouseEdge(history []float64, startingBankroll, edge float64) []float64 {
	adjusted := make([]float64, len(history))
	copy(adjusted, history)
	if edge <= 0 {
		return adjusted
	}

	perWindow := startingBankroll * edge * float64(houseEdgeWindow) / 100.0
	deduction := 0.0
	for i := range adjusted {
		if i > 0 && i%houseEdgeWindow == 0 {
			deduction += perWindow
		}
		adjusted[i] -= deduction
		if adjusted[i] < 0 {
			adjusted[i] = 0
		}
	}
	return adjusted
}
