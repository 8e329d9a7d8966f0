package game

import (
	"fmt"
	"math"
)

// Rules holds the table rules and betting ramp parameters for a game.
// A Rules value is fixed at table creation and never mutated afterwards;
// there are no package-level tunables.
type Rules struct {
	NumDecks         int     // decks in the shoe
	MinBet           float64 // flat bet, and the base unit for the ramp
	BlackjackPayout  float64 // profit multiple for a natural (3:2 pays 1.5)
	Penetration      float64 // cut card depth as a fraction of the shoe
	BetRampStart     float64 // true count at which the counter starts ramping
	MinBetMultiplier int     // ramp floor
	MaxBetMultiplier int     // ramp cap
}

// DefaultRules returns the standard six-deck game: $10 minimum, 3:2
// naturals, cut card at 75%, and a 1x-5x ramp that starts at true count 2.
func DefaultRules() Rules {
	return Rules{
		NumDecks:         6,
		MinBet:           10,
		BlackjackPayout:  1.5,
		Penetration:      0.75,
		BetRampStart:     2,
		MinBetMultiplier: 1,
		MaxBetMultiplier: 5,
	}
}

// Validate checks that the rules describe a playable game
func (r Rules) Validate() error {
	if r.NumDecks < 1 {
		return fmt.Errorf("num_decks must be at least 1, got %d", r.NumDecks)
	}
	if r.MinBet <= 0 {
		return fmt.Errorf("min_bet must be positive, got %v", r.MinBet)
	}
	if r.BlackjackPayout <= 1 {
		return fmt.Errorf("blackjack_payout must exceed even money, got %v", r.BlackjackPayout)
	}
	if r.Penetration <= 0 || r.Penetration > 1 {
		return fmt.Errorf("penetration must be in (0, 1], got %v", r.Penetration)
	}
	if r.MinBetMultiplier < 1 {
		return fmt.Errorf("min_bet_multiplier must be at least 1, got %d", r.MinBetMultiplier)
	}
	if r.MaxBetMultiplier < r.MinBetMultiplier {
		return fmt.Errorf("max_bet_multiplier %d is below min_bet_multiplier %d",
			r.MaxBetMultiplier, r.MinBetMultiplier)
	}
	return nil
}

// BetMultiplier returns the ramp multiplier for a true count: the floor of
// the true count, clamped to [MinBetMultiplier, MaxBetMultiplier], once the
// count reaches BetRampStart. Below the ramp start the bet stays at the
// table minimum.
func (r Rules) BetMultiplier(trueCount float64) int {
	if trueCount < r.BetRampStart {
		return r.MinBetMultiplier
	}
	m := int(math.Floor(trueCount))
	if m < r.MinBetMultiplier {
		m = r.MinBetMultiplier
	}
	if m > r.MaxBetMultiplier {
		m = r.MaxBetMultiplier
	}
	return m
}
