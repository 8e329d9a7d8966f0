package game

import "github.com/lox/blackjacksim/internal/deck"

// Action represents a playing decision
type Action int

const (
	Hit Action = iota
	Stand
	Double
)

// String returns the string representation of an action
func (a Action) String() string {
	return [...]string{"hit", "stand", "double"}[a]
}

// Strategy identifies how a seat sizes its bets. Playing decisions are
// shared by every seat; only bet sizing differs.
type Strategy int

const (
	// BasicStrategy bets the table minimum every round
	BasicStrategy Strategy = iota
	// CardCounting keeps a Hi-Lo count and ramps bets with the true count
	CardCounting
)

// String returns the string representation of a strategy
func (s Strategy) String() string {
	return [...]string{"basic", "counting"}[s]
}

// Decide returns the basic strategy action for a hand total against the
// dealer's upcard. canDouble is true only on the first two cards; when the
// table would double but cannot, the soft 18 row falls back to standing
// and every other row falls back to hitting.
func Decide(total int, soft bool, dealerUp deck.Card, canDouble bool) Action {
	if soft {
		return decideSoft(total, dealerUp.Value(), canDouble)
	}
	return decideHard(total, dealerUp.Value(), canDouble)
}

func decideSoft(total, dealer int, canDouble bool) Action {
	switch {
	case total >= 19:
		return Stand
	case total == 18:
		switch {
		case dealer == 2 || dealer == 7 || dealer == 8:
			return Stand
		case dealer >= 3 && dealer <= 6:
			if canDouble {
				return Double
			}
			return Stand
		default: // 9, 10, or Ace showing
			return Hit
		}
	case total == 17:
		if canDouble && dealer >= 3 && dealer <= 6 {
			return Double
		}
		return Hit
	case total == 15 || total == 16:
		if canDouble && dealer >= 4 && dealer <= 6 {
			return Double
		}
		return Hit
	case total == 13 || total == 14:
		if canDouble && (dealer == 5 || dealer == 6) {
			return Double
		}
		return Hit
	default: // soft 12
		return Hit
	}
}

func decideHard(total, dealer int, canDouble bool) Action {
	switch {
	case total >= 17:
		return Stand
	case total >= 13: // 13 through 16
		if dealer <= 6 {
			return Stand
		}
		return Hit
	case total == 12:
		if dealer >= 4 && dealer <= 6 {
			return Stand
		}
		return Hit
	case total == 11:
		if canDouble {
			return Double
		}
		return Hit
	case total == 10:
		if canDouble && dealer <= 9 {
			return Double
		}
		return Hit
	case total == 9:
		if canDouble && dealer >= 3 && dealer <= 6 {
			return Double
		}
		return Hit
	default: // 8 or less
		return Hit
	}
}
