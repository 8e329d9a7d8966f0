package game

import "github.com/lox/blackjacksim/internal/deck"

// Player is one seat at the table: a bankroll, the current round's hand
// and wager, and a Hi-Lo counter when the seat counts cards.
type Player struct {
	Name     string
	Strategy Strategy
	Bankroll float64
	Hand     *Hand
	Counter  *Counter // nil for a non-counting seat
	Bet      float64  // wager for the round in play, including any double
}

// NewPlayer creates a player with the given strategy and starting bankroll
func NewPlayer(name string, strategy Strategy, bankroll float64) *Player {
	p := &Player{
		Name:     name,
		Strategy: strategy,
		Bankroll: bankroll,
		Hand:     NewHand(),
	}
	if strategy == CardCounting {
		p.Counter = &Counter{}
	}
	return p
}

// PlaceBet sizes the coming round's wager and deducts it from the
// bankroll. A counting seat converts its running count to a true count
// using the decks left in the shoe and applies the ramp; everyone else
// bets the table minimum. A bet that exceeds the bankroll is silently
// clamped to it, and a bet can never go below zero.
func (p *Player) PlaceBet(rules Rules, decksRemaining float64) float64 {
	bet := rules.MinBet
	if p.Strategy == CardCounting {
		tc := p.Counter.TrueCount(decksRemaining)
		bet = rules.MinBet * float64(rules.BetMultiplier(tc))
	}
	if bet > p.Bankroll {
		bet = p.Bankroll
	}
	if bet < 0 {
		bet = 0
	}
	p.Bet = bet
	p.Bankroll -= bet
	return bet
}

// DoubleDown adds up to one original bet to the wager, clamped to what
// the bankroll can cover, and returns the additional amount staked.
func (p *Player) DoubleDown() float64 {
	additional := p.Bet
	if additional > p.Bankroll {
		additional = p.Bankroll
	}
	p.Bankroll -= additional
	p.Bet += additional
	return additional
}

// Observe feeds a seen card to the seat's counter, if it keeps one.
// Non-counting seats ignore everything.
func (p *Player) Observe(card deck.Card) {
	if p.Counter != nil {
		p.Counter.Observe(card)
	}
}
