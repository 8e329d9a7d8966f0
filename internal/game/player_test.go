package game

import (
	"testing"

	"github.com/lox/blackjacksim/internal/deck"
)

func TestNewPlayer(t *testing.T) {
	basic := NewPlayer("basic", BasicStrategy, 1000)
	if basic.Counter != nil {
		t.Error("basic seat should not carry a counter")
	}
	if basic.Bankroll != 1000 {
		t.Errorf("Bankroll = %v, want 1000", basic.Bankroll)
	}

	counter := NewPlayer("counter", CardCounting, 1000)
	if counter.Counter == nil {
		t.Error("counting seat should carry a counter")
	}
}

func TestPlaceBetFlat(t *testing.T) {
	p := NewPlayer("basic", BasicStrategy, 1000)
	bet := p.PlaceBet(DefaultRules(), 6)

	if bet != 10 {
		t.Errorf("flat bet = %v, want 10", bet)
	}
	if p.Bankroll != 990 {
		t.Errorf("Bankroll = %v, want 990", p.Bankroll)
	}
	if p.Bet != 10 {
		t.Errorf("Bet = %v, want 10", p.Bet)
	}
}

func TestPlaceBetRampsWithTrueCount(t *testing.T) {
	p := NewPlayer("counter", CardCounting, 1000)

	// Running count 17 across 5 decks is a true count of 3.4, which the
	// ramp floors to a 3x bet.
	p.Counter.running = 17
	if bet := p.PlaceBet(DefaultRules(), 5); bet != 30 {
		t.Errorf("bet at true count 3.4 = %v, want 30", bet)
	}

	// A monster count hits the 5x cap.
	p.Counter.running = 40
	if bet := p.PlaceBet(DefaultRules(), 4); bet != 50 {
		t.Errorf("bet at true count 10 = %v, want 50", bet)
	}

	// Below the ramp start the counter flat bets.
	p.Counter.running = 1
	if bet := p.PlaceBet(DefaultRules(), 5); bet != 10 {
		t.Errorf("bet at true count 0.2 = %v, want 10", bet)
	}

	// A negative count never cuts below the table minimum.
	p.Counter.running = -12
	if bet := p.PlaceBet(DefaultRules(), 4); bet != 10 {
		t.Errorf("bet at true count -3 = %v, want 10", bet)
	}
}

func TestPlaceBetClampedToBankroll(t *testing.T) {
	p := NewPlayer("counter", CardCounting, 25)
	p.Counter.running = 20 // wants 5x = 50

	bet := p.PlaceBet(DefaultRules(), 1)
	if bet != 25 {
		t.Errorf("clamped bet = %v, want 25", bet)
	}
	if p.Bankroll != 0 {
		t.Errorf("Bankroll = %v, want 0", p.Bankroll)
	}

	// Broke seat wagers nothing, never a negative bet.
	bet = p.PlaceBet(DefaultRules(), 1)
	if bet != 0 {
		t.Errorf("broke bet = %v, want 0", bet)
	}
	if p.Bankroll != 0 {
		t.Errorf("Bankroll = %v, want 0", p.Bankroll)
	}
}

func TestDoubleDown(t *testing.T) {
	p := NewPlayer("basic", BasicStrategy, 1000)
	p.PlaceBet(DefaultRules(), 6)

	staked := p.DoubleDown()
	if staked != 10 {
		t.Errorf("DoubleDown() = %v, want 10", staked)
	}
	if p.Bet != 20 {
		t.Errorf("Bet = %v, want 20", p.Bet)
	}
	if p.Bankroll != 980 {
		t.Errorf("Bankroll = %v, want 980", p.Bankroll)
	}
}

func TestDoubleDownClampedToBankroll(t *testing.T) {
	p := NewPlayer("basic", BasicStrategy, 15)
	p.PlaceBet(DefaultRules(), 6) // bets 10, leaving 5

	staked := p.DoubleDown()
	if staked != 5 {
		t.Errorf("DoubleDown() = %v, want 5", staked)
	}
	if p.Bet != 15 {
		t.Errorf("Bet = %v, want 15", p.Bet)
	}
	if p.Bankroll != 0 {
		t.Errorf("Bankroll = %v, want 0", p.Bankroll)
	}
}

func TestObserveWithoutCounter(t *testing.T) {
	p := NewPlayer("basic", BasicStrategy, 1000)
	// Must not panic; basic seats ignore everything.
	p.Observe(deck.NewCard(deck.Spades, deck.Five))
}
