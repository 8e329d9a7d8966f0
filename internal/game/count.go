package game

import "github.com/lox/blackjacksim/internal/deck"

// CountValue returns the Hi-Lo tag for a card: +1 for 2 through 6, 0 for
// 7 through 9, and -1 for tens, face cards, and Aces.
func CountValue(card deck.Card) int {
	switch v := card.Value(); {
	case v >= 2 && v <= 6:
		return 1
	case v >= 10: // tens and face cards are 10, Aces are 11
		return -1
	default:
		return 0
	}
}

// Counter tracks the Hi-Lo running count for a single observer. The table
// feeds it exactly the cards that observer is entitled to see, so what a
// counter knows is decided entirely by the dealing code, not here.
type Counter struct {
	running int
}

// Observe folds one seen card into the running count
func (c *Counter) Observe(card deck.Card) {
	c.running += CountValue(card)
}

// ObserveAll folds a sequence of seen cards into the running count
func (c *Counter) ObserveAll(cards ...deck.Card) {
	for _, card := range cards {
		c.Observe(card)
	}
}

// Running returns the running count since the last shoe shuffle
func (c *Counter) Running() int {
	return c.running
}

// TrueCount converts the running count to a true count by dividing by the
// decks still in the shoe. The divisor is floored at one deck so a nearly
// exhausted shoe cannot inflate the count.
func (c *Counter) TrueCount(decksRemaining float64) float64 {
	divisor := decksRemaining
	if divisor < 1 {
		divisor = 1
	}
	return float64(c.running) / divisor
}

// Reset zeroes the running count. Called exactly when the shoe is rebuilt.
func (c *Counter) Reset() {
	c.running = 0
}
