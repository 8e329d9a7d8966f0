package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjacksim/internal/deck"
)

// Hand is an append-only set of cards held by one seat during a round.
// Cards are never removed; each round starts from a fresh hand.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...deck.Card) *Hand {
	h := &Hand{cards: make([]deck.Card, 0, 8)}
	h.cards = append(h.cards, cards...)
	return h
}

// Add appends a card to the hand
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Size returns the number of cards in the hand
func (h *Hand) Size() int {
	return len(h.cards)
}

// evaluate computes the best total: every Ace starts at 11, then Aces are
// demoted to 1 one at a time while the total exceeds 21. The hand is soft
// while an Ace is still counted as 11 at the returned total.
func (h *Hand) evaluate() (total int, soft bool) {
	aces := 0
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// Total returns the best blackjack total for the hand
func (h *Hand) Total() int {
	total, _ := h.evaluate()
	return total
}

// IsSoft returns true if an Ace is still counted as 11 at the current total
func (h *Hand) IsSoft() bool {
	_, soft := h.evaluate()
	return soft
}

// IsBlackjack returns true for a natural: exactly two cards totalling 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Total() == 21
}

// IsBusted returns true if the best total exceeds 21
func (h *Hand) IsBusted() bool {
	return h.Total() > 21
}

// String renders the hand with its total, e.g. "A♠ K♥ (21)"
func (h *Hand) String() string {
	if len(h.cards) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s (%d)", strings.Join(parts, " "), h.Total())
}
