package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// CardsPerDeck is the size of a single standard deck.
const CardsPerDeck = 52

// Shoe is a dealing shoe holding one or more standard 52-card decks.
//
// When the shoe is built a cut card is placed at a fixed penetration
// depth: cutPos = floor(penetration * shoe size). Once the number of
// undealt cards falls to or at the cut position the shoe reports that it
// wants a reshuffle. The table acts on that signal between rounds, never
// mid-round, so a round that starts can always finish.
type Shoe struct {
	cards       []Card
	numDecks    int
	penetration float64
	cutPos      int
	rng         *rand.Rand
}

// NewShoe builds a shuffled shoe of numDecks standard decks.
// The RNG is required so shuffles are reproducible under a fixed seed.
func NewShoe(numDecks int, penetration float64, rng *rand.Rand) *Shoe {
	if rng == nil {
		panic("deck: rng is required for shoe creation")
	}
	if numDecks < 1 {
		panic(fmt.Sprintf("deck: invalid deck count %d", numDecks))
	}
	if penetration <= 0 || penetration > 1 {
		panic(fmt.Sprintf("deck: invalid penetration %v", penetration))
	}

	s := &Shoe{
		cards:       make([]Card, 0, numDecks*CardsPerDeck),
		numDecks:    numDecks,
		penetration: penetration,
		rng:         rng,
	}
	s.Reset()
	return s
}

// NewScriptedShoe builds an unshuffled shoe that deals exactly the given
// cards in order. No cut card is placed, so NeedsReshuffle never fires.
// Intended for deterministic tests; a scripted shoe has no RNG and must
// not be shuffled or reset.
func NewScriptedShoe(cards ...Card) *Shoe {
	return &Shoe{
		cards:       append([]Card(nil), cards...),
		numDecks:    (len(cards) + CardsPerDeck - 1) / CardsPerDeck,
		penetration: 1,
		cutPos:      -1,
	}
}

// Reset rebuilds the shoe to its full numDecks*52 cards, shuffles, and
// places the cut card again. The caller is responsible for resetting any
// running counts that track this shoe.
func (s *Shoe) Reset() {
	s.cards = s.cards[:0]
	for d := 0; d < s.numDecks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.Shuffle()
	s.cutPos = int(float64(len(s.cards)) * s.penetration)
}

// Shuffle randomizes the order of the undealt cards
func (s *Shoe) Shuffle() {
	if s.rng == nil {
		panic("deck: shoe has no rng")
	}
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the front card of the shoe.
// Drawing from an empty shoe is a contract violation: the table sizes
// rounds so the shoe can never run dry, so an empty draw means the
// dealing logic is broken and we fail loudly rather than limp on.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		panic("deck: draw from empty shoe")
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card
}

// CardsRemaining returns the number of undealt cards
func (s *Shoe) CardsRemaining() int {
	return len(s.cards)
}

// DecksRemaining returns the undealt cards expressed in decks, as a
// continuous value (e.g. 3.5 decks). True count conversion divides by
// this, floored at one deck by the caller.
func (s *Shoe) DecksRemaining() float64 {
	return float64(len(s.cards)) / CardsPerDeck
}

// NeedsReshuffle reports whether the undealt cards have reached the cut
// card. Checked at round start only.
func (s *Shoe) NeedsReshuffle() bool {
	return len(s.cards) <= s.cutPos
}

// NumDecks returns the number of decks the shoe was built from
func (s *Shoe) NumDecks() int {
	return s.numDecks
}

// Size returns the full size of the shoe when freshly built
func (s *Shoe) Size() int {
	return s.numDecks * CardsPerDeck
}
