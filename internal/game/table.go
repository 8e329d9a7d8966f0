package game

import (
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjacksim/internal/deck"
)

// RoundPhase identifies a step of the round state machine. Phases always
// run in declaration order; DealerBlackjackCheck can short-circuit
// straight to Settlement, and DealerTurn is skipped when every seat
// busted.
type RoundPhase int

const (
	ReshuffleCheck RoundPhase = iota
	BetCollection
	InitialDeal
	DealerBlackjackCheck
	PlayerTurns
	DealerTurn
	Settlement
)

// String returns the string representation of a round phase
func (p RoundPhase) String() string {
	return [...]string{
		"reshuffle-check",
		"bet-collection",
		"initial-deal",
		"dealer-blackjack-check",
		"player-turns",
		"dealer-turn",
		"settlement",
	}[p]
}

// Outcome classifies how a seat's round ended
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomePush
	OutcomeBlackjack
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	return [...]string{"win", "loss", "push", "blackjack"}[o]
}

// PlayerResult records one seat's round from wager to payout
type PlayerResult struct {
	Name      string
	Strategy  Strategy
	Bet       float64 // total wager including any double
	Payout    float64 // amount returned to the bankroll, zero on a loss
	Net       float64 // Payout minus Bet
	Outcome   Outcome
	HandTotal int
	Doubled   bool
	TrueCount float64 // counting seat's true count when the bet was sized
}

// RoundResult carries everything the driver needs from one completed round
type RoundResult struct {
	Round           int
	Reshuffled      bool
	DealerUpcard    deck.Card
	DealerTotal     int
	DealerBlackjack bool
	Players         []PlayerResult
}

// TableOption configures a Table during creation
type TableOption func(*tableConfig)

type tableConfig struct {
	shoe *deck.Shoe
}

// WithShoe seats the table at a specific shoe instead of building one
// from the rules. A scripted shoe makes rounds fully deterministic, which
// is how the exact-sequence tests drive the engine.
func WithShoe(shoe *deck.Shoe) TableOption {
	return func(c *tableConfig) {
		c.shoe = shoe
	}
}

// Table hosts a blackjack game. It owns the shoe and the dealer's hand,
// seats the players, and plays one round at a time; rounds are
// independent apart from shoe depletion and the counters tracking it.
type Table struct {
	rules   Rules
	shoe    *deck.Shoe
	dealer  *Hand
	players []*Player
	logger  *log.Logger
	rounds  int
}

// NewTable creates a table playing under the given rules. The RNG is
// required unless WithShoe provides a shoe.
func NewTable(rules Rules, rng *rand.Rand, logger *log.Logger, opts ...TableOption) *Table {
	if err := rules.Validate(); err != nil {
		panic(fmt.Sprintf("game: invalid rules: %v", err))
	}

	cfg := &tableConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	shoe := cfg.shoe
	if shoe == nil {
		if rng == nil {
			panic("game: rng is required when no shoe is provided")
		}
		shoe = deck.NewShoe(rules.NumDecks, rules.Penetration, rng)
	}

	return &Table{
		rules:  rules,
		shoe:   shoe,
		dealer: NewHand(),
		logger: logger,
	}
}

// AddPlayer seats a player. Seat order is deal order and turn order.
func (t *Table) AddPlayer(p *Player) {
	t.players = append(t.players, p)
}

// Players returns the seated players in seat order
func (t *Table) Players() []*Player {
	return t.players
}

// Rules returns the table rules
func (t *Table) Rules() Rules {
	return t.rules
}

// Rounds returns the number of rounds played so far
func (t *Table) Rounds() int {
	return t.rounds
}

// CardsRemaining returns the undealt cards left in the shoe
func (t *Table) CardsRemaining() int {
	return t.shoe.CardsRemaining()
}

// PlayRound plays one complete round and returns its result. The
// reshuffle decision happens only here at the top, so a round that
// starts always finishes on the cards it has.
func (t *Table) PlayRound() *RoundResult {
	if len(t.players) == 0 {
		panic("game: no players seated")
	}

	t.rounds++
	result := &RoundResult{Round: t.rounds}

	start := make([]float64, len(t.players))
	for i, p := range t.players {
		start[i] = p.Bankroll
	}

	t.enterPhase(ReshuffleCheck)
	if t.shoe.NeedsReshuffle() {
		t.shoe.Reset()
		for _, p := range t.players {
			if p.Counter != nil {
				p.Counter.Reset()
			}
		}
		result.Reshuffled = true
		t.logger.Debug("Shuffled new shoe", "round", t.rounds, "cards", t.shoe.CardsRemaining())
	}

	t.enterPhase(BetCollection)
	decksRemaining := t.shoe.DecksRemaining()
	trueCounts := make([]float64, len(t.players))
	for i, p := range t.players {
		if p.Counter != nil {
			trueCounts[i] = p.Counter.TrueCount(decksRemaining)
		}
		bet := p.PlaceBet(t.rules, decksRemaining)
		t.logger.Debug("Bet placed",
			"player", p.Name,
			"bet", bet,
			"trueCount", trueCounts[i],
			"bankroll", p.Bankroll)
	}

	t.enterPhase(InitialDeal)
	t.dealer = NewHand()
	for _, p := range t.players {
		p.Hand = NewHand()
	}
	for pass := 0; pass < 2; pass++ {
		for _, p := range t.players {
			card := t.shoe.Draw()
			p.Hand.Add(card)
			p.Observe(card) // initial cards are private to their seat
		}
		card := t.shoe.Draw()
		t.dealer.Add(card)
		if pass == 0 {
			t.broadcast(card) // the upcard is public
		}
	}
	upcard := t.dealer.Cards()[0]
	result.DealerUpcard = upcard
	for _, p := range t.players {
		t.logger.Debug("Dealt hand", "player", p.Name, "hand", p.Hand)
	}
	t.logger.Debug("Dealer shows", "upcard", upcard)

	t.enterPhase(DealerBlackjackCheck)
	if upcard.Value() >= 10 && t.dealer.IsBlackjack() {
		// Dealer peeked a natural: naturals push, everyone else loses,
		// and the hole card is never shown to the counters.
		result.DealerBlackjack = true
		result.DealerTotal = t.dealer.Total()
		t.logger.Debug("Dealer has blackjack", "hand", t.dealer)

		t.enterPhase(Settlement)
		for i, p := range t.players {
			pr := PlayerResult{
				Name:      p.Name,
				Strategy:  p.Strategy,
				Bet:       p.Bet,
				Outcome:   OutcomeLoss,
				HandTotal: p.Hand.Total(),
				TrueCount: trueCounts[i],
			}
			if p.Hand.IsBlackjack() {
				pr.Outcome = OutcomePush
				pr.Payout = p.Bet
			}
			p.Bankroll += pr.Payout
			pr.Net = pr.Payout - pr.Bet
			result.Players = append(result.Players, pr)
			t.logger.Debug("Settled", "player", p.Name, "outcome", pr.Outcome, "net", pr.Net)
		}
		t.validateConservation(start, result)
		return result
	}

	t.enterPhase(PlayerTurns)
	doubled := make([]bool, len(t.players))
	for i, p := range t.players {
		if p.Hand.IsBlackjack() {
			t.logger.Debug("Player has blackjack", "player", p.Name, "hand", p.Hand)
			continue
		}
	turn:
		for {
			action := Decide(p.Hand.Total(), p.Hand.IsSoft(), upcard, p.Hand.Size() == 2)
			t.logger.Debug("Player action",
				"player", p.Name,
				"action", action,
				"hand", p.Hand)

			switch action {
			case Stand:
				break turn
			case Hit:
				card := t.shoe.Draw()
				p.Hand.Add(card)
				t.broadcast(card) // hits land face up for the whole table
				if p.Hand.IsBusted() {
					t.logger.Debug("Player busts", "player", p.Name, "hand", p.Hand)
					break turn
				}
			case Double:
				staked := p.DoubleDown()
				doubled[i] = true
				card := t.shoe.Draw()
				p.Hand.Add(card)
				t.broadcast(card)
				t.logger.Debug("Player doubles",
					"player", p.Name,
					"staked", staked,
					"hand", p.Hand)
				break turn
			default:
				panic(fmt.Sprintf("game: unplayable action %v", action))
			}
		}
	}

	// The dealer plays out only when a seat can still be beaten.
	anyLive := false
	for _, p := range t.players {
		if !p.Hand.IsBusted() {
			anyLive = true
			break
		}
	}
	if anyLive {
		t.enterPhase(DealerTurn)
		hole := t.dealer.Cards()[1]
		t.broadcast(hole) // the hole card becomes public now, not earlier
		t.logger.Debug("Dealer reveals", "hole", hole, "hand", t.dealer)

		for t.dealer.Total() < 17 {
			card := t.shoe.Draw()
			t.dealer.Add(card)
			t.broadcast(card)
			t.logger.Debug("Dealer hits", "card", card, "hand", t.dealer)
		}
		t.logger.Debug("Dealer stands", "hand", t.dealer)
	}
	result.DealerTotal = t.dealer.Total()

	t.enterPhase(Settlement)
	for i, p := range t.players {
		pr := PlayerResult{
			Name:      p.Name,
			Strategy:  p.Strategy,
			Bet:       p.Bet,
			HandTotal: p.Hand.Total(),
			Doubled:   doubled[i],
			TrueCount: trueCounts[i],
		}
		switch {
		case p.Hand.IsBlackjack():
			// A natural beats any made 21 and pays the premium once.
			pr.Outcome = OutcomeBlackjack
			pr.Payout = p.Bet + p.Bet*t.rules.BlackjackPayout
		case p.Hand.IsBusted():
			pr.Outcome = OutcomeLoss
		case t.dealer.IsBusted() || p.Hand.Total() > t.dealer.Total():
			pr.Outcome = OutcomeWin
			pr.Payout = p.Bet * 2
		case p.Hand.Total() == t.dealer.Total():
			pr.Outcome = OutcomePush
			pr.Payout = p.Bet
		default:
			pr.Outcome = OutcomeLoss
		}
		p.Bankroll += pr.Payout
		pr.Net = pr.Payout - pr.Bet
		result.Players = append(result.Players, pr)
		t.logger.Debug("Settled",
			"player", p.Name,
			"outcome", pr.Outcome,
			"hand", pr.HandTotal,
			"dealer", result.DealerTotal,
			"net", pr.Net)
	}

	t.validateConservation(start, result)
	return result
}

// broadcast shows a face-up card to every seat that counts
func (t *Table) broadcast(card deck.Card) {
	for _, p := range t.players {
		p.Observe(card)
	}
}

func (t *Table) enterPhase(phase RoundPhase) {
	t.logger.Debug("Entering phase", "round", t.rounds, "phase", phase)
}

// validateConservation panics if a seat's bankroll moved by anything
// other than its recorded net for the round. Bets in minus payouts out
// must equal the house take every round.
func (t *Table) validateConservation(start []float64, result *RoundResult) {
	for i, p := range t.players {
		want := start[i] + result.Players[i].Net
		if math.Abs(p.Bankroll-want) > 1e-9 {
			panic(fmt.Sprintf("game: bankroll drift for %s: have %.4f, want %.4f",
				p.Name, p.Bankroll, want))
		}
	}
}
