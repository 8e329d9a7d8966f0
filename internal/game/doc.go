// Package game implements the core blackjack game logic.
//
// The main type is Table, which owns the shoe and the dealer's hand and
// drives one round at a time through a fixed sequence of phases: reshuffle
// check, bet collection, initial deal, dealer blackjack check, player
// turns, the dealer's turn when required, and settlement.
//
// # Basic Usage
//
// Create a table, seat players, and play rounds:
//
//	rules := game.DefaultRules()
//	t := game.NewTable(rules, randutil.New(42), logger)
//	t.AddPlayer(game.NewPlayer("basic", game.BasicStrategy, 1000))
//	t.AddPlayer(game.NewPlayer("counter", game.CardCounting, 1000))
//	result := t.PlayRound()
//
// # Deterministic Testing
//
// The RNG is always injected, so a fixed seed reproduces an identical
// sequence of rounds. For exact card sequences, provide a scripted shoe:
//
//	shoe := deck.NewScriptedShoe(deck.MustParseCards("AsKh5d9c...")...)
//	t := game.NewTable(rules, nil, logger, game.WithShoe(shoe))
//
// # Architecture
//
// Table delegates to small focused components:
//   - Hand: card totals with soft-ace arithmetic
//   - Counter: the Hi-Lo running and true count for one observer
//   - Decide: the shared basic strategy decision table
//   - Rules: immutable table rules and betting ramp parameters
//
// Both seated strategies play identical basic strategy; only bet sizing
// differs. Rounds are independent apart from shoe depletion and the
// counters tracking it.
package game
