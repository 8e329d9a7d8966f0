package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/simulator"
)

// TraceCmd deals a short session with full debug logging, which is the
// quickest way to answer a rules or counting question: watch the round
// unfold card by card.
type TraceCmd struct {
	Hands    int     `kong:"default='5',help='Hands to play'"`
	Bankroll float64 `kong:"default='1000',help='Starting bankroll for each seat'"`
	Seed     *int64  `kong:"help='Deterministic RNG seed (optional)'"`
	Rules    string  `kong:"help='Table rules file (HCL)'"`
}

func (c *TraceCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	cfg := simulator.DefaultConfig()
	cfg.StartingBankroll = c.Bankroll
	if c.Rules != "" {
		fc, err := simulator.LoadFile(c.Rules)
		if err != nil {
			return fmt.Errorf("loading rules: %w", err)
		}
		fc.Apply(&cfg)
	}

	fmt.Printf("Tracing %d hands (seed %d)\n", c.Hands, seed)

	table := game.NewTable(cfg.Rules, randutil.New(seed), logger)
	basic := game.NewPlayer(simulator.BasicPlayerName, game.BasicStrategy, cfg.StartingBankroll)
	counter := game.NewPlayer(simulator.CountingPlayerName, game.CardCounting, cfg.StartingBankroll)
	table.AddPlayer(basic)
	table.AddPlayer(counter)

	for hand := 0; hand < c.Hands; hand++ {
		result := table.PlayRound()
		for _, pr := range result.Players {
			fmt.Printf("hand %-3d %-8s %-9s bet %-4.0f net %+7.1f total %-2d dealer %d\n",
				result.Round, pr.Name, pr.Outcome, pr.Bet, pr.Net, pr.HandTotal, result.DealerTotal)
		}
		if basic.Bankroll <= 0 || counter.Bankroll <= 0 {
			fmt.Println("a seat went broke, stopping early")
			break
		}
	}

	fmt.Printf("Final bankrolls: %s %.1f, %s %.1f (running count %d)\n",
		basic.Name, basic.Bankroll, counter.Name, counter.Bankroll, counter.Counter.Running())
	return nil
}
