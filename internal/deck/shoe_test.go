package deck

import (
	"testing"

	"github.com/lox/blackjacksim/internal/randutil"
)

func TestNewShoeComposition(t *testing.T) {
	shoe := NewShoe(6, 0.75, randutil.New(42))

	if shoe.CardsRemaining() != 312 {
		t.Errorf("6-deck shoe has %d cards, want 312", shoe.CardsRemaining())
	}
	if shoe.Size() != 312 {
		t.Errorf("Size() = %d, want 312", shoe.Size())
	}

	// Every rank appears 4 suits x 6 decks = 24 times.
	counts := make(map[Rank]int)
	for shoe.CardsRemaining() > 0 {
		counts[shoe.Draw().Rank]++
	}
	for rank := Two; rank <= Ace; rank++ {
		if counts[rank] != 24 {
			t.Errorf("rank %s appears %d times, want 24", rank, counts[rank])
		}
	}
}

func TestShoeDeterministic(t *testing.T) {
	a := NewShoe(6, 0.75, randutil.New(7))
	b := NewShoe(6, 0.75, randutil.New(7))

	for i := 0; i < 312; i++ {
		ca, cb := a.Draw(), b.Draw()
		if ca != cb {
			t.Fatalf("draw %d differs: %s vs %s", i, ca, cb)
		}
	}
}

func TestShoeNeedsReshuffle(t *testing.T) {
	shoe := NewShoe(6, 0.75, randutil.New(1))

	// Cut position for 6 decks at 0.75 penetration is 234. The shoe is
	// fresh at 312 cards, so the flag flips once remaining hits 234.
	for shoe.CardsRemaining() > 235 {
		if shoe.NeedsReshuffle() {
			t.Fatalf("reshuffle wanted at %d cards remaining, cut is 234", shoe.CardsRemaining())
		}
		shoe.Draw()
	}

	shoe.Draw() // down to 234
	if shoe.CardsRemaining() != 234 {
		t.Fatalf("expected 234 cards remaining, got %d", shoe.CardsRemaining())
	}
	if !shoe.NeedsReshuffle() {
		t.Error("reshuffle not wanted at the cut card")
	}
}

func TestShoeReset(t *testing.T) {
	shoe := NewShoe(2, 0.75, randutil.New(9))
	for i := 0; i < 30; i++ {
		shoe.Draw()
	}

	shoe.Reset()
	if shoe.CardsRemaining() != 104 {
		t.Errorf("reset shoe has %d cards, want 104", shoe.CardsRemaining())
	}
	if shoe.NeedsReshuffle() {
		t.Error("fresh shoe should not want a reshuffle")
	}
}

func TestShoeDecksRemaining(t *testing.T) {
	shoe := NewShoe(6, 0.75, randutil.New(3))
	if got := shoe.DecksRemaining(); got != 6.0 {
		t.Errorf("DecksRemaining() = %v, want 6.0", got)
	}

	for i := 0; i < 26; i++ {
		shoe.Draw()
	}
	if got := shoe.DecksRemaining(); got != 5.5 {
		t.Errorf("DecksRemaining() after 26 draws = %v, want 5.5", got)
	}
}

func TestDrawEmptyShoePanics(t *testing.T) {
	shoe := NewScriptedShoe(MustParseCards("As")...)
	shoe.Draw()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Draw() on an empty shoe should panic")
		}
	}()
	shoe.Draw()
}

func TestScriptedShoeDealsInOrder(t *testing.T) {
	cards := MustParseCards("AsKhQd2c")
	shoe := NewScriptedShoe(cards...)

	if shoe.NeedsReshuffle() {
		t.Error("scripted shoe should never want a reshuffle")
	}
	for i, want := range cards {
		got := shoe.Draw()
		if got != want {
			t.Errorf("draw %d = %s, want %s", i, got, want)
		}
	}
}

func TestNewShoeValidation(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil rng", func() { NewShoe(6, 0.75, nil) }},
		{"zero decks", func() { NewShoe(0, 0.75, randutil.New(1)) }},
		{"bad penetration", func() { NewShoe(6, 1.5, randutil.New(1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewShoe should panic on %s", tt.name)
				}
			}()
			tt.fn()
		})
	}
}
