package game

import (
	"testing"

	"github.com/lox/blackjacksim/internal/deck"
)

func dealerCard(s string) deck.Card {
	return deck.MustParseCards(s)[0]
}

func TestDecideHard(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		dealer    string
		canDouble bool
		want      Action
	}{
		{"21 stands", 21, "Ah", false, Stand},
		{"17 stands vs ace", 17, "Ah", false, Stand},
		{"16 stands vs 6", 16, "6h", false, Stand},
		{"16 hits vs 7", 16, "7h", false, Hit},
		{"15 hits vs ten", 15, "Th", false, Hit},
		{"13 stands vs 2", 13, "2h", false, Stand},
		{"13 hits vs 7", 13, "7h", false, Hit},
		{"12 hits vs 2", 12, "2h", false, Hit},
		{"12 hits vs 3", 12, "3h", false, Hit},
		{"12 stands vs 4", 12, "4h", false, Stand},
		{"12 stands vs 6", 12, "6h", false, Stand},
		{"12 hits vs 7", 12, "7h", false, Hit},
		{"11 doubles vs ace", 11, "Ah", true, Double},
		{"11 doubles vs 6", 11, "6h", true, Double},
		{"11 hits when double unavailable", 11, "6h", false, Hit},
		{"10 doubles vs 9", 10, "9h", true, Double},
		{"10 hits vs ten", 10, "Th", true, Hit},
		{"10 hits vs ace", 10, "Ah", true, Hit},
		{"9 doubles vs 3", 9, "3h", true, Double},
		{"9 doubles vs 6", 9, "6h", true, Double},
		{"9 hits vs 2", 9, "2h", true, Hit},
		{"9 hits vs 7", 9, "7h", true, Hit},
		{"9 hits when double unavailable", 9, "4h", false, Hit},
		{"8 hits", 8, "5h", true, Hit},
		{"5 hits", 5, "6h", true, Hit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.total, false, dealerCard(tt.dealer), tt.canDouble)
			if got != tt.want {
				t.Errorf("Decide(%d, hard, %s, double=%v) = %s, want %s",
					tt.total, tt.dealer, tt.canDouble, got, tt.want)
			}
		})
	}
}

func TestDecideSoft(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		dealer    string
		canDouble bool
		want      Action
	}{
		{"soft 20 stands", 20, "6h", true, Stand},
		{"soft 19 stands vs 6", 19, "6h", true, Stand},
		{"soft 18 stands vs 2", 18, "2h", true, Stand},
		{"soft 18 doubles vs 3", 18, "3h", true, Double},
		{"soft 18 doubles vs 6", 18, "6h", true, Double},
		{"soft 18 stands vs 4 when double unavailable", 18, "4h", false, Stand},
		{"soft 18 stands vs 7", 18, "7h", true, Stand},
		{"soft 18 stands vs 8", 18, "8h", true, Stand},
		{"soft 18 hits vs 9", 18, "9h", true, Hit},
		{"soft 18 hits vs ten", 18, "Th", true, Hit},
		{"soft 18 hits vs ace", 18, "Ah", true, Hit},
		{"soft 17 doubles vs 3", 17, "3h", true, Double},
		{"soft 17 doubles vs 6", 17, "6h", true, Double},
		{"soft 17 hits vs 4 when double unavailable", 17, "4h", false, Hit},
		{"soft 17 hits vs 2", 17, "2h", true, Hit},
		{"soft 17 hits vs 7", 17, "7h", true, Hit},
		{"soft 16 doubles vs 4", 16, "4h", true, Double},
		{"soft 16 hits vs 3", 16, "3h", true, Hit},
		{"soft 15 doubles vs 6", 15, "6h", true, Double},
		{"soft 15 hits vs 3", 15, "3h", true, Hit},
		{"soft 14 doubles vs 5", 14, "5h", true, Double},
		{"soft 14 hits vs 4", 14, "4h", true, Hit},
		{"soft 13 doubles vs 6", 13, "6h", true, Double},
		{"soft 13 hits vs 4", 13, "4h", true, Hit},
		{"soft 12 hits", 12, "5h", true, Hit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.total, true, dealerCard(tt.dealer), tt.canDouble)
			if got != tt.want {
				t.Errorf("Decide(%d, soft, %s, double=%v) = %s, want %s",
					tt.total, tt.dealer, tt.canDouble, got, tt.want)
			}
		})
	}
}

func TestDecideMatchesHandEvaluation(t *testing.T) {
	// A dealt hand feeds Decide through Total/IsSoft; spot check the
	// plumbing end to end.
	h := handOf("As7h") // soft 18
	if got := Decide(h.Total(), h.IsSoft(), dealerCard("3h"), true); got != Double {
		t.Errorf("soft 18 vs 3 = %s, want double", got)
	}

	h.Add(deck.MustParseCards("9d")[0]) // now hard 17
	if got := Decide(h.Total(), h.IsSoft(), dealerCard("3h"), false); got != Stand {
		t.Errorf("hard 17 vs 3 = %s, want stand", got)
	}
}
