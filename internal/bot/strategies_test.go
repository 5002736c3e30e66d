package bot

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"thirteen/internal/domain"
)

func respondTurn() Turn {
	hand := domain.MustParseCards("3♣ 5♦ 5♥ 9♠ K♣")
	return Turn{
		Hand:     hand,
		Pile:     domain.MustParseCards("4♠"),
		Index:    3,
		Seat:     0,
		AllHands: [][]domain.Card{hand, domain.MustParseCards("6♦ 7♦ 8♦")},
	}
}

func leadTurn() Turn {
	hand := domain.MustParseCards("3♠ 4♦ 5♣ 9♥")
	return Turn{
		Hand:     hand,
		Index:    0,
		Seat:     0,
		AllHands: [][]domain.Card{hand, domain.MustParseCards("6♠ J♦")},
	}
}

func play(t *testing.T, s Strategy, turn Turn) string {
	t.Helper()
	cards, err := s.TakeTurn(turn)
	if err != nil {
		t.Fatalf("%s TakeTurn error = %v", s.Persona(), err)
	}
	return domain.FormatCards(cards)
}

func TestValidMoves(t *testing.T) {
	got := ValidMoves(respondTurn())
	want := [][]domain.Card{
		domain.MustParseCards("5♦"),
		domain.MustParseCards("5♥"),
		domain.MustParseCards("9♠"),
		domain.MustParseCards("K♣"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ValidMoves() = %v, want %v", got, want)
	}

	lead := ValidMoves(leadTurn())
	for _, m := range lead {
		if !domain.ContainsCard(m, domain.MustParseCards("3♠")[0]) {
			t.Fatalf("first-turn move %s is missing the lowest card", domain.FormatCards(m))
		}
	}
	if len(lead) != 2 {
		t.Fatalf("lead moves = %v, want the single and the straight", lead)
	}
}

func TestLeafStrategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		turn     Turn
		want     string
	}{
		{name: "lowest card responds low", strategy: NewLowestCard(), turn: respondTurn(), want: "5♦"},
		{name: "highest card responds high", strategy: NewHighestCard(), turn: respondTurn(), want: "K♣"},
		{name: "lowest value responds low", strategy: NewLowestValue(), turn: respondTurn(), want: "5♦"},
		{name: "highest value responds high", strategy: NewHighestValue(), turn: respondTurn(), want: "K♣"},
		// on the lead both candidates start with 3♠; ties keep the earlier single
		{name: "lowest card tie", strategy: NewLowestCard(), turn: leadTurn(), want: "3♠"},
		{name: "highest card tie", strategy: NewHighestCard(), turn: leadTurn(), want: "3♠"},
		{name: "lowest value lead", strategy: NewLowestValue(), turn: leadTurn(), want: "3♠"},
		{name: "highest value lead", strategy: NewHighestValue(), turn: leadTurn(), want: "3♠ 4♦ 5♣"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := play(t, tt.strategy, tt.turn); got != tt.want {
				t.Fatalf("%s played %q, want %q", tt.strategy.Persona(), got, tt.want)
			}
		})
	}
}

func TestLowestAndHighestCardBoundTheCandidates(t *testing.T) {
	turn := respondTurn()
	moves := ValidMoves(turn)
	low, _ := NewLowestCard().TakeTurn(turn)
	high, _ := NewHighestCard().TakeTurn(turn)
	for _, m := range moves {
		if m[0].Value() < low[0].Value() || m[0].Value() > high[0].Value() {
			t.Fatalf("%s falls outside [%s, %s]", domain.FormatCards(m), low[0], high[0])
		}
	}
}

func TestRandomIsSeedable(t *testing.T) {
	turn := respondTurn()
	a := NewRandom(rand.New(rand.NewSource(42)))
	b := NewRandom(rand.New(rand.NewSource(42)))
	moves := ValidMoves(turn)
	for i := 0; i < 20; i++ {
		x, y := play(t, a, turn), play(t, b, turn)
		if x != y {
			t.Fatalf("same seed diverged at %d: %s vs %s", i, x, y)
		}
		found := false
		for _, m := range moves {
			if domain.FormatCards(m) == x {
				found = true
			}
		}
		if !found {
			t.Fatalf("random picked %s outside the valid moves", x)
		}
	}
}

func TestNoValidMovePasses(t *testing.T) {
	hand := domain.MustParseCards("3♠ 4♣")
	turn := Turn{Hand: hand, Pile: domain.MustParseCards("2♥"), Index: 9, AllHands: [][]domain.Card{hand}}
	for _, s := range []Strategy{NewLowestCard(), NewHighestCard(), NewLowestValue(), NewHighestValue(), NewRandom(nil)} {
		cards, err := s.TakeTurn(turn)
		if err != nil || len(cards) != 0 {
			t.Fatalf("%s = %v, %v; want pass", s.Persona(), cards, err)
		}
	}
}

func TestBaseWithoutSelector(t *testing.T) {
	var zero Base
	if _, err := zero.TakeTurn(leadTurn()); !errors.Is(err, ErrUnimplemented) {
		t.Fatalf("zero Base error = %v, want ErrUnimplemented", err)
	}
	if _, err := NewBase("bare", nil).TakeTurn(leadTurn()); !errors.Is(err, ErrUnimplemented) {
		t.Fatalf("NewBase(nil) error = %v, want ErrUnimplemented", err)
	}
}

func TestPassWithFallback(t *testing.T) {
	s := NewPassWithFallback(NewLowestCard())

	if got := play(t, s, respondTurn()); got != "" {
		t.Fatalf("responding: played %q, want pass", got)
	}
	if got := play(t, s, leadTurn()); got != "3♠" {
		t.Fatalf("first turn: played %q, want fallback 3♠", got)
	}

	later := leadTurn()
	later.Index = 6
	if got := play(t, s, later); got != "3♠" {
		t.Fatalf("empty pile: played %q, want fallback 3♠", got)
	}

	if got := play(t, NewPassWithFallback(nil), leadTurn()); got == "" {
		t.Fatalf("default fallback should play on a forced lead")
	}
}
