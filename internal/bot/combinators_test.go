package bot

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"thirteen/internal/domain"
)

// stubStrategy returns fixed cards and records every call.
type stubStrategy struct {
	name  string
	cards []domain.Card
	err   error
	calls *[]string
}

func (s stubStrategy) Persona() string { return s.name }

func (s stubStrategy) TakeTurn(Turn) ([]domain.Card, error) {
	if s.calls != nil {
		*s.calls = append(*s.calls, s.name)
	}
	return s.cards, s.err
}

func TestPrioritizedShortCircuit(t *testing.T) {
	var calls []string
	x := domain.MustParseCards("9♥")
	p := NewPrioritized(
		stubStrategy{name: "A", calls: &calls},
		stubStrategy{name: "B", cards: x, calls: &calls},
		stubStrategy{name: "C", cards: domain.MustParseCards("2♥"), calls: &calls},
	)

	got, err := p.TakeTurn(Turn{})
	if err != nil {
		t.Fatalf("TakeTurn error = %v", err)
	}
	if !reflect.DeepEqual(got, x) {
		t.Fatalf("got %v, want B's move %v", got, x)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
}

func TestPrioritizedAllPass(t *testing.T) {
	p := NewPrioritized(stubStrategy{name: "A"}, stubStrategy{name: "B"})
	got, err := p.TakeTurn(Turn{})
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v; want pass", got, err)
	}
	if got, _ := NewPrioritized().TakeTurn(Turn{}); len(got) != 0 {
		t.Fatalf("empty prioritized should pass")
	}
}

func TestPrioritizedPropagatesErrors(t *testing.T) {
	var calls []string
	p := NewPrioritized(
		stubStrategy{name: "A", calls: &calls},
		&Base{persona: "broken"},
		stubStrategy{name: "C", cards: domain.MustParseCards("3♠"), calls: &calls},
	)
	if _, err := p.TakeTurn(leadTurn()); !errors.Is(err, ErrUnimplemented) {
		t.Fatalf("error = %v, want ErrUnimplemented", err)
	}
	if !reflect.DeepEqual(calls, []string{"A"}) {
		t.Fatalf("calls = %v, want only A before the failure", calls)
	}
}

func TestRandomChoiceDelegatesToOne(t *testing.T) {
	var calls []string
	r := NewRandomChoice(rand.New(rand.NewSource(1)),
		stubStrategy{name: "A", cards: domain.MustParseCards("3♠"), calls: &calls},
		stubStrategy{name: "B", calls: &calls},
		stubStrategy{name: "C", cards: domain.MustParseCards("4♠"), calls: &calls},
	)

	seen := make(map[string]int)
	for i := 0; i < 300; i++ {
		before := len(calls)
		got, err := r.TakeTurn(Turn{})
		if err != nil {
			t.Fatalf("TakeTurn error = %v", err)
		}
		if len(calls) != before+1 {
			t.Fatalf("turn %d consulted %d strategies, want 1", i, len(calls)-before)
		}
		picked := calls[len(calls)-1]
		seen[picked]++
		// B always passes and the pass is returned as is
		if picked == "B" && len(got) != 0 {
			t.Fatalf("B's pass was replaced with %v", got)
		}
	}
	for _, name := range []string{"A", "B", "C"} {
		if seen[name] == 0 {
			t.Fatalf("strategy %s never chosen: %v", name, seen)
		}
	}
}

func TestRandomChoiceEmpty(t *testing.T) {
	got, err := NewRandomChoice(nil).TakeTurn(Turn{})
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v; want pass", got, err)
	}
}
