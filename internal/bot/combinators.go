package bot

import (
	"math/rand"

	"thirteen/internal/domain"
)

const (
	PersonaPrioritized  = "prioritized"
	PersonaRandomChoice = "random_choice"
)

// Prioritized asks its strategies in order and plays the first non-empty answer.
type Prioritized struct {
	strategies []Strategy
}

func NewPrioritized(strategies ...Strategy) *Prioritized {
	return &Prioritized{strategies: strategies}
}

func (p *Prioritized) Persona() string { return PersonaPrioritized }

func (p *Prioritized) TakeTurn(t Turn) ([]domain.Card, error) {
	for _, s := range p.strategies {
		cards, err := s.TakeTurn(t)
		if err != nil {
			return nil, err
		}
		if len(cards) > 0 {
			return cards, nil
		}
	}
	return nil, nil
}

// RandomChoice delegates each turn to one uniformly chosen strategy, even if it passes.
type RandomChoice struct {
	rng        *rand.Rand
	strategies []Strategy
}

// NewRandomChoice builds the combinator. A nil rng is seeded from the clock.
func NewRandomChoice(rng *rand.Rand, strategies ...Strategy) *RandomChoice {
	return &RandomChoice{rng: orClock(rng), strategies: strategies}
}

func (r *RandomChoice) Persona() string { return PersonaRandomChoice }

func (r *RandomChoice) TakeTurn(t Turn) ([]domain.Card, error) {
	if len(r.strategies) == 0 {
		return nil, nil
	}
	return r.strategies[r.rng.Intn(len(r.strategies))].TakeTurn(t)
}
