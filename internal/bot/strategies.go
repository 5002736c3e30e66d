package bot

import (
	"math/rand"
	"time"

	"thirteen/internal/domain"
)

const (
	PersonaLowestCard   = "lowest_card"
	PersonaHighestCard  = "highest_card"
	PersonaLowestValue  = "lowest_value"
	PersonaHighestValue = "highest_value"
	PersonaRandom       = "random"
	PersonaPassFallback = "pass_with_fallback"
)

// NewLowestCard plays the candidate whose lowest card is smallest.
func NewLowestCard() *Base {
	return NewBase(PersonaLowestCard, func(_ Turn, moves [][]domain.Card) []domain.Card {
		return pick(moves, firstValue, less)
	})
}

// NewHighestCard plays the candidate whose lowest card is largest.
func NewHighestCard() *Base {
	return NewBase(PersonaHighestCard, func(_ Turn, moves [][]domain.Card) []domain.Card {
		return pick(moves, firstValue, greater)
	})
}

// NewLowestValue plays the candidate with the smallest summed card value.
func NewLowestValue() *Base {
	return NewBase(PersonaLowestValue, func(_ Turn, moves [][]domain.Card) []domain.Card {
		return pick(moves, sumValue, less)
	})
}

// NewHighestValue plays the candidate with the largest summed card value.
func NewHighestValue() *Base {
	return NewBase(PersonaHighestValue, func(_ Turn, moves [][]domain.Card) []domain.Card {
		return pick(moves, sumValue, greater)
	})
}

// NewRandom plays a uniformly random candidate. A nil rng is seeded from the clock.
func NewRandom(rng *rand.Rand) *Base {
	rng = orClock(rng)
	return NewBase(PersonaRandom, func(_ Turn, moves [][]domain.Card) []domain.Card {
		return moves[rng.Intn(len(moves))]
	})
}

// PassWithFallback passes whenever it may and only plays on a forced lead.
type PassWithFallback struct {
	fallback Strategy
}

// NewPassWithFallback wraps fallback for forced leads. A nil fallback plays randomly.
func NewPassWithFallback(fallback Strategy) *PassWithFallback {
	if fallback == nil {
		fallback = NewRandom(nil)
	}
	return &PassWithFallback{fallback: fallback}
}

func (p *PassWithFallback) Persona() string { return PersonaPassFallback }

func (p *PassWithFallback) TakeTurn(t Turn) ([]domain.Card, error) {
	if t.Index == 0 || len(t.Pile) == 0 {
		return p.fallback.TakeTurn(t)
	}
	return nil, nil
}

func firstValue(cards []domain.Card) int { return cards[0].Value() }

func sumValue(cards []domain.Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}

func less(a, b int) bool    { return a < b }
func greater(a, b int) bool { return a > b }

// pick returns the best move by key; strict comparison keeps the earliest on ties.
func pick(moves [][]domain.Card, key func([]domain.Card) int, better func(a, b int) bool) []domain.Card {
	best := moves[0]
	bestKey := key(best)
	for _, m := range moves[1:] {
		if k := key(m); better(k, bestKey) {
			best, bestKey = m, k
		}
	}
	return best
}

func orClock(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
