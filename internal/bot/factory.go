package bot

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"thirteen/internal/domain"
)

var ErrUnknownPersona = errors.New("unknown persona")

// Context is handed to a persona factory when a seat gets its strategy.
type Context struct {
	Rand *rand.Rand // nil seeds from the clock
	Seat int
}

// Factory builds a configured strategy for one seat.
type Factory func(ctx Context) Strategy

// PersonaInfo describes a registered persona for menus and RPC listings.
type PersonaInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type persona struct {
	info    PersonaInfo
	factory Factory
}

var registry = map[string]persona{}

func register(key, name, description string, factory Factory) {
	registry[key] = persona{
		info: PersonaInfo{Key: key, Name: name, Description: description},
		factory: func(ctx Context) Strategy {
			return named{Strategy: factory(ctx), persona: key}
		},
	}
}

func init() {
	register("random", "Wildcard", "Plays any legal move at random.", func(ctx Context) Strategy {
		return NewRandom(ctx.Rand)
	})
	register("lowball", "Lowball", "Always sheds the lowest card it can.", func(Context) Strategy {
		return NewLowestCard()
	})
	register("highroller", "High Roller", "Leads with its strongest starting card.", func(Context) Strategy {
		return NewHighestCard()
	})
	register("thrifty", "Thrifty", "Spends as little card value as possible.", func(Context) Strategy {
		return NewLowestValue()
	})
	register("aggressive", "Aggressive", "Dumps the heaviest combination available.", func(Context) Strategy {
		return NewHighestValue()
	})
	register("passive", "Passive", "Passes whenever allowed and leads at random.", func(ctx Context) Strategy {
		return NewPassWithFallback(NewRandom(ctx.Rand))
	})
	register("cautious", "Cautious", "Passes whenever allowed and leads cheaply.", func(Context) Strategy {
		return NewPassWithFallback(NewLowestValue())
	})
	register("opportunist", "Opportunist", "Switches between cheap and strong plays each turn.", func(ctx Context) Strategy {
		return NewRandomChoice(ctx.Rand, NewLowestCard(), NewHighestCard(), NewLowestValue())
	})
	register("methodical", "Methodical", "Builds multi-card plays first, single cards last.", func(Context) Strategy {
		return NewPrioritized(
			cheapestOf(domain.Straight),
			cheapestOf(domain.Triple),
			cheapestOf(domain.Pair),
			NewLowestCard(),
		)
	})
	register("strategist", "Strategist", "Keeps its hand structure intact and passes when a response costs too much.", func(Context) Strategy {
		return NewStrategist(DefaultTuning)
	})
	register("shark", "Shark", "Counts outstanding cards, hoards unbeatable singles and blocks short hands.", func(Context) Strategy {
		return NewShark()
	})
	register("unpredictable", "Unpredictable", "Changes temperament every turn.", func(ctx Context) Strategy {
		return NewRandomChoice(ctx.Rand, NewRandom(ctx.Rand), NewPassWithFallback(NewRandom(ctx.Rand)), NewLowestCard())
	})
}

// Lookup resolves a persona key, ignoring case and surrounding spaces.
func Lookup(key string) (Factory, error) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPersona, key)
	}
	return p.factory, nil
}

// New builds the persona's strategy for one seat.
func New(key string, ctx Context) (Strategy, error) {
	factory, err := Lookup(key)
	if err != nil {
		return nil, err
	}
	return factory(ctx), nil
}

// Personas lists every registered persona sorted by key.
func Personas() []PersonaInfo {
	out := make([]PersonaInfo, 0, len(registry))
	for _, p := range registry {
		out = append(out, p.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// named relabels a composed strategy with the persona key it was built for.
type named struct {
	Strategy
	persona string
}

func (n named) Persona() string { return n.persona }

// cheapestOf plays the lowest-value candidate among the listed types and passes if there is none.
func cheapestOf(kinds ...domain.CombinationType) Strategy {
	return NewBase(PersonaLowestValue, func(_ Turn, moves [][]domain.Card) []domain.Card {
		var keep [][]domain.Card
		for _, m := range moves {
			kind := domain.Classify(m)
			for _, k := range kinds {
				if k == kind {
					keep = append(keep, m)
					break
				}
			}
		}
		if len(keep) == 0 {
			return nil
		}
		return pick(keep, sumValue, less)
	})
}
