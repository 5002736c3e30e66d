package bot

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"thirteen/internal/config"
)

var ErrEmptyRoster = errors.New("roster has no seats")

// NewRoster builds one agent per configured seat. Each seat draws its own
// random source from rng so a seeded roster replays identically.
func NewRoster(seats []config.Seat, rng *rand.Rand) ([]*Agent, error) {
	if len(seats) == 0 {
		return nil, ErrEmptyRoster
	}
	rng = orClock(rng)

	agents := make([]*Agent, 0, len(seats))
	for i, seat := range seats {
		ctx := Context{Rand: rand.New(rand.NewSource(rng.Int63())), Seat: i}
		strategy, err := New(seat.Persona, ctx)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", i, err)
		}
		name := seat.Name
		if name == "" {
			name = fmt.Sprintf("AI Player %d", i+1)
		}
		agents = append(agents, &Agent{
			ID:       uuid.NewString(),
			Name:     name,
			Seat:     i,
			Strategy: strategy,
		})
	}
	return agents, nil
}
