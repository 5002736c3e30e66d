package bot

import (
	"errors"

	"thirteen/internal/domain"
)

// ErrUnimplemented is returned by a strategy that has no selection policy wired in.
// Reaching it means a strategy was built by hand without a selector.
var ErrUnimplemented = errors.New("bot: strategy has no selection policy")

// Turn carries the read-only inputs of one decision.
// Strategies must not modify any of the slices.
type Turn struct {
	Hand     []domain.Card
	Pile     []domain.Card
	Index    int // game-wide turn counter, 0 for the very first play
	Seat     int
	AllHands [][]domain.Card
}

// Strategy picks a play for the acting seat. An empty result means pass.
type Strategy interface {
	Persona() string
	TakeTurn(t Turn) ([]domain.Card, error)
}

// Move represents the decision made by the AI.
type Move struct {
	Pass  bool
	Cards []domain.Card
}
