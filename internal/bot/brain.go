package bot

import "thirteen/internal/domain"

// ValidMoves generates every combination the hand can form, type by type in
// domain.PlayableTypes order, and keeps the ones that are legal on the current pile.
func ValidMoves(t Turn) [][]domain.Card {
	var moves [][]domain.Card
	for _, kind := range domain.PlayableTypes {
		for _, combo := range domain.Generate(t.Hand, kind) {
			if domain.IsValidPlay(combo, t.Pile, t.Hand, t.Index, t.AllHands) {
				moves = append(moves, combo)
			}
		}
	}
	return moves
}

// Selector picks one move from a non-empty candidate list, or nil to pass.
type Selector func(t Turn, moves [][]domain.Card) []domain.Card

// Base runs the shared valid-move pipeline and hands the candidates to its selector.
// The zero value has no selector and returns ErrUnimplemented.
type Base struct {
	persona  string
	selector Selector
}

// NewBase builds a strategy from a selection policy.
func NewBase(persona string, selector Selector) *Base {
	return &Base{persona: persona, selector: selector}
}

func (b *Base) Persona() string { return b.persona }

func (b *Base) TakeTurn(t Turn) ([]domain.Card, error) {
	if b.selector == nil {
		return nil, ErrUnimplemented
	}
	moves := ValidMoves(t)
	if len(moves) == 0 {
		return nil, nil
	}
	return b.selector(t, moves), nil
}
