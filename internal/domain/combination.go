package domain

import (
	"errors"
	"fmt"
)

// CombinationType classifies a set of cards.
type CombinationType string

const (
	Single           CombinationType = "single"
	Pair             CombinationType = "pair"
	Triple           CombinationType = "triple"
	Straight         CombinationType = "straight"
	FourOfAKind      CombinationType = "four_of_a_kind"
	ConsecutivePairs CombinationType = "consecutive_pairs"
	Invalid          CombinationType = "invalid"
)

// PlayableTypes lists every legal combination type in move generation order.
var PlayableTypes = []CombinationType{Single, Pair, Triple, Straight, FourOfAKind, ConsecutivePairs}

var ErrUnknownCombination = errors.New("unknown combination type")

// ParseCombinationType resolves a wire name such as "four_of_a_kind".
func ParseCombinationType(name string) (CombinationType, error) {
	t := CombinationType(name)
	if t == Invalid {
		return Invalid, nil
	}
	for _, known := range PlayableTypes {
		if known == t {
			return t, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownCombination, name)
}

// IsBomb reports whether the type is one of the two-beating combinations.
func (t CombinationType) IsBomb() bool {
	return t == FourOfAKind || t == ConsecutivePairs
}
