package domain

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// DeckSize is the number of cards in a standard deck.
	DeckSize = numRanks * numSuits
	// HandSize is the number of cards dealt to each player.
	HandSize = 13
	// MaxPlayers is the largest table a single deck supports.
	MaxPlayers = 4
)

var ErrNotEnoughCards = errors.New("not enough cards to deal")

// NewDeck returns a sorted 52-card deck.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for r := Rank3; r <= RankTwo; r++ {
		for s := Spades; s <= Hearts; s++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle returns a shuffled copy of the given deck.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal splits the top of the deck into sorted hands of handSize cards.
func Deal(deck []Card, players, handSize int) ([][]Card, error) {
	if players < 1 || handSize < 1 {
		return nil, fmt.Errorf("deal %d hands of %d: %w", players, handSize, ErrNotEnoughCards)
	}
	if players*handSize > len(deck) {
		return nil, fmt.Errorf("deal %d hands of %d from %d cards: %w", players, handSize, len(deck), ErrNotEnoughCards)
	}
	hands := make([][]Card, players)
	for i := range hands {
		hand := append([]Card(nil), deck[i*handSize:(i+1)*handSize]...)
		SortCards(hand)
		hands[i] = hand
	}
	return hands, nil
}
