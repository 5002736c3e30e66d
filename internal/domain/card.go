package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Rank is a card rank indexed in Thirteen order: 3 is lowest, 2 is highest.
type Rank int

const (
	Rank3 Rank = iota
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
	RankTwo
)

// Suit is a card suit in tiebreak order.
type Suit int

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
)

const (
	numRanks = 13
	numSuits = 4
)

var rankSymbols = [numRanks]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}

var suitSymbols = [numSuits]string{"♠", "♣", "♦", "♥"}

// suitAliases maps ASCII letters to suits for hand-typed input.
var suitAliases = map[string]Suit{"S": Spades, "C": Clubs, "D": Diamonds, "H": Hearts}

var (
	ErrUnknownRank = errors.New("unknown rank")
	ErrUnknownSuit = errors.New("unknown suit")
)

func (r Rank) String() string {
	if r < 0 || int(r) >= numRanks {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankSymbols[r]
}

func (s Suit) String() string {
	if s < 0 || int(s) >= numSuits {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitSymbols[s]
}

// ParseRank resolves a rank symbol such as "10" or "J".
func ParseRank(symbol string) (Rank, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	for i, sym := range rankSymbols {
		if sym == s {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRank, symbol)
}

// ParseSuit resolves a suit symbol ("♠") or its letter alias ("S").
func ParseSuit(symbol string) (Suit, error) {
	s := strings.TrimSpace(symbol)
	for i, sym := range suitSymbols {
		if sym == s {
			return Suit(i), nil
		}
	}
	if suit, ok := suitAliases[strings.ToUpper(s)]; ok {
		return suit, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSuit, symbol)
}

// Card is a single immutable playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// Value orders all 52 cards without ties.
func (c Card) Value() int {
	return int(c.Rank)*numSuits + int(c.Suit)
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard reads the textual form produced by String, e.g. "10♥" or "10H".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	for i := range suitSymbols {
		if strings.HasSuffix(s, suitSymbols[i]) {
			return parseParts(strings.TrimSuffix(s, suitSymbols[i]), suitSymbols[i])
		}
	}
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownSuit, s)
	}
	return parseParts(s[:len(s)-1], s[len(s)-1:])
}

// MustParseCards parses a space separated list of cards and panics on bad input.
// Intended for tests and fixtures.
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

func parseParts(rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	st, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: r, Suit: st}, nil
}

// cardRecord is the serialized form. Value is written for readers but never read back.
type cardRecord struct {
	Rank  string `json:"rank"`
	Suit  string `json:"suit"`
	Value *int   `json:"value,omitempty"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	v := c.Value()
	return json.Marshal(cardRecord{Rank: c.Rank.String(), Suit: c.Suit.String(), Value: &v})
}

// UnmarshalJSON rebuilds the card from rank and suit only; a serialized value is ignored.
func (c *Card) UnmarshalJSON(data []byte) error {
	var rec cardRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	card, err := parseParts(rec.Rank, rec.Suit)
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// SortCards orders cards by ascending value in place.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Value() < cards[j].Value()
	})
}

// Sorted returns a value-sorted copy.
func Sorted(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	SortCards(out)
	return out
}

// HighestValue returns the value of the strongest card, or -1 for no cards.
func HighestValue(cards []Card) int {
	maxV := -1
	for _, c := range cards {
		if v := c.Value(); v > maxV {
			maxV = v
		}
	}
	return maxV
}

// FormatCards renders cards as a space separated list.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
