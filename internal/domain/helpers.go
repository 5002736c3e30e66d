package domain

// Owns reports whether every card in cards is held in hand, counting duplicates.
func Owns(hand []Card, cards []Card) bool {
	counts := make(map[Card]int, len(hand))
	for _, c := range hand {
		counts[c]++
	}
	for _, c := range cards {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}

// RemoveCards returns a new hand without the given cards. The input hand is not modified.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count := removeCounts[card]; count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}
	return updated
}

// LowestCard finds the lowest-value card held across all hands.
func LowestCard(hands [][]Card) (Card, bool) {
	var lowest Card
	found := false
	for _, hand := range hands {
		for _, c := range hand {
			if !found || c.Value() < lowest.Value() {
				lowest = c
				found = true
			}
		}
	}
	return lowest, found
}

// ContainsCard reports whether card is present in cards.
func ContainsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

// CountPlayersWithCards returns how many hands still hold cards.
func CountPlayersWithCards(hands [][]Card) int {
	n := 0
	for _, hand := range hands {
		if len(hand) > 0 {
			n++
		}
	}
	return n
}
