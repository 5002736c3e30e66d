package domain

// Classify returns the combination type of cards regardless of their order.
// Checks run in a fixed precedence and the first match wins; anything else is Invalid.
func Classify(cards []Card) CombinationType {
	sorted := Sorted(cards)
	switch {
	case isSingle(sorted):
		return Single
	case isSameRankSet(sorted, 2):
		return Pair
	case isSameRankSet(sorted, 3):
		return Triple
	case isStraight(sorted):
		return Straight
	case isConsecutivePairs(sorted):
		return ConsecutivePairs
	case isSameRankSet(sorted, 4):
		return FourOfAKind
	default:
		return Invalid
	}
}

// IsSingle reports a one-card play.
func IsSingle(cards []Card) bool { return isSingle(cards) }

// IsPair reports two cards of one rank.
func IsPair(cards []Card) bool { return isSameRankSet(cards, 2) }

// IsTriple reports three cards of one rank.
func IsTriple(cards []Card) bool { return isSameRankSet(cards, 3) }

// IsFourOfAKind reports four cards of one rank.
func IsFourOfAKind(cards []Card) bool { return isSameRankSet(cards, 4) }

// IsStraight reports three or more consecutive ranks without a 2.
func IsStraight(cards []Card) bool { return isStraight(Sorted(cards)) }

// IsConsecutivePairs reports three or more pairs of consecutive ranks.
func IsConsecutivePairs(cards []Card) bool { return isConsecutivePairs(Sorted(cards)) }

// IsBombForSingleTwo reports whether cards may chop a single 2:
// a four of a kind or exactly three consecutive pairs.
func IsBombForSingleTwo(cards []Card) bool {
	switch Classify(cards) {
	case FourOfAKind:
		return true
	case ConsecutivePairs:
		return len(cards) == 6
	}
	return false
}

// IsBombForPairOfTwos reports whether cards may chop a pair of 2s.
// Only four consecutive pairs qualify; a four of a kind never does.
func IsBombForPairOfTwos(cards []Card) bool {
	return Classify(cards) == ConsecutivePairs && len(cards) == 8
}

// IsValidPlay decides whether selected may be played from hand on top of pile.
// turn is the game-wide turn counter (0 for the very first play) and allHands
// holds every player's hand, used to locate the lowest card on turn 0.
func IsValidPlay(selected, pile, hand []Card, turn int, allHands [][]Card) bool {
	if !Owns(hand, selected) {
		return false
	}

	kind := Classify(selected)
	if kind == Invalid {
		return false
	}

	if kind.IsBomb() {
		if len(pile) == 0 {
			return false
		}
		top := Sorted(pile)[len(pile)-1]
		if top.Rank != RankTwo {
			return false
		}
		switch len(pile) {
		case 1:
			return IsBombForSingleTwo(selected)
		case 2:
			return IsBombForPairOfTwos(selected)
		default:
			return false
		}
	}

	if len(pile) == 0 {
		if turn != 0 {
			return true
		}
		lowest, ok := LowestCard(allHands)
		if !ok {
			return true
		}
		return ContainsCard(selected, lowest)
	}

	if kind != Classify(pile) || len(selected) != len(pile) {
		return false
	}
	return HighestValue(selected) > HighestValue(pile)
}

func isSingle(cards []Card) bool {
	return len(cards) == 1
}

func isSameRankSet(cards []Card, n int) bool {
	return len(cards) == n && allSameRank(cards)
}

func allSameRank(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	r := cards[0].Rank
	for _, c := range cards {
		if c.Rank != r {
			return false
		}
	}
	return true
}

// isStraight expects cards sorted by value.
func isStraight(cards []Card) bool {
	if len(cards) < 3 {
		return false
	}
	for i, c := range cards {
		if c.Rank == RankTwo {
			return false
		}
		if i > 0 && c.Rank != cards[i-1].Rank+1 {
			return false
		}
	}
	return true
}

// isConsecutivePairs expects cards sorted by value, so pairs sit at [0,1], [2,3], ...
func isConsecutivePairs(cards []Card) bool {
	if len(cards) < 6 || len(cards)%2 != 0 {
		return false
	}
	for i := 0; i < len(cards); i += 2 {
		if cards[i].Rank != cards[i+1].Rank {
			return false
		}
		if i > 0 && cards[i].Rank != cards[i-2].Rank+1 {
			return false
		}
	}
	return true
}
