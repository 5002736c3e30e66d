package domain

import "sort"

const (
	minStraightLen = 3
	minPineLen     = 3 // pairs
	maxPineLen     = 4 // pairs
	quadSize       = 4
)

// Generate enumerates every combination of the given type that hand can form.
// Each combination is sorted by value and the list is ordered by each
// combination's lowest card, ties kept in generation order.
func Generate(hand []Card, t CombinationType) [][]Card {
	sorted := Sorted(hand)

	var combos [][]Card
	switch t {
	case Single:
		for _, c := range sorted {
			combos = append(combos, []Card{c})
		}
	case Pair:
		combos = sameRankSubsets(sorted, 2)
	case Triple:
		combos = sameRankSubsets(sorted, 3)
	case FourOfAKind:
		combos = sameRankSubsets(sorted, quadSize)
	case Straight:
		combos = straights(sorted)
	case ConsecutivePairs:
		combos = consecutivePairs(sorted)
	default:
		return nil
	}

	for _, combo := range combos {
		SortCards(combo)
	}
	sort.SliceStable(combos, func(i, j int) bool {
		return combos[i][0].Value() < combos[j][0].Value()
	})
	return combos
}

// GenerateAll enumerates combinations for every playable type in PlayableTypes order.
func GenerateAll(hand []Card) [][]Card {
	var all [][]Card
	for _, t := range PlayableTypes {
		all = append(all, Generate(hand, t)...)
	}
	return all
}

// sameRankSubsets walks index combinations i<j<k<... and keeps those sharing one rank.
// Every suit combination is produced, not one per rank.
func sameRankSubsets(hand []Card, k int) [][]Card {
	var out [][]Card
	picked := make([]Card, 0, k)
	var walk func(start int)
	walk = func(start int) {
		if len(picked) == k {
			out = append(out, append([]Card(nil), picked...))
			return
		}
		for i := start; i < len(hand); i++ {
			if len(picked) > 0 && hand[i].Rank != picked[0].Rank {
				continue
			}
			picked = append(picked, hand[i])
			walk(i + 1)
			picked = picked[:len(picked)-1]
		}
	}
	walk(0)
	return out
}

// groupByRank buckets value-sorted cards by rank, ranks ascending.
func groupByRank(hand []Card, skipTwos bool) ([]Rank, map[Rank][]Card) {
	byRank := make(map[Rank][]Card)
	var ranks []Rank
	for _, c := range hand {
		if skipTwos && c.Rank == RankTwo {
			continue
		}
		if _, ok := byRank[c.Rank]; !ok {
			ranks = append(ranks, c.Rank)
		}
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks, byRank
}

// maximalRuns splits ascending distinct ranks into runs of consecutive ranks.
func maximalRuns(ranks []Rank) [][]Rank {
	var runs [][]Rank
	start := 0
	for i := 1; i <= len(ranks); i++ {
		if i == len(ranks) || ranks[i] != ranks[i-1]+1 {
			runs = append(runs, ranks[start:i])
			start = i
		}
	}
	return runs
}

func straights(hand []Card) [][]Card {
	ranks, byRank := groupByRank(hand, true)

	var out [][]Card
	for _, run := range maximalRuns(ranks) {
		for i := 0; i < len(run); i++ {
			for j := i + minStraightLen; j <= len(run); j++ {
				out = append(out, suitProduct(run[i:j], byRank)...)
			}
		}
	}
	return out
}

// suitProduct expands a rank sequence into every concrete card choice per rank.
func suitProduct(ranks []Rank, byRank map[Rank][]Card) [][]Card {
	out := [][]Card{{}}
	for _, r := range ranks {
		next := make([][]Card, 0, len(out)*len(byRank[r]))
		for _, prefix := range out {
			for _, c := range byRank[r] {
				combo := make([]Card, len(prefix), len(ranks))
				copy(combo, prefix)
				next = append(next, append(combo, c))
			}
		}
		out = next
	}
	return out
}

// consecutivePairs takes the two lowest cards of every paired rank and emits
// windows of exactly three or four pairs from each maximal run.
func consecutivePairs(hand []Card) [][]Card {
	ranks, byRank := groupByRank(hand, false)

	var paired []Rank
	for _, r := range ranks {
		if len(byRank[r]) >= 2 {
			paired = append(paired, r)
		}
	}

	var out [][]Card
	for _, run := range maximalRuns(paired) {
		if len(run) < minPineLen {
			continue
		}
		for i := 0; i < len(run); i++ {
			for n := minPineLen; n <= maxPineLen && i+n <= len(run); n++ {
				combo := make([]Card, 0, n*2)
				for _, r := range run[i : i+n] {
					combo = append(combo, byRank[r][:2]...)
				}
				out = append(out, combo)
			}
		}
	}
	return out
}
