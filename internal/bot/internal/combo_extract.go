package internal

import (
	"sort"

	"thirteen/internal/domain"
)

const (
	minStraightLen = 3
	minPinePairs   = 3
)

type straightStats struct {
	Count  int
	Cards  int
	MaxLen int
}

type pineStats struct {
	Count    int
	Cards    int
	MaxPairs int
}

// longestRun returns the first longest stretch of consecutive ranks in an ascending list.
func longestRun(ranks []domain.Rank) (start, length int) {
	for i := 0; i < len(ranks); {
		j := i + 1
		for j < len(ranks) && ranks[j] == ranks[j-1]+1 {
			j++
		}
		if j-i > length {
			start, length = i, j-i
		}
		i = j
	}
	return start, length
}

// extractStraights removes the longest straight repeatedly and returns stats.
// cards must be sorted by value; the lowest suit of each rank is used.
func extractStraights(cards []domain.Card) ([]domain.Card, straightStats) {
	stats := straightStats{}

	for {
		byRank := make(map[domain.Rank]domain.Card)
		var ranks []domain.Rank
		for _, c := range cards {
			if c.Rank == domain.RankTwo {
				continue
			}
			if _, ok := byRank[c.Rank]; !ok {
				byRank[c.Rank] = c
				ranks = append(ranks, c.Rank)
			}
		}

		start, n := longestRun(ranks)
		if n < minStraightLen {
			break
		}

		straight := make([]domain.Card, 0, n)
		for _, r := range ranks[start : start+n] {
			straight = append(straight, byRank[r])
		}
		cards = domain.RemoveCards(cards, straight)
		stats.Count++
		stats.Cards += n
		if n > stats.MaxLen {
			stats.MaxLen = n
		}
	}

	return cards, stats
}

// extractPines removes consecutive-pair runs (3+ pairs) greedily and returns stats.
// 2s are left alone; they are scored on their own.
func extractPines(cards []domain.Card) ([]domain.Card, pineStats) {
	stats := pineStats{}
	if len(cards) < minPinePairs*2 {
		return cards, stats
	}

	counts := make(map[domain.Rank]int)
	for _, c := range cards {
		counts[c.Rank]++
	}

	for {
		var ranks []domain.Rank
		for rank, count := range counts {
			if rank != domain.RankTwo && count >= 2 {
				ranks = append(ranks, rank)
			}
		}
		sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

		start, n := longestRun(ranks)
		if n < minPinePairs {
			break
		}
		for _, r := range ranks[start : start+n] {
			counts[r] -= 2
		}
		stats.Count++
		stats.Cards += n * 2
		if n > stats.MaxPairs {
			stats.MaxPairs = n
		}
	}

	remaining := make([]domain.Card, 0, len(cards)-stats.Cards)
	for _, c := range cards {
		if counts[c.Rank] > 0 {
			remaining = append(remaining, c)
			counts[c.Rank]--
		}
	}
	return remaining, stats
}

// extractSets removes every run of size same-rank cards from a value-sorted slice.
func extractSets(cards []domain.Card, size int) ([]domain.Card, int) {
	found := 0
	for i := 0; i+size <= len(cards); {
		if cards[i].Rank == cards[i+size-1].Rank {
			cards = domain.RemoveCards(cards, cards[i:i+size])
			found++
			continue
		}
		i++
	}
	return cards, found
}
