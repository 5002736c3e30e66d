package internal

import "thirteen/internal/domain"

// BossStats describes how much control a hand has over the cards still out.
type BossStats struct {
	Outstanding []domain.Card // cards held by opponents
	BossSingles []domain.Card // singles in hand that no opponent can beat
	Dominance   float64       // 0 to 1
}

// AnalyzeHand compares hand against every opponent card and finds the unbeatable singles.
func AnalyzeHand(hand []domain.Card, opponents [][]domain.Card) BossStats {
	var outstanding []domain.Card
	for _, h := range opponents {
		outstanding = append(outstanding, h...)
	}

	stats := BossStats{Outstanding: outstanding}
	if len(hand) == 0 {
		return stats
	}
	if len(outstanding) == 0 {
		stats.Dominance = 1.0
		stats.BossSingles = append([]domain.Card(nil), hand...)
		return stats
	}

	highest := domain.HighestValue(outstanding)
	for _, c := range hand {
		if c.Value() > highest {
			stats.BossSingles = append(stats.BossSingles, c)
		}
	}

	avgHand := averageValue(hand)
	avgOut := averageValue(outstanding)
	if avgHand+avgOut == 0 {
		stats.Dominance = 0.5
		return stats
	}
	stats.Dominance = avgHand / (avgHand + avgOut)
	return stats
}

// IsBoss reports whether card is one of the boss singles.
func (s BossStats) IsBoss(card domain.Card) bool {
	return domain.ContainsCard(s.BossSingles, card)
}

func averageValue(cards []domain.Card) float64 {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return float64(total) / float64(len(cards))
}
