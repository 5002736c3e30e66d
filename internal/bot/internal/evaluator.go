package internal

import "thirteen/internal/domain"

const (
	ScorePig        = 20.0
	ScoreBomb       = 30.0
	ScoreStraight   = 5.0 // per card
	ScoreTriple     = 10.0
	ScorePair       = 5.0
	ScoreHighSingle = 2.0  // J, Q, K, A
	ScoreLowSingle  = -2.0 // 3..10
)

// EvaluateHand returns a heuristic score for the given hand. Higher is better.
// Extraction is greedy: quads, straights, triples, pairs, then leftover singles.
func EvaluateHand(hand []domain.Card) float64 {
	cards := domain.Sorted(hand)
	score := 0.0

	cards, quads := extractSets(cards, 4)
	score += float64(quads) * ScoreBomb

	var straights straightStats
	cards, straights = extractStraights(cards)
	score += float64(straights.Cards) * ScoreStraight

	cards, triples := extractSets(cards, 3)
	score += float64(triples) * ScoreTriple

	cards, pairs := extractSets(cards, 2)
	score += float64(pairs) * ScorePair

	for _, c := range cards {
		switch {
		case c.Rank == domain.RankTwo:
			score += ScorePig
		case c.Rank >= domain.RankJ:
			score += ScoreHighSingle
		default:
			score += ScoreLowSingle
		}
	}
	return score
}
