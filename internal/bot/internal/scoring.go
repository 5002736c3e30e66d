package internal

import "thirteen/internal/domain"

// PhaseWeights tune move scoring for a specific phase.
type PhaseWeights struct {
	HandScoreWeight      float64
	StraightCardWeight   float64
	PineCardWeight       float64
	PairWeight           float64
	TripleWeight         float64
	QuadWeight           float64
	SingleWeight         float64
	TotalCardWeight      float64
	UseTwoPenalty        float64
	UseBombPenalty       float64
	UseHighCardPenalty   float64
	FinishBonus          float64
	BlockerHighCardBonus float64
}

// BotTuning defines phase weights and thresholds for a scoring strategy.
type BotTuning struct {
	Opening         PhaseWeights
	Mid             PhaseWeights
	End             PhaseWeights
	PassThreshold   float64
	ThreatThreshold int
}

// ForPhase returns the weights that match the supplied phase.
func (t BotTuning) ForPhase(phase GamePhase) PhaseWeights {
	switch phase {
	case PhaseOpening:
		return t.Opening
	case PhaseEnd:
		return t.End
	default:
		return t.Mid
	}
}

// ScoredMove holds a move with its computed score and supporting metadata.
type ScoredMove struct {
	Cards            []domain.Card
	Score            float64
	Kind             domain.CombinationType
	Top              int // value of the highest card
	Remaining        []domain.Card
	RemainingProfile HandProfile
}

// ScoreHand evaluates a hand using the configured weights and structure profile.
func ScoreHand(hand []domain.Card, weights PhaseWeights) float64 {
	return scoreHandWithProfile(hand, ProfileHand(hand), weights)
}

// BuildScoredMoves scores each move by what it leaves behind, with optional blocking bias.
func BuildScoredMoves(hand []domain.Card, moves [][]domain.Card, weights PhaseWeights, threat bool) []ScoredMove {
	scored := make([]ScoredMove, 0, len(moves))
	for _, move := range moves {
		remaining := domain.RemoveCards(hand, move)
		profile := ProfileHand(remaining)
		score := scoreHandWithProfile(remaining, profile, weights)

		if len(remaining) == 0 {
			score += weights.FinishBonus
		}

		kind := domain.Classify(move)
		top := domain.HighestValue(move)
		score -= weights.UseHighCardPenalty * float64(top)

		if kind.IsBomb() {
			score -= weights.UseBombPenalty
		}

		score -= weights.UseTwoPenalty * float64(countRank(move, domain.RankTwo))

		if threat && kind == domain.Single {
			score += weights.BlockerHighCardBonus * float64(top)
		}

		scored = append(scored, ScoredMove{
			Cards:            move,
			Score:            score,
			Kind:             kind,
			Top:              top,
			Remaining:        remaining,
			RemainingProfile: profile,
		})
	}
	return scored
}

// DetectThreat reports whether any opponent still in play is at or below threshold cards.
func DetectThreat(hands [][]domain.Card, seat int, threshold int) bool {
	if threshold <= 0 {
		return false
	}
	for i, hand := range hands {
		if i == seat || len(hand) == 0 {
			continue
		}
		if len(hand) <= threshold {
			return true
		}
	}
	return false
}

func scoreHandWithProfile(hand []domain.Card, profile HandProfile, weights PhaseWeights) float64 {
	score := 0.0
	score += weights.HandScoreWeight * EvaluateHand(hand)
	score += weights.StraightCardWeight * float64(profile.StraightCards)
	score += weights.PineCardWeight * float64(profile.PineCards)
	score += weights.PairWeight * float64(profile.Pairs)
	score += weights.TripleWeight * float64(profile.Triples)
	score += weights.QuadWeight * float64(profile.Quads)
	score += weights.SingleWeight * float64(profile.Singles)
	score += weights.TotalCardWeight * float64(profile.TotalCards)
	return score
}

func countRank(cards []domain.Card, rank domain.Rank) int {
	count := 0
	for _, c := range cards {
		if c.Rank == rank {
			count++
		}
	}
	return count
}
