package bot

import (
	"sort"

	botinternal "thirteen/internal/bot/internal"
	"thirteen/internal/domain"
)

const PersonaStrategist = "strategist"

// NewStrategist scores every valid move by the structure it leaves in hand and
// passes on a response that would cost more than the tuning's pass threshold.
func NewStrategist(tuning Tuning) *Base {
	return NewBase(PersonaStrategist, func(t Turn, moves [][]domain.Card) []domain.Card {
		return strategize(t, moves, tuning)
	})
}

func strategize(t Turn, moves [][]domain.Card, tuning Tuning) []domain.Card {
	phase := botinternal.DetectPhase(t.AllHands, domain.HandSize)
	weights := tuning.ForPhase(phase)
	threat := botinternal.DetectThreat(t.AllHands, t.Seat, tuning.ThreatThreshold)
	scored := botinternal.BuildScoredMoves(t.Hand, moves, weights, threat)

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		// Save higher cards when scores are equal.
		return scored[i].Top < scored[j].Top
	})

	// A lead can never be passed.
	if len(t.Pile) > 0 {
		currentScore := botinternal.ScoreHand(t.Hand, weights)
		if scored[0].Score < currentScore+tuning.PassThreshold {
			return nil
		}
	}
	return scored[0].Cards
}
