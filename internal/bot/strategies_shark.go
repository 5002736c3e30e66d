package bot

import (
	"sort"

	botinternal "thirteen/internal/bot/internal"
	"thirteen/internal/domain"
)

const PersonaShark = "shark"

const (
	sharkBlockCards     = 3
	sharkDominance      = 0.6
	sharkLowSingleValue = 40 // below the lowest ace
	sharkPassDelta      = -15.0
	sharkFinishBonus    = 10000.0
)

type sharkMove struct {
	cards  []domain.Card
	delta  float64
	top    int
	isBoss bool
}

// NewShark counts the cards still held by opponents: it hoards unbeatable singles
// while it dominates, spends them to seize control otherwise, and blocks with
// high cards when an opponent is close to going out.
func NewShark() *Base {
	return NewBase(PersonaShark, hunt)
}

func hunt(t Turn, moves [][]domain.Card) []domain.Card {
	opponents := opponentHands(t)
	stats := botinternal.AnalyzeHand(t.Hand, opponents)
	blocking := botinternal.DetectThreat(opponents, -1, sharkBlockCards)
	current := botinternal.EvaluateHand(t.Hand)

	candidates := make([]sharkMove, 0, len(moves))
	for _, m := range moves {
		remaining := domain.RemoveCards(t.Hand, m)
		delta := botinternal.EvaluateHand(remaining) - current
		if len(remaining) == 0 {
			delta += sharkFinishBonus
		}

		single := domain.IsSingle(m)
		top := domain.HighestValue(m)
		isBoss := single && stats.IsBoss(m[0])

		if isBoss {
			if stats.Dominance > sharkDominance && !blocking && len(t.Hand) > sharkBlockCards {
				delta -= 10.0
			} else {
				delta += 20.0
			}
		}
		if blocking {
			if single && top < sharkLowSingleValue {
				delta -= 100.0
			}
			if isBoss {
				delta += 50.0
			}
		}

		candidates = append(candidates, sharkMove{cards: m, delta: delta, top: top, isBoss: isBoss})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].delta != candidates[j].delta {
			return candidates[i].delta > candidates[j].delta
		}
		if blocking {
			return candidates[i].top > candidates[j].top
		}
		return candidates[i].top < candidates[j].top
	})

	best := candidates[0]
	if len(t.Pile) > 0 && best.delta < sharkPassDelta && !best.isBoss {
		return nil
	}
	return best.cards
}

// opponentHands returns every hand except the acting seat's.
func opponentHands(t Turn) [][]domain.Card {
	out := make([][]domain.Card, 0, len(t.AllHands))
	for i, h := range t.AllHands {
		if i != t.Seat {
			out = append(out, h)
		}
	}
	return out
}
