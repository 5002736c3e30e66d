package internal

import (
	"testing"

	"thirteen/internal/domain"
)

func TestEvaluateHand(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want float64
	}{
		{name: "trash", hand: "3♠ 5♠ 7♠", want: 3 * ScoreLowSingle},
		{name: "straight", hand: "3♠ 4♠ 5♠", want: 3 * ScoreStraight},
		{name: "pair", hand: "3♠ 3♣", want: ScorePair},
		{name: "two singles", hand: "3♠ 4♠", want: 2 * ScoreLowSingle},
		{name: "pig", hand: "2♠", want: ScorePig},
		{name: "high single", hand: "K♦", want: ScoreHighSingle},
		{name: "quad and triple", hand: "9♠ 9♣ 9♦ 9♥ Q♠ Q♣ Q♦", want: ScoreBomb + ScoreTriple},
		{name: "empty", hand: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateHand(domain.MustParseCards(tt.hand)); got != tt.want {
				t.Errorf("EvaluateHand(%q) = %.2f, want %.2f", tt.hand, got, tt.want)
			}
		})
	}
}

func TestEvaluateHand_StructureBeatsTrash(t *testing.T) {
	straight := EvaluateHand(domain.MustParseCards("3♠ 4♠ 5♠"))
	trash := EvaluateHand(domain.MustParseCards("3♠ 5♠ 7♠"))
	if straight <= trash {
		t.Errorf("Straight (%.2f) should be worth more than Trash (%.2f)", straight, trash)
	}
}
