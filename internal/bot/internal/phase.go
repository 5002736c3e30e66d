package internal

import "thirteen/internal/domain"

// GamePhase describes the current strategic stage of a game.
type GamePhase int

const (
	// PhaseOpening indicates all active players still hold a full hand.
	PhaseOpening GamePhase = iota
	// PhaseMid indicates no one has reached the endgame threshold yet.
	PhaseMid
	// PhaseEnd indicates at least one player finished or any active player has <= 5 cards.
	PhaseEnd
)

const endgameCards = 5

func (p GamePhase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseEnd:
		return "end"
	default:
		return "mid"
	}
}

// DetectPhase infers the phase from every seat's hand size.
func DetectPhase(hands [][]domain.Card, fullHand int) GamePhase {
	if len(hands) == 0 {
		return PhaseMid
	}

	activePlayers := 0
	opening := true
	end := false

	for _, hand := range hands {
		if len(hand) == 0 {
			end = true
			continue
		}
		activePlayers++
		if len(hand) != fullHand {
			opening = false
		}
		if len(hand) <= endgameCards {
			end = true
		}
	}

	if activePlayers == 0 {
		return PhaseEnd
	}
	if opening && !end {
		return PhaseOpening
	}
	if end {
		return PhaseEnd
	}
	return PhaseMid
}
