package app

import "thirteen/internal/domain"

// Phase is the lifecycle stage of a game.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

// Game is the mutable table state. Only Service mutates it; the rules engine
// and strategies only ever see copies.
type Game struct {
	ID          string
	Phase       Phase
	Hands       [][]domain.Card
	Pile        []domain.Card
	PileType    domain.CombinationType
	PileOwner   int // seat that played Pile, -1 when the pile is empty
	Current     int // seat to act
	Turn        int // actions taken so far, 0 before the opening play
	Round       int
	Passed      []bool
	FinishOrder []int
}

// Players returns the number of seats.
func (g *Game) Players() int { return len(g.Hands) }

// Active reports whether seat still holds cards.
func (g *Game) Active(seat int) bool {
	return seat >= 0 && seat < len(g.Hands) && len(g.Hands[seat]) > 0
}

// HandsCopy returns a deep copy of every hand.
func (g *Game) HandsCopy() [][]domain.Card {
	out := make([][]domain.Card, len(g.Hands))
	for i, h := range g.Hands {
		out[i] = append([]domain.Card(nil), h...)
	}
	return out
}

// allOthersPassed reports whether every seat still holding cards, other than
// the pile owner, has passed on the current pile.
func (g *Game) allOthersPassed() bool {
	for seat := range g.Hands {
		if seat == g.PileOwner || !g.Active(seat) {
			continue
		}
		if !g.Passed[seat] {
			return false
		}
	}
	return true
}

// nextActive returns the first seat after from that holds cards and has not passed.
func (g *Game) nextActive(from int, skipPassed bool) int {
	n := len(g.Hands)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if !g.Active(seat) {
			continue
		}
		if skipPassed && g.Passed[seat] {
			continue
		}
		return seat
	}
	return noSeat
}
