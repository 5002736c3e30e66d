package app

import "thirteen/internal/domain"

// EventKind identifies emitted game events.
type EventKind string

const (
	EventGameStarted    EventKind = "game_started"
	EventHandDealt      EventKind = "hand_dealt"
	EventCardsPlayed    EventKind = "cards_played"
	EventTurnPassed     EventKind = "turn_passed"
	EventRoundEnded     EventKind = "round_ended"
	EventPlayerFinished EventKind = "player_finished"
	EventGameEnded      EventKind = "game_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int // seats; empty means broadcast
}

// Observer is notified synchronously after every state change, in emission order.
type Observer func(g *Game, ev Event)

type GameStartedPayload struct {
	GameID    string
	Players   int
	FirstSeat int
}

type HandDealtPayload struct {
	Seat int
	Hand []domain.Card
}

type CardsPlayedPayload struct {
	Seat      int
	Cards     []domain.Card
	Type      domain.CombinationType
	Remaining int
	NextSeat  int
}

type TurnPassedPayload struct {
	Seat     int
	NextSeat int
}

type RoundEndedPayload struct {
	Winner int // seat whose play took the round
	Leader int // seat that leads the next round
}

type PlayerFinishedPayload struct {
	Seat  int
	Place int // 1-based
}

type GameEndedPayload struct {
	FinishOrder []int // every seat, first out first, last holder last
}
