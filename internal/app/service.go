package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"thirteen/internal/bot"
	"thirteen/internal/domain"
	"thirteen/internal/logging"
)

var (
	ErrTooFewPlayers  = errors.New("not enough players to start")
	ErrTooManyPlayers = errors.New("too many players for one deck")
	ErrGameNotPlaying = errors.New("game not in playing phase")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrIllegalPlay    = errors.New("illegal play")
	ErrCannotPass     = errors.New("cannot pass on an empty pile")
)

// Service sequences turns and owns every mutation of a Game.
type Service struct {
	rng       *rand.Rand
	logger    runtime.Logger
	observers []Observer
}

// NewService constructs a Service with provided rng or a time-seeded default.
// A nil logger discards output.
func NewService(rng *rand.Rand, logger runtime.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{rng: rng, logger: logger}
}

// Subscribe registers an observer for every event emitted from now on.
func (s *Service) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// StartGame shuffles and deals a new game. The holder of the lowest card leads.
func (s *Service) StartGame(players, handSize int) (*Game, []Event, error) {
	if players < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}
	if players > MaxPlayersPerGame {
		return nil, nil, ErrTooManyPlayers
	}

	hands, err := domain.Deal(domain.Shuffle(domain.NewDeck(), s.rng), players, handSize)
	if err != nil {
		return nil, nil, fmt.Errorf("start game: %w", err)
	}

	first := 0
	if lowest, ok := domain.LowestCard(hands); ok {
		for seat, hand := range hands {
			if domain.ContainsCard(hand, lowest) {
				first = seat
				break
			}
		}
	}

	g := &Game{
		ID:        uuid.NewString(),
		Phase:     PhasePlaying,
		Hands:     hands,
		PileType:  domain.Invalid,
		PileOwner: noSeat,
		Current:   first,
		Passed:    make([]bool, players),
	}

	events := make([]Event, 0, players+1)
	for seat, hand := range hands {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Hand: append([]domain.Card(nil), hand...)},
			Recipients: []int{seat},
		})
	}
	events = append(events, Event{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{GameID: g.ID, Players: players, FirstSeat: first},
	})

	s.logger.WithField("game", g.ID).Info("game started: %d players, seat %d leads", players, first)
	s.emit(g, events)
	return g, events, nil
}

// Play validates and applies a play for seat.
func (s *Service) Play(g *Game, seat int, cards []domain.Card) ([]Event, error) {
	if err := checkTurn(g, seat); err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no cards selected", ErrIllegalPlay)
	}
	if !domain.IsValidPlay(cards, g.Pile, g.Hands[seat], g.Turn, g.Hands) {
		return nil, fmt.Errorf("%w: %s on [%s]", ErrIllegalPlay, domain.FormatCards(cards), domain.FormatCards(g.Pile))
	}

	played := domain.Sorted(cards)
	g.Hands[seat] = domain.RemoveCards(g.Hands[seat], played)
	g.Pile = played
	g.PileType = domain.Classify(played)
	g.PileOwner = seat
	clear(g.Passed)
	g.Turn++

	s.logger.WithFields(map[string]interface{}{"game": g.ID, "seat": seat}).
		Debug("played %s (%s), %d left", domain.FormatCards(played), g.PileType, len(g.Hands[seat]))

	payload := CardsPlayedPayload{
		Seat:      seat,
		Cards:     played,
		Type:      g.PileType,
		Remaining: len(g.Hands[seat]),
	}

	var tail []Event
	if len(g.Hands[seat]) == 0 {
		g.FinishOrder = append(g.FinishOrder, seat)
		tail = append(tail, Event{
			Kind:    EventPlayerFinished,
			Payload: PlayerFinishedPayload{Seat: seat, Place: len(g.FinishOrder)},
		})
	}

	if domain.CountPlayersWithCards(g.Hands) <= 1 {
		tail = append(tail, s.endGame(g))
		payload.NextSeat = noSeat
	} else {
		tail = append(tail, s.advance(g)...)
		payload.NextSeat = g.Current
	}

	events := append([]Event{{Kind: EventCardsPlayed, Payload: payload}}, tail...)
	s.emit(g, events)
	return events, nil
}

// Pass records a pass for seat. Leads cannot be passed.
func (s *Service) Pass(g *Game, seat int) ([]Event, error) {
	if err := checkTurn(g, seat); err != nil {
		return nil, err
	}
	if len(g.Pile) == 0 {
		return nil, ErrCannotPass
	}

	g.Passed[seat] = true
	g.Turn++
	tail := s.advance(g)

	s.logger.WithFields(map[string]interface{}{"game": g.ID, "seat": seat}).Debug("passed")

	events := append([]Event{{
		Kind:    EventTurnPassed,
		Payload: TurnPassedPayload{Seat: seat, NextSeat: g.Current},
	}}, tail...)
	s.emit(g, events)
	return events, nil
}

// TurnFor snapshots what seat may see when deciding a move.
func (s *Service) TurnFor(g *Game, seat int) bot.Turn {
	all := g.HandsCopy()
	var hand []domain.Card
	if seat >= 0 && seat < len(all) {
		hand = all[seat]
	}
	return bot.Turn{
		Hand:     append([]domain.Card(nil), hand...),
		Pile:     append([]domain.Card(nil), g.Pile...),
		Index:    g.Turn,
		Seat:     seat,
		AllHands: all,
	}
}

// PlayBotTurn asks agent for a move at its seat and applies it. A failing
// strategy is treated as a pass; a pass on a lead falls back to the lowest card.
func (s *Service) PlayBotTurn(g *Game, agent *bot.Agent) ([]Event, error) {
	if err := checkTurn(g, agent.Seat); err != nil {
		return nil, err
	}

	turn := s.TurnFor(g, agent.Seat)
	log := s.logger.WithFields(map[string]interface{}{"game": g.ID, "seat": agent.Seat, "persona": agent.Persona()})

	move, err := agent.Play(turn)
	if err != nil {
		log.Warn("strategy failed, treating as pass: %v", err)
	}
	if move.Pass {
		if len(g.Pile) > 0 {
			return s.Pass(g, agent.Seat)
		}
		log.Warn("strategy passed on a lead, playing lowest card")
		cards, _ := bot.NewLowestCard().TakeTurn(turn)
		move = bot.Move{Cards: cards}
	}
	return s.Play(g, agent.Seat, move.Cards)
}

// advance ends the round when everyone else passed on the pile, otherwise
// hands the turn to the next seat still in the round.
func (s *Service) advance(g *Game) []Event {
	if g.PileOwner != noSeat && g.allOthersPassed() {
		winner := g.PileOwner
		leader := winner
		if !g.Active(leader) {
			leader = g.nextActive(winner, false)
		}
		g.Pile = nil
		g.PileType = domain.Invalid
		g.PileOwner = noSeat
		clear(g.Passed)
		g.Round++
		g.Current = leader

		s.logger.WithField("game", g.ID).Debug("round %d won by seat %d, seat %d leads", g.Round, winner, leader)
		return []Event{{Kind: EventRoundEnded, Payload: RoundEndedPayload{Winner: winner, Leader: leader}}}
	}
	g.Current = g.nextActive(g.Current, true)
	return nil
}

func (s *Service) endGame(g *Game) Event {
	for seat := range g.Hands {
		if g.Active(seat) {
			g.FinishOrder = append(g.FinishOrder, seat)
		}
	}
	g.Phase = PhaseEnded
	g.Current = noSeat
	g.Pile = nil
	g.PileType = domain.Invalid
	g.PileOwner = noSeat

	s.logger.WithField("game", g.ID).Info("game ended after %d turns, finish order %v", g.Turn, g.FinishOrder)
	return Event{Kind: EventGameEnded, Payload: GameEndedPayload{FinishOrder: append([]int(nil), g.FinishOrder...)}}
}

func (s *Service) emit(g *Game, events []Event) {
	for _, ev := range events {
		for _, o := range s.observers {
			o(g, ev)
		}
	}
}

func checkTurn(g *Game, seat int) error {
	if g.Phase != PhasePlaying {
		return ErrGameNotPlaying
	}
	if seat != g.Current {
		return fmt.Errorf("%w: seat %d acted, seat %d to play", ErrNotYourTurn, seat, g.Current)
	}
	return nil
}
