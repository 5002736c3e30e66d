package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"thirteen/internal/bot"
	"thirteen/internal/domain"
)

const defaultMaxTurns = 1000

var (
	ErrTurnLimit    = errors.New("turn limit reached")
	ErrSeatMismatch = errors.New("agent seat does not match its position")
)

// SimulateOptions tune an all-AI game.
type SimulateOptions struct {
	HandSize   int           // 0 deals domain.HandSize
	ThinkDelay time.Duration // pause before each AI turn
	MaxTurns   int           // 0 uses a default guard
}

// SeatStats aggregates one seat's actions over a simulated game.
type SeatStats struct {
	Seat        int
	Name        string
	Persona     string
	Plays       int
	Passes      int
	CardsPlayed int
	Bombs       int
	RoundsWon   int
}

// Result summarizes a simulated game. It is returned even when the game stops early.
type Result struct {
	GameID      string
	FinishOrder []int
	Turns       int
	Rounds      int
	Stats       []SeatStats
}

// Simulate plays a whole game between agents, agents[i] sitting at seat i.
// It stops early when ctx is cancelled or the turn limit is hit.
func (s *Service) Simulate(ctx context.Context, agents []*bot.Agent, opts SimulateOptions) (*Result, error) {
	if opts.HandSize == 0 {
		opts.HandSize = domain.HandSize
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = defaultMaxTurns
	}
	for i, a := range agents {
		if a.Seat != i {
			return nil, fmt.Errorf("%w: %q sits at %d, listed at %d", ErrSeatMismatch, a.Name, a.Seat, i)
		}
	}

	g, _, err := s.StartGame(len(agents), opts.HandSize)
	if err != nil {
		return nil, err
	}

	res := &Result{GameID: g.ID, Stats: make([]SeatStats, len(agents))}
	for i, a := range agents {
		res.Stats[i] = SeatStats{Seat: i, Name: a.Name, Persona: a.Persona()}
	}

	for g.Phase == PhasePlaying {
		res.Turns, res.Rounds = g.Turn, g.Round
		if g.Turn >= opts.MaxTurns {
			return res, fmt.Errorf("%w: %d turns", ErrTurnLimit, g.Turn)
		}
		if err := wait(ctx, opts.ThinkDelay); err != nil {
			return res, err
		}

		seat := g.Current
		events, err := s.PlayBotTurn(g, agents[seat])
		if err != nil {
			return res, fmt.Errorf("turn %d seat %d: %w", g.Turn, seat, err)
		}
		res.record(events)
	}

	res.Turns, res.Rounds = g.Turn, g.Round
	res.FinishOrder = append([]int(nil), g.FinishOrder...)
	return res, nil
}

func (r *Result) record(events []Event) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case CardsPlayedPayload:
			st := &r.Stats[p.Seat]
			st.Plays++
			st.CardsPlayed += len(p.Cards)
			if p.Type.IsBomb() {
				st.Bombs++
			}
		case TurnPassedPayload:
			r.Stats[p.Seat].Passes++
		case RoundEndedPayload:
			r.Stats[p.Winner].RoundsWon++
		}
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
