package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand"

	"github.com/heroiclabs/nakama-common/runtime"

	"thirteen/internal/bot"
	"thirteen/internal/domain"
)

var (
	errInvalidPayload = runtime.NewError("invalid payload", codeInvalidArgument)
	errEmptyHand      = runtime.NewError("hand required", codeInvalidArgument)
	errInternal       = runtime.NewError("internal error", codeInternal)
)

type cardsRequest struct {
	Cards []domain.Card `json:"cards"`
}

type validatePlayRequest struct {
	Selected []domain.Card   `json:"selected"`
	Pile     []domain.Card   `json:"pile"`
	Hand     []domain.Card   `json:"hand"`
	Turn     int             `json:"turn"`
	AllHands [][]domain.Card `json:"all_hands"`
}

type generateRequest struct {
	Hand []domain.Card `json:"hand"`
	Type string        `json:"type"` // empty generates every playable type
}

type botMoveRequest struct {
	Persona  string          `json:"persona"`
	Seed     *int64          `json:"seed,omitempty"`
	Hand     []domain.Card   `json:"hand"`
	Pile     []domain.Card   `json:"pile"`
	Turn     int             `json:"turn"`
	Seat     int             `json:"seat"`
	AllHands [][]domain.Card `json:"all_hands"`
}

// rpcClassify names the combination formed by a set of cards.
// Payload: {"cards": [{"rank": "3", "suit": "♠"}, ...]}
func rpcClassify(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req cardsRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Warn("classify: bad payload: %v", err)
		return "", errInvalidPayload
	}

	t := domain.Classify(req.Cards)
	return respond(logger, map[string]any{
		"type": string(t),
		"bomb": t.IsBomb(),
	})
}

// rpcValidatePlay reports whether the selection may be played on the pile.
func rpcValidatePlay(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req validatePlayRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Warn("validate_play: bad payload: %v", err)
		return "", errInvalidPayload
	}
	if len(req.AllHands) == 0 {
		req.AllHands = [][]domain.Card{req.Hand}
	}

	return respond(logger, map[string]any{
		"valid": domain.IsValidPlay(req.Selected, req.Pile, req.Hand, req.Turn, req.AllHands),
		"type":  string(domain.Classify(req.Selected)),
	})
}

// rpcGenerate enumerates the combinations available in a hand.
func rpcGenerate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req generateRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Warn("generate: bad payload: %v", err)
		return "", errInvalidPayload
	}

	var combos [][]domain.Card
	if req.Type == "" {
		combos = domain.GenerateAll(req.Hand)
	} else {
		t, err := domain.ParseCombinationType(req.Type)
		if err != nil {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		combos = domain.Generate(req.Hand, t)
	}

	return respond(logger, map[string]any{
		"combinations": combinationsValue(combos),
	})
}

// rpcBotMove asks a persona for its move on the given table.
// A seed makes the answer reproducible for personas that roll dice.
func rpcBotMove(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req botMoveRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Warn("bot_move: bad payload: %v", err)
		return "", errInvalidPayload
	}
	if len(req.Hand) == 0 {
		return "", errEmptyHand
	}
	if req.Seat < 0 || req.Seat >= domain.MaxPlayers {
		return "", runtime.NewError("seat out of range", codeInvalidArgument)
	}

	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}
	strategy, err := bot.New(req.Persona, bot.Context{Rand: rng, Seat: req.Seat})
	if errors.Is(err, bot.ErrUnknownPersona) {
		return "", runtime.NewError(err.Error(), codeNotFound)
	}
	if err != nil {
		return "", errInternal
	}

	turn := bot.Turn{
		Hand:     req.Hand,
		Pile:     req.Pile,
		Index:    req.Turn,
		Seat:     req.Seat,
		AllHands: tableHands(req.AllHands, req.Seat, req.Hand),
	}
	agent := &bot.Agent{Seat: req.Seat, Strategy: strategy}
	move, err := agent.Play(turn)
	if err != nil {
		logger.WithField("persona", strategy.Persona()).Error("bot_move: strategy failed: %v", err)
		return "", errInternal
	}

	return respond(logger, map[string]any{
		"persona": strategy.Persona(),
		"pass":    move.Pass,
		"cards":   cardsValue(move.Cards),
	})
}

// rpcPersonas lists every registered bot persona.
func rpcPersonas(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return respond(logger, map[string]any{
		"personas": personasValue(bot.Personas()),
	})
}

// tableHands fills in the caller's own hand when the table view omits it.
func tableHands(all [][]domain.Card, seat int, hand []domain.Card) [][]domain.Card {
	if seat < len(all) {
		return all
	}
	out := make([][]domain.Card, seat+1)
	copy(out, all)
	out[seat] = hand
	return out
}

func respond(logger runtime.Logger, fields map[string]any) (string, error) {
	out, err := encode(fields)
	if err != nil {
		logger.Error("encode response: %v", err)
		return "", errInternal
	}
	return out, nil
}
