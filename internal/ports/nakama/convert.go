package nakama

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"thirteen/internal/bot"
	"thirteen/internal/domain"
)

func cardsValue(cards []domain.Card) []any {
	out := make([]any, 0, len(cards))
	for _, c := range cards {
		out = append(out, map[string]any{
			"rank":  c.Rank.String(),
			"suit":  c.Suit.String(),
			"value": c.Value(),
		})
	}
	return out
}

func combinationsValue(combos [][]domain.Card) []any {
	out := make([]any, 0, len(combos))
	for _, combo := range combos {
		out = append(out, cardsValue(combo))
	}
	return out
}

func personasValue(infos []bot.PersonaInfo) []any {
	out := make([]any, 0, len(infos))
	for _, p := range infos {
		out = append(out, map[string]any{
			"key":         p.Key,
			"name":        p.Name,
			"description": p.Description,
		})
	}
	return out
}

// encode renders a response through structpb so every RPC answers with the same JSON encoder.
func encode(fields map[string]any) (string, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return "", err
	}
	b, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
