package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"

	"thirteen/internal/domain"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// recordingInitializer captures RPC registrations; every other method panics if called.
type recordingInitializer struct {
	runtime.Initializer
	ids []string
}

func (r *recordingInitializer) RegisterRpc(id string, fn func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error)) error {
	r.ids = append(r.ids, id)
	return nil
}

type rpcFunc func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error)

func call(t *testing.T, fn rpcFunc, req any, out any) error {
	t.Helper()
	payload, ok := req.(string)
	if !ok {
		b, err := json.Marshal(req)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		payload = string(b)
	}
	raw, err := fn(context.Background(), noopLogger{}, nil, nil, payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		t.Fatalf("unmarshal response %q: %v", raw, err)
	}
	return nil
}

func wantCode(t *testing.T, err error, code int) {
	t.Helper()
	var rtErr *runtime.Error
	if !errors.As(err, &rtErr) {
		t.Fatalf("error = %v, want runtime error with code %d", err, code)
	}
	if rtErr.Code != code {
		t.Fatalf("code = %d, want %d (%s)", rtErr.Code, code, rtErr.Message)
	}
}

func TestInitModuleRegistersRPCs(t *testing.T) {
	ini := &recordingInitializer{}
	if err := InitModule(context.Background(), noopLogger{}, nil, nil, ini); err != nil {
		t.Fatalf("InitModule error: %v", err)
	}
	want := []string{RpcClassify, RpcValidatePlay, RpcGenerate, RpcBotMove, RpcPersonas}
	if len(ini.ids) != len(want) {
		t.Fatalf("registered %v, want %v", ini.ids, want)
	}
	for i := range want {
		if ini.ids[i] != want[i] {
			t.Fatalf("registered %v, want %v", ini.ids, want)
		}
	}
}

func TestRpcClassify(t *testing.T) {
	tests := []struct {
		cards    string
		wantType string
		wantBomb bool
	}{
		{cards: "7♠ 7♥", wantType: "pair"},
		{cards: "9♠ 9♣ 9♦ 9♥", wantType: "four_of_a_kind", wantBomb: true},
		{cards: "3♠ 3♥ 4♠ 4♥ 5♠ 5♥", wantType: "consecutive_pairs", wantBomb: true},
		{cards: "3♠ 5♥", wantType: "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			var resp struct {
				Type string `json:"type"`
				Bomb bool   `json:"bomb"`
			}
			if err := call(t, rpcClassify, cardsRequest{Cards: domain.MustParseCards(tt.cards)}, &resp); err != nil {
				t.Fatalf("rpc error: %v", err)
			}
			if resp.Type != tt.wantType || resp.Bomb != tt.wantBomb {
				t.Fatalf("got %+v, want %s bomb=%v", resp, tt.wantType, tt.wantBomb)
			}
		})
	}
}

func TestRpcRejectsBadPayload(t *testing.T) {
	for name, fn := range map[string]rpcFunc{
		"classify": rpcClassify,
		"validate": rpcValidatePlay,
		"generate": rpcGenerate,
		"bot_move": rpcBotMove,
	} {
		t.Run(name, func(t *testing.T) {
			wantCode(t, call(t, fn, `{"cards": [{"rank": "1", "suit": "?"}]`, nil), codeInvalidArgument)
		})
	}
}

func TestRpcValidatePlay(t *testing.T) {
	hand := domain.MustParseCards("3♠ 8♦ 8♥")
	other := domain.MustParseCards("4♠ 5♠")
	tests := []struct {
		name     string
		req      validatePlayRequest
		want     bool
		wantType string
	}{
		{
			name:     "opening with lowest card",
			req:      validatePlayRequest{Selected: hand[:1], Hand: hand, AllHands: [][]domain.Card{hand, other}},
			want:     true,
			wantType: "single",
		},
		{
			name:     "opening without lowest card",
			req:      validatePlayRequest{Selected: hand[1:], Hand: hand, AllHands: [][]domain.Card{hand, other}},
			wantType: "pair",
		},
		{
			name:     "pair over pair",
			req:      validatePlayRequest{Selected: hand[1:], Pile: domain.MustParseCards("6♠ 6♥"), Hand: hand, Turn: 4},
			want:     true,
			wantType: "pair",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp struct {
				Valid bool   `json:"valid"`
				Type  string `json:"type"`
			}
			if err := call(t, rpcValidatePlay, tt.req, &resp); err != nil {
				t.Fatalf("rpc error: %v", err)
			}
			if resp.Valid != tt.want || resp.Type != tt.wantType {
				t.Fatalf("got %+v, want valid=%v type=%s", resp, tt.want, tt.wantType)
			}
		})
	}
}

func TestRpcGenerate(t *testing.T) {
	hand := domain.MustParseCards("3♠ 3♥ 4♦ 5♣")

	var resp struct {
		Combinations [][]domain.Card `json:"combinations"`
	}
	if err := call(t, rpcGenerate, generateRequest{Hand: hand, Type: "pair"}, &resp); err != nil {
		t.Fatalf("rpc error: %v", err)
	}
	if len(resp.Combinations) != 1 || domain.FormatCards(resp.Combinations[0]) != "3♠ 3♥" {
		t.Fatalf("pairs = %v", resp.Combinations)
	}

	if err := call(t, rpcGenerate, generateRequest{Hand: hand}, &resp); err != nil {
		t.Fatalf("rpc error: %v", err)
	}
	if want := len(domain.GenerateAll(hand)); len(resp.Combinations) != want {
		t.Fatalf("got %d combinations, want %d", len(resp.Combinations), want)
	}

	wantCode(t, call(t, rpcGenerate, generateRequest{Hand: hand, Type: "full_house"}, &resp), codeInvalidArgument)
}

func TestRpcBotMove(t *testing.T) {
	seed := int64(7)
	hand := domain.MustParseCards("5♦ 9♠ K♣")

	var resp struct {
		Persona string        `json:"persona"`
		Pass    bool          `json:"pass"`
		Cards   []domain.Card `json:"cards"`
	}
	req := botMoveRequest{Persona: "Lowball", Seed: &seed, Hand: hand, Pile: domain.MustParseCards("4♠"), Turn: 3, Seat: 2}
	if err := call(t, rpcBotMove, req, &resp); err != nil {
		t.Fatalf("rpc error: %v", err)
	}
	if resp.Persona != "lowball" || resp.Pass || domain.FormatCards(resp.Cards) != "5♦" {
		t.Fatalf("got %+v, want lowball playing 5♦", resp)
	}

	req.Persona = "cautious"
	if err := call(t, rpcBotMove, req, &resp); err != nil {
		t.Fatalf("rpc error: %v", err)
	}
	if !resp.Pass || len(resp.Cards) != 0 {
		t.Fatalf("cautious should pass on a live pile, got %+v", resp)
	}

	req.Persona = "grandmaster"
	wantCode(t, call(t, rpcBotMove, req, &resp), codeNotFound)

	req.Persona, req.Hand = "lowball", nil
	wantCode(t, call(t, rpcBotMove, req, &resp), codeInvalidArgument)
}

func TestRpcPersonas(t *testing.T) {
	var resp struct {
		Personas []struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"personas"`
	}
	if err := call(t, rpcPersonas, "", &resp); err != nil {
		t.Fatalf("rpc error: %v", err)
	}
	if len(resp.Personas) != 12 {
		t.Fatalf("got %d personas", len(resp.Personas))
	}
	for _, p := range resp.Personas {
		if p.Key == "" || p.Name == "" {
			t.Fatalf("incomplete persona %+v", p)
		}
	}
}

func TestTableHands(t *testing.T) {
	hand := domain.MustParseCards("3♠")
	got := tableHands(nil, 2, hand)
	if len(got) != 3 || domain.FormatCards(got[2]) != "3♠" {
		t.Fatalf("tableHands = %v", got)
	}
	full := [][]domain.Card{hand, hand}
	if out := tableHands(full, 1, nil); len(out) != 2 {
		t.Fatalf("tableHands should keep a complete table, got %v", out)
	}
}
