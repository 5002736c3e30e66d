package bot

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Seat     int
	Strategy Strategy
}

// Play asks the agent's strategy for a move. A strategy error is reported
// alongside a pass so callers can keep the game moving.
func (a *Agent) Play(t Turn) (Move, error) {
	cards, err := a.Strategy.TakeTurn(t)
	if err != nil {
		return Move{Pass: true}, err
	}
	if len(cards) == 0 {
		return Move{Pass: true}, nil
	}
	return Move{Cards: cards}, nil
}

// Persona returns the label of the agent's strategy.
func (a *Agent) Persona() string {
	return a.Strategy.Persona()
}
