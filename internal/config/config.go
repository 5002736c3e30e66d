package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"thirteen/internal/domain"
)

// EnvPrefix namespaces environment overrides, e.g. THIRTEEN_PLAYERS=3.
const EnvPrefix = "THIRTEEN"

var ErrInvalidConfig = errors.New("invalid game config")

// DefaultPersonas seats the table when the file names no seats.
var DefaultPersonas = []string{"cautious", "aggressive", "opportunist", "strategist"}

type Seat struct {
	Name    string `mapstructure:"name"`
	Persona string `mapstructure:"persona"`
}

type GameConfig struct {
	Players  int   `mapstructure:"players"`
	HandSize int   `mapstructure:"hand_size"`
	Seed     int64 `mapstructure:"seed"` // 0 seeds from the clock
	// ThinkDelay paces AI turns in the simulator; zero plays instantly.
	ThinkDelay time.Duration `mapstructure:"think_delay"`
	MaxTurns   int           `mapstructure:"max_turns"`
	LogLevel   string        `mapstructure:"log_level"`
	Seats      []Seat        `mapstructure:"seats"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("players", domain.MaxPlayers)
	v.SetDefault("hand_size", domain.HandSize)
	v.SetDefault("seed", 0)
	v.SetDefault("think_delay", "0s")
	v.SetDefault("max_turns", 1000)
	v.SetDefault("log_level", "info")
}

// Load reads a YAML or JSON file (format taken from the extension), applies
// defaults and THIRTEEN_* environment overrides, and validates the result.
// An empty path loads defaults and environment only.
func Load(path string) (*GameConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read game config: %w", err)
		}
	}

	var c GameConfig
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if len(c.Seats) == 0 {
		c.Seats = defaultSeats(c.Players)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks table size, dealing limits and seating.
func (c *GameConfig) Validate() error {
	switch {
	case c.Players < 2 || c.Players > domain.MaxPlayers:
		return fmt.Errorf("%w: players must be 2..%d, got %d", ErrInvalidConfig, domain.MaxPlayers, c.Players)
	case c.HandSize < 1 || c.Players*c.HandSize > domain.DeckSize:
		return fmt.Errorf("%w: cannot deal %d hands of %d", ErrInvalidConfig, c.Players, c.HandSize)
	case c.MaxTurns < 1:
		return fmt.Errorf("%w: max_turns must be positive", ErrInvalidConfig)
	case c.ThinkDelay < 0:
		return fmt.Errorf("%w: think_delay must not be negative", ErrInvalidConfig)
	case len(c.Seats) != c.Players:
		return fmt.Errorf("%w: %d seats for %d players", ErrInvalidConfig, len(c.Seats), c.Players)
	}
	for i, s := range c.Seats {
		if strings.TrimSpace(s.Persona) == "" {
			return fmt.Errorf("%w: seat %d has no persona", ErrInvalidConfig, i)
		}
	}
	return nil
}

func defaultSeats(players int) []Seat {
	seats := make([]Seat, 0, players)
	for i := 0; i < players; i++ {
		seats = append(seats, Seat{Persona: DefaultPersonas[i%len(DefaultPersonas)]})
	}
	return seats
}

// LoadGameConfig loads the process-wide game configuration once.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		cfg, loadErr = Load(path)
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, nil until loaded.
func GetGameConfig() *GameConfig {
	return cfg
}
