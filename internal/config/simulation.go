package config

import (
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// Move policy names accepted in SimulationConfig.Chooser. An empty name
// selects ChooserFirst.
const (
	ChooserFirst  = "first"
	ChooserRandom = "random"
)

// SimulationConfig holds settings for batches of games.
type SimulationConfig struct {
	// Games is the number of games to play
	Games int `mapstructure:"games"`

	// Workers is the number of games played concurrently
	Workers int `mapstructure:"workers"`

	// Seed derives every game's dice and chooser seeds; 0 picks one at random
	Seed int64 `mapstructure:"seed"`

	// Teams lists the playing teams in turn order
	Teams []string `mapstructure:"teams"`

	// TurnLimit aborts a game after this many turns; 0 means no limit
	TurnLimit int `mapstructure:"turn_limit"`

	// Chooser names the policy that picks moves ("first" or "random")
	Chooser string `mapstructure:"chooser"`

	// CheckInvariants audits the board after every turn
	CheckInvariants bool `mapstructure:"check_invariants"`

	// History keeps every turn in the game results
	History bool `mapstructure:"history"`
}

// NewSimulationConfig creates a SimulationConfig with default values.
func NewSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		Games:     1,
		Workers:   1,
		Teams:     []string{"red", "green", "yellow", "blue"},
		TurnLimit: 10000,
		Chooser:   ChooserRandom,
	}
}

// ParsedTeams converts Teams to ludo teams.
func (c *SimulationConfig) ParsedTeams() ([]ludo.Team, error) {
	return ludo.ParseTeams(c.Teams)
}

// Validate checks the simulation settings for consistency.
func (c *SimulationConfig) Validate() error {
	if c.Games < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "games must be at least 1, got %d", c.Games)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if c.TurnLimit < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "turn_limit must not be negative, got %d", c.TurnLimit)
	}
	teams, err := c.ParsedTeams()
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "no teams")
	}
	switch c.Chooser {
	case "", ChooserFirst, ChooserRandom:
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown chooser %q", c.Chooser)
	}
	return nil
}
