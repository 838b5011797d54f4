// Package config provides configuration for the ludo simulator.
package config

import (
	"github.com/lgbarn/ludo-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Log        LogConfig        `mapstructure:"log"`
	Output     OutputConfig     `mapstructure:"output"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Simulation: *NewSimulationConfig(),
		Log:        *NewLogConfig(),
		Output:     *NewOutputConfig(),
	}
}

// Validate checks every section and returns the first problem found,
// wrapped around ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return errors.Wrap(err, "simulation")
	}
	if err := c.Log.Validate(); err != nil {
		return errors.Wrap(err, "log")
	}
	if err := c.Output.Validate(); err != nil {
		return errors.Wrap(err, "output")
	}
	return nil
}
