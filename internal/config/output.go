package config

import (
	"github.com/lgbarn/ludo-go/internal/errors"
)

// OutputFormat selects what the simulator writes.
type OutputFormat string

const (
	FormatGames   OutputFormat = "games"   // One JSON object per game
	FormatSummary OutputFormat = "summary" // Aggregate statistics only
	FormatAll     OutputFormat = "all"     // Games followed by the summary
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects games, summary or both
	Format OutputFormat `mapstructure:"format"`

	// File is the output path; empty writes to stdout
	File string `mapstructure:"file"`

	// Pretty indents the JSON output
	Pretty bool `mapstructure:"pretty"`

	// Snapshots includes the final board of every game
	Snapshots bool `mapstructure:"snapshots"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: FormatSummary,
	}
}

// WantGames reports whether per-game records are written.
func (c *OutputConfig) WantGames() bool {
	return c.Format == FormatGames || c.Format == FormatAll
}

// WantSummary reports whether the summary is written.
func (c *OutputConfig) WantSummary() bool {
	return c.Format == FormatSummary || c.Format == FormatAll
}

// Validate checks the output settings.
func (c *OutputConfig) Validate() error {
	switch c.Format {
	case FormatGames, FormatSummary, FormatAll:
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", c.Format)
}
