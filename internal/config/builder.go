package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// NewConfigBuilderFrom creates a ConfigBuilder that modifies cfg in place.
func NewConfigBuilderFrom(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGames sets the number of games to play.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Simulation.Games = n
	return b
}

// WithWorkers sets the number of concurrent games.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Simulation.Workers = n
	return b
}

// WithSeed sets the master seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Simulation.Seed = seed
	return b
}

// WithTeams sets the playing teams in turn order.
func (b *ConfigBuilder) WithTeams(teams ...string) *ConfigBuilder {
	b.cfg.Simulation.Teams = teams
	return b
}

// WithTurnLimit sets the per-game turn limit.
func (b *ConfigBuilder) WithTurnLimit(n int) *ConfigBuilder {
	b.cfg.Simulation.TurnLimit = n
	return b
}

// WithChooser sets the move policy.
func (b *ConfigBuilder) WithChooser(name string) *ConfigBuilder {
	b.cfg.Simulation.Chooser = name
	return b
}

// WithInvariantChecks enables the per-turn board audit.
func (b *ConfigBuilder) WithInvariantChecks(enabled bool) *ConfigBuilder {
	b.cfg.Simulation.CheckInvariants = enabled
	return b
}

// WithHistory records every turn in the results.
func (b *ConfigBuilder) WithHistory(enabled bool) *ConfigBuilder {
	b.cfg.Simulation.History = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFile sets the rotated JSON log file.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.Log.File = path
	return b
}

// WithLogDev enables development logging.
func (b *ConfigBuilder) WithLogDev(enabled bool) *ConfigBuilder {
	b.cfg.Log.Dev = enabled
	return b
}

// WithOutputFile sets the output file; empty means stdout.
func (b *ConfigBuilder) WithOutputFile(path string) *ConfigBuilder {
	b.cfg.Output.File = path
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithPretty enables indented JSON.
func (b *ConfigBuilder) WithPretty(enabled bool) *ConfigBuilder {
	b.cfg.Output.Pretty = enabled
	return b
}

// WithSnapshots includes final boards in the output.
func (b *ConfigBuilder) WithSnapshots(enabled bool) *ConfigBuilder {
	b.cfg.Output.Snapshots = enabled
	return b
}
