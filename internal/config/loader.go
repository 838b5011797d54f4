package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/ludo-go/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. LUDO_SIMULATION_GAMES.
const EnvPrefix = "LUDO"

// Load reads configuration from path, which may be YAML, JSON or TOML as
// told by its extension. An empty path loads the defaults. Environment
// variables override both; nested keys join with an underscore.
// The result is not validated, so that callers can apply further
// overrides before calling Validate.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "decode config: %v", err)
	}
	return cfg, nil
}

// setDefaults registers every key so that AutomaticEnv can override keys
// that are absent from the file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("simulation.games", d.Simulation.Games)
	v.SetDefault("simulation.workers", d.Simulation.Workers)
	v.SetDefault("simulation.seed", d.Simulation.Seed)
	v.SetDefault("simulation.teams", d.Simulation.Teams)
	v.SetDefault("simulation.turn_limit", d.Simulation.TurnLimit)
	v.SetDefault("simulation.chooser", d.Simulation.Chooser)
	v.SetDefault("simulation.check_invariants", d.Simulation.CheckInvariants)
	v.SetDefault("simulation.history", d.Simulation.History)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("log.dev", d.Log.Dev)

	v.SetDefault("output.format", string(d.Output.Format))
	v.SetDefault("output.file", d.Output.File)
	v.SetDefault("output.pretty", d.Output.Pretty)
	v.SetDefault("output.snapshots", d.Output.Snapshots)
}
