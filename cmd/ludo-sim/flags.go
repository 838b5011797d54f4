// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/ludo-go/internal/config"
)

var (
	// General
	configFile = flag.String("config", "", "Config file (YAML, JSON or TOML)")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")

	// Simulation
	games           = flag.Int("n", 1, "Number of games to play")
	workers         = flag.Int("j", 1, "Number of games played in parallel")
	seed            = flag.Int64("seed", 0, "Master seed (0 = random)")
	teams           = flag.String("teams", "red,green,yellow,blue", "Comma-separated teams in turn order")
	turnLimit       = flag.Int("turns", 10000, "Abort a game after N turns (0 = no limit)")
	chooser         = flag.String("chooser", "random", "Move policy: first, random")
	checkInvariants = flag.Bool("check", false, "Audit the board after every turn")
	history         = flag.Bool("history", false, "Include every turn in game output")

	// Output
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "summary", "Output: games, summary, all")
	pretty       = flag.Bool("pretty", false, "Indent JSON output")
	snapshots    = flag.Bool("board", false, "Include the final board of each game")

	// Logging
	logLevel = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile  = flag.String("log-file", "", "Also write JSON logs to this file")
	logDev   = flag.Bool("log-dev", false, "Development logging with stack traces")
)

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags overrides the config being built with every flag in set.
// Flags not given keep the value from the config file or its defaults.
func applyFlags(b *config.ConfigBuilder, set map[string]bool) {
	applySimulationFlags(b, set)
	applyOutputFlags(b, set)
	applyLogFlags(b, set)
}

// applySimulationFlags configures the game batch.
func applySimulationFlags(b *config.ConfigBuilder, set map[string]bool) {
	if set["n"] {
		b.WithGames(*games)
	}
	if set["j"] {
		b.WithWorkers(*workers)
	}
	if set["seed"] {
		b.WithSeed(*seed)
	}
	if set["teams"] {
		b.WithTeams(splitList(*teams)...)
	}
	if set["turns"] {
		b.WithTurnLimit(*turnLimit)
	}
	if set["chooser"] {
		b.WithChooser(*chooser)
	}
	if set["check"] {
		b.WithInvariantChecks(*checkInvariants)
	}
	if set["history"] {
		b.WithHistory(*history)
	}
}

// applyOutputFlags configures the output format and destination.
func applyOutputFlags(b *config.ConfigBuilder, set map[string]bool) {
	if set["o"] {
		b.WithOutputFile(*outputFile)
	}
	if set["format"] {
		b.WithOutputFormat(config.OutputFormat(strings.ToLower(*outputFormat)))
	}
	if set["pretty"] {
		b.WithPretty(*pretty)
	}
	if set["board"] {
		b.WithSnapshots(*snapshots)
	}
}

// applyLogFlags configures logging.
func applyLogFlags(b *config.ConfigBuilder, set map[string]bool) {
	if set["log-level"] {
		b.WithLogLevel(*logLevel)
	}
	if set["log-file"] {
		b.WithLogFile(*logFile)
	}
	if set["log-dev"] {
		b.WithLogDev(*logDev)
	}
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
