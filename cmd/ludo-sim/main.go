// ludo-sim plays batches of ludo games between automatic move policies and
// reports the results as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/lgbarn/ludo-go/internal/config"
	"github.com/lgbarn/ludo-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("ludo-sim version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile, setFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New("ludo-sim", cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some terminals

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, applies the flags that were
// given on the command line on top of it, and validates the result.
func loadConfig(path string, set map[string]bool) (*config.Config, error) {
	loaded, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	b := config.NewConfigBuilderFrom(loaded)
	applyFlags(b, set)
	cfg := b.Build()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run plays the configured batch and writes to the configured output
// file, or to stdout when none is set.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, stdout io.Writer) error {
	runner, err := NewRunner(cfg, logger)
	if err != nil {
		return err
	}

	w := stdout
	if cfg.Output.File != "" {
		file, err := os.Create(cfg.Output.File)
		if err != nil {
			return fmt.Errorf("create output file %s: %w", cfg.Output.File, err)
		}
		defer file.Close()
		w = file
	}

	_, err = runner.Run(ctx, w)
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: ludo-sim [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays ludo games between automatic move policies and reports the results.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  summary  Aggregate statistics (default)\n")
	fmt.Fprintf(os.Stderr, "  games    One JSON object per game\n")
	fmt.Fprintf(os.Stderr, "  all      Games followed by the summary\n")
	fmt.Fprintf(os.Stderr, "\nEvery option can also be set in the config file or through\n")
	fmt.Fprintf(os.Stderr, "%s_* environment variables, e.g. %s_SIMULATION_GAMES=100.\n", config.EnvPrefix, config.EnvPrefix)
}
