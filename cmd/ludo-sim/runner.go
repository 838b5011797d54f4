// runner.go - Playing a batch of games and writing the results
package main

import (
	"context"
	"io"
	"math/rand"

	"go.uber.org/zap"

	"github.com/lgbarn/ludo-go/internal/config"
	"github.com/lgbarn/ludo-go/internal/dice"
	"github.com/lgbarn/ludo-go/internal/game"
	"github.com/lgbarn/ludo-go/internal/ludo"
	"github.com/lgbarn/ludo-go/internal/output"
	"github.com/lgbarn/ludo-go/internal/worker"
)

// Runner plays a batch of games described by a validated config.
type Runner struct {
	cfg    *config.Config
	teams  []ludo.Team
	logger *zap.Logger
}

// NewRunner creates a runner. cfg must already be validated.
func NewRunner(cfg *config.Config, logger *zap.Logger) (*Runner, error) {
	teams, err := cfg.Simulation.ParsedTeams()
	if err != nil {
		return nil, err
	}
	if _, err := game.NewChooser(cfg.Simulation.Chooser, 0); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, teams: teams, logger: logger}, nil
}

// WorkItems derives one seed per game from the master seed, so a batch
// is reproducible whatever the number of workers.
func (r *Runner) WorkItems(master int64) []worker.WorkItem {
	rng := rand.New(rand.NewSource(master))
	items := make([]worker.WorkItem, r.cfg.Simulation.Games)
	for i := range items {
		items[i] = worker.WorkItem{Index: i, Seed: rng.Int63()}
	}
	return items
}

// Run plays every game and writes the output to w. Failed games are
// counted in the summary; only write errors and cancellation are
// returned.
func (r *Runner) Run(ctx context.Context, w io.Writer) (*output.Summary, error) {
	master := r.cfg.Simulation.Seed
	if master == 0 {
		var err error
		if master, err = dice.NewSeed(); err != nil {
			return nil, err
		}
	}
	r.logger.Info("simulation started",
		zap.Int("games", r.cfg.Simulation.Games),
		zap.Int("workers", r.cfg.Simulation.Workers),
		zap.Int64("seed", master),
		zap.Stringers("teams", r.teams))

	results := worker.RunAll(ctx, r.WorkItems(master), r.playGame,
		worker.WithWorkers(r.cfg.Simulation.Workers),
		worker.WithBufferSize(2*r.cfg.Simulation.Workers))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := output.NewSummary()
	for _, res := range results {
		summary.Add(res.Result, res.Error)
	}

	if err := r.write(w, results, summary); err != nil {
		return nil, err
	}
	r.logger.Info("simulation finished",
		zap.Int("games", summary.Games),
		zap.Int("complete", summary.Complete),
		zap.Int("failed", summary.Failed),
		zap.Float64("average_turns", summary.AverageTurns))
	return summary, nil
}

// playGame plays one work item. It is called concurrently by the pool.
func (r *Runner) playGame(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	sim := r.cfg.Simulation
	log := r.logger.With(zap.Int("index", item.Index), zap.Int64("seed", item.Seed))

	choose, err := game.NewChooser(sim.Chooser, item.Seed+1)
	if err != nil {
		return worker.ProcessResult{Index: item.Index, Seed: item.Seed, Error: err}
	}
	g, err := game.New(r.teams,
		game.WithRoller(dice.NewSeeded(item.Seed)),
		game.WithChooser(choose),
		game.WithLogger(log),
		game.WithTurnLimit(sim.TurnLimit),
		game.WithInvariantChecks(sim.CheckInvariants),
		game.WithHistory(sim.History))
	if err != nil {
		return worker.ProcessResult{Index: item.Index, Seed: item.Seed, Error: err}
	}

	res, err := g.Run(ctx)
	if err != nil {
		log.Warn("game failed", zap.String("game", g.ID()), zap.Error(err))
	}
	pr := worker.ProcessResult{Index: item.Index, Seed: item.Seed, Result: res, Error: err}
	if r.cfg.Output.Snapshots {
		snap := g.Snapshot()
		pr.Board = &snap
	}
	return pr
}

// write emits games and the summary in the configured format.
func (r *Runner) write(w io.Writer, results []worker.ProcessResult, summary *output.Summary) error {
	out := r.cfg.Output
	if !out.WantGames() {
		return output.WriteSummary(w, summary, out.Pretty)
	}

	var gw *output.JSONWriter
	if out.Pretty {
		gw = output.NewJSONWriter(w, true)
	} else {
		gw = output.NewJSONWriterSingle(w)
	}
	for _, res := range results {
		jg := output.GameToJSON(res.Result, res.Board)
		jg.Index = res.Index
		jg.Seed = res.Seed
		if res.Error != nil {
			jg.Error = res.Error.Error()
		}
		if err := gw.WriteGame(jg); err != nil {
			return err
		}
	}
	if out.WantSummary() {
		gw.SetSummary(summary)
	}
	return gw.Close()
}
