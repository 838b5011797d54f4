// Package game drives a ludo engine through whole games: it rolls the die,
// offers the legal choices to a Chooser, applies the pick and decides who
// plays next. It performs no terminal I/O.
package game

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/ludo-go/internal/dice"
	"github.com/lgbarn/ludo-go/internal/engine"
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// TurnRecord describes one consumed turn.
type TurnRecord struct {
	Turn     int // 1-based
	Team     ludo.Team
	Roll     int
	Choices  int     // Number of choices offered
	Choice   *Choice // nil when the team had to pass
	Result   engine.MoveResult
	Again    bool // Same team plays next
	Finished bool // Team brought its last token home on this turn
}

// Passed reports whether the team had no legal choice.
func (r TurnRecord) Passed() bool {
	return r.Choice == nil
}

// Result summarizes a game.
type Result struct {
	ID       string
	Teams    []ludo.Team
	Rankings []ludo.Team // In finishing order
	Turns    int
	Captures map[ludo.Team]int // Tokens captured by each team
	Complete bool              // Every team finished
	History  []TurnRecord      // Only when recording is enabled
}

// Game is a single game in progress. It is not safe for concurrent use.
type Game struct {
	id        string
	eng       *engine.Engine
	teams     []ludo.Team
	roller    dice.Roller
	chooser   Chooser
	logger    *zap.Logger
	turnLimit int
	validate  bool
	record    bool

	next     int  // Index into teams of the team to play
	pending  *int // Roll carried over after a rejected choice
	turns    int
	rankings []ludo.Team
	captures map[ludo.Team]int
	history  []TurnRecord
}

// Option configures a Game.
type Option func(*Game)

// WithID sets the game ID instead of a random UUID.
func WithID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.id = id
		}
	}
}

// WithRoller sets the die. The default is a roller seeded from crypto/rand.
func WithRoller(r dice.Roller) Option {
	return func(g *Game) {
		if r != nil {
			g.roller = r
		}
	}
}

// WithChooser sets the policy that picks among legal choices.
// The default is FirstChooser.
func WithChooser(c Chooser) Option {
	return func(g *Game) {
		if c != nil {
			g.chooser = c
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTurnLimit stops Run after n turns. Zero means no limit.
func WithTurnLimit(n int) Option {
	return func(g *Game) {
		if n >= 0 {
			g.turnLimit = n
		}
	}
}

// WithInvariantChecks makes every turn audit the engine bookkeeping.
func WithInvariantChecks(on bool) Option {
	return func(g *Game) {
		g.validate = on
	}
}

// WithHistory keeps a TurnRecord for every turn in the Result.
func WithHistory(on bool) Option {
	return func(g *Game) {
		g.record = on
	}
}

// New creates a game for teams, who play in the given order.
func New(teams []ludo.Team, opts ...Option) (*Game, error) {
	eng, err := engine.New(teams...)
	if err != nil {
		return nil, err
	}

	g := &Game{
		eng:      eng,
		teams:    eng.ActiveTeams(),
		chooser:  FirstChooser{},
		logger:   zap.NewNop(),
		captures: make(map[ludo.Team]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.id == "" {
		g.id = uuid.NewString()
	}
	if g.roller == nil {
		seed, err := dice.NewSeed()
		if err != nil {
			return nil, err
		}
		g.roller = dice.NewSeeded(seed)
	}
	g.logger = g.logger.With(zap.String("game", g.id))
	eng.SetCurrentTeam(g.teams[0])
	return g, nil
}

// ID returns the game ID.
func (g *Game) ID() string { return g.id }

// Turns returns the number of turns played.
func (g *Game) Turns() int { return g.turns }

// Rankings returns the teams that have finished, first finisher first.
func (g *Game) Rankings() []ludo.Team {
	return append([]ludo.Team(nil), g.rankings...)
}

// Over reports whether every team has finished.
func (g *Game) Over() bool { return g.eng.IsGameFinished() }

// Snapshot returns a copy of the current board state.
func (g *Game) Snapshot() engine.Snapshot { return g.eng.Snapshot() }

// NextTeam returns the team that plays the next turn.
func (g *Game) NextTeam() ludo.Team {
	g.skipFinished()
	return g.teams[g.next]
}

// Choices lists the legal choices for team and roll: unlocking first when
// the roll is a six and a token is locked, then one move per occupied
// coordinate in the order the engine reports them.
func (g *Game) Choices(team ludo.Team, roll int) []Choice {
	var choices []Choice
	if g.eng.CanUnlock(team, roll) {
		choices = append(choices, Choice{Kind: Unlock})
	}
	for _, c := range g.eng.MovableTokens(team, roll) {
		choices = append(choices, Choice{Kind: Move, From: c})
	}
	return choices
}

// PlayTurn plays one turn for the next team.
//
// A roll of six, an unlock, a capture or bringing a token home gives the
// same team another turn, unless that team has just finished. If the
// chooser returns an index out of range, PlayTurn returns ErrIllegalMove
// and the turn is not consumed; the next call replays the same roll.
func (g *Game) PlayTurn() (TurnRecord, error) {
	if g.Over() {
		return TurnRecord{}, errors.ErrGameOver
	}

	team := g.NextTeam()
	g.eng.SetCurrentTeam(team)

	roll, err := g.roll()
	if err != nil {
		return TurnRecord{}, err
	}

	rec := TurnRecord{Turn: g.turns + 1, Team: team, Roll: roll, Again: roll == ludo.UnlockRoll}
	choices := g.Choices(team, roll)
	rec.Choices = len(choices)

	if len(choices) > 0 {
		i := g.chooser.Choose(team, roll, choices)
		if i < 0 || i >= len(choices) {
			g.pending = &roll
			return TurnRecord{}, &errors.MoveError{
				Err:      errors.ErrIllegalMove,
				Op:       "choose",
				Team:     team.String(),
				Distance: roll,
			}
		}
		choice := choices[i]
		rec.Choice = &choice

		res, err := g.apply(team, roll, choice)
		if err != nil {
			return TurnRecord{}, err
		}
		rec.Result = res
		switch res.Kind {
		case engine.Unlocked, engine.Attacked, engine.Finished:
			rec.Again = true
		}
		g.captures[team] += len(res.Captured)
	}

	if g.validate {
		if err := g.eng.Validate(); err != nil {
			return TurnRecord{}, errors.Wrapf(err, "after turn %d", rec.Turn)
		}
	}

	if g.eng.IsFinished(team) && !g.ranked(team) {
		g.rankings = append(g.rankings, team)
		rec.Finished = true
		g.logger.Info("team finished",
			zap.Stringer("team", team),
			zap.Int("place", len(g.rankings)),
			zap.Int("turn", rec.Turn))
	}
	if !rec.Again || rec.Finished {
		g.next = (g.next + 1) % len(g.teams)
	}

	g.turns++
	if g.record {
		g.history = append(g.history, rec)
	}
	g.logTurn(rec)
	return rec, nil
}

// Run plays turns until every team has finished. It stops early with
// ErrTurnLimit when the turn limit is reached, or with the context error
// when ctx is done. The partial Result is returned in every case.
func (g *Game) Run(ctx context.Context) (Result, error) {
	g.logger.Debug("game started", zap.Stringers("teams", g.teams))
	for !g.Over() {
		if err := ctx.Err(); err != nil {
			return g.Result(), err
		}
		if g.turnLimit > 0 && g.turns >= g.turnLimit {
			g.logger.Warn("turn limit reached", zap.Int("turns", g.turns))
			return g.Result(), errors.Wrapf(errors.ErrTurnLimit, "game %s after %d turns", g.id, g.turns)
		}
		if _, err := g.PlayTurn(); err != nil {
			return g.Result(), err
		}
	}
	g.logger.Info("game over",
		zap.Int("turns", g.turns),
		zap.Stringers("rankings", g.rankings))
	return g.Result(), nil
}

// Result returns the game summary so far.
func (g *Game) Result() Result {
	captures := make(map[ludo.Team]int, len(g.teams))
	for _, team := range g.teams {
		captures[team] = g.captures[team]
	}
	r := Result{
		ID:       g.id,
		Teams:    append([]ludo.Team(nil), g.teams...),
		Rankings: g.Rankings(),
		Turns:    g.turns,
		Captures: captures,
		Complete: g.Over(),
	}
	if g.record {
		r.History = append([]TurnRecord(nil), g.history...)
	}
	return r
}

func (g *Game) roll() (int, error) {
	if g.pending != nil {
		roll := *g.pending
		g.pending = nil
		return roll, nil
	}
	roll := g.roller.Roll()
	if err := dice.Validate(roll); err != nil {
		return 0, err
	}
	return roll, nil
}

func (g *Game) apply(team ludo.Team, roll int, choice Choice) (engine.MoveResult, error) {
	if choice.Kind == Unlock {
		if err := g.eng.UnlockToken(team); err != nil {
			return engine.MoveResult{}, err
		}
		// The unlocked token is the last one added to the start cell.
		occ := g.eng.Occupants(team.StartCoord())
		return engine.MoveResult{Kind: engine.Unlocked, Token: occ[len(occ)-1].ID, Coord: team.StartCoord()}, nil
	}
	return g.eng.MoveToken(team, choice.From, roll)
}

// skipFinished advances the cursor past teams that are done. The game
// must not be over.
func (g *Game) skipFinished() {
	for i := 0; i < len(g.teams) && g.eng.IsFinished(g.teams[g.next]); i++ {
		g.next = (g.next + 1) % len(g.teams)
	}
}

func (g *Game) ranked(team ludo.Team) bool {
	for _, t := range g.rankings {
		if t == team {
			return true
		}
	}
	return false
}

func (g *Game) logTurn(rec TurnRecord) {
	if ce := g.logger.Check(zap.DebugLevel, "turn"); ce != nil {
		fields := []zap.Field{
			zap.Int("turn", rec.Turn),
			zap.Stringer("team", rec.Team),
			zap.Int("roll", rec.Roll),
			zap.Int("choices", rec.Choices),
			zap.Bool("again", rec.Again),
		}
		if rec.Choice != nil {
			fields = append(fields,
				zap.Stringer("choice", *rec.Choice),
				zap.Stringer("result", rec.Result.Kind),
				zap.Stringer("to", rec.Result.Coord))
		}
		if len(rec.Result.Captured) > 0 {
			fields = append(fields, zap.Int("captured", len(rec.Result.Captured)))
		}
		ce.Write(fields...)
	}
}
