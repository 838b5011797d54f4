// Package engine provides Ludo move validation and board manipulation.
//
// An Engine owns the board grid, a token arena and the per-team locked and
// moving lists. Cells and lists hold token IDs, never tokens, so every token
// has a single home in the arena. All mutation goes through MoveToken.
package engine

import (
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// Engine is the rules engine for one game. It is not safe for concurrent
// use; callers that share an engine must serialize every call.
type Engine struct {
	board  *ludo.Board
	tokens []ludo.Token // arena, indexed by TokenID

	locked   map[ludo.Team][]ludo.TokenID
	moving   map[ludo.Team][]ludo.TokenID
	finished map[ludo.Team]int

	active  []ludo.Team
	current ludo.Team
}

// New creates an engine for the given teams with every token in its pen.
// Duplicate teams are ignored; the first team becomes the current team.
func New(teams ...ludo.Team) (*Engine, error) {
	active := make([]ludo.Team, 0, len(teams))
	seen := make(map[ludo.Team]bool, len(teams))
	for _, t := range teams {
		if !t.Valid() {
			return nil, errors.Wrapf(errors.ErrUnknownTeam, "%d", int(t))
		}
		if !seen[t] {
			seen[t] = true
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return nil, errors.ErrNoActiveTeams
	}

	e := &Engine{
		board:    &ludo.Board{},
		tokens:   make([]ludo.Token, 0, len(active)*ludo.TokensPerTeam),
		locked:   make(map[ludo.Team][]ludo.TokenID, len(active)),
		moving:   make(map[ludo.Team][]ludo.TokenID, len(active)),
		finished: make(map[ludo.Team]int, len(active)),
		active:   active,
		current:  active[0],
	}
	e.setupBoard()
	return e, nil
}

// MustNew is like New but panics if the engine cannot be created.
func MustNew(teams ...ludo.Team) *Engine {
	e, err := New(teams...)
	if err != nil {
		panic("engine: " + err.Error())
	}
	return e
}

// setupBoard marks cell kinds and places the pen tokens.
// Order matters: safe spots override the default track, and the centre
// square is re-marked unusable after the arms are laid down.
func (e *Engine) setupBoard() {
	b := e.board

	// The two 3-wide arms of the cross.
	for i := 6; i <= 8; i++ {
		for j := 0; j < ludo.BoardSize; j++ {
			b.SetKind(ludo.Coord{Row: i, Col: j}, ludo.CellKind{Type: ludo.Default})
			b.SetKind(ludo.Coord{Row: j, Col: i}, ludo.CellKind{Type: ludo.Default})
		}
	}

	// The centre intersection is not part of the track.
	for r := 6; r <= 8; r++ {
		for c := 6; c <= 8; c++ {
			b.SetKind(ludo.Coord{Row: r, Col: c}, ludo.CellKind{Type: ludo.Unusable})
		}
	}

	for _, s := range ludo.SafeSpots {
		b.SetKind(s, ludo.CellKind{Type: ludo.SafeSpot})
	}

	for _, team := range e.active {
		e.locked[team] = make([]ludo.TokenID, 0, ludo.TokensPerTeam)
		e.moving[team] = make([]ludo.TokenID, 0, ludo.TokensPerTeam)
		e.finished[team] = 0

		for _, p := range team.LockedPositions() {
			b.SetKind(p, ludo.CellKind{Type: ludo.LockedPosition, Team: team})

			id := ludo.TokenID(len(e.tokens))
			e.tokens = append(e.tokens, ludo.Token{ID: id, Team: team, Coord: p})
			e.locked[team] = append(e.locked[team], id)
			b.At(p).Tokens = append(b.At(p).Tokens, id)
		}
	}

	// Home lanes are marked for all four teams; the lanes never overlap
	// the pens and an inactive team's lane is simply never entered.
	for _, team := range ludo.AllTeams {
		for _, c := range team.HomeLane() {
			b.SetKind(c, ludo.CellKind{Type: ludo.HomeLane, Team: team})
		}
	}
}

// ActiveTeams returns the playing teams in the order given to New.
func (e *Engine) ActiveTeams() []ludo.Team {
	return append([]ludo.Team(nil), e.active...)
}

// IsActive reports whether team is playing.
func (e *Engine) IsActive(team ludo.Team) bool {
	_, ok := e.locked[team]
	return ok
}

// CurrentTeam returns the team whose turn was last recorded.
func (e *Engine) CurrentTeam() ludo.Team {
	return e.current
}

// SetCurrentTeam records whose turn it is. It is informational only and
// has no effect on legality checks.
func (e *Engine) SetCurrentTeam(team ludo.Team) {
	e.current = team
}

// Token returns a copy of the token with the given ID.
func (e *Engine) Token(id ludo.TokenID) (ludo.Token, bool) {
	if id < 0 || int(id) >= len(e.tokens) {
		return ludo.Token{}, false
	}
	return e.tokens[id], true
}

// CellKind returns the kind of the cell at c.
func (e *Engine) CellKind(c ludo.Coord) ludo.CellKind {
	return e.board.Kind(c)
}

// Occupants returns the tokens standing on c in arrival order.
func (e *Engine) Occupants(c ludo.Coord) []ludo.Token {
	if !c.InBounds() {
		return nil
	}
	ids := e.board.At(c).Tokens
	out := make([]ludo.Token, len(ids))
	for i, id := range ids {
		out[i] = e.tokens[id]
	}
	return out
}
