package engine

import (
	"testing"

	"github.com/lgbarn/ludo-go/internal/ludo"
)

// placeToken takes team's first locked token out of its pen and stands it
// on at as a moving token, bypassing the move rules.
func placeToken(t *testing.T, e *Engine, team ludo.Team, at ludo.Coord) ludo.TokenID {
	t.Helper()
	ids := e.locked[team]
	if len(ids) == 0 {
		t.Fatalf("placeToken: %v has no locked token", team)
	}
	id := ids[0]
	e.removeFromCell(e.tokens[id].Coord, id)
	e.locked[team] = removeID(ids, id)
	e.moving[team] = append(e.moving[team], id)
	e.tokens[id].Coord = at
	e.addToCell(at, id)
	return id
}

// mustValidate fails the test if the engine bookkeeping is inconsistent.
func mustValidate(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

// walk returns the coordinate n steps from c along team's path.
func walk(team ludo.Team, c ludo.Coord, n int) ludo.Coord {
	for i := 0; i < n; i++ {
		c = NextCoord(team, c)
	}
	return c
}
