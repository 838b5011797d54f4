package engine

import (
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// IsMovePossible returns the coordinate a token of team would reach by
// moving dist steps from start, and whether that move is legal.
//
// It does not check that a token of team actually stands on start, so it
// can answer "what if" questions. It never mutates the engine.
//
// A start coordinate off the grid or on an unusable cell is a caller bug
// and panics.
func (e *Engine) IsMovePossible(team ludo.Team, start ludo.Coord, dist int) (ludo.Coord, bool) {
	kind := e.board.Kind(start)
	if kind.Type == ludo.Unusable {
		errors.Violation("IsMovePossible", "start %v is not a track cell", start)
	}

	if team.IsLockedPosition(start) {
		if dist == ludo.UnlockRoll {
			return team.StartCoord(), true
		}
		return ludo.Coord{}, false
	}

	// Another team's pen or lane is never a starting point for team.
	if !kind.AllowsTeam(team) {
		return ludo.Coord{}, false
	}
	if dist < ludo.MinRoll || dist > ludo.MaxRoll {
		return ludo.Coord{}, false
	}

	end := team.EndCoord()
	c := start
	for i := 0; i < dist; i++ {
		if c == end {
			// Finished tokens go no further.
			return ludo.Coord{}, false
		}
		c = NextCoord(team, c)
		if !e.canEnter(team, c) {
			return ludo.Coord{}, false
		}
	}
	return c, true
}

// canEnter reports whether a token of team may pass through or land on c.
func (e *Engine) canEnter(team ludo.Team, c ludo.Coord) bool {
	if !c.InBounds() {
		return false
	}
	if c == team.EndCoord() {
		return true
	}
	return e.board.Kind(c).AllowsTeam(team)
}

// MovableTokens returns the distinct coordinates of team's moving tokens
// that can legally travel dist steps, in the order the tokens entered play.
// Unlocking is not included; use NumLocked to see whether it is possible.
func (e *Engine) MovableTokens(team ludo.Team, dist int) []ludo.Coord {
	ids := e.moving[team]
	if len(ids) == 0 {
		return nil
	}

	var coords []ludo.Coord
	seen := make(map[ludo.Coord]bool, len(ids))
	for _, id := range ids {
		c := e.tokens[id].Coord
		if seen[c] {
			continue
		}
		seen[c] = true
		if _, ok := e.IsMovePossible(team, c, dist); ok {
			coords = append(coords, c)
		}
	}
	return coords
}

// CanUnlock reports whether team could unlock a token with roll.
func (e *Engine) CanUnlock(team ludo.Team, roll int) bool {
	return roll == ludo.UnlockRoll && len(e.locked[team]) > 0
}
