package engine

import (
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// Validate checks the token bookkeeping and returns the first
// inconsistency found, wrapping ErrInconsistentState, or nil. It is
// intended for tests and for drivers that want to audit the engine after
// each move.
//
// It checks that every unfinished token is listed on exactly one cell, the
// cell matching its coordinate, and in exactly one of its team's locked or
// moving lists; that finished tokens are on their end coordinate and in no
// list; that a team's locked, moving and finished counts sum to four; and
// that no cell holds tokens of two teams unless it is a safe spot.
func (e *Engine) Validate() error {
	cellCount := make(map[ludo.TokenID]int, len(e.tokens))
	for r := range e.board.Cells {
		for c := range e.board.Cells[r] {
			cell := &e.board.Cells[r][c]
			coord := ludo.Coord{Row: r, Col: c}
			teams := make(map[ludo.Team]bool)
			for _, id := range cell.Tokens {
				tok := e.tokens[id]
				if tok.Coord != coord {
					return errors.Wrapf(errors.ErrInconsistentState, "token %d listed on %v but at %v", id, coord, tok.Coord)
				}
				if !cell.Kind.AllowsTeam(tok.Team) {
					return errors.Wrapf(errors.ErrInconsistentState, "token %d of %v on %v cell %v", id, tok.Team, cell.Kind, coord)
				}
				cellCount[id]++
				teams[tok.Team] = true
			}
			if len(teams) > 1 && cell.Kind.Type != ludo.SafeSpot {
				return errors.Wrapf(errors.ErrInconsistentState, "cell %v holds %d teams", coord, len(teams))
			}
		}
	}

	listCount := make(map[ludo.TokenID]int, len(e.tokens))
	for _, team := range e.active {
		for _, id := range e.locked[team] {
			if !team.IsLockedPosition(e.tokens[id].Coord) {
				return errors.Wrapf(errors.ErrInconsistentState, "locked token %d of %v at %v", id, team, e.tokens[id].Coord)
			}
			listCount[id]++
		}
		for _, id := range e.moving[team] {
			listCount[id]++
		}
		total := len(e.locked[team]) + len(e.moving[team]) + e.finished[team]
		if total != ludo.TokensPerTeam {
			return errors.Wrapf(errors.ErrInconsistentState, "%v accounts for %d tokens, want %d", team, total, ludo.TokensPerTeam)
		}
	}

	finished := make(map[ludo.Team]int)
	for _, tok := range e.tokens {
		if tok.Finished() {
			finished[tok.Team]++
			if cellCount[tok.ID] != 0 || listCount[tok.ID] != 0 {
				return errors.Wrapf(errors.ErrInconsistentState, "finished token %d of %v is still indexed", tok.ID, tok.Team)
			}
			continue
		}
		if cellCount[tok.ID] != 1 {
			return errors.Wrapf(errors.ErrInconsistentState, "token %d of %v is on %d cells", tok.ID, tok.Team, cellCount[tok.ID])
		}
		if listCount[tok.ID] != 1 {
			return errors.Wrapf(errors.ErrInconsistentState, "token %d of %v is in %d lists", tok.ID, tok.Team, listCount[tok.ID])
		}
	}
	for _, team := range e.active {
		if finished[team] != e.finished[team] {
			return errors.Wrapf(errors.ErrInconsistentState, "%v finished count %d, tokens at end %d", team, e.finished[team], finished[team])
		}
	}
	return nil
}
