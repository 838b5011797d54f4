package engine

import (
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// MoveKind categorizes the outcome of a successful move.
type MoveKind int

const (
	NormalMove MoveKind = iota + 1 // Token advanced along the track
	Attacked                       // Token landed on and captured opponents
	Unlocked                       // Token left its pen for the start cell
	Finished                       // Token reached its end cell
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case NormalMove:
		return "NormalMove"
	case Attacked:
		return "Attacked"
	case Unlocked:
		return "Unlocked"
	case Finished:
		return "Finished"
	}
	return "Unknown"
}

// MoveResult describes a completed move.
type MoveResult struct {
	Kind     MoveKind
	Token    ludo.TokenID
	Coord    ludo.Coord     // Destination of the moved token
	Captured []ludo.TokenID // Tokens sent back to their pens (Attacked only)
}

// capture is a planned return of one token to a pen slot.
type capture struct {
	id  ludo.TokenID
	pen ludo.Coord
}

// MoveToken moves the first token of team found on start by dist steps.
//
// It returns a *errors.MoveError wrapping ErrIllegalMove when the path is
// not allowed, or ErrTokenNotFound when team has no token on start. A
// failed call leaves the engine untouched. On success every index (cells,
// locked and moving lists, finished counts) is updated before returning.
func (e *Engine) MoveToken(team ludo.Team, start ludo.Coord, dist int) (MoveResult, error) {
	final, ok := e.IsMovePossible(team, start, dist)
	if !ok {
		return MoveResult{}, moveError(errors.ErrIllegalMove, "move", team, start, dist)
	}

	id, ok := e.findToken(team, start)
	if !ok {
		return MoveResult{}, moveError(errors.ErrTokenNotFound, "move", team, start, dist)
	}

	// Classify and plan everything before the first write.
	unlocking := final == team.StartCoord()
	finishing := final == team.EndCoord()
	var captures []capture
	if !unlocking && !finishing && e.board.Kind(final).Type != ludo.SafeSpot {
		captures = e.planCaptures(team, final)
	}

	if unlocking && !containsID(e.locked[team], id) {
		errors.Violation("MoveToken", "token %d of %v reached its start cell from outside the pen", id, team)
	}
	if !unlocking && !containsID(e.moving[team], id) {
		errors.Violation("MoveToken", "token %d of %v is on the track but not moving", id, team)
	}

	e.tokens[id].Coord = final
	e.removeFromCell(start, id)

	switch {
	case unlocking:
		e.locked[team] = removeID(e.locked[team], id)
		e.moving[team] = append(e.moving[team], id)
		e.addToCell(final, id)
		return MoveResult{Kind: Unlocked, Token: id, Coord: final}, nil

	case finishing:
		e.moving[team] = removeID(e.moving[team], id)
		e.finished[team]++
		return MoveResult{Kind: Finished, Token: id, Coord: final}, nil
	}

	e.addToCell(final, id)
	if len(captures) == 0 {
		return MoveResult{Kind: NormalMove, Token: id, Coord: final}, nil
	}

	captured := make([]ludo.TokenID, 0, len(captures))
	for _, c := range captures {
		victim := e.tokens[c.id].Team
		e.removeFromCell(final, c.id)
		e.tokens[c.id].Coord = c.pen
		e.moving[victim] = removeID(e.moving[victim], c.id)
		e.locked[victim] = append(e.locked[victim], c.id)
		e.addToCell(c.pen, c.id)
		captured = append(captured, c.id)
	}
	return MoveResult{Kind: Attacked, Token: id, Coord: final, Captured: captured}, nil
}

// UnlockToken moves the token on team's first occupied pen cell to the
// team's start cell. It returns ErrNoLockedToken if the pen is empty.
func (e *Engine) UnlockToken(team ludo.Team) error {
	if !e.IsActive(team) {
		return moveError(errors.ErrNoLockedToken, "unlock", team, ludo.Coord{}, 0)
	}

	for _, p := range team.LockedPositions() {
		if len(e.board.At(p).Tokens) == 0 {
			continue
		}
		res, err := e.MoveToken(team, p, ludo.UnlockRoll)
		if err != nil {
			errors.Violation("UnlockToken", "unlock of %v from %v failed: %v", team, p, err)
		}
		if res.Kind != Unlocked {
			errors.Violation("UnlockToken", "unlock of %v from %v gave %v", team, p, res.Kind)
		}
		return nil
	}
	return moveError(errors.ErrNoLockedToken, "unlock", team, ludo.Coord{}, 0)
}

// planCaptures lists every token of another team on dest together with
// the pen slot it will be returned to. Slots are the first empty pen cells
// in LockedPositions order, so several captured tokens of one team fill
// distinct slots.
func (e *Engine) planCaptures(team ludo.Team, dest ludo.Coord) []capture {
	var plan []capture
	taken := make(map[ludo.Coord]bool)
	for _, id := range e.board.At(dest).Tokens {
		victim := e.tokens[id].Team
		if victim == team {
			continue
		}
		pen, ok := e.emptyPen(victim, taken)
		if !ok {
			errors.Violation("MoveToken", "no empty pen slot for captured %v token %d", victim, id)
		}
		taken[pen] = true
		plan = append(plan, capture{id: id, pen: pen})
	}
	return plan
}

// emptyPen returns the first pen cell of team that is empty and not in taken.
func (e *Engine) emptyPen(team ludo.Team, taken map[ludo.Coord]bool) (ludo.Coord, bool) {
	for _, p := range team.LockedPositions() {
		if len(e.board.At(p).Tokens) == 0 && !taken[p] {
			return p, true
		}
	}
	return ludo.Coord{}, false
}

// findToken returns the first token of team on c.
func (e *Engine) findToken(team ludo.Team, c ludo.Coord) (ludo.TokenID, bool) {
	for _, id := range e.board.At(c).Tokens {
		if e.tokens[id].Team == team {
			return id, true
		}
	}
	return 0, false
}

func (e *Engine) addToCell(c ludo.Coord, id ludo.TokenID) {
	cell := e.board.At(c)
	cell.Tokens = append(cell.Tokens, id)
}

func (e *Engine) removeFromCell(c ludo.Coord, id ludo.TokenID) {
	cell := e.board.At(c)
	cell.Tokens = removeID(cell.Tokens, id)
}

// removeID returns ids without the first occurrence of id, preserving order.
func removeID(ids []ludo.TokenID, id ludo.TokenID) []ludo.TokenID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func containsID(ids []ludo.TokenID, id ludo.TokenID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func moveError(err error, op string, team ludo.Team, from ludo.Coord, dist int) error {
	me := &errors.MoveError{Err: err, Op: op, Team: team.String(), Distance: dist}
	if op != "unlock" {
		me.From = from.String()
	}
	return me
}
