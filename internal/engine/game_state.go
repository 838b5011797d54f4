package engine

import "github.com/lgbarn/ludo-go/internal/ludo"

// IsFinished returns true if team is not playing or has brought all four
// tokens home.
func (e *Engine) IsFinished(team ludo.Team) bool {
	if !e.IsActive(team) {
		return true
	}
	return len(e.locked[team]) == 0 && len(e.moving[team]) == 0
}

// IsGameFinished returns true once every active team is finished.
func (e *Engine) IsGameFinished() bool {
	for _, team := range e.active {
		if !e.IsFinished(team) {
			return false
		}
	}
	return true
}

// NumLocked returns the number of tokens in team's pen. The second result
// is false for a team that is not playing.
func (e *Engine) NumLocked(team ludo.Team) (int, bool) {
	ids, ok := e.locked[team]
	if !ok {
		return 0, false
	}
	return len(ids), true
}

// NumMoving returns the number of team's tokens on the track.
func (e *Engine) NumMoving(team ludo.Team) int {
	return len(e.moving[team])
}

// NumFinished returns the number of team's tokens that reached the end.
func (e *Engine) NumFinished(team ludo.Team) int {
	return e.finished[team]
}
