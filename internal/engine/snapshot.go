package engine

import "github.com/lgbarn/ludo-go/internal/ludo"

// Snapshot is a read-only copy of the engine state. Changing a snapshot
// never affects the engine it came from.
type Snapshot struct {
	Board    *ludo.Board
	Tokens   []ludo.Token // indexed by TokenID
	Current  ludo.Team
	Active   []ludo.Team
	Locked   map[ludo.Team]int
	Moving   map[ludo.Team]int
	Finished map[ludo.Team]int
}

// Snapshot captures the current board and token state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Board:    e.board.Copy(),
		Tokens:   append([]ludo.Token(nil), e.tokens...),
		Current:  e.current,
		Active:   e.ActiveTeams(),
		Locked:   make(map[ludo.Team]int, len(e.active)),
		Moving:   make(map[ludo.Team]int, len(e.active)),
		Finished: make(map[ludo.Team]int, len(e.active)),
	}
	for _, team := range e.active {
		s.Locked[team] = len(e.locked[team])
		s.Moving[team] = len(e.moving[team])
		s.Finished[team] = e.finished[team]
	}
	return s
}

// Occupants returns the tokens standing on c.
func (s Snapshot) Occupants(c ludo.Coord) []ludo.Token {
	if !c.InBounds() {
		return nil
	}
	ids := s.Board.At(c).Tokens
	out := make([]ludo.Token, len(ids))
	for i, id := range ids {
		out[i] = s.Tokens[id]
	}
	return out
}

// OccupiedCells returns every coordinate holding at least one token,
// in row-major order.
func (s Snapshot) OccupiedCells() []ludo.Coord {
	var cells []ludo.Coord
	for r := 0; r < ludo.BoardSize; r++ {
		for c := 0; c < ludo.BoardSize; c++ {
			if len(s.Board.Cells[r][c].Tokens) > 0 {
				cells = append(cells, ludo.Coord{Row: r, Col: c})
			}
		}
	}
	return cells
}
