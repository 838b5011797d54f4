package engine

import (
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// cornerTurns are the fixed bends of the track, mapping a cell to the
// cell that follows it. The first eight go round the outer corners of the
// cross, the last four cut the inner diagonals next to the centre.
var cornerTurns = map[ludo.Coord]ludo.Coord{
	{Row: 0, Col: 6}:  {Row: 0, Col: 7},
	{Row: 0, Col: 8}:  {Row: 1, Col: 8},
	{Row: 6, Col: 0}:  {Row: 6, Col: 1},
	{Row: 6, Col: 14}: {Row: 7, Col: 14},
	{Row: 8, Col: 0}:  {Row: 7, Col: 0},
	{Row: 8, Col: 14}: {Row: 8, Col: 13},
	{Row: 14, Col: 6}: {Row: 13, Col: 6},
	{Row: 14, Col: 8}: {Row: 14, Col: 7},

	{Row: 9, Col: 6}: {Row: 8, Col: 5},
	{Row: 6, Col: 5}: {Row: 5, Col: 6},
	{Row: 8, Col: 9}: {Row: 9, Col: 8},
	{Row: 5, Col: 8}: {Row: 6, Col: 9},
}

// NextCoord returns the coordinate a token of team reaches after one step
// from c. It only knows geometry: the result may be off the grid or on an
// unusable cell, and callers must reject such results.
//
// The track runs clockwise. Row 6 runs east, row 8 west, column 6 north
// and column 8 south. Row and column 7 are the outer ends of the arms and
// the home lanes, which run towards the centre.
func NextCoord(team ludo.Team, c ludo.Coord) ludo.Coord {
	if next, ok := cornerTurns[c]; ok {
		return next
	}

	if turn := team.HomeLaneTurn(); c == turn.From {
		return turn.To
	}

	switch c.Row {
	case 6:
		return ludo.Coord{Row: c.Row, Col: c.Col + 1}
	case 7:
		switch {
		case c.Col == 0:
			return ludo.Coord{Row: c.Row - 1, Col: c.Col}
		case c.Col < 6:
			return ludo.Coord{Row: c.Row, Col: c.Col + 1}
		case c.Col == 14:
			return ludo.Coord{Row: c.Row + 1, Col: c.Col}
		case c.Col > 8:
			return ludo.Coord{Row: c.Row, Col: c.Col - 1}
		}
	case 8:
		return ludo.Coord{Row: c.Row, Col: c.Col - 1}
	}

	switch c.Col {
	case 6:
		return ludo.Coord{Row: c.Row - 1, Col: c.Col}
	case 7:
		switch {
		case c.Row == 0:
			return ludo.Coord{Row: c.Row, Col: c.Col + 1}
		case c.Row < 6:
			return ludo.Coord{Row: c.Row + 1, Col: c.Col}
		case c.Row == 14:
			return ludo.Coord{Row: c.Row, Col: c.Col - 1}
		case c.Row > 8:
			return ludo.Coord{Row: c.Row - 1, Col: c.Col}
		}
	case 8:
		return ludo.Coord{Row: c.Row + 1, Col: c.Col}
	}

	errors.Violation("NextCoord", "%v matches no track rule for %v", c, team)
	return c
}

// Path returns the coordinates a token of team visits walking dist steps
// from c, not including c itself. It applies no legality checks.
func Path(team ludo.Team, c ludo.Coord, dist int) []ludo.Coord {
	path := make([]ludo.Coord, 0, dist)
	for i := 0; i < dist; i++ {
		c = NextCoord(team, c)
		path = append(path, c)
	}
	return path
}
