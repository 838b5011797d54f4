// Package ludo provides core Ludo board types.
package ludo

import (
	"fmt"
	"strings"

	"github.com/lgbarn/ludo-go/internal/errors"
)

// Team represents one of the four colours.
type Team int

const (
	Red Team = iota
	Green
	Yellow
	Blue
	NumTeams
)

// AllTeams lists the teams in seating order.
var AllTeams = []Team{Red, Green, Yellow, Blue}

// String returns the string representation of a team.
func (t Team) String() string {
	names := []string{"Red", "Green", "Yellow", "Blue"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("Team(%d)", int(t))
}

// Valid reports whether t is one of the four colours.
func (t Team) Valid() bool {
	return t >= Red && t < NumTeams
}

// ParseTeam converts a case-insensitive colour name to a Team.
func ParseTeam(s string) (Team, error) {
	for _, t := range AllTeams {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrUnknownTeam, "%q", s)
}

// ParseTeams converts a list of colour names, rejecting duplicates.
func ParseTeams(names []string) ([]Team, error) {
	teams := make([]Team, 0, len(names))
	seen := make(map[Team]bool, len(names))
	for _, name := range names {
		t, err := ParseTeam(name)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "team %s listed twice", t)
		}
		seen[t] = true
		teams = append(teams, t)
	}
	return teams, nil
}

// Constants for board dimensions and dice rules.
const (
	BoardSize     = 15
	TokensPerTeam = 4
	MinRoll       = 1
	MaxRoll       = 6
	UnlockRoll    = 6

	// PathLength is the number of steps from a team's start coordinate
	// to its end coordinate.
	PathLength = 56
)

// Coord is a (row, column) position on the board grid.
type Coord struct {
	Row int
	Col int
}

// String returns the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds reports whether the coordinate lies inside the 15x15 grid.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Turn is a (from, to) pair where a path bends.
type Turn struct {
	From Coord
	To   Coord
}
