package output

import (
	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/game"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// Summary aggregates statistics over a batch of games.
type Summary struct {
	Games        int                    `json:"games"`
	Complete     int                    `json:"complete"`
	Failed       int                    `json:"failed"`
	Wins         map[string]int         `json:"wins"`
	Placements   map[string][]int       `json:"placements"` // Count of 1st, 2nd, ... finishes
	Captures     map[string]int         `json:"captures"`
	TotalTurns   int                    `json:"totalTurns"`
	AverageTurns float64                `json:"averageTurns"`
	MinTurns     int                    `json:"minTurns"`
	MaxTurns     int                    `json:"maxTurns"`
	Errors       map[string]int         `json:"errors,omitempty"`
	teams        map[ludo.Team]struct{} // Teams seen so far
}

// NewSummary creates an empty summary.
func NewSummary() *Summary {
	return &Summary{
		Wins:       make(map[string]int),
		Placements: make(map[string][]int),
		Captures:   make(map[string]int),
		teams:      make(map[ludo.Team]struct{}),
	}
}

// Add records one game. A game that ended with err counts as failed, and
// its partial result still contributes turns and captures. Errors are
// tallied by their innermost cause.
func (s *Summary) Add(res game.Result, err error) {
	s.Games++
	for _, team := range res.Teams {
		if _, ok := s.teams[team]; !ok {
			s.teams[team] = struct{}{}
			s.Wins[team.String()] = 0
			s.Captures[team.String()] = 0
			s.Placements[team.String()] = make([]int, ludo.NumTeams)
		}
	}

	if err != nil {
		s.Failed++
		if s.Errors == nil {
			s.Errors = make(map[string]int)
		}
		s.Errors[rootCause(err).Error()]++
	} else if res.Complete {
		s.Complete++
	}

	for place, team := range res.Rankings {
		if place == 0 {
			s.Wins[team.String()]++
		}
		s.Placements[team.String()][place]++
	}
	for team, n := range res.Captures {
		s.Captures[team.String()] += n
	}

	if s.Games == 1 || res.Turns < s.MinTurns {
		s.MinTurns = res.Turns
	}
	if res.Turns > s.MaxTurns {
		s.MaxTurns = res.Turns
	}
	s.TotalTurns += res.Turns
	s.AverageTurns = float64(s.TotalTurns) / float64(s.Games)
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
