package output

import (
	"github.com/lgbarn/ludo-go/internal/engine"
	"github.com/lgbarn/ludo-go/internal/game"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// JSONGame represents a played game in JSON format.
type JSONGame struct {
	ID       string         `json:"id"`
	Index    int            `json:"index"`
	Seed     int64          `json:"seed"`
	Teams    []string       `json:"teams"`
	Rankings []string       `json:"rankings"`
	Turns    int            `json:"turns"`
	Complete bool           `json:"complete"`
	Captures map[string]int `json:"captures"`
	Error    string         `json:"error,omitempty"`
	History  []JSONTurn     `json:"history,omitempty"`
	Board    *JSONSnapshot  `json:"board,omitempty"`
}

// JSONTurn represents one turn in JSON format.
type JSONTurn struct {
	Turn     int    `json:"turn"`
	Team     string `json:"team"`
	Roll     int    `json:"roll"`
	Choice   string `json:"choice,omitempty"` // Empty when the team passed
	Result   string `json:"result,omitempty"`
	To       string `json:"to,omitempty"`
	Captured []int  `json:"captured,omitempty"`
	Again    bool   `json:"again,omitempty"`
	Finished bool   `json:"finished,omitempty"`
}

// JSONSnapshot represents a board position in JSON format.
type JSONSnapshot struct {
	Current string      `json:"current"`
	Teams   []JSONTeam  `json:"teams"`
	Tokens  []JSONToken `json:"tokens"`
}

// JSONTeam holds the token counts of one team.
type JSONTeam struct {
	Team     string `json:"team"`
	Locked   int    `json:"locked"`
	Moving   int    `json:"moving"`
	Finished int    `json:"finished"`
}

// JSONToken represents a token and where it stands.
type JSONToken struct {
	ID       int    `json:"id"`
	Team     string `json:"team"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Cell     string `json:"cell"`
	Finished bool   `json:"finished,omitempty"`
}

// GameToJSON converts a game result, and optionally its final board, to
// JSON format.
func GameToJSON(res game.Result, board *engine.Snapshot) *JSONGame {
	jg := &JSONGame{
		ID:       res.ID,
		Teams:    teamNames(res.Teams),
		Rankings: teamNames(res.Rankings),
		Turns:    res.Turns,
		Complete: res.Complete,
		Captures: make(map[string]int, len(res.Captures)),
	}
	for team, n := range res.Captures {
		jg.Captures[team.String()] = n
	}
	for _, rec := range res.History {
		jg.History = append(jg.History, TurnToJSON(rec))
	}
	if board != nil {
		jg.Board = SnapshotToJSON(*board)
	}
	return jg
}

// TurnToJSON converts a turn record to JSON format.
func TurnToJSON(rec game.TurnRecord) JSONTurn {
	jt := JSONTurn{
		Turn:     rec.Turn,
		Team:     rec.Team.String(),
		Roll:     rec.Roll,
		Again:    rec.Again,
		Finished: rec.Finished,
	}
	if rec.Passed() {
		return jt
	}
	jt.Choice = rec.Choice.String()
	jt.Result = rec.Result.Kind.String()
	jt.To = rec.Result.Coord.String()
	for _, id := range rec.Result.Captured {
		jt.Captured = append(jt.Captured, int(id))
	}
	return jt
}

// SnapshotToJSON converts a board snapshot to JSON format. Tokens are
// listed by ID.
func SnapshotToJSON(s engine.Snapshot) *JSONSnapshot {
	js := &JSONSnapshot{
		Current: s.Current.String(),
		Teams:   make([]JSONTeam, 0, len(s.Active)),
		Tokens:  make([]JSONToken, 0, len(s.Tokens)),
	}
	for _, team := range s.Active {
		js.Teams = append(js.Teams, JSONTeam{
			Team:     team.String(),
			Locked:   s.Locked[team],
			Moving:   s.Moving[team],
			Finished: s.Finished[team],
		})
	}
	for _, tok := range s.Tokens {
		js.Tokens = append(js.Tokens, JSONToken{
			ID:       int(tok.ID),
			Team:     tok.Team.String(),
			Row:      tok.Coord.Row,
			Col:      tok.Coord.Col,
			Cell:     cellName(s, tok),
			Finished: tok.Finished(),
		})
	}
	return js
}

// cellName describes the kind of cell a token stands on.
func cellName(s engine.Snapshot, tok ludo.Token) string {
	if tok.Finished() {
		return "End"
	}
	return s.Board.Kind(tok.Coord).Type.String()
}

func teamNames(teams []ludo.Team) []string {
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.String()
	}
	return names
}
