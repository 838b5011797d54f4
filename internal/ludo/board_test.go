package ludo

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	lerrors "github.com/lgbarn/ludo-go/internal/errors"
)

func TestTeamString(t *testing.T) {
	tests := []struct {
		team Team
		want string
	}{
		{Red, "Red"},
		{Green, "Green"},
		{Yellow, "Yellow"},
		{Blue, "Blue"},
		{Team(9), "Team(9)"},
	}
	for _, tt := range tests {
		if got := tt.team.String(); got != tt.want {
			t.Errorf("Team(%d).String() = %q; want %q", int(tt.team), got, tt.want)
		}
	}
}

func TestParseTeam(t *testing.T) {
	tests := []struct {
		in      string
		want    Team
		wantErr bool
	}{
		{"red", Red, false},
		{"GREEN", Green, false},
		{" Yellow ", Yellow, false},
		{"blue", Blue, false},
		{"purple", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTeam(tt.in)
			if tt.wantErr {
				if !errors.Is(err, lerrors.ErrUnknownTeam) {
					t.Errorf("ParseTeam(%q) error = %v; want ErrUnknownTeam", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTeam(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTeam(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTeams(t *testing.T) {
	got, err := ParseTeams([]string{"blue", "red"})
	if err != nil {
		t.Fatalf("ParseTeams() error = %v", err)
	}
	if diff := cmp.Diff([]Team{Blue, Red}, got); diff != "" {
		t.Errorf("ParseTeams() mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseTeams([]string{"red", "Red"}); !errors.Is(err, lerrors.ErrInvalidConfig) {
		t.Errorf("ParseTeams(duplicate) error = %v; want ErrInvalidConfig", err)
	}
}

func TestTeamGeometry(t *testing.T) {
	for _, team := range AllTeams {
		t.Run(team.String(), func(t *testing.T) {
			if !IsSafeSpot(team.StartCoord()) {
				t.Errorf("StartCoord %v is not a safe spot", team.StartCoord())
			}
			end := team.EndCoord()
			if end.Row < 6 || end.Row > 8 || end.Col < 6 || end.Col > 8 {
				t.Errorf("EndCoord %v is outside the centre square", end)
			}

			lane := team.HomeLane()
			if lane[0] != team.HomeLaneTurn().To {
				t.Errorf("HomeLane()[0] = %v; want %v", lane[0], team.HomeLaneTurn().To)
			}
			last := lane[len(lane)-1]
			if d := abs(last.Row-end.Row) + abs(last.Col-end.Col); d != 1 {
				t.Errorf("HomeLane() last cell %v is %d steps from end %v; want 1", last, d, end)
			}

			for _, p := range team.LockedPositions() {
				if !team.IsLockedPosition(p) {
					t.Errorf("IsLockedPosition(%v) = false", p)
				}
			}
			if team.IsLockedPosition(team.StartCoord()) {
				t.Error("start coordinate reported as locked position")
			}
		})
	}
}

func TestInvalidTeamGeometryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("StartCoord of invalid team did not panic")
		}
	}()
	_ = Team(7).StartCoord()
}

func TestCoord(t *testing.T) {
	if got := (Coord{13, 6}).String(); got != "(13,6)" {
		t.Errorf("String() = %q; want (13,6)", got)
	}
	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{0, 0}, true},
		{Coord{14, 14}, true},
		{Coord{15, 7}, false},
		{Coord{7, -1}, false},
	}
	for _, tt := range tests {
		if got := tt.c.InBounds(); got != tt.want {
			t.Errorf("%v.InBounds() = %v; want %v", tt.c, got, tt.want)
		}
	}
}

func TestCellKind(t *testing.T) {
	lane := CellKind{Type: HomeLane, Team: Green}
	if lane.String() != "HomeLane(Green)" {
		t.Errorf("String() = %q", lane.String())
	}
	if !lane.AllowsTeam(Green) || lane.AllowsTeam(Red) {
		t.Error("HomeLane(Green) should allow only Green")
	}
	safe := CellKind{Type: SafeSpot}
	if safe.String() != "SafeSpot" || !safe.AllowsTeam(Blue) {
		t.Errorf("SafeSpot kind = %v, AllowsTeam(Blue) = %v", safe, safe.AllowsTeam(Blue))
	}
	if (CellKind{}).AllowsTeam(Red) {
		t.Error("zero CellKind (Unusable) should allow no team")
	}
}

func TestBoardCopy(t *testing.T) {
	b := &Board{}
	c := Coord{6, 3}
	b.SetKind(c, CellKind{Type: Default})
	b.At(c).Tokens = []TokenID{1, 2}

	cp := b.Copy()
	cp.At(c).Tokens[0] = 9

	if b.At(c).Tokens[0] != 1 {
		t.Error("Copy() shares occupant slices with the original")
	}
	if cp.Kind(c).Type != Default {
		t.Errorf("copied kind = %v; want Default", cp.Kind(c))
	}
	if got := b.Kind(Coord{-1, 3}); got.Type != Unusable {
		t.Errorf("Kind(off grid) = %v; want Unusable", got)
	}
}

func TestTokenFinished(t *testing.T) {
	tok := Token{ID: 0, Team: Red, Coord: Coord{8, 7}}
	if !tok.Finished() {
		t.Error("token at Red end should be finished")
	}
	tok.Coord = Coord{9, 7}
	if tok.Finished() {
		t.Error("token one step before end should not be finished")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
