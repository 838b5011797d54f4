package engine

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
	"github.com/lgbarn/ludo-go/internal/testutil"
)

// Fresh one-team engine: rolling a 6 unlocks the first pen token onto
// the start cell.
func TestUnlockToken_FreshEngine(t *testing.T) {
	e := MustNew(ludo.Red)

	testutil.AssertNoError(t, e.UnlockToken(ludo.Red))

	start := ludo.Coord{Row: 13, Col: 6}
	occ := e.Occupants(start)
	if len(occ) != 1 || occ[0].Team != ludo.Red {
		t.Fatalf("Occupants(%v) = %+v; want one Red token", start, occ)
	}
	testutil.AssertEqual(t, occ[0].Coord, start)
	testutil.AssertEqual(t, len(e.Occupants(ludo.Coord{Row: 10, Col: 1})), 0, "first pen slot emptied")

	n, _ := e.NumLocked(ludo.Red)
	testutil.AssertEqual(t, n, 3)
	testutil.AssertEqual(t, e.NumMoving(ludo.Red), 1)
	mustValidate(t, e)
}

func TestUnlockToken_PenOrder(t *testing.T) {
	e := MustNew(ludo.Blue)
	for _, want := range ludo.Blue.LockedPositions() {
		if len(e.Occupants(want)) != 1 {
			t.Fatalf("pen %v empty before its turn", want)
		}
		testutil.AssertNoError(t, e.UnlockToken(ludo.Blue))
		if len(e.Occupants(want)) != 0 {
			t.Errorf("unlock did not take the token from %v", want)
		}
	}
	testutil.AssertEqual(t, len(e.Occupants(ludo.Blue.StartCoord())), 4, "stacked on start")

	err := e.UnlockToken(ludo.Blue)
	testutil.AssertErrorIs(t, err, errors.ErrNoLockedToken)
	var me *errors.MoveError
	if !errors.As(err, &me) || me.Op != "unlock" || me.Team != "Blue" {
		t.Errorf("UnlockToken() error = %#v; want unlock MoveError for Blue", err)
	}
	mustValidate(t, e)
}

func TestUnlockToken_InactiveTeam(t *testing.T) {
	e := MustNew(ludo.Red)
	testutil.AssertErrorIs(t, e.UnlockToken(ludo.Green), errors.ErrNoLockedToken)
}

// Red on its start cell rolls 4 with no other team on the board.
func TestMoveToken_NormalMove(t *testing.T) {
	e := MustNew(ludo.Red)
	testutil.AssertNoError(t, e.UnlockToken(ludo.Red))

	start := ludo.Red.StartCoord()
	res, err := e.MoveToken(ludo.Red, start, 4)
	testutil.AssertNoError(t, err)

	want := walk(ludo.Red, start, 4)
	testutil.AssertEqual(t, res.Kind, NormalMove)
	testutil.AssertEqual(t, res.Coord, want)
	testutil.AssertEqual(t, want, ludo.Coord{Row: 9, Col: 6})
	testutil.AssertEqual(t, len(e.Occupants(start)), 0)
	testutil.AssertEqual(t, len(e.Occupants(want)), 1)
	mustValidate(t, e)
}

// Red lands on a lone Green token on a plain track cell.
func TestMoveToken_Capture(t *testing.T) {
	e := MustNew(ludo.Red, ludo.Green)
	red := placeToken(t, e, ludo.Red, ludo.Red.StartCoord())
	dest := ludo.Coord{Row: 9, Col: 6}
	green := placeToken(t, e, ludo.Green, dest)

	res, err := e.MoveToken(ludo.Red, ludo.Red.StartCoord(), 4)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, res, MoveResult{Kind: Attacked, Token: red, Coord: dest, Captured: []ludo.TokenID{green}})

	tok, _ := e.Token(green)
	firstPen := ludo.Green.LockedPositions()[0]
	testutil.AssertEqual(t, tok.Coord, firstPen, "captured token returns to first empty pen slot")
	n, _ := e.NumLocked(ludo.Green)
	testutil.AssertEqual(t, n, 4)
	testutil.AssertEqual(t, e.NumMoving(ludo.Green), 0)

	occ := e.Occupants(dest)
	if len(occ) != 1 || occ[0].ID != red {
		t.Errorf("Occupants(%v) = %+v; want only the Red token", dest, occ)
	}
	mustValidate(t, e)
}

// Red lands on a Green token standing on a safe spot.
func TestMoveToken_SafeSpotNoCapture(t *testing.T) {
	e := MustNew(ludo.Red, ludo.Green)
	from := ludo.Coord{Row: 9, Col: 6}
	safe := ludo.Coord{Row: 8, Col: 2}
	red := placeToken(t, e, ludo.Red, from)
	green := placeToken(t, e, ludo.Green, safe)

	res, err := e.MoveToken(ludo.Red, from, 4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Kind, NormalMove)
	testutil.AssertEqual(t, res.Coord, safe)
	testutil.AssertNil(t, res.Captured)

	var ids []ludo.TokenID
	for _, tok := range e.Occupants(safe) {
		ids = append(ids, tok.ID)
	}
	testutil.AssertEqual(t, ids, []ludo.TokenID{green, red}, "both tokens share the safe spot")
	mustValidate(t, e)
}

func TestMoveToken_SafeSpotsNeverCapture(t *testing.T) {
	for _, safe := range ludo.SafeSpots {
		e := MustNew(ludo.Red, ludo.Blue)
		// Find a Red track cell one step before the safe spot.
		var from ludo.Coord
		found := false
		for _, c := range Path(ludo.Red, ludo.Red.StartCoord(), 50) {
			if NextCoord(ludo.Red, c) == safe {
				from, found = c, true
				break
			}
		}
		if !found {
			// Red's own start cell; it is only reached by unlocking.
			continue
		}
		placeToken(t, e, ludo.Red, from)
		placeToken(t, e, ludo.Blue, safe)

		res, err := e.MoveToken(ludo.Red, from, 1)
		if err != nil {
			t.Fatalf("MoveToken onto %v: %v", safe, err)
		}
		if res.Kind == Attacked {
			t.Errorf("MoveToken onto safe spot %v captured %v", safe, res.Captured)
		}
		mustValidate(t, e)
	}
}

// Red walks down its lane onto the end cell.
func TestMoveToken_Finish(t *testing.T) {
	e := MustNew(ludo.Red)
	from := ludo.Coord{Row: 11, Col: 7}
	id := placeToken(t, e, ludo.Red, from)

	res, err := e.MoveToken(ludo.Red, from, 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res, MoveResult{Kind: Finished, Token: id, Coord: ludo.Coord{Row: 8, Col: 7}})

	snap := e.Snapshot()
	for _, c := range snap.OccupiedCells() {
		for _, tok := range snap.Occupants(c) {
			if tok.ID == id {
				t.Errorf("finished token still listed on %v", c)
			}
		}
	}
	testutil.AssertEqual(t, e.NumMoving(ludo.Red), 0)
	testutil.AssertEqual(t, e.NumFinished(ludo.Red), 1)
	tok, _ := e.Token(id)
	testutil.AssertTrue(t, tok.Finished(), "finished token rests on its end coordinate")
	mustValidate(t, e)
}

func TestMoveToken_Errors(t *testing.T) {
	e := MustNew(ludo.Red, ludo.Green)
	placeToken(t, e, ludo.Red, ludo.Coord{Row: 10, Col: 6})

	tests := []struct {
		name  string
		team  ludo.Team
		start ludo.Coord
		dist  int
		want  error
	}{
		{"locked token needs six", ludo.Red, ludo.Coord{Row: 10, Col: 4}, 3, errors.ErrIllegalMove},
		{"overshoot", ludo.Red, ludo.Coord{Row: 12, Col: 7}, 6, errors.ErrIllegalMove},
		{"no token there", ludo.Red, ludo.Coord{Row: 6, Col: 3}, 2, errors.ErrTokenNotFound},
		{"wrong team's token", ludo.Green, ludo.Coord{Row: 10, Col: 6}, 2, errors.ErrTokenNotFound},
		{"emptied pen slot", ludo.Red, ludo.Coord{Row: 10, Col: 1}, 6, errors.ErrTokenNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := e.Snapshot()
			_, err := e.MoveToken(tt.team, tt.start, tt.dist)
			testutil.AssertErrorIs(t, err, tt.want)

			var me *errors.MoveError
			if !errors.As(err, &me) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, me.From, tt.start.String())

			if diff := cmp.Diff(before, e.Snapshot()); diff != "" {
				t.Errorf("failed move changed state (-before +after):\n%s", diff)
			}
		})
	}
}

// A landing removes every token of every other team on the cell, each to
// a distinct pen slot.
func TestMoveToken_MultiCapture(t *testing.T) {
	e := MustNew(ludo.Red, ludo.Green, ludo.Blue)
	dest := ludo.Coord{Row: 8, Col: 4}
	red := placeToken(t, e, ludo.Red, ludo.Coord{Row: 10, Col: 6})
	g1 := placeToken(t, e, ludo.Green, dest)
	g2 := placeToken(t, e, ludo.Green, dest)
	b1 := placeToken(t, e, ludo.Blue, dest)

	res, err := e.MoveToken(ludo.Red, ludo.Coord{Row: 10, Col: 6}, 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Kind, Attacked)
	testutil.AssertEqual(t, res.Captured, []ludo.TokenID{g1, g2, b1})

	greenPens := ludo.Green.LockedPositions()
	tg1, _ := e.Token(g1)
	tg2, _ := e.Token(g2)
	tb1, _ := e.Token(b1)
	testutil.AssertEqual(t, tg1.Coord, greenPens[0])
	testutil.AssertEqual(t, tg2.Coord, greenPens[1])
	testutil.AssertEqual(t, tb1.Coord, ludo.Blue.LockedPositions()[0])

	occ := e.Occupants(dest)
	if len(occ) != 1 || occ[0].ID != red {
		t.Errorf("Occupants(%v) = %+v; want only the Red token", dest, occ)
	}
	mustValidate(t, e)
}

func TestMoveToken_StackedSameTeam(t *testing.T) {
	e := MustNew(ludo.Yellow)
	testutil.AssertNoError(t, e.UnlockToken(ludo.Yellow))
	testutil.AssertNoError(t, e.UnlockToken(ludo.Yellow))

	res, err := e.MoveToken(ludo.Yellow, ludo.Yellow.StartCoord(), 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Kind, NormalMove)
	testutil.AssertEqual(t, len(e.Occupants(ludo.Yellow.StartCoord())), 1)

	res, err = e.MoveToken(ludo.Yellow, ludo.Yellow.StartCoord(), 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Kind, NormalMove, "same-team stacking is not a capture")
	testutil.AssertEqual(t, len(e.Occupants(res.Coord)), 2)
	mustValidate(t, e)
}

func TestGameFinished(t *testing.T) {
	e := MustNew(ludo.Red, ludo.Green)
	testutil.AssertFalse(t, e.IsGameFinished())
	testutil.AssertTrue(t, e.IsFinished(ludo.Blue), "inactive team counts as finished")
	if _, ok := e.NumLocked(ludo.Blue); ok {
		t.Error("NumLocked(inactive Blue) ok = true; want false")
	}

	redLane := ludo.Coord{Row: 9, Col: 7}
	for i := 0; i < ludo.TokensPerTeam; i++ {
		placeToken(t, e, ludo.Red, redLane)
	}
	for i := 0; i < ludo.TokensPerTeam; i++ {
		testutil.AssertFalse(t, e.IsFinished(ludo.Red))
		res, err := e.MoveToken(ludo.Red, redLane, 1)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, res.Kind, Finished)
	}
	testutil.AssertTrue(t, e.IsFinished(ludo.Red))
	testutil.AssertFalse(t, e.IsGameFinished(), "Green still has locked tokens")

	greenLane := ludo.Coord{Row: 7, Col: 5}
	for i := 0; i < ludo.TokensPerTeam; i++ {
		placeToken(t, e, ludo.Green, greenLane)
	}
	for i := 0; i < ludo.TokensPerTeam; i++ {
		testutil.AssertFalse(t, e.IsGameFinished())
		_, err := e.MoveToken(ludo.Green, greenLane, 1)
		testutil.AssertNoError(t, err)
	}
	testutil.AssertTrue(t, e.IsGameFinished(), "last token of last team finished")
	testutil.AssertEqual(t, e.NumFinished(ludo.Green), 4)
	mustValidate(t, e)
}

// TestRandomPlay drives whole games with seeded random choices and audits
// the bookkeeping after every move.
func TestRandomPlay(t *testing.T) {
	teamSets := [][]ludo.Team{
		{ludo.Red},
		{ludo.Red, ludo.Yellow},
		ludo.AllTeams,
	}
	for seed := int64(1); seed <= 5; seed++ {
		for _, teams := range teamSets {
			rng := rand.New(rand.NewSource(seed))
			e := MustNew(teams...)

			for turn := 0; !e.IsGameFinished(); turn++ {
				if turn > 200000 {
					t.Fatalf("seed %d teams %v: game did not finish", seed, teams)
				}
				team := teams[turn%len(teams)]
				if e.IsFinished(team) {
					continue
				}
				roll := rng.Intn(6) + 1
				movable := e.MovableTokens(team, roll)
				canUnlock := e.CanUnlock(team, roll)

				switch {
				case canUnlock && (len(movable) == 0 || rng.Intn(2) == 0):
					if err := e.UnlockToken(team); err != nil {
						t.Fatalf("UnlockToken: %v", err)
					}
				case len(movable) > 0:
					from := movable[rng.Intn(len(movable))]
					if _, err := e.MoveToken(team, from, roll); err != nil {
						t.Fatalf("MoveToken(%v, %v, %d) for a listed token: %v", team, from, roll, err)
					}
				}
				if err := e.Validate(); err != nil {
					t.Fatalf("seed %d turn %d: %v", seed, turn, err)
				}
			}
			for _, team := range teams {
				testutil.AssertEqual(t, e.NumFinished(team), ludo.TokensPerTeam)
			}
		}
	}
}
