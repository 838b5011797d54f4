package ludo

// Static geometry for each team. A team enters the track at its start
// coordinate, leaves the outer track at its home lane turn and finishes
// on its end coordinate, which lies inside the unusable centre square.

// StartCoord returns the cell a token enters when it is unlocked.
func (t Team) StartCoord() Coord {
	switch t {
	case Red:
		return Coord{13, 6}
	case Green:
		return Coord{6, 1}
	case Yellow:
		return Coord{1, 8}
	case Blue:
		return Coord{8, 13}
	}
	panic("ludo: StartCoord of invalid " + t.String())
}

// EndCoord returns the cell a token occupies exactly when it has finished.
func (t Team) EndCoord() Coord {
	switch t {
	case Red:
		return Coord{8, 7}
	case Green:
		return Coord{7, 6}
	case Yellow:
		return Coord{6, 7}
	case Blue:
		return Coord{7, 8}
	}
	panic("ludo: EndCoord of invalid " + t.String())
}

// HomeLaneTurn returns where the team's travel leaves the shared track
// for its private lane.
func (t Team) HomeLaneTurn() Turn {
	switch t {
	case Red:
		return Turn{From: Coord{14, 7}, To: Coord{13, 7}}
	case Green:
		return Turn{From: Coord{7, 0}, To: Coord{7, 1}}
	case Yellow:
		return Turn{From: Coord{0, 7}, To: Coord{1, 7}}
	case Blue:
		return Turn{From: Coord{7, 14}, To: Coord{7, 13}}
	}
	panic("ludo: HomeLaneTurn of invalid " + t.String())
}

// LockedPositions returns the four pen coordinates in unlock order.
func (t Team) LockedPositions() [TokensPerTeam]Coord {
	switch t {
	case Red:
		return [TokensPerTeam]Coord{{10, 1}, {10, 4}, {13, 1}, {13, 4}}
	case Green:
		return [TokensPerTeam]Coord{{1, 1}, {1, 4}, {4, 1}, {4, 4}}
	case Yellow:
		return [TokensPerTeam]Coord{{1, 10}, {1, 13}, {4, 10}, {4, 13}}
	case Blue:
		return [TokensPerTeam]Coord{{10, 10}, {10, 13}, {13, 10}, {13, 13}}
	}
	panic("ludo: LockedPositions of invalid " + t.String())
}

// IsLockedPosition reports whether c is one of the team's pen coordinates.
func (t Team) IsLockedPosition(c Coord) bool {
	for _, p := range t.LockedPositions() {
		if p == c {
			return true
		}
	}
	return false
}

// HomeLane returns the five private lane cells, ordered from the
// home lane turn towards the centre.
func (t Team) HomeLane() [5]Coord {
	var lane [5]Coord
	c := t.HomeLaneTurn().To
	end := t.EndCoord()
	dr, dc := sign(end.Row-c.Row), sign(end.Col-c.Col)
	for i := range lane {
		lane[i] = c
		c = Coord{c.Row + dr, c.Col + dc}
	}
	return lane
}

// SafeSpots are the eight capture-immune shared cells.
var SafeSpots = [8]Coord{
	{1, 8}, {2, 6}, {6, 1}, {6, 12},
	{8, 2}, {8, 13}, {12, 8}, {13, 6},
}

// IsSafeSpot reports whether c is one of the eight safe spots.
func IsSafeSpot(c Coord) bool {
	for _, s := range SafeSpots {
		if s == c {
			return true
		}
	}
	return false
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
