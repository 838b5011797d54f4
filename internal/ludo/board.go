package ludo

// CellType categorizes the squares of the board.
type CellType int

const (
	Unusable       CellType = iota // Not part of the playable track
	Default                        // Ordinary path square
	SafeSpot                       // Capture-immune shared square
	LockedPosition                 // One of a team's four pen squares
	HomeLane                       // A team's private finishing stretch
)

// String returns the string representation of a cell type.
func (t CellType) String() string {
	names := []string{"Unusable", "Default", "SafeSpot", "LockedPosition", "HomeLane"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// CellKind is a cell type plus, for team-exclusive types, the owning team.
type CellKind struct {
	Type CellType
	Team Team // Only meaningful for LockedPosition and HomeLane
}

// String returns e.g. "HomeLane(Red)" or "SafeSpot".
func (k CellKind) String() string {
	if k.TeamExclusive() {
		return k.Type.String() + "(" + k.Team.String() + ")"
	}
	return k.Type.String()
}

// TeamExclusive reports whether only one team may ever stand on the cell.
func (k CellKind) TeamExclusive() bool {
	return k.Type == LockedPosition || k.Type == HomeLane
}

// AllowsTeam reports whether a token of team may stand on the cell.
func (k CellKind) AllowsTeam(team Team) bool {
	switch k.Type {
	case Default, SafeSpot:
		return true
	case LockedPosition, HomeLane:
		return k.Team == team
	}
	return false
}

// Cell is one square of the board. Its kind is fixed at construction;
// Tokens lists the IDs of the tokens standing on it in arrival order.
type Cell struct {
	Kind   CellKind
	Tokens []TokenID
}

// Board is the 15x15 grid of cells, indexed [row][col].
// The zero value is a board of Unusable cells.
type Board struct {
	Cells [BoardSize][BoardSize]Cell
}

// At returns the cell at c. It panics if c is off the grid.
func (b *Board) At(c Coord) *Cell {
	return &b.Cells[c.Row][c.Col]
}

// Kind returns the kind of the cell at c, or Unusable when c is off the grid.
func (b *Board) Kind(c Coord) CellKind {
	if !c.InBounds() {
		return CellKind{Type: Unusable}
	}
	return b.Cells[c.Row][c.Col].Kind
}

// SetKind assigns the kind of the cell at c.
func (b *Board) SetKind(c Coord, kind CellKind) {
	b.Cells[c.Row][c.Col].Kind = kind
}

// Copy creates a deep copy of the board, including occupant lists.
func (b *Board) Copy() *Board {
	nb := &Board{}
	for r := range b.Cells {
		for c := range b.Cells[r] {
			src := &b.Cells[r][c]
			nb.Cells[r][c].Kind = src.Kind
			if len(src.Tokens) > 0 {
				nb.Cells[r][c].Tokens = append([]TokenID(nil), src.Tokens...)
			}
		}
	}
	return nb
}

// TokenID addresses a token in an engine's token arena.
type TokenID int

// Token is one playable piece. It belongs to one team for its lifetime.
type Token struct {
	ID    TokenID
	Team  Team
	Coord Coord
}

// Finished reports whether the token stands on its team's end coordinate.
func (t Token) Finished() bool {
	return t.Coord == t.Team.EndCoord()
}
