package game

import (
	"fmt"
	"math/rand"

	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// ChoiceKind distinguishes unlocking a token from moving one.
type ChoiceKind int

const (
	Unlock ChoiceKind = iota + 1 // Bring a token out of the pen
	Move                         // Advance the token standing on From
)

// Choice is one legal action for a roll.
type Choice struct {
	Kind ChoiceKind
	From ludo.Coord // Set for Move only
}

// String returns "unlock" or the coordinate of the token to move.
func (c Choice) String() string {
	if c.Kind == Unlock {
		return "unlock"
	}
	return fmt.Sprintf("move %v", c.From)
}

// Chooser picks one of the offered choices by index. It is called only
// when at least one choice exists. Returning an index outside
// [0, len(choices)) makes PlayTurn fail with ErrIllegalMove.
type Chooser interface {
	Choose(team ludo.Team, roll int, choices []Choice) int
}

// ChooserFunc adapts a plain function to the Chooser interface.
type ChooserFunc func(team ludo.Team, roll int, choices []Choice) int

// Choose calls f.
func (f ChooserFunc) Choose(team ludo.Team, roll int, choices []Choice) int {
	return f(team, roll, choices)
}

// FirstChooser always takes the first choice, so it unlocks whenever it
// can.
type FirstChooser struct{}

// Choose returns 0.
func (FirstChooser) Choose(ludo.Team, int, []Choice) int { return 0 }

// RandomChooser picks uniformly among the choices.
type RandomChooser struct {
	rng *rand.Rand
}

// NewRandomChooser returns a chooser whose picks are determined by seed.
func NewRandomChooser(seed int64) *RandomChooser {
	return &RandomChooser{rng: rand.New(rand.NewSource(seed))}
}

// Choose returns a random index into choices.
func (c *RandomChooser) Choose(_ ludo.Team, _ int, choices []Choice) int {
	return c.rng.Intn(len(choices))
}

// Chooser policy names accepted by NewChooser.
const (
	PolicyFirst  = "first"
	PolicyRandom = "random"
)

// NewChooser returns the built-in chooser called name. The seed is used by
// the random policy only.
func NewChooser(name string, seed int64) (Chooser, error) {
	switch name {
	case PolicyFirst, "":
		return FirstChooser{}, nil
	case PolicyRandom:
		return NewRandomChooser(seed), nil
	}
	return nil, errors.Wrapf(errors.ErrInvalidConfig, "unknown chooser %q", name)
}
