// Package dice provides six-sided dice for the game driver.
//
// A SeededRoller is deterministic: two rollers built from the same seed
// produce the same sequence of rolls. A Sequence replays fixed rolls and
// is meant for tests and replays of recorded games.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/lgbarn/ludo-go/internal/errors"
	"github.com/lgbarn/ludo-go/internal/ludo"
)

// Roller produces die rolls in the range ludo.MinRoll..ludo.MaxRoll.
type Roller interface {
	Roll() int
}

// SeededRoller rolls a die from a math/rand source. It is not safe for
// concurrent use; give each game its own roller.
type SeededRoller struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a roller whose rolls are fully determined by seed.
func NewSeeded(seed int64) *SeededRoller {
	return &SeededRoller{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Roll returns the next roll.
func (r *SeededRoller) Roll() int {
	return r.rng.Intn(ludo.MaxRoll-ludo.MinRoll+1) + ludo.MinRoll
}

// Seed returns the seed the roller was built from.
func (r *SeededRoller) Seed() int64 {
	return r.seed
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sequence replays a fixed list of rolls and then wraps around.
type Sequence struct {
	rolls []int
	next  int
}

// NewSequence returns a roller that yields rolls in order. Every roll must
// be a legal die face and at least one is required.
func NewSequence(rolls ...int) (*Sequence, error) {
	if len(rolls) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidRoll, "empty roll sequence")
	}
	for _, r := range rolls {
		if err := Validate(r); err != nil {
			return nil, err
		}
	}
	return &Sequence{rolls: append([]int(nil), rolls...)}, nil
}

// Roll returns the next roll of the sequence.
func (s *Sequence) Roll() int {
	r := s.rolls[s.next]
	s.next = (s.next + 1) % len(s.rolls)
	return r
}

// Validate returns ErrInvalidRoll if roll is not a face of a six-sided die.
func Validate(roll int) error {
	if roll < ludo.MinRoll || roll > ludo.MaxRoll {
		return errors.Wrapf(errors.ErrInvalidRoll, "roll %d outside %d..%d", roll, ludo.MinRoll, ludo.MaxRoll)
	}
	return nil
}
